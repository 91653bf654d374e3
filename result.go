package pointwise

// Result is the outcome of matching a single value.
type Result int

const (
	DoesNotMatch Result = iota
	Matches
)

func ResultOf(match bool) Result {
	if match {
		return Matches
	}
	return DoesNotMatch
}

// Pick returns ifMatches for Matches and ifNot otherwise. It is used to
// flip the verb of a description.
func (r Result) Pick(ifMatches, ifNot string) string {
	if r == Matches {
		return ifMatches
	}
	return ifNot
}

func (r Result) Negate() Result {
	if r == Matches {
		return DoesNotMatch
	}
	return Matches
}

func (r Result) IsMatch() bool { return r == Matches }

func (r Result) String() string { return r.Pick("matches", "does not match") }
