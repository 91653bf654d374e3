package pointwise

// Matcher tests single values of type T. Besides the test itself a matcher
// can explain in natural language why a value did or did not match and
// describe what it demands.
type Matcher[T any] interface {
	// Matches tests actual.
	Matches(actual T) Result
	// Explain tells why actual matched or did not, e.g. "which isn't
	// equal to 2".
	Explain(actual T) string
	// Describe states the requirement of the matcher for r == Matches or
	// its negation for r == DoesNotMatch, e.g. "is equal to 2" or "isn't
	// equal to 2".
	Describe(r Result) string
}

// DefaultExplanation is the explanation most matchers use: "which "
// followed by the description that corresponds to the result of matching
// actual.
func DefaultExplanation[T any](m Matcher[T], actual T) string {
	return "which " + m.Describe(m.Matches(actual))
}
