package pointwise

import (
	"fmt"

	"github.com/zyedidia/glob"
)

type globMatcher struct {
	pattern string
	glob    *glob.Glob
	err     error
}

// Glob matches strings against the glob pattern, e.g. "*.go" or
// "file-[0-9]?". The whole string has to match. A pattern that does not
// compile never matches.
func Glob(pattern string) Matcher[string] {
	g, err := glob.Compile(pattern)
	return globMatcher{pattern: pattern, glob: g, err: err}
}

func (m globMatcher) Matches(actual string) Result {
	if m.err != nil {
		return DoesNotMatch
	}
	return ResultOf(m.glob.MatchString(actual))
}

func (m globMatcher) Explain(actual string) string {
	if m.err != nil {
		return fmt.Sprintf("which cannot be matched, invalid glob %q: %s", m.pattern, m.err)
	}
	return DefaultExplanation[string](m, actual)
}

func (m globMatcher) Describe(r Result) string {
	return fmt.Sprintf("%s glob %q", r.Pick("matches", "doesn't match"), m.pattern)
}
