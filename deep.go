package pointwise

import (
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
)

type deepEqMatcher[T any] struct {
	expected T
	opts     []cmp.Option
}

// DeepEq matches values that are structurally equal to expected as
// decided by cmp.Equal with opts. Explanations of mismatches carry the
// cmp.Diff of both values.
func DeepEq[T any](expected T, opts ...cmp.Option) Matcher[T] {
	return deepEqMatcher[T]{expected: expected, opts: opts}
}

func (m deepEqMatcher[T]) Matches(actual T) Result {
	return ResultOf(cmp.Equal(actual, m.expected, m.opts...))
}

func (m deepEqMatcher[T]) Explain(actual T) string {
	if m.Matches(actual) == Matches {
		return "which " + m.Describe(Matches)
	}
	diff := strings.TrimRight(cmp.Diff(m.expected, actual, m.opts...), "\n")
	return fmt.Sprintf("which %s, diff (-want +got):\n%s", m.Describe(DoesNotMatch), diff)
}

func (m deepEqMatcher[T]) Describe(r Result) string {
	return fmt.Sprintf("%s deeply equal to %s", r.Pick("is", "isn't"), Debug(m.expected))
}
