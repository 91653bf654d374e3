package pointwise

import "fmt"

type eqMatcher[T comparable] struct{ expected T }

// Eq matches values equal to expected.
func Eq[T comparable](expected T) Matcher[T] { return eqMatcher[T]{expected} }

// Ne matches values not equal to expected.
func Ne[T comparable](expected T) Matcher[T] { return Not(Eq(expected)) }

func (m eqMatcher[T]) Matches(actual T) Result { return ResultOf(actual == m.expected) }

func (m eqMatcher[T]) Explain(actual T) string { return DefaultExplanation[T](m, actual) }

func (m eqMatcher[T]) Describe(r Result) string {
	return fmt.Sprintf("%s equal to %s", r.Pick("is", "isn't"), Debug(m.expected))
}
