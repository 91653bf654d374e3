package pointwise

import (
	"cmp"
	"fmt"
)

type relation int

const (
	relEq relation = iota
	relNe
	relLt
	relLe
	relGt
	relGe
)

// Phrases for the relation and for its negation
var relPhrases = [...][2]string{
	relEq: {"is equal to", "isn't equal to"},
	relNe: {"isn't equal to", "is equal to"},
	relLt: {"is less than", "is greater than or equal to"},
	relLe: {"is less than or equal to", "is greater than"},
	relGt: {"is greater than", "is less than or equal to"},
	relGe: {"is greater than or equal to", "is less than"},
}

func (rel relation) holds(c int) bool {
	switch rel {
	case relEq:
		return c == 0
	case relNe:
		return c != 0
	case relLt:
		return c < 0
	case relLe:
		return c <= 0
	case relGt:
		return c > 0
	case relGe:
		return c >= 0
	}
	panic("unreachable code")
}

type orderMatcher[T any] struct {
	rel   relation
	bound T
	cmp   func(a, b T) int
}

func Lt[T cmp.Ordered](bound T) Matcher[T] { return orderMatcher[T]{relLt, bound, cmp.Compare[T]} }

func Le[T cmp.Ordered](bound T) Matcher[T] { return orderMatcher[T]{relLe, bound, cmp.Compare[T]} }

func Gt[T cmp.Ordered](bound T) Matcher[T] { return orderMatcher[T]{relGt, bound, cmp.Compare[T]} }

func Ge[T cmp.Ordered](bound T) Matcher[T] { return orderMatcher[T]{relGe, bound, cmp.Compare[T]} }

// LtFunc is like Lt for types that are ordered by the compare function.
func LtFunc[T any](bound T, compare func(a, b T) int) Matcher[T] {
	return orderMatcher[T]{relLt, bound, compare}
}

func LeFunc[T any](bound T, compare func(a, b T) int) Matcher[T] {
	return orderMatcher[T]{relLe, bound, compare}
}

func GtFunc[T any](bound T, compare func(a, b T) int) Matcher[T] {
	return orderMatcher[T]{relGt, bound, compare}
}

func GeFunc[T any](bound T, compare func(a, b T) int) Matcher[T] {
	return orderMatcher[T]{relGe, bound, compare}
}

func (m orderMatcher[T]) Matches(actual T) Result {
	return ResultOf(m.rel.holds(m.cmp(actual, m.bound)))
}

func (m orderMatcher[T]) Explain(actual T) string { return DefaultExplanation[T](m, actual) }

func (m orderMatcher[T]) Describe(r Result) string {
	phr := relPhrases[m.rel]
	return fmt.Sprintf("%s %s", r.Pick(phr[0], phr[1]), Debug(m.bound))
}
