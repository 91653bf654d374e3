package pointwise

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Pointwise creates one matcher for each expected value with mk and
// combines them into a positional matcher. E.g.
//
//	Pointwise(Le[int], []int{1, 3, 3})
//
// matches []int{1, 2, 3} but not []int{1, 2}.
func Pointwise[T, E any](mk func(E) Matcher[T], expected []E) *Positional[T] {
	ms := make([]Matcher[T], len(expected))
	for i, e := range expected {
		ms[i] = mk(e)
	}
	return &Positional[T]{matchers: ms}
}

type mapMatcher[T, U any] struct {
	f     func(T) U
	inner Matcher[U]
}

// Map matches values of type T by matching f(actual) with m.
func Map[T, U any](f func(T) U, m Matcher[U]) Matcher[T] {
	return mapMatcher[T, U]{f: f, inner: m}
}

func (m mapMatcher[T, U]) Matches(actual T) Result { return m.inner.Matches(m.f(actual)) }

func (m mapMatcher[T, U]) Explain(actual T) string { return m.inner.Explain(m.f(actual)) }

func (m mapMatcher[T, U]) Describe(r Result) string { return m.inner.Describe(r) }

// Value is a textual value, e.g. one line of a text file. Two values
// compare as numbers if both parse as numbers. Otherwise they compare as
// strings. NaN is not a number, i.e. "NaN" only equals "NaN".
type Value struct {
	Text  string
	num   float64
	isNum bool
}

func ParseValue(s string) Value {
	v := Value{Text: s}
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && !math.IsNaN(f) {
		v.num, v.isNum = f, true
	}
	return v
}

func (v Value) IsNumber() bool { return v.isNum }

func (v Value) String() string { return v.Text }

func (v Value) debug() string {
	if v.isNum {
		return v.Text
	}
	return fmt.Sprintf("%q", v.Text)
}

func CompareValues(a, b Value) int {
	if a.isNum && b.isNum {
		return cmp.Compare(a.num, b.num)
	}
	return strings.Compare(a.Text, b.Text)
}

// ParseValues parses each string with ParseValue.
func ParseValues(ss []string) []Value {
	res := make([]Value, len(ss))
	for i, s := range ss {
		res[i] = ParseValue(s)
	}
	return res
}

// Names of the predicates known to Named
const (
	PredEq   = "eq"
	PredNe   = "ne"
	PredLt   = "lt"
	PredLe   = "le"
	PredGt   = "gt"
	PredGe   = "ge"
	PredGlob = "glob"
)

var namedRelations = map[string]relation{
	PredEq: relEq,
	PredNe: relNe,
	PredLt: relLt,
	PredLe: relLe,
	PredGt: relGt,
	PredGe: relGe,
}

// PredicateNames returns the names accepted by Named in sorted order.
func PredicateNames() []string {
	res := []string{PredGlob}
	for nm := range namedRelations {
		res = append(res, nm)
	}
	slices.Sort(res)
	return res
}

type UnknownPredicateError struct {
	Name string
}

func (e UnknownPredicateError) Error() string {
	return fmt.Sprintf("unknown predicate '%s' (known: %s)",
		e.Name,
		strings.Join(PredicateNames(), ", "),
	)
}

// Named returns the factory of the predicate with the given name for use
// with Pointwise. With PredGlob the expected value's text is used as glob
// pattern.
func Named(name string) (func(Value) Matcher[Value], error) {
	if name == PredGlob {
		return func(v Value) Matcher[Value] {
			return Map(Value.String, Glob(v.Text))
		}, nil
	}
	rel, ok := namedRelations[name]
	if !ok {
		return nil, UnknownPredicateError{Name: name}
	}
	return func(v Value) Matcher[Value] {
		return orderMatcher[Value]{rel: rel, bound: v, cmp: CompareValues}
	}, nil
}
