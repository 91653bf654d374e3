package pointwise

type predMatcher[T any] struct {
	descr string
	pred  func(T) bool
}

// Satisfies matches values for which pred returns true. The description
// descr completes "is …" and "is not …", e.g. "an even number".
func Satisfies[T any](descr string, pred func(T) bool) Matcher[T] {
	return predMatcher[T]{descr: descr, pred: pred}
}

func (m predMatcher[T]) Matches(actual T) Result { return ResultOf(m.pred(actual)) }

func (m predMatcher[T]) Explain(actual T) string { return DefaultExplanation[T](m, actual) }

func (m predMatcher[T]) Describe(r Result) string {
	return r.Pick("is ", "is not ") + m.descr
}
