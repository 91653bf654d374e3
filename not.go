package pointwise

type notMatcher[T any] struct{ inner Matcher[T] }

// Not matches exactly the values m does not match.
func Not[T any](m Matcher[T]) Matcher[T] { return notMatcher[T]{m} }

func (m notMatcher[T]) Matches(actual T) Result { return m.inner.Matches(actual).Negate() }

func (m notMatcher[T]) Explain(actual T) string { return m.inner.Explain(actual) }

func (m notMatcher[T]) Describe(r Result) string { return m.inner.Describe(r.Negate()) }
