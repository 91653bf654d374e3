package pointwise

import (
	"fmt"
	"iter"
	"slices"

	"git.fractalqb.de/fractalqb/icontainer/islist"
)

// Positional matches a sequence element by element against a list of
// matchers: element i must match matcher i and the sequence must have as
// many elements as there are matchers. It is usually built with
// [Pointwise].
type Positional[T any] struct {
	matchers []Matcher[T]
}

var _ Matcher[[]int] = (*Positional[int])(nil)

func New[T any](matchers ...Matcher[T]) *Positional[T] {
	return &Positional[T]{matchers: slices.Clone(matchers)}
}

// Len returns the expected length of matched sequences.
func (pm *Positional[T]) Len() int { return len(pm.matchers) }

func (pm *Positional[T]) Matches(actual []T) Result {
	return pm.matchSeq(slices.Values(actual))
}

func (pm *Positional[T]) Explain(actual []T) string {
	return pm.explainSeq(slices.Values(actual))
}

func (pm *Positional[T]) Describe(r Result) string {
	descr := make(Description, len(pm.matchers))
	for i, m := range pm.matchers {
		descr[i] = m.Describe(Matches)
	}
	return fmt.Sprintf("%s elements satisfying respectively:\n%s",
		r.Pick("has", "doesn't have"),
		descr.Enumerate().Indent(),
	)
}

// Seq returns pm as a matcher of sequences. Matching and explaining each
// iterate the sequence, so it must be re-iterable to get consistent
// results.
func (pm *Positional[T]) Seq() Matcher[iter.Seq[T]] { return seqPositional[T]{pm} }

func (pm *Positional[T]) matchSeq(actual iter.Seq[T]) Result {
	z := Zip(actual, slices.Values(pm.matchers))
	defer z.Stop()
	for a, m := range z.All() {
		if m.Matches(a) == DoesNotMatch {
			return DoesNotMatch
		}
	}
	if z.HasSizeMismatch() {
		return DoesNotMatch
	}
	return Matches
}

func (pm *Positional[T]) explainSeq(actual iter.Seq[T]) string {
	z := Zip(actual, slices.Values(pm.matchers))
	defer z.Stop()
	var (
		misses *islist.List
		idx    int
	)
	for a, m := range z.All() {
		if m.Matches(a) == DoesNotMatch {
			miss := &mismatch{
				index:   idx,
				value:   Debug(a),
				explain: m.Explain(a),
			}
			if misses == nil {
				misses = islist.New(miss)
			} else {
				misses.PushBack(miss)
			}
		}
		idx++
	}
	switch {
	case misses == nil:
		if !z.HasSizeMismatch() {
			return "which matches all elements"
		}
		return fmt.Sprintf("which has size %d (expected %d)", z.LeftSize(), len(pm.matchers))
	case misses.Len() == 1:
		return "where " + misses.Front().(*mismatch).String()
	}
	descr := make(Description, 0, misses.Len())
	for n := misses.Front(); n != nil; n = n.ListNext() {
		descr = append(descr, n.(*mismatch).String())
	}
	return "where:\n" + descr.BulletList().Indent().String()
}

type seqPositional[T any] struct{ pm *Positional[T] }

func (s seqPositional[T]) Matches(actual iter.Seq[T]) Result { return s.pm.matchSeq(actual) }

func (s seqPositional[T]) Explain(actual iter.Seq[T]) string { return s.pm.explainSeq(actual) }

func (s seqPositional[T]) Describe(r Result) string { return s.pm.Describe(r) }

// mismatch records one element that did not match. Mismatches are kept in
// an intrusive list in ascending index order.
type mismatch struct {
	index   int
	value   string
	explain string
	next    *mismatch
}

func (m *mismatch) String() string {
	return fmt.Sprintf("element #%d is %s, %s", m.index, m.value, m.explain)
}

// ListNext to implement intrusive singly linked list
func (m *mismatch) ListNext() islist.Node {
	if m.next == nil {
		return nil
	}
	return m.next
}

// SetListNext to implement intrusive singly linked list
func (m *mismatch) SetListNext(n islist.Node) {
	if n == nil {
		m.next = nil
	} else {
		m.next = n.(*mismatch)
	}
}
