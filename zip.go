package pointwise

import "iter"

type sideState byte

const (
	sideUnknown sideState = iota
	sideExhausted
	sideHasMore
)

// Zipped walks two sequences of possibly different length in lockstep. It
// yields pairs as long as both sides have elements. After the walk,
// whether it ran to the end or the caller stopped early, HasSizeMismatch
// tells if either side still had elements left. Lengths are never computed
// upfront, so both sides may be plain iterators.
//
// A Zipped supports exactly one pass and must not be used concurrently.
// Call Stop when done with it. A nil sequence is treated as empty.
type Zipped[L, R any] struct {
	lnext    func() (L, bool)
	lstop    func()
	rnext    func() (R, bool)
	rstop    func()
	consumed int
	left     sideState
	right    sideState
	used     bool
	drained  bool
}

func Zip[L, R any](left iter.Seq[L], right iter.Seq[R]) *Zipped[L, R] {
	z := new(Zipped[L, R])
	if left == nil {
		left = func(func(L) bool) {}
	}
	if right == nil {
		right = func(func(R) bool) {}
	}
	z.lnext, z.lstop = iter.Pull(left)
	z.rnext, z.rstop = iter.Pull(right)
	return z
}

// All returns the pairs of the overlapping prefix in ascending index
// order. Only the first call yields anything.
func (z *Zipped[L, R]) All() iter.Seq2[L, R] {
	return func(yield func(L, R) bool) {
		if z.used {
			return
		}
		z.used = true
		for {
			l, ok := z.lnext()
			if !ok {
				z.left = sideExhausted
				return
			}
			z.consumed++
			r, ok := z.rnext()
			if !ok {
				z.right = sideExhausted
				z.left = sideHasMore
				return
			}
			if !yield(l, r) {
				return
			}
		}
	}
}

// HasSizeMismatch reports whether at least one side had an element that was
// not consumed when the walk stopped. It advances each undecided side at
// most once.
func (z *Zipped[L, R]) HasSizeMismatch() bool {
	z.probeLeft()
	if z.right == sideUnknown {
		if _, ok := z.rnext(); ok {
			z.right = sideHasMore
		} else {
			z.right = sideExhausted
		}
	}
	return z.left == sideHasMore || z.right == sideHasMore
}

// Consumed returns the number of left elements taken so far, including
// elements taken to detect a size mismatch.
func (z *Zipped[L, R]) Consumed() int { return z.consumed }

// LeftSize drains the left side and returns its total number of elements.
func (z *Zipped[L, R]) LeftSize() int {
	z.probeLeft()
	if z.left == sideHasMore && !z.drained {
		for {
			if _, ok := z.lnext(); !ok {
				break
			}
			z.consumed++
		}
	}
	z.drained = true
	return z.consumed
}

func (z *Zipped[L, R]) probeLeft() {
	if z.left != sideUnknown {
		return
	}
	if _, ok := z.lnext(); ok {
		z.consumed++
		z.left = sideHasMore
	} else {
		z.left = sideExhausted
	}
}

func (z *Zipped[L, R]) Stop() {
	z.lstop()
	z.rstop()
}
