package pointwise

import (
	"fmt"
	"iter"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ExamplePointwise() {
	m := Pointwise(Le[int], []int{1, 3, 3})
	fmt.Println(m.Matches([]int{1, 2, 3}))
	fmt.Println(m.Matches([]int{1, 4, 3}))
	fmt.Println(m.Explain([]int{1, 4, 3}))
	fmt.Println(m.Describe(Matches))
	// Output:
	// matches
	// does not match
	// where element #1 is 4, which is greater than 3
	// has elements satisfying respectively:
	//   0. is less than or equal to 1
	//   1. is less than or equal to 3
	//   2. is less than or equal to 3
}

func TestPositional_Matches(t *testing.T) {
	tests := []struct {
		name   string
		m      *Positional[int]
		actual []int
		want   Result
	}{
		{"single element", Pointwise(Lt[int], []int{2}), []int{1}, Matches},
		{"two elements", Pointwise(Lt[int], []int{2, 3}), []int{1, 2}, Matches},
		{"both empty", Pointwise(Eq[int], []int{}), []int{}, Matches},
		{"nil actual", Pointwise(Eq[int], nil), nil, Matches},
		{"actual too short", Pointwise(Lt[int], []int{2, 3}), []int{1}, DoesNotMatch},
		{"actual too long", Pointwise(Eq[int], []int{1, 2}), []int{1, 2, 3}, DoesNotMatch},
		{"empty actual", Pointwise(Eq[int], []int{1}), []int{}, DoesNotMatch},
		{"no matchers", Pointwise(Eq[int], []int{}), []int{1}, DoesNotMatch},
		{"first position", Pointwise(Lt[int], []int{1, 3}), []int{1, 2}, DoesNotMatch},
		{"second position", Pointwise(Lt[int], []int{2, 2}), []int{1, 2}, DoesNotMatch},
		{"wrong first of three", Pointwise(Eq[int], []int{2, 2, 3}), []int{1, 2, 3}, DoesNotMatch},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if r := test.m.Matches(test.actual); r != test.want {
				t.Errorf("Matches(%v) = %s, want %s", test.actual, r, test.want)
			}
		})
	}
}

func TestPositional_matchesOnlyWithEqualLengthAndAllPositions(t *testing.T) {
	expected := []int{3, 1, 4}
	m := Pointwise(Eq[int], expected)
	for _, actual := range [][]int{
		nil, {3}, {3, 1}, {3, 1, 4}, {3, 1, 4, 1}, {0, 1, 4}, {3, 0, 4}, {3, 1, 0},
	} {
		want := ResultOf(slices.Equal(actual, expected))
		if r := m.Matches(actual); r != want {
			t.Errorf("Matches(%v) = %s, want %s", actual, r, want)
		}
	}
}

func TestPositional_Explain(t *testing.T) {
	tests := []struct {
		name   string
		m      *Positional[int]
		actual []int
		want   string
	}{
		{"actual too long",
			Pointwise(Eq[int], []int{1, 2}), []int{1, 2, 3},
			"which has size 3 (expected 2)",
		},
		{"actual much too long",
			Pointwise(Eq[int], []int{1, 2}), []int{1, 2, 3, 4, 5},
			"which has size 5 (expected 2)",
		},
		{"actual is a prefix",
			Pointwise(Eq[int], []int{1, 2, 3}), []int{1},
			"which has size 1 (expected 3)",
		},
		{"empty actual",
			Pointwise(Eq[int], []int{1}), nil,
			"which has size 0 (expected 1)",
		},
		{"first item",
			Pointwise(Eq[int], []int{2, 2, 3}), []int{1, 2, 3},
			"where element #0 is 1, which isn't equal to 2",
		},
		{"second item",
			Pointwise(Eq[int], []int{1, 3, 3}), []int{1, 2, 3},
			"where element #1 is 2, which isn't equal to 3",
		},
		{"first and second item",
			Pointwise(Eq[int], []int{2, 3, 3}), []int{1, 2, 3},
			"where:\n" +
				"  * element #0 is 1, which isn't equal to 2\n" +
				"  * element #1 is 2, which isn't equal to 3",
		},
		{"content before size",
			Pointwise(Eq[int], []int{1, 3}), []int{1, 2, 3},
			"where element #1 is 2, which isn't equal to 3",
		},
		{"all matching",
			Pointwise(Lt[int], []int{2, 3}), []int{1, 2},
			"which matches all elements",
		},
		{"both empty",
			Pointwise(Eq[int], []int{}), []int{},
			"which matches all elements",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if diff := cmp.Diff(test.want, test.m.Explain(test.actual)); diff != "" {
				t.Errorf("Explain(%v) mismatch (-want +got):\n%s", test.actual, diff)
			}
		})
	}
}

func TestPositional_Explain_allMismatchesAscending(t *testing.T) {
	m := Pointwise(Eq[int], []int{0, 1, 0, 3, 0})
	got := m.Explain([]int{1, 1, 2, 3, 4})
	const want = "where:\n" +
		"  * element #0 is 1, which isn't equal to 0\n" +
		"  * element #2 is 2, which isn't equal to 0\n" +
		"  * element #4 is 4, which isn't equal to 0"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPositional_Describe(t *testing.T) {
	m := Pointwise(Eq[int], []int{1, 2})
	t.Run("matches", func(t *testing.T) {
		const want = "has elements satisfying respectively:\n" +
			"  0. is equal to 1\n" +
			"  1. is equal to 2"
		if diff := cmp.Diff(want, m.Describe(Matches)); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("does not match", func(t *testing.T) {
		const want = "doesn't have elements satisfying respectively:\n" +
			"  0. is equal to 1\n" +
			"  1. is equal to 2"
		if diff := cmp.Diff(want, m.Describe(DoesNotMatch)); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("independent of matching", func(t *testing.T) {
		before := m.Describe(Matches)
		m.Matches([]int{7})
		m.Explain([]int{1, 2, 3})
		if after := m.Describe(Matches); after != before {
			t.Errorf("description changed to [%s]", after)
		}
	})
}

func TestPositional_nested(t *testing.T) {
	m := New[[]int](
		Pointwise(Eq[int], []int{1, 3}),
		Pointwise(Eq[int], []int{3}),
	)
	t.Run("describe", func(t *testing.T) {
		const want = "has elements satisfying respectively:\n" +
			"  0. has elements satisfying respectively:\n" +
			"       0. is equal to 1\n" +
			"       1. is equal to 3\n" +
			"  1. has elements satisfying respectively:\n" +
			"       0. is equal to 3"
		if diff := cmp.Diff(want, m.Describe(Matches)); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("single mismatch", func(t *testing.T) {
		const want = "where element #0 is [1 2], where element #1 is 2, which isn't equal to 3"
		got := m.Explain([][]int{{1, 2}, {3}})
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("nested lists", func(t *testing.T) {
		const want = "where:\n" +
			"  * element #0 is [2 4], where:\n" +
			"      * element #0 is 2, which isn't equal to 1\n" +
			"      * element #1 is 4, which isn't equal to 3\n" +
			"  * element #1 is [], which has size 0 (expected 1)"
		got := m.Explain([][]int{{2, 4}, {}})
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestPositional_shortCircuit(t *testing.T) {
	var calls int
	counting := func(want int) Matcher[int] {
		return Satisfies(fmt.Sprint(want), func(i int) bool {
			calls++
			return i == want
		})
	}
	m := Pointwise(counting, []int{1, 2, 3})
	t.Run("matches", func(t *testing.T) {
		calls = 0
		if m.Matches([]int{0, 2, 3}) != DoesNotMatch {
			t.Fatal("unexpected match")
		}
		if calls != 1 {
			t.Errorf("evaluated %d positions", calls)
		}
	})
	t.Run("explain", func(t *testing.T) {
		calls = 0
		m.Explain([]int{0, 2, 3})
		if calls < 3 {
			t.Errorf("evaluated only %d positions", calls)
		}
	})
}

func countingSeq[T any](elems []T, pulled *int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range elems {
			*pulled++
			if !yield(e) {
				return
			}
		}
	}
}

func TestPositional_Seq(t *testing.T) {
	m := Pointwise(Eq[string], []string{"a", "b"}).Seq()
	t.Run("matches", func(t *testing.T) {
		if r := m.Matches(slices.Values([]string{"a", "b"})); r != Matches {
			t.Errorf("got %s", r)
		}
	})
	t.Run("explain", func(t *testing.T) {
		const want = `where element #1 is "c", which isn't equal to "b"`
		if got := m.Explain(slices.Values([]string{"a", "c"})); got != want {
			t.Errorf("got [%s]", got)
		}
	})
	t.Run("too long", func(t *testing.T) {
		const want = "which has size 4 (expected 2)"
		if got := m.Explain(slices.Values([]string{"a", "b", "c", "d"})); got != want {
			t.Errorf("got [%s]", got)
		}
	})
	t.Run("nil sequence", func(t *testing.T) {
		if got := m.Explain(nil); got != "which has size 0 (expected 2)" {
			t.Errorf("got [%s]", got)
		}
	})
	t.Run("lazy", func(t *testing.T) {
		var pulled int
		seq := countingSeq([]string{"x", "b", "c", "d", "e"}, &pulled)
		if m.Matches(seq) != DoesNotMatch {
			t.Fatal("unexpected match")
		}
		if pulled != 1 {
			t.Errorf("pulled %d elements", pulled)
		}
	})
	t.Run("describe", func(t *testing.T) {
		want := Pointwise(Eq[string], []string{"a", "b"}).Describe(DoesNotMatch)
		if got := m.Describe(DoesNotMatch); got != want {
			t.Errorf("got [%s]", got)
		}
	})
}

func TestNew_copiesMatchers(t *testing.T) {
	ms := []Matcher[int]{Eq(1), Eq(2)}
	m := New(ms...)
	ms[0] = Eq(7)
	if m.Matches([]int{1, 2}) != Matches {
		t.Error("matcher list changed after construction")
	}
	if m.Len() != 2 {
		t.Errorf("length %d", m.Len())
	}
}
