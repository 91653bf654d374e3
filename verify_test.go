package pointwise

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ExampleVerify() {
	got := []int{1, 2, 3}
	err := Verify("got", got, Pointwise(Eq[int], []int{2, 3, 3}))
	fmt.Println(err)
	// Output:
	// Value of: got
	// Expected: has elements satisfying respectively:
	//   0. is equal to 2
	//   1. is equal to 3
	//   2. is equal to 3
	// Actual: [1 2 3], where:
	//   * element #0 is 1, which isn't equal to 2
	//   * element #1 is 2, which isn't equal to 3
}

func TestVerify(t *testing.T) {
	t.Run("match", func(t *testing.T) {
		if err := Verify("v", []int{1, 2}, Pointwise(Lt[int], []int{2, 3})); err != nil {
			t.Error(err)
		}
	})
	t.Run("wrong length", func(t *testing.T) {
		err := Verify("[]int{1, 2, 3}", []int{1, 2, 3}, Pointwise(Eq[int], []int{1, 2}))
		var aerr *AssertionError
		if !errors.As(err, &aerr) {
			t.Fatalf("unexpected error %v", err)
		}
		want := &AssertionError{
			Expr: "[]int{1, 2, 3}",
			Expected: "has elements satisfying respectively:\n" +
				"  0. is equal to 1\n" +
				"  1. is equal to 2",
			Actual: "[1 2 3], which has size 3 (expected 2)",
		}
		if diff := cmp.Diff(want, aerr); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("single element", func(t *testing.T) {
		err := Verify("xs", []int{1, 2, 3}, Pointwise(Eq[int], []int{1, 3, 3}))
		const want = "Value of: xs\n" +
			"Expected: has elements satisfying respectively:\n" +
			"  0. is equal to 1\n" +
			"  1. is equal to 3\n" +
			"  2. is equal to 3\n" +
			"Actual: [1 2 3], where element #1 is 2, which isn't equal to 3"
		if err == nil || err.Error() != want {
			t.Errorf("got [%v]", err)
		}
	})
}

func TestDebug(t *testing.T) {
	tests := []struct {
		v    any
		want string
	}{
		{1, "1"},
		{"a", `"a"`},
		{[]int{1, 2}, "[1 2]"},
		{nil, "<nil>"},
		{struct{ A int }{3}, "{A:3}"},
		{ParseValue("x y"), `"x y"`},
		{ParseValue("a  b"), `"a  b"`},
		{ParseValue("3"), "3"},
		{ParseValues([]string{"1", "a "}), `[1 "a "]`},
	}
	for _, test := range tests {
		if s := Debug(test.v); s != test.want {
			t.Errorf("Debug(%#v) = [%s], want [%s]", test.v, s, test.want)
		}
	}
}
