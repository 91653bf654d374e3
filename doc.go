/*
Package pointwise matches sequences element by element. A positional
matcher holds one matcher per expected position. A sequence matches if
each element matches the matcher at the same position and the sequence
has exactly as many elements as there are matchers.

The most common way to create a positional matcher is Pointwise. It takes
a matcher constructor and the list of expected values:

	m := pointwise.Pointwise(pointwise.Le[int], []int{1, 3, 3})
	m.Matches([]int{1, 2, 3}) // Matches
	m.Matches([]int{1, 4, 3}) // DoesNotMatch

Single value matchers implement the Matcher interface. Besides deciding
whether a value matches, each matcher can explain why a value did or did
not match and describe what it expects. Positional matchers are matchers
themselves and can be nested.

# Explanations

Explanations are meant to follow the debug representation of the actual
value in a failure report. A positional matcher reports all positions that
did not match:

	where:
	  * element #0 is 1, which isn't equal to 2
	  * element #1 is 2, which isn't equal to 3

A single mismatch is reported on one line:

	where element #1 is 2, which isn't equal to 3

The length of a sequence is only reported when all positions that have a
matcher matched:

	which has size 3 (expected 2)

Content mismatches take precedence over the length, i.e. a sequence that
has both a wrong length and wrong elements is explained by its wrong
elements only.

# Descriptions

The description of a positional matcher enumerates the descriptions of
its matchers:

	has elements satisfying respectively:
	  0. is equal to 1
	  1. is equal to 2

# Reports

Verify combines the description and the explanation into an error that
reads like

	Value of: got
	Expected: has elements satisfying respectively:
	  0. is equal to 2
	  1. is equal to 3
	  2. is equal to 3
	Actual: [1 2 3], where:
	  * element #0 is 1, which isn't equal to 2
	  * element #1 is 2, which isn't equal to 3

Package pwtest uses such reports in Go tests.
*/
package pointwise
