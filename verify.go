package pointwise

import (
	"fmt"
	"strings"
)

// AssertionError reports a value that did not match. Its message has the
// form
//
//	Value of: <Expr>
//	Expected: <Expected>
//	Actual: <Actual>
type AssertionError struct {
	Expr     string
	Expected string
	Actual   string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("Value of: %s\nExpected: %s\nActual: %s", e.Expr, e.Expected, e.Actual)
}

// Verify checks actual with m. It returns nil if actual matches and an
// *AssertionError otherwise. The expr names the checked value in the error
// message.
func Verify[T any](expr string, actual T, m Matcher[T]) error {
	if m.Matches(actual) == Matches {
		return nil
	}
	return &AssertionError{
		Expr:     expr,
		Expected: m.Describe(Matches),
		Actual:   Debug(actual) + ", " + m.Explain(actual),
	}
}

// Debug formats v for explanations and reports. Strings and values that
// are not numbers are quoted, anything else uses the %+v verb.
func Debug(v any) string {
	switch v := v.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case Value:
		return v.debug()
	case []Value:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, e := range v {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(e.debug())
		}
		sb.WriteByte(']')
		return sb.String()
	}
	return fmt.Sprintf("%+v", v)
}
