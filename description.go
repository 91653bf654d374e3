package pointwise

import (
	"strconv"
	"strings"
)

// Description is a list of possibly multi-line text items that render into
// the nested lists of matcher descriptions and explanations. The
// transformations return new descriptions and can be chained:
//
//	Description{"a", "b"}.BulletList().Indent().String()
//
// gives
//
//	  * a
//	  * b
type Description []string

// BulletList prefixes each item with "* ". Continuation lines of an item
// are aligned with its text.
func (d Description) BulletList() Description {
	res := make(Description, len(d))
	for i, item := range d {
		res[i] = hang("* ", item)
	}
	return res
}

// Enumerate prefixes each item with its zero-based index. Indices are
// right aligned when the list has more than ten items.
func (d Description) Enumerate() Description {
	w := len(strconv.Itoa(len(d) - 1))
	res := make(Description, len(d))
	for i, item := range d {
		n := strconv.Itoa(i)
		res[i] = hang(strings.Repeat(" ", w-len(n))+n+". ", item)
	}
	return res
}

// Indent indents every non-empty line of every item by two spaces.
func (d Description) Indent() Description {
	res := make(Description, len(d))
	for i, item := range d {
		res[i] = indentLines("  ", item)
	}
	return res
}

func (d Description) Len() int { return len(d) }

// String joins the items with newlines. There is no trailing newline.
func (d Description) String() string { return strings.Join(d, "\n") }

func hang(prefix, item string) string {
	first, rest, multi := strings.Cut(item, "\n")
	if !multi {
		return prefix + first
	}
	return prefix + first + "\n" + indentLines(strings.Repeat(" ", len(prefix)), rest)
}

func indentLines(pad, text string) string {
	var sb strings.Builder
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if line != "" {
			sb.WriteString(pad)
			sb.WriteString(line)
		}
	}
	return sb.String()
}
