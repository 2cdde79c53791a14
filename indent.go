package basicproject

import "strings"

const indentWidth = 2

// Indent is a nesting level for Describe output.
type Indent int

func (i Indent) String() string {
	if i <= 0 {
		return ""
	}
	return strings.Repeat(" ", int(i)*indentWidth)
}

// Next returns the level used when delegating to a superclass.
func (i Indent) Next() Indent {
	return i + 1
}
