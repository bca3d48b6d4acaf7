package parser

import "fmt"

// SyntaxError is returned when an expression does not conform to the
// FHIRPath grammar. Offset is the rune offset into the source, Line and
// Column are 1-based.
type SyntaxError struct {
	Offset int
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

func newSyntaxError(src []rune, offset int, format string, args ...any) *SyntaxError {
	line, column := 1, 1
	for i := 0; i < offset && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return &SyntaxError{
		Offset: offset,
		Line:   line,
		Column: column,
		Msg:    fmt.Sprintf(format, args...),
	}
}
