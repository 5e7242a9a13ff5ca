package stratcfg

import (
	"fmt"
	"strings"
)

// ParseError reports a structurally malformed document. Line and Col
// locate the offending byte when the underlying decoder provides an
// offset; both are zero otherwise.
type ParseError struct {
	Line int
	Col  int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error at line %d, column %d: %v", e.Line, e.Col, e.Err)
	}
	return fmt.Sprintf("parse error: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Violation is a single broken rule, addressed by the path of the
// field that broke it.
type Violation struct {
	Path string
	Rule string
}

func (v Violation) String() string {
	if v.Path == "" {
		return v.Rule
	}
	return v.Path + ": " + v.Rule
}

// ValidationError carries every violation found in one entry, in
// field order. The document parsed fine; its values did not.
type ValidationError struct {
	Entry      string
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	if e.Entry == "" {
		return "invalid configuration: " + strings.Join(parts, "; ")
	}
	return fmt.Sprintf("invalid entry %q: %s", e.Entry, strings.Join(parts, "; "))
}

// NotFoundError reports a top-level key absent from the loaded set.
// Lookups are exact and case-sensitive; a miss is never papered over
// with a default.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("entry %q not found", e.Name)
}

// lineCol converts a byte offset into 1-based line and column numbers.
func lineCol(src []byte, offset int64) (line, col int) {
	if offset < 0 || offset > int64(len(src)) {
		return 0, 0
	}
	line, col = 1, 1
	for _, b := range src[:offset] {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
