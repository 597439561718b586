package analyzer

import "fmt"

// ParseError is returned when the parser cannot produce a tree for a source
// unit. Malformed annotations are not parse errors; they are filtered during
// extraction instead.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
