package parser

import "fmt"

// ScanError reports input the scanner could not match against any lexical
// rule. Snippet carries the offending substring for diagnostics.
type ScanError struct {
	Message  string
	Snippet  string
	Position Position
	Length   int
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
}

// ParseError aborts the whole parse; there is no resynchronization. The
// first failing rule wins and everything unwinds back to the caller.
type ParseError struct {
	Message  string
	Position Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
}
