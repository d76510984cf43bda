package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"zenscript/internal/parser"
)

// ErrorLevel represents the severity of a reported fault.
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
)

// Reporter renders scan and parse faults with the offending source line and
// a caret underline.
type Reporter struct {
	filename string
	lines    []string
}

func NewReporter(filename, source string) *Reporter {
	return &Reporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatScanError formats a lexer fault, underlining the offending snippet.
func (r *Reporter) FormatScanError(err *parser.ScanError) string {
	length := err.Length
	if length == 0 {
		length = 1
	}
	return r.format(Error, err.Message, err.Position, length)
}

// FormatParseError formats a parser fault.
func (r *Reporter) FormatParseError(err *parser.ParseError) string {
	return r.format(Error, err.Message, err.Position, 1)
}

// Format renders any fault the parser package can produce; unknown error
// types fall back to a bare message.
func (r *Reporter) Format(err error) string {
	switch e := err.(type) {
	case *parser.ScanError:
		return r.FormatScanError(e)
	case *parser.ParseError:
		return r.FormatParseError(e)
	}
	red := color.New(color.FgRed).SprintFunc()
	return fmt.Sprintf("%s: %v\n", red("error"), err)
}

func (r *Reporter) format(level ErrorLevel, message string, pos parser.Position, length int) string {
	var lineContent string
	if pos.Line-1 >= 0 && pos.Line-1 < len(r.lines) {
		lineContent = r.lines[pos.Line-1]
	}

	marker := strings.Repeat(" ", max(0, pos.Column-1)) +
		strings.Repeat("^", max(1, length))

	levelColor := r.levelColor(level)
	bold := color.New(color.Bold).SprintFunc()

	lineNumberWidth := len(fmt.Sprintf("%d", pos.Line))
	if lineNumberWidth < 3 {
		lineNumberWidth = 3
	}
	indent := strings.Repeat(" ", lineNumberWidth)

	return fmt.Sprintf(
		"%s: %s\n%s┌─ %s:%d:%d\n%s│\n%3d│%s\n%s│%s\n\n",
		levelColor(string(level)),
		message,
		indent,
		r.filename, pos.Line, pos.Column,
		indent,
		pos.Line, lineContent,
		indent,
		bold(marker),
	)
}

func (r *Reporter) levelColor(level ErrorLevel) func(a ...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow).SprintFunc()
	case Note:
		return color.New(color.FgCyan).SprintFunc()
	default:
		return color.New(color.FgRed).SprintFunc()
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
