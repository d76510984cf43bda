package lsp

import (
	gerrors "errors"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"zenscript/internal/parser"
)

// ConvertFault maps a scan or parse fault to LSP diagnostics. The language
// front-end stops at the first fault, so the slice holds at most one entry.
func ConvertFault(err error) []protocol.Diagnostic {
	if err == nil {
		return nil
	}

	var scanErr *parser.ScanError
	if gerrors.As(err, &scanErr) {
		length := scanErr.Length
		if length < 1 {
			length = 1
		}
		return []protocol.Diagnostic{makeDiagnostic(
			scanErr.Message,
			"zenscript-scanner",
			scanErr.Position.Line,
			scanErr.Position.Column,
			length,
		)}
	}

	var parseErr *parser.ParseError
	if gerrors.As(err, &parseErr) {
		return []protocol.Diagnostic{makeDiagnostic(
			parseErr.Message,
			"zenscript-parser",
			parseErr.Position.Line,
			parseErr.Position.Column,
			1,
		)}
	}

	return []protocol.Diagnostic{makeDiagnostic(err.Error(), "zenscript", 1, 1, 1)}
}

func makeDiagnostic(message, source string, line, column, length int) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError

	// Positions arrive 1-based from the scanner; LSP wants 0-based.
	startLine := uint32(line - 1)
	startChar := uint32(column - 1)

	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: startLine, Character: startChar},
			End:   protocol.Position{Line: startLine, Character: startChar + uint32(length)},
		},
		Severity: &severity,
		Source:   &source,
		Message:  message,
	}
}
