package lsp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"zenscript/internal/parser"
)

func TestConvertScanFault(t *testing.T) {
	_, err := parser.ParseSource("test.zs", "var x = @;")
	assert.Error(t, err)

	diagnostics := ConvertFault(err)
	assert.Len(t, diagnostics, 1)

	d := diagnostics[0]
	assert.Equal(t, "zenscript-scanner", *d.Source)
	assert.Equal(t, protocol.DiagnosticSeverityError, *d.Severity)
	assert.Equal(t, uint32(0), d.Range.Start.Line)
	assert.Equal(t, uint32(8), d.Range.Start.Character)
}

func TestConvertParseFault(t *testing.T) {
	_, err := parser.ParseSource("test.zs", "global x as int;")
	assert.Error(t, err)

	diagnostics := ConvertFault(err)
	assert.Len(t, diagnostics, 1)

	d := diagnostics[0]
	assert.Equal(t, "zenscript-parser", *d.Source)
	assert.Contains(t, d.Message, "global variable must have an initializer")
}

func TestConvertNilAndUnknownErrors(t *testing.T) {
	assert.Nil(t, ConvertFault(nil))

	diagnostics := ConvertFault(errors.New("boom"))
	assert.Len(t, diagnostics, 1)
	assert.Equal(t, "zenscript", *diagnostics[0].Source)
}

func TestCollectSemanticTokensSurvivesFaults(t *testing.T) {
	// A buffer with a lexical fault still highlights the clean prefix.
	tokens := collectSemanticTokens("var x = @ broken")
	assert.Len(t, tokens, 3)
	assert.Equal(t, tokenTypeKeyword, tokens[0].TokenType)
	assert.Equal(t, tokenTypeVariable, tokens[1].TokenType)
	assert.Equal(t, tokenTypeOperator, tokens[2].TokenType)
}

func TestClassifyTokenSkipsPunctuation(t *testing.T) {
	// Braces and separators carry no highlighting.
	tokens := collectSemanticTokens("{ } ( ) , ;")
	assert.Empty(t, tokens)
}
