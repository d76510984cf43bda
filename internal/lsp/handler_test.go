package lsp_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"zenscript/internal/lsp"
)

func exampleURI(t *testing.T) string {
	t.Helper()
	absPath, err := filepath.Abs(filepath.Join("../../examples", "recipes.zs"))
	require.NoError(t, err, "Failed to get absolute path")
	return "file://" + filepath.ToSlash(absPath)
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	handler := lsp.NewZenScriptHandler()

	ctx := &glsp.Context{}
	params := &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{
			URI: exampleURI(t),
		},
	}

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, params)
	require.NoError(t, err, "TextDocumentSemanticTokensFull returned error")
	require.NotNil(t, tokens, "Returned tokens should not be nil")
	require.NotEmpty(t, tokens.Data, "Returned token data should not be empty")

	// Each token is five uint32 values on the wire.
	require.Zero(t, len(tokens.Data)%5, "token data length should be a multiple of 5")

	// The first token is the leading `import` keyword at 0:0.
	require.Equal(t, uint32(0), tokens.Data[0], "delta line of first token")
	require.Equal(t, uint32(0), tokens.Data[1], "delta start of first token")
	require.Equal(t, uint32(len("import")), tokens.Data[2], "length of first token")

	// Every token type index must fit the advertised legend.
	for i := 0; i+4 < len(tokens.Data); i += 5 {
		require.Less(t, int(tokens.Data[i+3]), len(lsp.SemanticTokenTypes))
	}
}

func TestSemanticTokensForMissingFile(t *testing.T) {
	handler := lsp.NewZenScriptHandler()

	params := &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{
			URI: "file:///no/such/file.zs",
		},
	}
	_, err := handler.TextDocumentSemanticTokensFull(&glsp.Context{}, params)
	require.Error(t, err)
}

func TestTextDocumentCompletion(t *testing.T) {
	handler := lsp.NewZenScriptHandler()

	result, err := handler.TextDocumentCompletion(&glsp.Context{}, &protocol.CompletionParams{})
	require.NoError(t, err)

	list, ok := result.(*protocol.CompletionList)
	require.True(t, ok)
	require.NotEmpty(t, list.Items)

	labels := make(map[string]bool, len(list.Items))
	for _, item := range list.Items {
		labels[item.Label] = true
	}

	// Global symbols, builtin types and importable package members all show up.
	require.True(t, labels["print"], "completion should offer the print global")
	require.True(t, labels["recipes"], "completion should offer the recipes global")
	require.True(t, labels["int"], "completion should offer builtin type names")
	require.True(t, labels["IItemStack"], "completion should offer importable types")
}

func TestInitializeAdvertisesCapabilities(t *testing.T) {
	handler := lsp.NewZenScriptHandler()

	result, err := handler.Initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)

	initResult, ok := result.(*protocol.InitializeResult)
	require.True(t, ok)
	require.NotNil(t, initResult.Capabilities.CompletionProvider)
	require.NotNil(t, initResult.Capabilities.SemanticTokensProvider)
}
