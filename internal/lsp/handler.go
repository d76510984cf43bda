package lsp

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"zenscript/internal/ast"
	"zenscript/internal/parser"
	"zenscript/internal/types"
)

// Define the set of supported semantic token types (as required by the LSP spec)
var SemanticTokenTypes = []string{
	"namespace",
	"type",
	"function",
	"variable",
	"property",
	"keyword",
	"number",
	"string",
	"operator",
}

// Define the set of supported semantic token modifiers
var SemanticTokenModifiers = []string{
	"declaration",
	"definition",
	"readonly",
	"static",
}

// ZenScriptHandler implements the LSP server handlers for ZenScript.
type ZenScriptHandler struct {
	mu       sync.RWMutex
	content  map[string]string
	programs map[string]*ast.Program
	registry *types.Registry
}

// NewZenScriptHandler creates and returns a new handler backed by the
// bundled symbol database.
func NewZenScriptHandler() *ZenScriptHandler {
	return &ZenScriptHandler{
		content:  make(map[string]string),
		programs: make(map[string]*ast.Program),
		registry: types.DefaultRegistry(),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *ZenScriptHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

func (h *ZenScriptHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("ZenScript LSP Initialized")
	return nil
}

func (h *ZenScriptHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("ZenScript LSP Shutdown")
	return nil
}

func (h *ZenScriptHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *ZenScriptHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)

	diagnostics, err := h.updateProgram(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to update AST: %w", err)
	}
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *ZenScriptHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)
	delete(h.programs, path)
	return nil
}

// TextDocumentDidChange handles file change notifications from the editor
func (h *ZenScriptHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed file: %s\n", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	// Full sync: the last change carries the whole document.
	for _, change := range params.ContentChanges {
		if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			h.mu.Lock()
			h.content[path] = whole.Text
			h.mu.Unlock()
		}
	}

	diagnostics := h.reparse(path)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentCompletion offers the symbol database to the editor: global
// symbols, builtin type names and importable package members.
func (h *ZenScriptHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (interface{}, error) {
	var items []protocol.CompletionItem

	for _, g := range h.registry.Globals() {
		kind := protocol.CompletionItemKindVariable
		detail := g.TypeName
		items = append(items, protocol.CompletionItem{
			Label:  g.Name,
			Kind:   &kind,
			Detail: &detail,
		})
	}

	for typeName := range types.BuiltinTypes {
		name := string(typeName)
		kind := protocol.CompletionItemKindKeyword
		items = append(items, protocol.CompletionItem{
			Label: name,
			Kind:  &kind,
		})
	}

	for _, path := range h.registry.Packages() {
		for _, member := range h.registry.ImportableMembers(path) {
			kind := protocol.CompletionItemKindClass
			detail := path
			items = append(items, protocol.CompletionItem{
				Label:  member,
				Kind:   &kind,
				Detail: &detail,
			})
		}
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull serves full-document semantic tokens. The
// token classification comes from a permissive scan, so highlighting keeps
// working on buffers that do not currently lex to the end.
func (h *ZenScriptHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Println("TextDocumentSemanticTokensFull called for:", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	source, ok := h.documentContent(path)
	if !ok {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", path, err)
		}
		source = string(data)
	}

	tokens := collectSemanticTokens(source)

	var data []uint32
	var prevLine, prevStart uint32

	// Encode tokens into LSP wire format (delta-line, delta-start compression)
	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}
		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return &protocol.SemanticTokens{Data: data}, nil
}

func (h *ZenScriptHandler) documentContent(path string) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	source, ok := h.content[path]
	return source, ok
}

func (h *ZenScriptHandler) updateProgram(rawURI protocol.DocumentUri) ([]protocol.Diagnostic, error) {
	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	h.mu.Lock()
	h.content[path] = string(content)
	h.mu.Unlock()

	return h.reparse(path), nil
}

// reparse rebuilds the cached AST for a document and returns the faults as
// diagnostics. On failure the previous AST stays cached, so features that
// only need an approximate tree keep working while the user types.
func (h *ZenScriptHandler) reparse(path string) []protocol.Diagnostic {
	source, _ := h.documentContent(path)

	program, err := parser.ParseSource(path, source)
	if err != nil {
		return ConvertFault(err)
	}

	h.mu.Lock()
	h.programs[path] = program
	h.mu.Unlock()
	return nil
}

// Program returns the last successfully parsed AST for a document.
func (h *ZenScriptHandler) Program(path string) (*ast.Program, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	program, ok := h.programs[path]
	return program, ok
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	if ctx == nil {
		return
	}
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
