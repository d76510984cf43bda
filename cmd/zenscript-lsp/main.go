// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"
	"zenscript/internal/lsp"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "zenscript" // Name identifier for the language server

var (
	version = "0.0.1"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	zsHandler := lsp.NewZenScriptHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     zsHandler.Initialize,
		Initialized:                    zsHandler.Initialized,
		Shutdown:                       zsHandler.Shutdown,
		SetTrace:                       zsHandler.SetTrace,
		TextDocumentDidOpen:            zsHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           zsHandler.TextDocumentDidClose,
		TextDocumentDidChange:          zsHandler.TextDocumentDidChange,
		TextDocumentCompletion:         zsHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: zsHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting ZenScript LSP server...")

	// Serve over standard input/output (used by most editors for LSP)
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting ZenScript LSP server:", err)
		os.Exit(1)
	}
}
