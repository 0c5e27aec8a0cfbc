// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
	"thumbc/internal/lsp"
)

const lsName = "thumbc"

var (
	version = "0.0.1"
	handler protocol.Handler
	log     = commonlog.GetLogger("thumbc.lsp.server")
)

func main() {
	verbosity := flag.Int("v", 1, "log verbosity")
	debug := flag.Bool("debug", false, "enable glsp protocol logging")
	flag.Parse()

	commonlog.Configure(*verbosity, nil)

	thumbcHandler := lsp.NewThumbcHandler()

	handler = protocol.Handler{
		Initialize:                     thumbcHandler.Initialize,
		Initialized:                    thumbcHandler.Initialized,
		Shutdown:                       thumbcHandler.Shutdown,
		SetTrace:                       thumbcHandler.SetTrace,
		TextDocumentDidOpen:            thumbcHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           thumbcHandler.TextDocumentDidClose,
		TextDocumentDidChange:          thumbcHandler.TextDocumentDidChange,
		TextDocumentCompletion:         thumbcHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: thumbcHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, *debug)

	log.Infof("starting %s language server %s", lsName, version)

	if err := s.RunStdio(); err != nil {
		log.Errorf("language server stopped: %s", err)
		os.Exit(1)
	}
}
