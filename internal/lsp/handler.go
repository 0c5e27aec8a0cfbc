package lsp

import (
	"fmt"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"thumbc/internal/compiler"
	"thumbc/internal/parser"
)

var log = commonlog.GetLogger("thumbc.lsp")

// SemanticTokenTypes is the legend advertised to clients.
var SemanticTokenTypes = []string{
	"keyword",
	"function",
	"variable",
	"number",
	"operator",
}

// SemanticTokenModifiers is the modifier legend; bit i is SemanticTokenModifiers[i].
var SemanticTokenModifiers = []string{
	"declaration",
}

// ThumbcHandler implements the LSP server handlers. Documents live in memory
// and are recompiled on every change.
type ThumbcHandler struct {
	mu      sync.RWMutex
	content map[protocol.DocumentUri]string
	results map[protocol.DocumentUri]*compiler.Result
	trace   protocol.TraceValue
}

func NewThumbcHandler() *ThumbcHandler {
	return &ThumbcHandler{
		content: make(map[protocol.DocumentUri]string),
		results: make(map[protocol.DocumentUri]*compiler.Result),
		trace:   protocol.TraceValueOff,
	}
}

// Initialize advertises the server's capabilities.
func (h *ThumbcHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("LSP Initialize called")

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

func (h *ThumbcHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("thumbc LSP initialized")
	return nil
}

func (h *ThumbcHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("thumbc LSP shutdown")
	return nil
}

func (h *ThumbcHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	h.mu.Lock()
	h.trace = params.Value
	h.mu.Unlock()
	return nil
}

// TextDocumentDidOpen compiles the opened document and publishes its diagnostics.
func (h *ThumbcHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Infof("opened file: %s", params.TextDocument.URI)

	return h.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
}

// TextDocumentDidChange applies the edits, recompiles and republishes diagnostics.
func (h *ThumbcHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Infof("changed file: %s", params.TextDocument.URI)

	h.mu.RLock()
	text := h.content[params.TextDocument.URI]
	h.mu.RUnlock()

	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
		case *protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
		case protocol.TextDocumentContentChangeEvent:
			text = applyChange(text, c.Range, c.Text)
		case *protocol.TextDocumentContentChangeEvent:
			text = applyChange(text, c.Range, c.Text)
		default:
			return fmt.Errorf("unsupported content change %T", change)
		}
	}

	return h.update(ctx, params.TextDocument.URI, text)
}

func (h *ThumbcHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Infof("closed file: %s", params.TextDocument.URI)

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, params.TextDocument.URI)
	delete(h.results, params.TextDocument.URI)

	return nil
}

// TextDocumentCompletion offers the reserved words and a function skeleton.
func (h *ThumbcHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	keywordKind := protocol.CompletionItemKindKeyword
	snippetKind := protocol.CompletionItemKindSnippet

	var items []protocol.CompletionItem
	for _, kw := range []string{"int", "return", "if", "else", "while"} {
		items = append(items, protocol.CompletionItem{
			Label: kw,
			Kind:  &keywordKind,
		})
	}
	items = append(items, protocol.CompletionItem{
		Label:      "int main",
		Kind:       &snippetKind,
		Detail:     ptrString("function returning a constant"),
		InsertText: ptrString("int main(){ return 0; }"),
	})

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull classifies every token of the document.
func (h *ThumbcHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	h.mu.RLock()
	result, ok := h.results[params.TextDocument.URI]
	h.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("document %s is not open", params.TextDocument.URI)
	}

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(result.Tokens)),
	}, nil
}

func (h *ThumbcHandler) update(ctx *glsp.Context, uri protocol.DocumentUri, text string) error {
	name, err := uriToPath(uri)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", uri, err)
	}

	result := compiler.Compile(name, text)

	h.mu.Lock()
	h.content[uri] = text
	h.results[uri] = result
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, uri, ConvertResult(result))
	return nil
}

// Tokens returns the lexer output of an open document.
func (h *ThumbcHandler) Tokens(uri protocol.DocumentUri) ([]parser.Token, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	result, ok := h.results[uri]
	if !ok {
		return nil, false
	}
	return result.Tokens, true
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

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	log.Debugf("sending %d diagnostics for %s", len(diagnostics), uri)

	if ctx == nil || ctx.Notify == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// applyChange replaces the text covered by r. A nil range replaces everything.
func applyChange(content string, r *protocol.Range, text string) string {
	if r == nil {
		return text
	}
	start := offsetOf(content, r.Start)
	end := offsetOf(content, r.End)
	if end < start {
		start, end = end, start
	}
	return content[:start] + text + content[end:]
}

// offsetOf maps a 0-based line/character position to a byte offset, clamping
// to the end of the line or document.
func offsetOf(content string, pos protocol.Position) int {
	offset := 0
	for line := uint32(0); line < pos.Line; line++ {
		nl := strings.IndexByte(content[offset:], '\n')
		if nl < 0 {
			return len(content)
		}
		offset += nl + 1
	}

	for char := uint32(0); char < pos.Character && offset < len(content); char++ {
		if content[offset] == '\n' {
			break
		}
		_, size := utf8.DecodeRuneInString(content[offset:])
		offset += size
	}
	return offset
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
