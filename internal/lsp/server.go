package lsp

import (
	"github.com/jsvensson/colorname/internal/match"
	"github.com/jsvensson/colorname/internal/palette"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

const serverName = "colorname-lsp"

var log = commonlog.GetLogger("colorname.lsp")

type Server struct {
	handler protocol.Handler
	docs    *Workspace
	version string

	store   *palette.Store
	matcher *match.Matcher
	opts    match.Options
}

// NewServer returns a server naming colors from store. opts applies to
// every lookup the server makes.
func NewServer(version string, store *palette.Store, opts match.Options) *Server {
	s := &Server{
		docs:    NewWorkspace(),
		version: version,
		store:   store,
		matcher: match.New(store),
		opts:    opts,
	}

	s.handler = protocol.Handler{
		Initialize:                    s.initialize,
		Initialized:                   s.initialized,
		Shutdown:                      s.shutdown,
		SetTrace:                      s.setTrace,
		TextDocumentDidOpen:           s.textDocumentDidOpen,
		TextDocumentDidChange:         s.textDocumentDidChange,
		TextDocumentDidClose:          s.textDocumentDidClose,
		TextDocumentHover:             s.textDocumentHover,
		TextDocumentColor:             s.textDocumentDocumentColor,
		TextDocumentColorPresentation: s.textDocumentColorPresentation,
		TextDocumentCompletion:        s.textDocumentCompletion,
		TextDocumentCodeAction:        s.textDocumentCodeAction,
		TextDocumentFormatting:        s.textDocumentFormatting,
	}

	return s
}

// Run serves over stdio until the client disconnects. verbosity follows
// commonlog: 0 is errors only.
func (s *Server) Run(verbosity int) error {
	commonlog.Configure(verbosity, nil)
	srv := server.NewServer(&s.handler, serverName, false)
	return srv.RunStdio()
}

func (s *Server) initialize(_ *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	syncKind := protocol.TextDocumentSyncKindFull
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
	}
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{"-"},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(_ *glsp.Context, _ *protocol.InitializedParams) error {
	log.Infof("%s %s ready, list %q", serverName, s.version, s.opts.List)
	return nil
}

func (s *Server) shutdown(_ *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(_ *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	item := params.TextDocument
	doc := s.docs.Open(string(item.URI), item.Text, item.Version)
	s.publish(ctx, doc.URI, doc.Result)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)

	// Full sync: the last whole-document change holds the current text.
	var text string
	var found bool
	for _, change := range params.ContentChanges {
		if c, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			text, found = c.Text, true
		}
	}
	if !found {
		return nil
	}

	doc, ok := s.docs.Change(uri, text, params.TextDocument.Version)
	if !ok {
		log.Debugf("dropping change to %s at version %d", uri, params.TextDocument.Version)
		return nil
	}
	s.publish(ctx, uri, doc.Result)
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	if s.docs.Close(uri) {
		s.publish(ctx, uri, &AnalysisResult{})
	}
	return nil
}

// publish sends the result's diagnostics to the client. An empty slice
// clears earlier diagnostics.
func (s *Server) publish(ctx *glsp.Context, uri string, result *AnalysisResult) {
	if ctx == nil || ctx.Notify == nil {
		return
	}
	diagnostics := result.Diagnostics
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentUri(uri),
		Diagnostics: diagnostics,
	})
}
