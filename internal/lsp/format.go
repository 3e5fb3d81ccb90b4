package lsp

import (
	"github.com/jsvensson/colorname/internal/format"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// formatDocument returns edits that replace an HCL document with its
// formatted form, or nil when nothing changes. Palette keys are
// normalized when the document parses; partial documents still get
// whitespace formatting.
func formatDocument(content string) []protocol.TextEdit {
	formatted, err := format.Palette(content)
	if err != nil {
		formatted = format.Format(content)
	}
	if formatted == content {
		return nil
	}

	lines := splitLines(content)
	last := lines[len(lines)-1]
	return []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: uint32(len(lines) - 1), Character: uint32(len(last))},
		},
		NewText: formatted,
	}}
}

// textDocumentFormatting handles textDocument/formatting requests for
// HCL files. Other documents are left alone.
func (s *Server) textDocumentFormatting(_ *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	uri := string(params.TextDocument.URI)
	if !format.IsHCL(uri) {
		return nil, nil
	}

	doc, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}
	return formatDocument(doc.Text), nil
}
