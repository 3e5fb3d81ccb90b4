package lsp

import (
	"fmt"

	"github.com/jsvensson/colorname/internal/match"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// rangesOverlap reports whether a and b share a position. A collapsed
// range (the cursor) overlaps a range it sits in.
func rangesOverlap(a, b protocol.Range) bool {
	if posInRange(a.Start, b) || posInRange(b.Start, a) {
		return true
	}
	return a.Start == a.End && a.Start == b.End
}

// codeActions offers, for each named color literal in rng, to replace
// the literal with a var() reference to its custom property. Palette keys
// get no actions.
func codeActions(m *match.Matcher, opts match.Options, result *AnalysisResult, content string, uri protocol.DocumentUri, rng protocol.Range) []protocol.CodeAction {
	if result == nil {
		return nil
	}

	kind := protocol.CodeActionKindRefactorRewrite
	var actions []protocol.CodeAction
	for _, cl := range result.Colors {
		if cl.Key || !rangesOverlap(rng, cl.Range) {
			continue
		}

		text := extractText(content, cl.Range)
		out, err := m.Match(text, opts)
		if err != nil {
			continue
		}

		ref := "var(" + customProperty(out) + ")"
		actions = append(actions, protocol.CodeAction{
			Title: fmt.Sprintf("Replace %s with %s (%s)", text, ref, out.Name),
			Kind:  &kind,
			Edit: &protocol.WorkspaceEdit{
				Changes: map[protocol.DocumentUri][]protocol.TextEdit{
					uri: {{Range: cl.Range, NewText: ref}},
				},
			},
		})
	}
	return actions
}

// textDocumentCodeAction handles textDocument/codeAction requests.
func (s *Server) textDocumentCodeAction(_ *glsp.Context, params *protocol.CodeActionParams) (any, error) {
	uri := string(params.TextDocument.URI)

	doc, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	return codeActions(s.matcher, s.opts, doc.Result, doc.Text, params.TextDocument.URI, params.Range), nil
}
