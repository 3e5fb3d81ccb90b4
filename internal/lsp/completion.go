package lsp

import (
	"regexp"
	"strings"

	"github.com/jsvensson/colorname/internal/match"
	"github.com/jsvensson/colorname/internal/palette"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// maxCompletions caps the items returned for a short prefix.
const maxCompletions = 200

const propertyPrefix = "--color-"

// partialProperty matches a custom property name being typed at the end
// of the text before the cursor.
var partialProperty = regexp.MustCompile(`--color-([a-z0-9-]*)$`)

// complete offers custom property names for the palette's colors while
// the cursor is on a partial "--color-" name. Items replace the whole
// partial name and are listed in palette order.
func complete(p *palette.Palette, content string, pos protocol.Position) []protocol.CompletionItem {
	lines := splitLines(content)
	if int(pos.Line) >= len(lines) {
		return nil
	}

	line := lines[pos.Line]
	charPos := min(int(pos.Character), len(line))
	textBeforeCursor := line[:charPos]

	m := partialProperty.FindStringSubmatchIndex(textBeforeCursor)
	if m == nil {
		return nil
	}
	prefix := textBeforeCursor[m[2]:m[3]]
	rng := protocol.Range{
		Start: protocol.Position{Line: pos.Line, Character: uint32(m[0])},
		End:   protocol.Position{Line: pos.Line, Character: uint32(charPos)},
	}

	seen := make(map[string]bool)
	var items []protocol.CompletionItem
	for _, e := range p.Entries() {
		slug := match.Slugify(e.Name)
		if !strings.HasPrefix(slug, prefix) || seen[slug] {
			continue
		}
		seen[slug] = true

		label := propertyPrefix + slug
		items = append(items, protocol.CompletionItem{
			Label:  label,
			Kind:   completionKindPtr(protocol.CompletionItemKindColor),
			Detail: strPtr("#" + e.Key),
			Documentation: protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: "**" + e.Name + "**",
			},
			TextEdit: protocol.TextEdit{
				Range:   rng,
				NewText: label,
			},
		})
		if len(items) == maxCompletions {
			break
		}
	}

	return items
}

// completionKindPtr returns a pointer to a CompletionItemKind.
func completionKindPtr(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}

// textDocumentCompletion is the LSP handler for textDocument/completion requests.
func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	uri := string(params.TextDocument.URI)

	doc, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	items := complete(s.store.Effective(s.opts.List), doc.Text, params.Position)
	return items, nil
}
