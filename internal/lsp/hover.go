package lsp

import (
	"fmt"
	"strings"

	"github.com/jsvensson/colorname/internal/color"
	"github.com/jsvensson/colorname/internal/match"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// posInRange returns true if pos is within the range [r.Start, r.End).
// The end position is exclusive.
func posInRange(pos protocol.Position, r protocol.Range) bool {
	if pos.Line < r.Start.Line || pos.Line > r.End.Line {
		return false
	}
	if pos.Line == r.Start.Line && pos.Character < r.Start.Character {
		return false
	}
	if pos.Line == r.End.Line && pos.Character >= r.End.Character {
		return false
	}
	return true
}

// extractText extracts the source text at a given LSP range from document content.
func extractText(content string, r protocol.Range) string {
	lines := splitLines(content)

	startLine := int(r.Start.Line)
	endLine := int(r.End.Line)

	if startLine >= len(lines) {
		return ""
	}
	if endLine >= len(lines) {
		endLine = len(lines) - 1
	}

	if startLine == endLine {
		line := lines[startLine]
		startChar := min(int(r.Start.Character), len(line))
		endChar := min(int(r.End.Character), len(line))
		if startChar > endChar {
			return ""
		}
		return line[startChar:endChar]
	}

	// Multi-line range
	var parts []string
	for i := startLine; i <= endLine; i++ {
		line := lines[i]
		switch i {
		case startLine:
			parts = append(parts, line[min(int(r.Start.Character), len(line)):])
		case endLine:
			parts = append(parts, line[:min(int(r.End.Character), len(line))])
		default:
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, "\n")
}

// hover produces a Hover response for the given cursor position. The
// content names the color under the cursor; colors that cannot be named,
// such as fractional hsl(), show their rgb() value only.
// Returns nil if no color is found at the position.
func hover(m *match.Matcher, opts match.Options, result *AnalysisResult, content string, pos protocol.Position) *protocol.Hover {
	cl, ok := result.colorAt(pos)
	if !ok {
		return nil
	}

	text := strings.Trim(extractText(content, cl.Range), `"`)

	var md string
	if out, err := m.Match(text, opts); err == nil {
		md = fmt.Sprintf("**%s**\n\n`%s` · `%s`\n\n`%s`", out.Name, out.Hex, out.RGB, out.CSS)
		if out.Distance > 0 {
			md += "\n\n" + match.FormatDistance(out.Distance)
		}
	} else {
		md = fmt.Sprintf("`%s`\n\nno color name", cl.Color.RGBString())
	}
	if kw, ok := color.Keyword(cl.Color); ok {
		md += fmt.Sprintf("\n\nCSS keyword `%s`", kw)
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: md,
		},
		Range: &cl.Range,
	}
}

// textDocumentHover handles textDocument/hover requests.
func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return nil, nil
	}

	return hover(s.matcher, s.opts, doc.Result, doc.Text, params.Position), nil
}
