package lsp

import (
	"math"
	"strings"

	"github.com/jsvensson/colorname/internal/color"
	"github.com/jsvensson/colorname/internal/match"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// colorToLSP converts a color.Color (0-255 channels, 0-1 alpha) to a
// protocol.Color (float32 0.0-1.0).
func colorToLSP(c color.Color) protocol.Color {
	return protocol.Color{
		Red:   float32(c.R / 255.0),
		Green: float32(c.G / 255.0),
		Blue:  float32(c.B / 255.0),
		Alpha: float32(c.A),
	}
}

// colorFromLSP converts a picked protocol.Color back onto the 8-bit grid,
// alpha included.
func colorFromLSP(c protocol.Color) color.Color {
	return color.Color{
		R: math.Round(float64(c.Red) * 255),
		G: math.Round(float64(c.Green) * 255),
		B: math.Round(float64(c.Blue) * 255),
		A: math.Round(float64(c.Alpha)*255) / 255,
	}
}

// documentColors converts the analysis result's color locations into LSP ColorInformation items.
func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Color),
		})
	}
	return infos
}

// colorPresentation produces the ways a picked color can be written back.
// Palette keys (text starting with `"`) only accept a quoted opaque key.
// Literals are offered as hex, rgb() and, when the color has a name, as
// a var() reference to its custom property.
func colorPresentation(m *match.Matcher, opts match.Options, content string, params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	c := colorFromLSP(params.Color)
	text := extractText(content, params.Range)

	edit := func(label, newText string) protocol.ColorPresentation {
		return protocol.ColorPresentation{
			Label: label,
			TextEdit: &protocol.TextEdit{
				Range:   params.Range,
				NewText: newText,
			},
		}
	}

	if strings.HasPrefix(text, "\"") {
		key, err := c.Key()
		if err != nil {
			return []protocol.ColorPresentation{}
		}
		return []protocol.ColorPresentation{edit(key, "\""+key+"\"")}
	}

	hex, err := c.Hex()
	if err != nil {
		return []protocol.ColorPresentation{}
	}
	presentations := []protocol.ColorPresentation{
		edit(hex, hex),
		edit(c.RGBString(), c.RGBString()),
	}

	if out, err := m.Match(hex, opts); err == nil {
		ref := "var(" + customProperty(out) + ")"
		presentations = append(presentations, edit(ref, ref))
	}

	return presentations
}

// customProperty returns the property name of a match, e.g. "--color-bunker".
func customProperty(out match.Output) string {
	name, _, _ := strings.Cut(out.CSS, ":")
	return name
}

// textDocumentDocumentColor handles textDocument/documentColor requests.
func (s *Server) textDocumentDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	doc, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return []protocol.ColorInformation{}, nil
	}
	return documentColors(doc.Result), nil
}

// textDocumentColorPresentation handles textDocument/colorPresentation requests.
func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	uri := string(params.TextDocument.URI)
	doc, ok := s.docs.Get(uri)
	if !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(s.matcher, s.opts, doc.Text, params), nil
}
