package lsp

import (
	"strings"
	"testing"

	"github.com/jsvensson/colorname/internal/match"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func cursor(line, char uint32) protocol.Range {
	pos := protocol.Position{Line: line, Character: char}
	return protocol.Range{Start: pos, End: pos}
}

func TestCodeActions(t *testing.T) {
	content := "a {\n  color: #0D1117;\n  border: 1px solid #663399;\n}\n"
	result := Analyze("style.css", content)
	uri := protocol.DocumentUri("file:///tmp/style.css")

	actions := codeActions(testMatcher(), match.Options{}, result, content, uri, cursor(1, 12))
	if len(actions) != 1 {
		t.Fatalf("expected 1 action, got %d", len(actions))
	}

	a := actions[0]
	if !strings.Contains(a.Title, "var(--color-bunker)") || !strings.Contains(a.Title, "Bunker") {
		t.Errorf("title = %q, want the var() reference and name", a.Title)
	}
	if a.Kind == nil || *a.Kind != protocol.CodeActionKindRefactorRewrite {
		t.Errorf("kind = %v, want refactor.rewrite", a.Kind)
	}
	edits := a.Edit.Changes[uri]
	if len(edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(edits))
	}
	if edits[0].NewText != "var(--color-bunker)" {
		t.Errorf("edit text = %q, want %q", edits[0].NewText, "var(--color-bunker)")
	}
	if edits[0].Range != result.Colors[0].Range {
		t.Errorf("edit range = %v, want %v", edits[0].Range, result.Colors[0].Range)
	}
}

func TestCodeActions_Selection(t *testing.T) {
	content := "a {\n  color: #0D1117;\n  border: 1px solid #663399;\n}\n"
	result := Analyze("style.css", content)

	rng := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   protocol.Position{Line: 3, Character: 1},
	}
	actions := codeActions(testMatcher(), match.Options{}, result, content, "file:///tmp/style.css", rng)
	if len(actions) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(actions))
	}
	if !strings.Contains(actions[1].Title, "var(--color-rebeccapurple)") {
		t.Errorf("second title = %q, want rebeccapurple", actions[1].Title)
	}
}

func TestCodeActions_None(t *testing.T) {
	css := "a {\n  color: #0D1117;\n}\n"
	hcl := "palette \"x\" {\n  colors = {\n    \"0D1117\" = \"Midnight Ink\"\n  }\n}\n"

	tests := []struct {
		name    string
		file    string
		content string
		rng     protocol.Range
	}{
		{"cursor outside color", "style.css", css, cursor(1, 3)},
		{"palette key", "brand.hcl", hcl, cursor(2, 6)},
		{"unnamed color", "style.css", "color: hsl(216, 27.8%, 7.1%)", cursor(0, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Analyze(tt.file, tt.content)
			if actions := codeActions(testMatcher(), match.Options{}, result, tt.content, protocol.DocumentUri("file:///tmp/"+tt.file), tt.rng); len(actions) != 0 {
				t.Errorf("expected no actions, got %d", len(actions))
			}
		})
	}

	if actions := codeActions(testMatcher(), match.Options{}, nil, css, "file:///tmp/style.css", cursor(1, 12)); actions != nil {
		t.Errorf("expected nil actions for nil result, got %v", actions)
	}
}

func TestRangesOverlap(t *testing.T) {
	color := protocol.Range{
		Start: protocol.Position{Line: 1, Character: 9},
		End:   protocol.Position{Line: 1, Character: 16},
	}

	tests := []struct {
		name string
		rng  protocol.Range
		want bool
	}{
		{"cursor inside", cursor(1, 10), true},
		{"cursor at end", cursor(1, 16), true},
		{"cursor before", cursor(1, 8), false},
		{"selection covering", protocol.Range{Start: protocol.Position{Line: 0}, End: protocol.Position{Line: 2}}, true},
		{"selection after", protocol.Range{Start: protocol.Position{Line: 1, Character: 17}, End: protocol.Position{Line: 1, Character: 20}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rangesOverlap(tt.rng, color); got != tt.want {
				t.Errorf("rangesOverlap(%v) = %v, want %v", tt.rng, got, tt.want)
			}
		})
	}
}
