package colorname

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestName(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		opts    Options
		wantCSS string
		wantOK  bool
	}{
		{"keyword color", "#663399", Options{}, "--color-rebeccapurple: #663399", true},
		{"opaque alpha", "#004162FF", Options{}, "--color-astronaut-blue: #004162", true},
		{"werner", "#004162", Options{List: "werner"}, "--color-prussian-blue: #004162", true},
		{"alpha ignored", "#FFFFB440", Options{IgnoreAlphaChannel: true}, "--color-apricot-white: #FFFEEC", true},
		{"alpha suffix", "#00416280", Options{}, "--color-astronaut-blue-50: #00416280", true},
		{"fractional hsl", "hsl(216, 27.8%, 7.1%)", Options{}, "", false},
		{"hash only", "#", Options{}, "", false},
		{"word", "test", Options{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Name(tt.code, tt.opts)
			if ok != tt.wantOK {
				t.Fatalf("Name(%q) ok = %v, want %v", tt.code, ok, tt.wantOK)
			}
			if got.CSS != tt.wantCSS {
				t.Errorf("Name(%q).CSS = %q, want %q", tt.code, got.CSS, tt.wantCSS)
			}
		})
	}
}

func TestLookupError(t *testing.T) {
	_, err := Lookup("test", Options{})
	if !IsNoMatch(err) {
		t.Errorf("Lookup(%q) error = %v, want no match", "test", err)
	}
	if _, err := Lookup("#0D1117", Options{}); err != nil {
		t.Errorf("Lookup(%q) error = %v", "#0D1117", err)
	}
}

func TestLists(t *testing.T) {
	got := Lists()
	want := []string{"curated", "web", "werner"}
	if len(got) != len(want) {
		t.Fatalf("Lists() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Lists()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewMatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brand.hcl")
	src := `
palette "brand" {
  colors = {
    "0D1117" = "Midnight Ink"
    "1F6FEB" = "Signal Blue"
  }
}
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := NewMatcher(path)
	if err != nil {
		t.Fatalf("NewMatcher() error = %v", err)
	}

	got, err := m.Match("#1F6FEB", Options{List: "brand"})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if got.Name != "Signal Blue" || got.Distance != 0 {
		t.Errorf("Match() = %+v, want Signal Blue at 0", got)
	}

	// The user palette loads last, so it wins in the merge.
	got, err = m.Match("#0D1117", Options{})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if got.Name != "Midnight Ink" {
		t.Errorf("Match().Name = %q, want Midnight Ink", got.Name)
	}

	// The built-in matcher is unaffected.
	if out, _ := Name("#0D1117", Options{}); out.Name != "Bunker" {
		t.Errorf("Name().Name = %q, want Bunker", out.Name)
	}
}

func TestNewMatcherMissingFile(t *testing.T) {
	_, err := NewMatcher(filepath.Join(t.TempDir(), "missing.hcl"))
	if err == nil {
		t.Fatal("NewMatcher() expected error, got nil")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("NewMatcher() error = %v, want wrapping os.ErrNotExist", err)
	}
}
