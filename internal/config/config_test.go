package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeTempHCL(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFile)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("COLORNAME_TEST_DIR", "/opt/palettes")
	path := writeTempHCL(t, `
list          = "werner"
ignore_alpha  = true
format        = "json"
palette_files = ["brand.hcl", "/abs/extra.hcl", "${env("COLORNAME_TEST_DIR")}/more.hcl"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	dir := filepath.Dir(path)
	want := Config{
		List:         "werner",
		IgnoreAlpha:  true,
		Format:       "json",
		PaletteFiles: []string{filepath.Join(dir, "brand.hcl"), "/abs/extra.hcl", "/opt/palettes/more.hcl"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeTempHCL(t, ""))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOptional(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), DefaultFile))
	if err != nil {
		t.Fatalf("LoadOptional() error = %v", err)
	}
	if cfg.Format != "text" {
		t.Errorf("LoadOptional().Format = %q, want text", cfg.Format)
	}

	if _, err := LoadOptional(writeTempHCL(t, "list = ")); err == nil {
		t.Error("LoadOptional() on broken file expected error, got nil")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"syntax", `list = `, "parsing HCL"},
		{"unknown attribute", `colour = "red"`, "decoding config"},
		{"wrong type", `ignore_alpha = "sometimes"`, "decoding config"},
		{"unknown format", `format = "yaml"`, "unknown format"},
		{"unknown function", `list = lookup("x")`, "decoding config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "test.hcl")
			if err == nil {
				t.Fatal("Parse() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() error = %q, want containing %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	for _, f := range Formats {
		if err := ValidateFormat(f); err != nil {
			t.Errorf("ValidateFormat(%q) error = %v", f, err)
		}
	}
	if err := ValidateFormat("xml"); err == nil {
		t.Error("ValidateFormat(xml) expected error, got nil")
	}
}
