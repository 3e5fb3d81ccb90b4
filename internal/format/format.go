package format

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/jsvensson/colorname/internal/color"
)

var multipleBlankLines = regexp.MustCompile(`\n{3,}`)
var blankLineAfterOpenBrace = regexp.MustCompile(`\{\n\s*\n`)
var blankLineBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)

// Format takes HCL source content and returns it formatted according to
// HCL canonical style rules, with redundant blank lines removed.
//
// The formatter works even on partial/invalid HCL, making it suitable
// for use while the user is still typing.
func Format(content string) string {
	formatted := hclwrite.Format([]byte(content))
	collapsed := multipleBlankLines.ReplaceAllString(string(formatted), "\n\n")
	collapsed = blankLineAfterOpenBrace.ReplaceAllString(collapsed, "{\n")
	collapsed = blankLineBeforeCloseBrace.ReplaceAllString(collapsed, "\n${1}")
	return collapsed
}

// Palette formats a palette file. On top of Format, quoted color keys in
// every palette's colors object are rewritten to six uppercase hex
// digits without #. Unlike Format it requires valid HCL.
func Palette(content string) (string, error) {
	file, diags := hclwrite.ParseConfig([]byte(content), "", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return "", fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	for _, block := range file.Body().Blocks() {
		if block.Type() != "palette" {
			continue
		}
		attr := block.Body().GetAttribute("colors")
		if attr == nil {
			continue
		}
		tokens := attr.Expr().BuildTokens(nil)
		block.Body().SetAttributeRaw("colors", normalizeKeys(tokens))
	}

	return Format(string(file.Bytes())), nil
}

// normalizeKeys returns a copy of an object expression's tokens with
// quoted hex keys canonicalized. Keys are quoted literals directly
// followed by = or :.
func normalizeKeys(tokens hclwrite.Tokens) hclwrite.Tokens {
	out := make(hclwrite.Tokens, len(tokens))
	for i, tok := range tokens {
		cp := *tok
		out[i] = &cp
	}

	for i := 1; i+2 < len(out); i++ {
		if out[i].Type != hclsyntax.TokenQuotedLit || out[i-1].Type != hclsyntax.TokenOQuote {
			continue
		}
		if out[i+1].Type != hclsyntax.TokenCQuote {
			continue
		}
		if next := out[i+2].Type; next != hclsyntax.TokenEqual && next != hclsyntax.TokenColon {
			continue
		}
		c, err := color.ParseHex(string(out[i].Bytes))
		if err != nil {
			continue
		}
		if key, err := c.Key(); err == nil {
			out[i].Bytes = []byte(key)
		}
	}
	return out
}

// File formats the file at path, choosing Palette for files that parse
// and Format otherwise. It reports whether the content changed and
// writes the result back when write is set.
func File(path string, write bool) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	content := string(data)
	formatted, err := Palette(content)
	if err != nil {
		formatted = Format(content)
	}
	if formatted == content {
		return false, nil
	}

	if write {
		if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
			return true, fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return true, nil
}

// IsHCL reports whether a path or URI names an HCL file.
func IsHCL(path string) bool {
	return strings.HasSuffix(path, ".hcl")
}
