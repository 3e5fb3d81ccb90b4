package lsp

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/colorname/internal/color"
	"github.com/jsvensson/colorname/internal/format"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/zclconf/go-cty/cty"
)

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
)

const diagSource = "colorname"

// colorLiteral matches hex codes and rgb()/rgba()/hsl()/hsla() calls.
// Hex codes must be 3, 4, 6 or 8 digits and end at a word boundary.
var colorLiteral = regexp.MustCompile(`(?i)#(?:[0-9a-f]{8}|[0-9a-f]{6}|[0-9a-f]{3,4})\b|\b(?:rgba?|hsla?)\([^()\n]*\)`)

// AnalysisResult holds all information produced by analyzing a document.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Colors      []ColorLocation
}

// ColorLocation records a parsed color at a specific source position.
type ColorLocation struct {
	Range protocol.Range
	Color color.Color
	// Key is set for palette keys in HCL palette files.
	Key bool
}

// hclPosToLSP converts an HCL position to an LSP position.
// HCL positions are 1-based; LSP positions are 0-based.
func hclPosToLSP(pos hcl.Pos) protocol.Position {
	return protocol.Position{
		Line:      uint32(pos.Line - 1),
		Character: uint32(pos.Column - 1),
	}
}

// hclRangeToLSP converts an HCL range to an LSP range.
func hclRangeToLSP(r hcl.Range) protocol.Range {
	return protocol.Range{
		Start: hclPosToLSP(r.Start),
		End:   hclPosToLSP(r.End),
	}
}

// Analyze finds the colors in a document. HCL files are read as palette
// files and get diagnostics for their color keys; any other document is
// scanned for color literals.
func Analyze(filename, content string) *AnalysisResult {
	if format.IsHCL(filename) {
		return analyzePaletteFile(filename, content)
	}
	return scanLiterals(content)
}

// scanLiterals finds color literals line by line. Literals that look like
// colors but do not parse get a warning.
func scanLiterals(content string) *AnalysisResult {
	result := &AnalysisResult{}

	for i, line := range splitLines(content) {
		for _, loc := range colorLiteral.FindAllStringIndex(line, -1) {
			rng := protocol.Range{
				Start: protocol.Position{Line: uint32(i), Character: uint32(loc[0])},
				End:   protocol.Position{Line: uint32(i), Character: uint32(loc[1])},
			}
			text := line[loc[0]:loc[1]]

			c, err := color.Parse(text)
			if err != nil {
				result.Diagnostics = append(result.Diagnostics, protocol.Diagnostic{
					Range:    rng,
					Severity: &DiagWarning,
					Source:   strPtr(diagSource),
					Message:  fmt.Sprintf("%q is not a valid color", text),
				})
				continue
			}
			result.Colors = append(result.Colors, ColorLocation{Range: rng, Color: c})
		}
	}

	return result
}

// analyzePaletteFile parses HCL content from memory and checks the colors
// object of every palette block. It collects all errors rather than
// stopping at the first.
func analyzePaletteFile(filename, content string) *AnalysisResult {
	result := &AnalysisResult{}

	file, diags := hclsyntax.ParseConfig([]byte(content), filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		for _, d := range diags {
			result.Diagnostics = append(result.Diagnostics, hclDiagToLSP(d))
		}
		return result
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		result.addError(hcl.Range{}, "internal error: parsed body is not *hclsyntax.Body")
		return result
	}

	for _, block := range body.Blocks {
		if block.Type != "palette" {
			continue
		}
		attr, ok := block.Body.Attributes["colors"]
		if !ok {
			result.addError(block.DefRange(), fmt.Sprintf("palette %s has no colors", strings.Join(block.Labels, " ")))
			continue
		}
		obj, ok := attr.Expr.(*hclsyntax.ObjectConsExpr)
		if !ok {
			result.addError(attr.Expr.Range(), "colors must be an object of hex keys to names")
			continue
		}
		result.analyzeColors(obj)
	}

	return result
}

func (r *AnalysisResult) analyzeColors(obj *hclsyntax.ObjectConsExpr) {
	seen := make(map[string]bool)

	for _, item := range obj.Items {
		keyRange := item.KeyExpr.Range()

		key, err := stringLiteral(item.KeyExpr)
		if err != nil {
			r.addError(keyRange, "color key "+err.Error())
			continue
		}
		c, err := color.ParseHex(key)
		if err != nil {
			r.addError(keyRange, fmt.Sprintf("invalid color key %q: want six hex digits", key))
			continue
		}
		norm, _ := c.Key()

		if seen[norm] {
			r.addWarning(keyRange, fmt.Sprintf("duplicate color %s, the later name wins", norm))
		}
		seen[norm] = true

		name, err := stringLiteral(item.ValueExpr)
		switch {
		case err != nil:
			r.addError(item.ValueExpr.Range(), "color name "+err.Error())
		case strings.TrimSpace(name) == "":
			r.addError(item.ValueExpr.Range(), fmt.Sprintf("color %s has an empty name", norm))
		}

		r.Colors = append(r.Colors, ColorLocation{
			Range: hclRangeToLSP(keyRange),
			Color: c,
			Key:   true,
		})
	}
}

// stringLiteral evaluates expr without variables and requires a string.
func stringLiteral(expr hclsyntax.Expression) (string, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", fmt.Errorf("must be a literal: %s", diags.Error())
	}
	if val.IsNull() || !val.Type().Equals(cty.String) {
		return "", fmt.Errorf("must be a string, got %s", val.Type().FriendlyName())
	}
	return val.AsString(), nil
}

// hclDiagToLSP converts an HCL diagnostic to an LSP diagnostic.
func hclDiagToLSP(d *hcl.Diagnostic) protocol.Diagnostic {
	sev := DiagError
	if d.Severity == hcl.DiagWarning {
		sev = DiagWarning
	}

	diag := protocol.Diagnostic{
		Severity: &sev,
		Message:  d.Summary,
		Source:   strPtr(diagSource),
	}

	if d.Detail != "" {
		diag.Message = d.Summary + ": " + d.Detail
	}

	if d.Subject != nil {
		diag.Range = hclRangeToLSP(*d.Subject)
	}

	return diag
}

// addError adds an error-level diagnostic at the given range.
func (r *AnalysisResult) addError(rng hcl.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &DiagError,
		Source:   strPtr(diagSource),
		Message:  msg,
	})
}

// addWarning adds a warning-level diagnostic at the given range.
func (r *AnalysisResult) addWarning(rng hcl.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &DiagWarning,
		Source:   strPtr(diagSource),
		Message:  msg,
	})
}

// colorAt returns the color location containing pos.
func (r *AnalysisResult) colorAt(pos protocol.Position) (ColorLocation, bool) {
	if r == nil {
		return ColorLocation{}, false
	}
	for _, cl := range r.Colors {
		if posInRange(pos, cl.Range) {
			return cl, true
		}
	}
	return ColorLocation{}, false
}

func strPtr(s string) *string {
	return &s
}

// splitLines splits content into lines, preserving empty trailing lines.
func splitLines(content string) []string {
	return strings.Split(content, "\n")
}
