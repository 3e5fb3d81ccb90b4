package palette

import (
	"embed"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

//go:embed data/*.hcl
var data embed.FS

// fileSchema is the top level of a palette file:
//
//	palette "brand" {
//	  description = "Company colors"
//	  colors = {
//	    "1F6FEB" = "Signal Blue"
//	    "#d29922" = "Warning Amber"
//	  }
//	}
type fileSchema struct {
	Palettes []*paletteBlock `hcl:"palette,block"`
}

type paletteBlock struct {
	ID          string         `hcl:"id,label"`
	Description string         `hcl:"description,optional"`
	Colors      hcl.Expression `hcl:"colors"`
}

// LoadFile reads and parses a palette file.
func LoadFile(path string) ([]*Palette, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading palette file: %w", err)
	}
	return Parse(src, path)
}

// Parse parses palette HCL source. The colors object keeps its source
// order, which decides ties during nearest-color search.
func Parse(src []byte, filename string) ([]*Palette, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	var schema fileSchema
	if diags := gohcl.DecodeBody(file.Body, nil, &schema); diags.HasErrors() {
		return nil, fmt.Errorf("decoding palettes: %s", diags.Error())
	}
	if len(schema.Palettes) == 0 {
		return nil, fmt.Errorf("%s: no palette block found", filename)
	}

	palettes := make([]*Palette, 0, len(schema.Palettes))
	for _, block := range schema.Palettes {
		p, err := decodePalette(block)
		if err != nil {
			return nil, fmt.Errorf("parsing palette %s: %w", block.ID, err)
		}
		palettes = append(palettes, p)
	}
	return palettes, nil
}

func decodePalette(block *paletteBlock) (*Palette, error) {
	pairs, diags := hcl.ExprMap(block.Colors)
	if diags.HasErrors() {
		return nil, fmt.Errorf("colors: %s", diags.Error())
	}

	p := New(block.ID, block.Description)
	for _, pair := range pairs {
		key, err := stringValue(pair.Key)
		if err != nil {
			return nil, fmt.Errorf("key: %w", err)
		}
		name, err := stringValue(pair.Value)
		if err != nil {
			return nil, fmt.Errorf("colors[%q]: %w", key, err)
		}
		if err := p.Set(key, name); err != nil {
			return nil, fmt.Errorf("%s: %w", pair.Key.Range(), err)
		}
	}
	return p, nil
}

// stringValue evaluates a literal expression that must be a known string.
func stringValue(expr hcl.Expression) (string, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", fmt.Errorf("evaluating: %s", diags.Error())
	}
	if val.IsNull() || !val.IsKnown() || !val.Type().Equals(cty.String) {
		return "", fmt.Errorf("%s: must be a string, got %s", expr.Range(), val.Type().FriendlyName())
	}
	return val.AsString(), nil
}

func loadEmbedded(name string) (*Palette, error) {
	src, err := data.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading embedded palette: %w", err)
	}
	palettes, err := Parse(src, name)
	if err != nil {
		return nil, err
	}
	if len(palettes) != 1 {
		return nil, fmt.Errorf("%s: want 1 palette, got %d", name, len(palettes))
	}
	return palettes[0], nil
}
