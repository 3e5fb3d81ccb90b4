package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/tliron/commonlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = ".colorname.hcl"

// Formats lists the accepted output formats.
var Formats = []string{"text", "json", "css"}

var log = commonlog.GetLogger("colorname.config")

// Config holds CLI defaults. Flags override every field.
type Config struct {
	List         string
	IgnoreAlpha  bool
	Format       string
	PaletteFiles []string
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{Format: "text"}
}

// fileSchema mirrors the config file:
//
//	list          = "werner"
//	ignore_alpha  = false
//	format        = "json"
//	palette_files = ["brand.hcl", "${env("HOME")}/.palettes/extra.hcl"]
type fileSchema struct {
	List         *string  `hcl:"list,optional"`
	IgnoreAlpha  *bool    `hcl:"ignore_alpha,optional"`
	Format       *string  `hcl:"format,optional"`
	PaletteFiles []string `hcl:"palette_files,optional"`
}

// Load reads a config file. Relative palette paths resolve against the
// file's directory.
func Load(path string) (Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	cfg, err := Parse(src, path)
	if err != nil {
		return Config{}, err
	}

	dir := filepath.Dir(path)
	for i, p := range cfg.PaletteFiles {
		if !filepath.IsAbs(p) {
			cfg.PaletteFiles[i] = filepath.Join(dir, p)
		}
	}
	log.Debugf("loaded config %s", path)
	return cfg, nil
}

// LoadOptional is like Load but returns Default when path does not exist.
func LoadOptional(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes config source. Unknown attributes are errors.
func Parse(src []byte, filename string) (Config, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	var raw fileSchema
	if diags := gohcl.DecodeBody(file.Body, buildEvalContext(), &raw); diags.HasErrors() {
		return Config{}, fmt.Errorf("decoding config: %s", diags.Error())
	}

	cfg := Default()
	if raw.List != nil {
		cfg.List = *raw.List
	}
	if raw.IgnoreAlpha != nil {
		cfg.IgnoreAlpha = *raw.IgnoreAlpha
	}
	if raw.Format != nil {
		cfg.Format = *raw.Format
	}
	cfg.PaletteFiles = raw.PaletteFiles

	if err := ValidateFormat(cfg.Format); err != nil {
		return Config{}, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// ValidateFormat checks an output format name.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return fmt.Errorf("unknown format %q (valid: text, json, css)", format)
	}
	return nil
}

// makeEnvFunc creates an HCL function reading an environment variable.
// Usage: env("HOME")
func makeEnvFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Returns the value of an environment variable, or an empty string",
		Params: []function.Parameter{
			{
				Name: "name",
				Type: cty.String,
			},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			return cty.StringVal(os.Getenv(args[0].AsString())), nil
		},
	})
}

func buildEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"env": makeEnvFunc(),
		},
	}
}
