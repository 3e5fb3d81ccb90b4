// Package render names a set of color codes and writes the results
// through user templates, e.g. a CSS custom property sheet.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/jsvensson/colorname/internal/color"
	"github.com/jsvensson/colorname/internal/match"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("colorname.render")

// Renderer loads and executes Go templates against named colors.
type Renderer struct {
	TemplatesDir string
	OutputDir    string
	Apps         []string // if non-empty, only render these template basenames

	Matcher *match.Matcher
	Options match.Options
}

// Swatch is one named input color.
type Swatch struct {
	Input string
	match.Output
}

// templateData is the data passed to templates.
type templateData struct {
	List    string
	Colors  []Swatch
	FuncMap template.FuncMap
}

// Run names every code, loads all .tmpl files from the templates
// directory, executes them and writes output files. A code without a
// name fails the run before anything is written.
func (r *Renderer) Run(codes []string) error {
	pattern := filepath.Join(r.TemplatesDir, "*.tmpl")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("globbing templates: %w", err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no .tmpl files found in %s", r.TemplatesDir)
	}

	data, err := r.buildTemplateData(codes)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(r.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, tmplPath := range matches {
		baseName := strings.TrimSuffix(filepath.Base(tmplPath), ".tmpl")

		if !r.shouldRender(baseName) {
			continue
		}

		if err := r.renderTemplate(tmplPath, baseName, data); err != nil {
			return err
		}
	}

	return nil
}

func (r *Renderer) shouldRender(name string) bool {
	if len(r.Apps) == 0 {
		return true
	}

	return slices.Contains(r.Apps, name)
}

func (r *Renderer) renderTemplate(tmplPath, outputName string, data templateData) error {
	tmpl, err := template.New(filepath.Base(tmplPath)).Funcs(data.FuncMap).ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}

	outPath := filepath.Join(r.OutputDir, outputName)
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", outPath, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("executing template %s: %w", tmplPath, err)
	}

	log.Infof("wrote %s", outPath)
	return nil
}

func (r *Renderer) buildTemplateData(codes []string) (templateData, error) {
	data := templateData{
		List:    r.Options.List,
		FuncMap: r.funcMap(),
	}
	for _, code := range codes {
		out, err := r.Matcher.Match(code, r.Options)
		if err != nil {
			return templateData{}, fmt.Errorf("naming %q: %w", code, err)
		}
		data.Colors = append(data.Colors, Swatch{Input: code, Output: out})
	}
	return data, nil
}

func (r *Renderer) funcMap() template.FuncMap {
	return template.FuncMap{
		"name": func(code string) (match.Output, error) {
			return r.Matcher.Match(code, r.Options)
		},
		"hex": func(code string) (string, error) {
			c, err := color.Parse(code)
			if err != nil {
				return "", err
			}
			return c.Hex()
		},
		"rgb": func(code string) (string, error) {
			c, err := color.Parse(code)
			if err != nil {
				return "", err
			}
			return c.RGBString(), nil
		},
		"slug": match.Slugify,
	}
}
