package color

import (
	"slices"

	"golang.org/x/image/colornames"
)

// CSS Color 4 keywords missing from the SVG 1.1 table.
var extraKeywords = map[string]Color{
	"rebeccapurple": {R: 0x66, G: 0x33, B: 0x99, A: 1},
}

var (
	keywordNames = buildKeywordNames()
	reverse      = buildReverse()
)

// KeywordNames returns the CSS color keywords in alphabetical order,
// excluding transparent.
func KeywordNames() []string {
	return slices.Clone(keywordNames)
}

// Keyword returns the CSS keyword for an opaque color, if it has one.
// When several keywords share a value the alphabetically last one wins,
// e.g. "cyan" over "aqua".
func Keyword(c Color) (string, bool) {
	if !c.Opaque() {
		return "", false
	}
	key, err := c.Key()
	if err != nil {
		return "", false
	}
	name, ok := reverse[key]
	return name, ok
}

func lookupKeyword(name string) (Color, bool) {
	if name == "transparent" {
		return Color{}, true
	}
	if c, ok := extraKeywords[name]; ok {
		return c, true
	}
	rgba, ok := colornames.Map[name]
	if !ok {
		return Color{}, false
	}
	return Color{R: float64(rgba.R), G: float64(rgba.G), B: float64(rgba.B), A: 1}, true
}

func buildKeywordNames() []string {
	names := slices.Clone(colornames.Names)
	for name := range extraKeywords {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func buildReverse() map[string]string {
	m := make(map[string]string, len(keywordNames))
	for _, name := range keywordNames {
		c, _ := lookupKeyword(name)
		key, _ := c.Key()
		m[key] = name
	}
	return m
}
