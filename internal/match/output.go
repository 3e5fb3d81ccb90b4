package match

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/jsvensson/colorname/internal/color"
	"github.com/jsvensson/colorname/internal/palette"
)

// Output is the result of a successful lookup.
type Output struct {
	// Name is the palette's display name for the matched color.
	Name string `json:"name"`
	// Hex is the input re-encoded as hex, or the palette key when alpha
	// is ignored.
	Hex string `json:"hex"`
	// RGB is Hex in rgb() or rgba() notation.
	RGB string `json:"rgb"`
	// CSS is a custom property declaration, e.g. "--color-bunker: #0D1117".
	CSS string `json:"css"`
	// Distance is 0 for an exact palette hit and positive otherwise.
	Distance float64 `json:"distance"`
}

func buildOutput(entry palette.Entry, input color.Color, dist float64, ignoreAlpha bool) (Output, error) {
	if entry.Name == "" {
		return Output{}, fmt.Errorf("palette entry %s has no name", entry.Key)
	}

	slug := Slugify(entry.Name)
	var hex string
	if ignoreAlpha {
		hex = "#" + entry.Key
	} else {
		h, err := input.Hex()
		if err != nil {
			return Output{}, err
		}
		hex = h
		if a := color.RoundAlpha(input.A); a > 0 && a < 1 {
			slug = fmt.Sprintf("%s-%d", slug, int(math.Round(a*100)))
		}
	}

	// Re-parsing validates the hex before it is reported.
	parsed, err := color.Parse(hex)
	if err != nil {
		return Output{}, fmt.Errorf("re-parsing %s: %w", hex, err)
	}

	return Output{
		Name:     entry.Name,
		Hex:      hex,
		RGB:      parsed.RGBString(),
		CSS:      fmt.Sprintf("--color-%s: %s", slug, hex),
		Distance: dist,
	}, nil
}

// FormatDistance describes d for display. Distances that would print as
// 0.00 are shown as "<0.01" so they never read as an exact match.
func FormatDistance(d float64) string {
	switch {
	case d == 0:
		return "exact"
	case d < 0.005:
		return "distance <0.01"
	}
	return fmt.Sprintf("distance %.2f", d)
}

// Slugify lower-cases a color name for use in identifiers. Apostrophes
// are dropped and each whitespace character becomes a hyphen; runs of
// whitespace are not collapsed and other punctuation is kept.
func Slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r == '\'':
		case unicode.IsSpace(r):
			b.WriteByte('-')
		default:
			b.WriteRune(r)
		}
	}
	return strings.ToLower(b.String())
}
