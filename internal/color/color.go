package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalid is returned when no color notation is recognized in the input.
	ErrInvalid = errors.New("invalid color")

	// ErrFractional is returned when a color with non-integral channels is
	// encoded as hex. Channels derived from fractional HSL input land here.
	ErrFractional = errors.New("fractional color channel")
)

// Color is an [R, G, B, A] tuple. R, G and B are in [0, 255] and A is in [0, 1].
// Channels are float64 so HSL-derived colors keep their exact values;
// hex, rgb() and keyword input always yields integral R, G and B.
type Color struct {
	R, G, B float64
	A       float64
}

// Opaque reports whether the color has full alpha.
func (c Color) Opaque() bool {
	return c.A >= 1
}

// Integral reports whether R, G and B are whole numbers.
func (c Color) Integral() bool {
	return isWhole(c.R) && isWhole(c.G) && isWhole(c.B)
}

// Key returns the 6-digit uppercase hex key without leading #, e.g. "0D1117".
// Alpha is ignored. Colors with fractional channels have no key.
func (c Color) Key() (string, error) {
	if !c.Integral() {
		return "", fmt.Errorf("encoding %v as hex: %w", c, ErrFractional)
	}
	return fmt.Sprintf("%02X%02X%02X", uint8(c.R), uint8(c.G), uint8(c.B)), nil
}

// Hex returns the color as an uppercase hex string with leading #, e.g. "#0D1117".
// An eighth and ninth digit carry the alpha byte unless it rounds to FF.
func (c Color) Hex() (string, error) {
	key, err := c.Key()
	if err != nil {
		return "", err
	}
	hex := "#" + key
	if a := uint8(math.Round(clamp(c.A, 0, 1) * 255)); a < 0xFF {
		hex += fmt.Sprintf("%02X", a)
	}
	return hex, nil
}

// RGBString returns the color as "rgb(r, g, b)", or "rgba(r, g, b, a)" when
// alpha rounded to two decimals is below 1. Channels are rounded.
func (c Color) RGBString() string {
	r, g, b := math.Round(c.R), math.Round(c.G), math.Round(c.B)
	a := RoundAlpha(c.A)
	if a >= 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", int(r), int(g), int(b))
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", int(r), int(g), int(b), strconv.FormatFloat(a, 'f', -1, 64))
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return fmt.Sprintf("[%g %g %g %g]", c.R, c.G, c.B, c.A)
}

// RoundAlpha rounds an alpha value to two decimals.
func RoundAlpha(a float64) float64 {
	return math.Round(a*100) / 100
}

// ParseHex parses a 6-digit hex key, with or without leading #, into an opaque Color.
// Palette keys use this; arbitrary input goes through Parse.
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q: must be 6 hex digits: %w", s, ErrInvalid)
	}
	c, ok := parseHexDigits(s)
	if !ok {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, ErrInvalid)
	}
	return c, nil
}

// MustParseHex is like ParseHex but panics on error.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func isWhole(f float64) bool {
	return f == math.Trunc(f)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
