package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"
)

// Parse parses a color code into a Color. Accepted notations:
//
//   - hex: #RGB, #RGBA, #RRGGBB, #RRGGBBAA, with or without #
//   - rgb(r, g, b) and rgba(r, g, b, a), integer or percentage channels,
//     comma or space separated, alpha optionally written as "/ a"
//   - hsl(h, s%, l%) and hsla(h, s%, l%, a), hue optionally suffixed with deg
//   - CSS color keywords, including transparent
//
// Errors wrap ErrInvalid.
func Parse(s string) (Color, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if in == "" {
		return Color{}, fmt.Errorf("empty color code: %w", ErrInvalid)
	}

	switch {
	case strings.HasPrefix(in, "rgb"):
		return parseRGB(in)
	case strings.HasPrefix(in, "hsl"):
		return parseHSL(in)
	}

	if c, ok := lookupKeyword(in); ok {
		return c, nil
	}
	if c, ok := parseHexDigits(strings.TrimPrefix(in, "#")); ok {
		return c, nil
	}
	return Color{}, fmt.Errorf("parsing %q: %w", s, ErrInvalid)
}

// parseHexDigits parses 3, 4, 6 or 8 hex digits. Short forms double each digit.
func parseHexDigits(s string) (Color, bool) {
	switch len(s) {
	case 3, 4:
		long := make([]byte, 0, len(s)*2)
		for i := 0; i < len(s); i++ {
			long = append(long, s[i], s[i])
		}
		s = string(long)
	case 6, 8:
	default:
		return Color{}, false
	}

	var ch [4]float64
	ch[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, false
		}
		ch[i] = float64(v)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3] / 255}, true
}

func parseRGB(s string) (Color, error) {
	name, args, alpha, ok := splitArgs(s)
	if !ok || (name != "rgb" && name != "rgba") {
		return Color{}, fmt.Errorf("parsing %q: %w", s, ErrInvalid)
	}

	percent := strings.HasSuffix(args[0], "%")
	var ch [3]float64
	for i, arg := range args {
		if strings.HasSuffix(arg, "%") != percent {
			return Color{}, fmt.Errorf("parsing %q: mixed percentage and integer channels: %w", s, ErrInvalid)
		}
		if percent {
			p, err := parseNumber(strings.TrimSuffix(arg, "%"))
			if err != nil {
				return Color{}, fmt.Errorf("parsing %q: %w", s, ErrInvalid)
			}
			ch[i] = clamp(math.Round(p*2.55), 0, 255)
			continue
		}
		v, err := strconv.Atoi(arg)
		if err != nil {
			return Color{}, fmt.Errorf("parsing %q: channel %q: %w", s, arg, ErrInvalid)
		}
		ch[i] = clamp(float64(v), 0, 255)
	}

	a, err := parseAlpha(alpha)
	if err != nil {
		return Color{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: a}, nil
}

func parseHSL(s string) (Color, error) {
	name, args, alpha, ok := splitArgs(s)
	if !ok || (name != "hsl" && name != "hsla") {
		return Color{}, fmt.Errorf("parsing %q: %w", s, ErrInvalid)
	}

	h, err := parseNumber(strings.TrimSuffix(args[0], "deg"))
	if err != nil {
		return Color{}, fmt.Errorf("parsing %q: hue %q: %w", s, args[0], ErrInvalid)
	}
	if !strings.HasSuffix(args[1], "%") || !strings.HasSuffix(args[2], "%") {
		return Color{}, fmt.Errorf("parsing %q: saturation and lightness must be percentages: %w", s, ErrInvalid)
	}
	sat, err := parseNumber(strings.TrimSuffix(args[1], "%"))
	if err != nil {
		return Color{}, fmt.Errorf("parsing %q: saturation %q: %w", s, args[1], ErrInvalid)
	}
	lum, err := parseNumber(strings.TrimSuffix(args[2], "%"))
	if err != nil {
		return Color{}, fmt.Errorf("parsing %q: lightness %q: %w", s, args[2], ErrInvalid)
	}

	a, err := parseAlpha(alpha)
	if err != nil {
		return Color{}, fmt.Errorf("parsing %q: %w", s, err)
	}

	whole := isWhole(h) && isWhole(sat) && isWhole(lum)
	h = math.Mod(math.Mod(h, 360)+360, 360)
	sat = clamp(sat, 0, 100)
	lum = clamp(lum, 0, 100)

	rgb := colorful.Hsl(h, sat/100, lum/100).Clamped()
	c := Color{R: rgb.R * 255, G: rgb.G * 255, B: rgb.B * 255, A: a}
	if whole {
		// Whole-number notation lands on the 8-bit grid; fractional
		// notation keeps exact channels and cannot be encoded as hex.
		c.R, c.G, c.B = math.Round(c.R), math.Round(c.G), math.Round(c.B)
	}
	return c, nil
}

// splitArgs splits a functional notation like "rgba(1, 2, 3 / 50%)" into its
// name, exactly three channel tokens and an optional alpha token.
func splitArgs(s string) (name string, args []string, alpha string, ok bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return "", nil, "", false
	}
	name = strings.TrimSpace(s[:open])
	body := s[open+1 : len(s)-1]

	slash := false
	if i := strings.IndexByte(body, '/'); i >= 0 {
		alpha = strings.TrimSpace(body[i+1:])
		body = body[:i]
		slash = true
		if alpha == "" || strings.ContainsFunc(alpha, isSeparator) {
			return "", nil, "", false
		}
	}

	args = strings.FieldsFunc(body, isSeparator)
	if !slash && len(args) == 4 {
		alpha = args[3]
		args = args[:3]
	}
	if len(args) != 3 {
		return "", nil, "", false
	}
	return name, args, alpha, true
}

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// parseAlpha parses a number or percentage into [0, 1]. Empty means opaque.
func parseAlpha(s string) (float64, error) {
	if s == "" {
		return 1, nil
	}
	scale := 1.0
	if strings.HasSuffix(s, "%") {
		s = strings.TrimSuffix(s, "%")
		scale = 100
	}
	v, err := parseNumber(s)
	if err != nil {
		return 0, fmt.Errorf("alpha %q: %w", s, ErrInvalid)
	}
	return clamp(v/scale, 0, 1), nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}
