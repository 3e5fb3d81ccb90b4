// Package distance measures how far apart two colors are.
//
// Distances are Euclidean over R, G and B. Translucent colors are first
// composited onto solid white and solid black, and the closer of the two
// results counts.
package distance

import (
	"math"

	"github.com/jsvensson/colorname/internal/color"
)

var (
	White = color.Color{R: 255, G: 255, B: 255, A: 1}
	Black = color.Color{R: 0, G: 0, B: 0, A: 1}
)

// Max is the distance between solid white and solid black, the largest
// distance any two colors can have.
var Max = Euclidean(White, Black)

// Euclidean returns the distance over R, G and B. Alpha is ignored.
func Euclidean(a, b color.Color) float64 {
	dr := a.R - b.R
	dg := a.G - b.G
	db := a.B - b.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Blend composites fg over an opaque bg: (1-α)·bg + α·fg per channel.
// The result is opaque.
func Blend(fg, bg color.Color) color.Color {
	a := fg.A
	return color.Color{
		R: (1-a)*bg.R + a*fg.R,
		G: (1-a)*bg.G + a*fg.G,
		B: (1-a)*bg.B + a*fg.B,
		A: 1,
	}
}

// AlphaAware returns the Euclidean distance when both colors are opaque.
// Otherwise each translucent side is flattened onto White and onto Black
// and the smaller of the two distances is returned.
func AlphaAware(a, b color.Color) float64 {
	if a.Opaque() && b.Opaque() {
		return Euclidean(a, b)
	}
	onWhite := Euclidean(flatten(a, White), flatten(b, White))
	onBlack := Euclidean(flatten(a, Black), flatten(b, Black))
	return math.Min(onWhite, onBlack)
}

func flatten(c, bg color.Color) color.Color {
	if c.Opaque() {
		return c
	}
	return Blend(c, bg)
}

// Policy selects how distances are computed.
type Policy int

const (
	// AlphaAwarePolicy composites translucent colors before measuring.
	AlphaAwarePolicy Policy = iota
	// OpaquePolicy measures R, G and B only.
	OpaquePolicy
)

// For returns the policy for a match. A match that keeps alpha reports it
// in its output and compares R, G and B only. A match that ignores alpha
// reports the palette color instead, so translucent input is compared as
// it shows on a light or dark backdrop.
func For(ignoreAlpha bool) Policy {
	if ignoreAlpha {
		return AlphaAwarePolicy
	}
	return OpaquePolicy
}

// Distance measures a and b under the policy.
func (p Policy) Distance(a, b color.Color) float64 {
	if p == OpaquePolicy {
		return Euclidean(a, b)
	}
	return AlphaAware(a, b)
}

func (p Policy) String() string {
	if p == OpaquePolicy {
		return "opaque"
	}
	return "alpha-aware"
}
