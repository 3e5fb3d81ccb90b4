// Package colorname maps color codes to the closest named color.
//
// Codes may be hex (#RGB, #RGBA, #RRGGBB, #RRGGBBAA), rgb()/rgba(),
// hsl()/hsla() or CSS keywords. The built-in palettes are "curated",
// "web" and "werner"; without a list, all of them are searched merged.
package colorname

import (
	"errors"
	"sync"

	"github.com/jsvensson/colorname/internal/match"
	"github.com/jsvensson/colorname/internal/palette"
)

// Options controls a lookup.
type Options = match.Options

// Output is the result of a successful lookup.
type Output = match.Output

// Matcher resolves color codes against a set of palettes.
type Matcher = match.Matcher

// ErrNoMatch is wrapped by every failed lookup.
var ErrNoMatch = match.ErrNoMatch

var defaultMatcher = sync.OnceValue(func() *Matcher {
	return match.New(palette.MustDefault())
})

// Name returns the named color closest to code, or false when the code
// is not a color or no name could be produced for it.
func Name(code string, opts Options) (Output, bool) {
	out, err := defaultMatcher().Match(code, opts)
	if err != nil {
		return Output{}, false
	}
	return out, true
}

// Lookup is like Name but reports why a lookup failed.
func Lookup(code string, opts Options) (Output, error) {
	return defaultMatcher().Match(code, opts)
}

// Lists returns the built-in palette identifiers in load order.
func Lists() []string {
	return palette.MustDefault().IDs()
}

// NewMatcher returns a Matcher over the built-in palettes plus the
// palettes defined in the given HCL files, in order. A file palette with
// a built-in identifier replaces the built-in one.
func NewMatcher(paletteFiles ...string) (*Matcher, error) {
	store, err := palette.Load(paletteFiles...)
	if err != nil {
		return nil, err
	}
	return match.New(store), nil
}

// IsNoMatch reports whether err is a failed lookup.
func IsNoMatch(err error) bool {
	return errors.Is(err, ErrNoMatch)
}
