// Package match finds the named color closest to a color code.
package match

import (
	"errors"
	"fmt"
	"math"

	"github.com/jsvensson/colorname/internal/color"
	"github.com/jsvensson/colorname/internal/distance"
	"github.com/jsvensson/colorname/internal/palette"
	"github.com/tliron/commonlog"
)

var (
	// ErrNoMatch is returned for every failed lookup. The cause, if any,
	// is wrapped alongside it.
	ErrNoMatch = errors.New("no match")

	// ErrEmptyPalette is wrapped when the selected palette has no colors.
	ErrEmptyPalette = errors.New("empty palette")
)

var log = commonlog.GetLogger("colorname.match")

// Options controls a lookup.
type Options struct {
	// List selects a single palette by identifier. Empty or unknown
	// identifiers search all palettes merged.
	List string

	// IgnoreAlphaChannel drops alpha from the output, which then reports
	// the palette color. Translucent input is compared after compositing
	// onto white and black.
	IgnoreAlphaChannel bool
}

// Matcher resolves color codes against a palette store. It holds no
// mutable state and is safe for concurrent use.
type Matcher struct {
	store *palette.Store
}

// New returns a Matcher searching store.
func New(store *palette.Store) *Matcher {
	return &Matcher{store: store}
}

// Match returns the palette color closest to code. An entry equal to the
// input wins outright with distance 0; otherwise every entry is measured
// and the first one with the smallest distance wins. All errors wrap
// ErrNoMatch.
func (m *Matcher) Match(code string, opts Options) (Output, error) {
	c, err := color.Parse(code)
	if err != nil {
		return Output{}, fmt.Errorf("%w: %w", ErrNoMatch, err)
	}

	p := m.store.Effective(opts.List)
	entry, dist, err := nearest(p, c, opts.IgnoreAlphaChannel)
	if err != nil {
		return Output{}, fmt.Errorf("%w: palette %s: %w", ErrNoMatch, p.ID, err)
	}

	out, err := buildOutput(entry, c, dist, opts.IgnoreAlphaChannel)
	if err != nil {
		log.Debugf("discarding match %s for %q: %s", entry.Key, code, err.Error())
		return Output{}, fmt.Errorf("%w: %w", ErrNoMatch, err)
	}

	log.Debugf("matched %q to %s %q in %s, distance %g", code, entry.Key, entry.Name, p.ID, dist)
	return out, nil
}

// nearest returns the entry closest to c. A non-exact entry never
// reports distance 0, even when it flattens exactly onto c.
func nearest(p *palette.Palette, c color.Color, ignoreAlpha bool) (palette.Entry, float64, error) {
	entries := p.Entries()
	if len(entries) == 0 {
		return palette.Entry{}, 0, ErrEmptyPalette
	}

	policy := distance.For(ignoreAlpha)
	if e, ok := exact(entries, c, policy); ok {
		return e, 0, nil
	}

	best, bestDist := entries[0], distance.Max
	for _, e := range entries {
		if d := policy.Distance(c, e.Color); d < bestDist {
			best, bestDist = e, d
		}
	}

	if bestDist == 0 {
		bestDist = math.SmallestNonzeroFloat64
	}
	return best, bestDist, nil
}

// exact returns the first entry whose channels equal c. Under the
// alpha-aware policy alpha must match too.
func exact(entries []palette.Entry, c color.Color, policy distance.Policy) (palette.Entry, bool) {
	for _, e := range entries {
		if e.Color.R != c.R || e.Color.G != c.G || e.Color.B != c.B {
			continue
		}
		if policy == distance.OpaquePolicy || e.Color.A == c.A {
			return e, true
		}
	}
	return palette.Entry{}, false
}
