package palette

import (
	"fmt"
	"strings"

	"github.com/jsvensson/colorname/internal/color"
)

// Entry is a single named color. Key is six uppercase hex digits without #.
type Entry struct {
	Key   string
	Name  string
	Color color.Color
}

// Palette is an ordered set of named colors keyed by hex.
// Insertion order is preserved; setting an existing key replaces its
// name in place.
type Palette struct {
	ID          string
	Description string

	entries []Entry
	index   map[string]int
}

// New returns an empty palette.
func New(id, description string) *Palette {
	return &Palette{
		ID:          id,
		Description: description,
		index:       make(map[string]int),
	}
}

// Set adds or renames the color at key. The key may carry a leading #
// and any letter case; it is stored as six uppercase hex digits.
func (p *Palette) Set(key, name string) error {
	c, err := color.ParseHex(key)
	if err != nil {
		return fmt.Errorf("palette %s: %w", p.ID, err)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("palette %s: color %s has an empty name", p.ID, key)
	}
	k, err := c.Key()
	if err != nil {
		return fmt.Errorf("palette %s: %w", p.ID, err)
	}
	p.set(Entry{Key: k, Name: name, Color: c})
	return nil
}

func (p *Palette) set(e Entry) {
	if i, ok := p.index[e.Key]; ok {
		p.entries[i].Name = e.Name
		return
	}
	p.index[e.Key] = len(p.entries)
	p.entries = append(p.entries, e)
}

// Entries returns the entries in insertion order. The slice is shared
// and must not be modified.
func (p *Palette) Entries() []Entry {
	return p.entries
}

// Lookup returns the entry for a hex key, with or without leading #.
func (p *Palette) Lookup(key string) (Entry, bool) {
	key = strings.ToUpper(strings.TrimPrefix(key, "#"))
	i, ok := p.index[key]
	if !ok {
		return Entry{}, false
	}
	return p.entries[i], true
}

// Len returns the number of colors.
func (p *Palette) Len() int {
	return len(p.entries)
}

// merge combines palettes in order. On key collision the later name
// wins and the first position is kept.
func merge(id string, palettes ...*Palette) *Palette {
	out := New(id, "all palettes merged in load order")
	for _, p := range palettes {
		for _, e := range p.entries {
			out.set(e)
		}
	}
	return out
}
