package palette

import (
	"fmt"
	"slices"
	"sync"

	"github.com/tliron/commonlog"
)

// Built-in palette identifiers, in load order.
const (
	Curated = "curated"
	Web     = "web"
	Werner  = "werner"
)

// All identifies the merge of every palette. Any identifier the store
// does not know resolves to the merge as well.
const All = "all"

var log = commonlog.GetLogger("colorname.palette")

// Store holds palettes by identifier together with their load order.
// A Store is immutable once built and safe for concurrent use.
type Store struct {
	order  []string
	byID   map[string]*Palette
	merged *Palette
}

// NewStore builds a store from palettes in load order. A palette whose
// ID is already present replaces the earlier one at its position.
func NewStore(palettes ...*Palette) *Store {
	s := &Store{byID: make(map[string]*Palette, len(palettes))}
	for _, p := range palettes {
		if _, ok := s.byID[p.ID]; !ok {
			s.order = append(s.order, p.ID)
		}
		s.byID[p.ID] = p
	}

	ordered := make([]*Palette, 0, len(s.order))
	for _, id := range s.order {
		ordered = append(ordered, s.byID[id])
	}
	s.merged = merge(All, ordered...)
	return s
}

// With returns a new store with palettes appended to the load order.
func (s *Store) With(palettes ...*Palette) *Store {
	all := make([]*Palette, 0, len(s.order)+len(palettes))
	for _, id := range s.order {
		all = append(all, s.byID[id])
	}
	return NewStore(append(all, palettes...)...)
}

// Get returns the palette with the given identifier.
func (s *Store) Get(id string) (*Palette, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// IDs returns the palette identifiers in load order.
func (s *Store) IDs() []string {
	return slices.Clone(s.order)
}

// Effective returns the palette to search for a request: the named
// palette when the store knows it, otherwise the merge of all palettes.
func (s *Store) Effective(id string) *Palette {
	if p, ok := s.byID[id]; ok {
		return p
	}
	if id != "" && id != All {
		log.Debugf("unknown palette %q, using all palettes", id)
	}
	return s.merged
}

var loadDefault = sync.OnceValues(func() (*Store, error) {
	curated, err := loadEmbedded("data/curated.hcl")
	if err != nil {
		return nil, err
	}
	werner, err := loadEmbedded("data/werner.hcl")
	if err != nil {
		return nil, err
	}
	s := NewStore(curated, buildWeb(), werner)
	for _, id := range s.order {
		log.Debugf("loaded palette %s: %d colors", id, s.byID[id].Len())
	}
	return s, nil
})

// Default returns the built-in curated, web and werner palettes. The
// store is loaded once per process.
func Default() (*Store, error) {
	return loadDefault()
}

// MustDefault is like Default but panics if the embedded data is broken.
func MustDefault() *Store {
	s, err := Default()
	if err != nil {
		panic(err)
	}
	return s
}

// Load returns the built-in store extended with the palettes defined in
// the given files, in order. A file palette with a built-in identifier
// replaces the built-in one.
func Load(files ...string) (*Store, error) {
	s, err := Default()
	if err != nil {
		return nil, fmt.Errorf("loading built-in palettes: %w", err)
	}

	var extra []*Palette
	for _, path := range files {
		ps, err := LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		for _, p := range ps {
			log.Debugf("loaded palette %s from %s: %d colors", p.ID, path, p.Len())
		}
		extra = append(extra, ps...)
	}
	if len(extra) == 0 {
		return s, nil
	}
	return s.With(extra...), nil
}
