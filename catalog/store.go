package catalog

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Store is an in-memory catalog keyed by prize and layout ID.
// It is the default implementation of the lookup seam the resolution
// components use; callers with their own catalog can substitute any
// resolver exposing the same methods.
type Store struct {
	mu      sync.RWMutex
	prizes  map[string]*Prize
	layouts map[string]*TicketLayout
}

func NewStore() *Store {
	return &Store{
		prizes:  make(map[string]*Prize),
		layouts: make(map[string]*TicketLayout),
	}
}

// Document is the on-disk catalog file shape.
type Document struct {
	Prizes  []Prize        `yaml:"prizes"`
	Layouts []TicketLayout `yaml:"layouts"`
}

// RegisterPrize stores a prize by ID. Overwrites if exists.
func (s *Store) RegisterPrize(p *Prize) error {
	if p == nil || p.ID == "" {
		return fmt.Errorf("prize missing id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prizes[p.ID] = p
	return nil
}

// RegisterLayout stores a layout by ID. Area IDs must be unique within the
// layout; duplicates are rejected up front rather than degraded at use time.
func (s *Store) RegisterLayout(l *TicketLayout) error {
	if l == nil || l.ID == "" {
		return fmt.Errorf("layout missing id")
	}
	seen := make(map[string]bool, len(l.Areas))
	for _, a := range l.Areas {
		if a.ID == "" {
			return fmt.Errorf("layout %s: area missing id", l.ID)
		}
		if seen[a.ID] {
			return fmt.Errorf("layout %s: duplicate area id %s", l.ID, a.ID)
		}
		seen[a.ID] = true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layouts[l.ID] = l
	return nil
}

// GetPrizeByID returns the prize for the given ID, or nil.
func (s *Store) GetPrizeByID(id string) *Prize {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prizes[id]
}

// GetLayoutByID returns the layout for the given ID, or nil.
func (s *Store) GetLayoutByID(id string) *TicketLayout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.layouts[id]
}

// Layouts returns all registered layouts sorted by ID.
func (s *Store) Layouts() []*TicketLayout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*TicketLayout, 0, len(s.layouts))
	for _, l := range s.layouts {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// LoadFile reads a YAML catalog document and registers its contents.
// The first invalid entry aborts the load.
func (s *Store) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse catalog %s: %w", path, err)
	}
	for i := range doc.Prizes {
		if err := s.RegisterPrize(&doc.Prizes[i]); err != nil {
			return err
		}
	}
	for i := range doc.Layouts {
		if err := s.RegisterLayout(&doc.Layouts[i]); err != nil {
			return err
		}
	}
	return nil
}
