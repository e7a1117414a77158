package catalog

import (
	"encoding/json"
	"errors"
	"sync"
)

var ErrNotFound = errors.New("product not found")

// Stored pairs a product with the identifier the store assigned it.
type Stored struct {
	ID      int
	Product Product
}

// Identifiers start above anything a caller might plausibly guess at,
// so the first product gets 101. They are never reused.
const counterSeed = 100

// Store owns the catalog map and the identifier counter. One mutex
// covers both: concurrent creates must not mint duplicate identifiers,
// and a metadata update must not race its own read-then-write.
type Store struct {
	mu      sync.Mutex
	counter int
	m       map[int]Product
}

func NewStore() *Store {
	return &Store{counter: counterSeed, m: map[int]Product{}}
}

// Create assigns the next identifier and inserts the record under it.
// No validation happens here: a record missing required fields is
// stored as-is and surfaces ErrMalformedProduct when it is scored.
func (s *Store) Create(p Product) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	s.m[s.counter] = p
	return s.counter
}

// UpdateMetadata replaces (not merges) the record's metadata. The
// store is left untouched when id is unknown.
func (s *Store) UpdateMetadata(id int, meta json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.m[id]
	if !ok {
		return ErrNotFound
	}
	s.m[id] = p.WithMetadata(meta)
	return nil
}

// List returns a point-in-time snapshot. Order is whatever the map
// yields; search sorts by score anyway.
func (s *Store) List() []Stored {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Stored, 0, len(s.m))
	for id, p := range s.m {
		out = append(out, Stored{ID: id, Product: p})
	}
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m)
}
