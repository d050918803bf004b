package content

import (
	"sync/atomic"
)

// Store holds the current content snapshot. Readers always see a complete,
// validated snapshot; reloads replace it as a whole.
type Store struct {
	current atomic.Pointer[Content]
	version atomic.Uint64
}

// NewStore creates a store serving initial.
func NewStore(initial *Content) *Store {
	s := &Store{}
	s.current.Store(initial)
	return s
}

// Get returns the current snapshot.
func (s *Store) Get() *Content {
	return s.current.Load()
}

// Version counts successful swaps since creation.
func (s *Store) Version() uint64 {
	return s.version.Load()
}

// Swap replaces the snapshot. A nil snapshot is ignored.
func (s *Store) Swap(c *Content) {
	if c == nil {
		return
	}
	s.current.Store(c)
	s.version.Add(1)
}

// Reload loads path and swaps it in. On error the previous snapshot stays.
func (s *Store) Reload(path string) error {
	c, err := Load(path)
	if err != nil {
		return err
	}
	s.Swap(c)
	return nil
}
