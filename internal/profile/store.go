package profile

import "sync/atomic"

// Store holds the single loaded profile. It is empty until the loader
// publishes a document and never changes afterwards.
type Store struct {
	current atomic.Pointer[Profile]
}

// NewStore creates an empty Store
func NewStore() *Store {
	return &Store{}
}

// Profile returns the loaded profile, or false while still loading.
func (s *Store) Profile() (*Profile, bool) {
	p := s.current.Load()
	return p, p != nil
}

// Set publishes p. Only the first call has an effect; it reports whether p
// was stored.
func (s *Store) Set(p *Profile) bool {
	if p == nil {
		return false
	}
	return s.current.CompareAndSwap(nil, p)
}

// Loaded reports whether a profile has been published.
func (s *Store) Loaded() bool {
	return s.current.Load() != nil
}
