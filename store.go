package stratcfg

import "sync/atomic"

// Store hands the current ConfigSet to any number of concurrent
// readers and lets a writer replace it wholesale. Replacement is an
// atomic pointer swap, so readers always observe a complete document
// and never a partial update.
type Store struct {
	cur atomic.Pointer[ConfigSet]
}

// NewStore creates a store seeded with set. A nil set is allowed;
// Current then returns nil until the first Replace.
func NewStore(set *ConfigSet) *Store {
	s := &Store{}
	s.cur.Store(set)
	return s
}

// Current returns the set most recently made visible.
func (s *Store) Current() *ConfigSet {
	return s.cur.Load()
}

// Replace swaps in set and returns the previous one.
func (s *Store) Replace(set *ConfigSet) *ConfigSet {
	return s.cur.Swap(set)
}

// Reload loads src and, only on success, swaps the result in. On any
// error the previous set stays visible untouched.
func (s *Store) Reload(src []byte, opts ...Option) (*ConfigSet, error) {
	set, err := Load(src, opts...)
	if err != nil {
		return nil, err
	}
	s.cur.Store(set)
	return set, nil
}
