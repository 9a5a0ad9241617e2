package primemap

import "iter"

// Set is a set of strings backed by an OpenTable without values.
type Set struct {
	t *OpenTable[struct{}]
}

func NewSet(capacity int, opts ...Option) *Set {
	return &Set{t: NewOpenTable[struct{}](capacity, opts...)}
}

// Adds a key to the set. Returns whether the key is new.
func (s *Set) Add(key string) bool {
	return s.t.Put(key, struct{}{})
}

func (s *Set) Has(key string) bool {
	return s.t.Contains(key)
}

func (s *Set) Delete(key string) bool {
	return s.t.Remove(key)
}

func (s *Set) Len() int {
	return s.t.Size()
}

func (s *Set) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for k := range s.t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (s *Set) Stats() Stats {
	return s.t.Stats()
}
