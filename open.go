package primemap

import (
	"fmt"
	"iter"
	"strings"
)

// The table is grown before an insert once half of the slots are live.
const openLoadThreshold = 0.5

// OpenTable is a hash map resolving collisions with quadratic probing
// over a prime number of slots. Deleted entries are left behind as
// tombstones, which are dropped whenever the table is rebuilt.
type OpenTable[V any] struct {
	slots []slot[V]
	size  int

	hashFunc HashFunc
}

// Returns a new open addressing table with at least `capacity` slots.
func NewOpenTable[V any](capacity int, opts ...Option) *OpenTable[V] {
	o := buildOptions(opts)

	return &OpenTable[V]{
		slots:    make([]slot[V], NextPrime(capacity)),
		hashFunc: o.hashFunc,
	}
}

func (t *OpenTable[V]) Size() int {
	return t.size
}

func (t *OpenTable[V]) Capacity() int {
	return len(t.slots)
}

func (t *OpenTable[V]) Load() float64 {
	return float64(t.size) / float64(len(t.slots))
}

// Returns the slot index of the j-th probe for a key hashed to `home`.
func (t *OpenTable[V]) probe(home uint64, j int) int {
	return int((home + uint64(j)*uint64(j)) % uint64(len(t.slots)))
}

func (t *OpenTable[V]) home(key string) uint64 {
	return t.hashFunc(key) % uint64(len(t.slots))
}

// Returns the index of the live slot holding `key`, or -1.
//
// The quadratic sequence doesn't necessarily visit every slot,
// so the scan gives up after capacity+1 probes.
func (t *OpenTable[V]) find(key string) int {
	home := t.home(key)

	for j := 0; j <= len(t.slots); j++ {
		idx := t.probe(home, j)
		s := &t.slots[idx]

		switch s.state {
		case slotEmpty:
			return -1
		case slotLive:
			if s.key == key {
				return idx
			}
		}
	}

	return -1
}

func (t *OpenTable[V]) Get(key string) (V, bool) {
	if idx := t.find(key); idx >= 0 {
		return t.slots[idx].value, true
	}

	var zero V
	return zero, false
}

func (t *OpenTable[V]) Contains(key string) bool {
	return t.find(key) >= 0
}

func (t *OpenTable[V]) Put(key string, value V) bool {
	if t.Load() >= openLoadThreshold {
		t.rehash(2 * len(t.slots))
	}

	for attempt := 0; ; attempt++ {
		if added, ok := t.insert(key, value); ok {
			return added
		}

		// Every probed slot is taken by other keys or their tombstones.
		if attempt == 0 {
			t.Compact()
		} else {
			t.rehash(2 * len(t.slots))
		}
	}
}

// Places the key at the first empty slot of its probe sequence, or at the
// slot already holding it, live or tombstoned. Tombstones of other keys are
// stepped over. Reports false when the bounded scan found neither.
func (t *OpenTable[V]) insert(key string, value V) (added bool, ok bool) {
	home := t.home(key)

	for j := 0; j <= len(t.slots); j++ {
		s := &t.slots[t.probe(home, j)]

		switch {
		case s.state == slotEmpty:
			*s = slot[V]{state: slotLive, key: key, value: value}
			t.size++

			return true, true
		case s.key == key:
			s.value = value
			if s.state == slotTombstone {
				s.state = slotLive
				t.size++

				return true, true
			}

			return false, true
		}
	}

	return false, false
}

func (t *OpenTable[V]) Remove(key string) bool {
	idx := t.find(key)
	if idx < 0 {
		return false
	}

	var zero V
	t.slots[idx].state = slotTombstone
	t.slots[idx].value = zero
	t.size--

	return true
}

// Resize is rejected when `capacity` is smaller than the number of live entries.
func (t *OpenTable[V]) Resize(capacity int) bool {
	if capacity < t.size {
		return false
	}

	t.rehash(capacity)

	return true
}

// Drops all tombstones by rebuilding the table at its current capacity.
func (t *OpenTable[V]) Compact() {
	t.rehash(len(t.slots))
}

func (t *OpenTable[V]) rehash(capacity int) {
	old := t.slots

	t.slots = make([]slot[V], primeCapacity(capacity))
	t.size = 0

	// Put may grow the table again, it always writes to the current t.slots.
	for i := range old {
		if old[i].isLive() {
			t.Put(old[i].key, old[i].value)
		}
	}
}

// Counts slots that have never been used since the last rebuild.
// Tombstones are not empty.
func (t *OpenTable[V]) EmptyBuckets() int {
	n := 0
	for i := range t.slots {
		if t.slots[i].state == slotEmpty {
			n++
		}
	}

	return n
}

func (t *OpenTable[V]) KeysAndValues() []Pair[V] {
	pairs := make([]Pair[V], 0, t.size)

	for it := t.Iter(); ; {
		p, ok := it.Next()
		if !ok {
			return pairs
		}

		pairs = append(pairs, p)
	}
}

func (t *OpenTable[V]) Clear() {
	clear(t.slots)
	t.size = 0
}

// Iter returns a fresh single pass iterator over the live entries in slot order.
// Mutating the table while iterating leads to unspecified results.
func (t *OpenTable[V]) Iter() *Iterator[V] {
	return &Iterator[V]{t: t}
}

func (t *OpenTable[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for it := t.Iter(); ; {
			p, ok := it.Next()
			if !ok || !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

func (t *OpenTable[V]) Stats() Stats {
	st := Stats{
		Size:     t.size,
		Capacity: len(t.slots),
		Load:     t.Load(),
	}

	for i := range t.slots {
		switch t.slots[i].state {
		case slotEmpty:
			st.EmptyBuckets++
		case slotTombstone:
			st.Tombstones++
		case slotLive:
			st.LongestChain = 1
		}
	}

	return st
}

func (t *OpenTable[V]) String() string {
	var b strings.Builder

	for i := range t.slots {
		s := &t.slots[i]

		switch s.state {
		case slotEmpty:
			fmt.Fprintf(&b, "%d: None\n", i)
		case slotLive:
			fmt.Fprintf(&b, "%d: K: %s V: %v\n", i, s.key, s.value)
		case slotTombstone:
			fmt.Fprintf(&b, "%d: K: %s TS\n", i, s.key)
		}
	}

	return b.String()
}

// Iterator walks the live slots of an OpenTable. The cursor lives here,
// not in the table, so several iterators may run side by side.
type Iterator[V any] struct {
	t    *OpenTable[V]
	next int
}

// Returns the next live entry, or false once the slots are exhausted.
func (it *Iterator[V]) Next() (Pair[V], bool) {
	for it.next < len(it.t.slots) {
		s := &it.t.slots[it.next]
		it.next++

		if s.isLive() {
			return Pair[V]{Key: s.key, Value: s.value}, true
		}
	}

	return Pair[V]{}, false
}
