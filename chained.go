package primemap

import (
	"fmt"
	"iter"
	"strings"
)

// The table is grown before an insert once there are as many entries as buckets.
const chainedLoadThreshold = 1.0

// ChainedTable is a hash map resolving collisions with separate chaining:
// every bucket holds a linked list of the entries hashed to it.
// Removal unlinks the node, there are no tombstones.
type ChainedTable[V any] struct {
	buckets []chain[V]
	size    int

	hashFunc HashFunc
}

// Returns a new chaining table with at least `capacity` buckets.
func NewChainedTable[V any](capacity int, opts ...Option) *ChainedTable[V] {
	o := buildOptions(opts)

	return &ChainedTable[V]{
		buckets:  make([]chain[V], NextPrime(capacity)),
		hashFunc: o.hashFunc,
	}
}

func (t *ChainedTable[V]) Size() int {
	return t.size
}

func (t *ChainedTable[V]) Capacity() int {
	return len(t.buckets)
}

func (t *ChainedTable[V]) Load() float64 {
	return float64(t.size) / float64(len(t.buckets))
}

func (t *ChainedTable[V]) bucket(key string) *chain[V] {
	return &t.buckets[t.hashFunc(key)%uint64(len(t.buckets))]
}

func (t *ChainedTable[V]) Get(key string) (V, bool) {
	if n := t.bucket(key).find(key); n != nil {
		return n.value, true
	}

	var zero V
	return zero, false
}

func (t *ChainedTable[V]) Contains(key string) bool {
	return t.bucket(key).find(key) != nil
}

func (t *ChainedTable[V]) Put(key string, value V) bool {
	if t.Load() >= chainedLoadThreshold {
		t.rehash(2 * len(t.buckets))
	}

	b := t.bucket(key)
	if n := b.find(key); n != nil {
		n.value = value
		return false
	}

	b.push(key, value)
	t.size++

	return true
}

func (t *ChainedTable[V]) Remove(key string) bool {
	if !t.bucket(key).remove(key) {
		return false
	}

	t.size--

	return true
}

// Resize is rejected when `capacity` is less than 1.
// A capacity below the current size is accepted, reinsertion grows the table as needed.
func (t *ChainedTable[V]) Resize(capacity int) bool {
	if capacity < 1 {
		return false
	}

	t.rehash(capacity)

	return true
}

func (t *ChainedTable[V]) rehash(capacity int) {
	old := t.buckets

	t.buckets = make([]chain[V], primeCapacity(capacity))
	t.size = 0

	for i := range old {
		for n := old[i].head; n != nil; n = n.next {
			t.Put(n.key, n.value)
		}
	}
}

// Counts buckets with an empty chain.
func (t *ChainedTable[V]) EmptyBuckets() int {
	n := 0
	for i := range t.buckets {
		if t.buckets[i].length == 0 {
			n++
		}
	}

	return n
}

func (t *ChainedTable[V]) KeysAndValues() []Pair[V] {
	pairs := make([]Pair[V], 0, t.size)
	for k, v := range t.All() {
		pairs = append(pairs, Pair[V]{Key: k, Value: v})
	}

	return pairs
}

func (t *ChainedTable[V]) Clear() {
	clear(t.buckets)
	t.size = 0
}

// All yields the entries in bucket order, then chain order.
func (t *ChainedTable[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for i := range t.buckets {
			for n := t.buckets[i].head; n != nil; n = n.next {
				if !yield(n.key, n.value) {
					return
				}
			}
		}
	}
}

func (t *ChainedTable[V]) Stats() Stats {
	st := Stats{
		Size:     t.size,
		Capacity: len(t.buckets),
		Load:     t.Load(),
	}

	for i := range t.buckets {
		l := t.buckets[i].length
		if l == 0 {
			st.EmptyBuckets++
		}

		st.LongestChain = max(st.LongestChain, l)
	}

	return st
}

func (t *ChainedTable[V]) String() string {
	var b strings.Builder

	for i := range t.buckets {
		fmt.Fprintf(&b, "%d:", i)
		for n := t.buckets[i].head; n != nil; n = n.next {
			fmt.Fprintf(&b, " -> (%s: %v)", n.key, n.value)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
