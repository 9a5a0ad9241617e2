package primemap

import "iter"

// Pair is a single key/value association yielded by enumeration.
type Pair[V any] struct {
	Key   string
	Value V
}

// Map is the contract shared by OpenTable and ChainedTable.
// None of the implementations are safe for concurrent use.
type Map[V any] interface {
	Size() int
	Capacity() int

	// Puts a key, overwriting the value of an existing one.
	// Returns whether a new live key was added.
	Put(key string, value V) bool
	Get(key string) (V, bool)
	Contains(key string) bool
	// Returns false if the key was absent.
	Remove(key string) bool

	// Rebuilds the table with at least `capacity` buckets, rounded up to a prime.
	// Returns false if the requested capacity was rejected.
	Resize(capacity int) bool
	Clear()

	Load() float64
	EmptyBuckets() int
	KeysAndValues() []Pair[V]
	All() iter.Seq2[string, V]
	Stats() Stats
}

var (
	_ Map[any] = (*OpenTable[any])(nil)
	_ Map[any] = (*ChainedTable[any])(nil)
)
