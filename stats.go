package primemap

type Stats struct {
	Size         int
	Capacity     int
	EmptyBuckets int
	// Open addressing only, always 0 for chaining.
	Tombstones int
	// Longest bucket chain. Open addressing slots hold at most one entry.
	LongestChain int
	Load         float64
}
