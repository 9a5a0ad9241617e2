package primemap

// Capacity of the frequency table built by FindMode.
const modeTableCapacity = 11

// FindMode returns every value occurring most often in `values`, along with
// that frequency. Ties are all returned, in the enumeration order of the
// frequency table. An empty input yields no modes and a zero frequency.
func FindMode(values []string, opts ...Option) ([]string, int) {
	return Modes(Frequencies(values, modeTableCapacity, opts...))
}

// Frequencies counts the occurrences of every value in a chaining table
// created with `capacity` buckets.
func Frequencies(values []string, capacity int, opts ...Option) *ChainedTable[int] {
	freq := NewChainedTable[int](capacity, opts...)

	for _, v := range values {
		n, _ := freq.Get(v)
		freq.Put(v, n+1)
	}

	return freq
}

// Modes returns the keys holding the highest count in `freq`, and that count.
func Modes(freq Map[int]) ([]string, int) {
	var (
		modes   []string
		maxFreq int
	)

	for v, n := range freq.All() {
		switch {
		case n > maxFreq:
			maxFreq = n
			modes = append(modes[:0], v)
		case n == maxFreq:
			modes = append(modes, v)
		}
	}

	return modes, maxFreq
}
