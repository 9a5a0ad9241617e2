package primemap

// Returns the smallest prime greater or equal to `n`.
// An even `n` is bumped to the next odd number first, so NextPrime(2) is 3.
// Values below 1 are treated as 1.
func NextPrime(n int) int {
	if n < 1 {
		n = 1
	}

	if n%2 == 0 {
		n++
	}

	for !IsPrime(n) {
		n += 2
	}

	return n
}

// Reports whether `n` is prime, using trial division by odd factors.
func IsPrime(n int) bool {
	if n == 2 || n == 3 {
		return true
	}

	if n < 2 || n%2 == 0 {
		return false
	}

	for factor := 3; factor*factor <= n; factor += 2 {
		if n%factor == 0 {
			return false
		}
	}

	return true
}

// Capacity used when rebuilding a table: primes, 2 included, are kept as is.
func primeCapacity(n int) int {
	if IsPrime(n) {
		return n
	}

	return NextPrime(n)
}
