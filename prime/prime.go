// Package prime provides the table-sizing primitives for dhash.
//
// Double hashing only visits every bucket before repeating when the table
// size is prime, so the hash table never picks a bucket count directly:
// it asks NextPrime for the smallest prime at or above the capacity it wants.
package prime

// IsPrime reports whether n is a prime number.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n == 2 || n == 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}

	// Every prime above 3 is of the form 6k+-1, so trial division only
	// needs to test those candidates up to sqrt(n).
	for i := 5; i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest prime greater than or equal to n.
func NextPrime(n int) int {
	if n <= 2 {
		return 2
	}
	for !IsPrime(n) {
		n++
	}
	return n
}
