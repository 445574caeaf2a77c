/*
Package dhash provides a string-keyed hash table built on open addressing
with double hashing.

Table maps string keys to string values with amortized O(1) insert, search,
and delete. Collisions are resolved by probing alternate buckets rather than
chaining, with the probe step derived from a second hash function to avoid
clustering. The bucket array is resized as entries come and go, so the load
factor stays inside a fixed band.

Basic usage:

	import "github.com/theflywheel/dhash"

	t := dhash.New()
	defer t.Destroy()

	t.Insert("chien", "dog")

	if value, ok := t.Search("chien"); ok {
		fmt.Println("Value:", value)
	}

	t.Delete("chien")

Features:

  - Open addressing with double hashing for collision resolution
  - Prime bucket counts (via the prime package) so probe sequences cover
    the whole table
  - Automatic growth above 70% load and shrinkage below 10% load, with a
    floor at the initial capacity of 53 buckets
  - Deleted slots are tombstoned to keep probe chains intact, and
    reclaimed on insert and resize
  - The table owns independent copies of every key and value it stores

Implementation Details:

Each bucket slot is empty, tombstoned, or occupied. Two polynomial hashes of
the key are computed against the current bucket count; the first picks the
starting bucket and the second supplies a non-zero probe step, so over a
prime-sized table successive probes visit every bucket before repeating.

Resizing rebuilds the table at the adjacent size class: every live entry is
re-inserted against the new bucket count and tombstones are dropped. Growth
doubles the size class and shrinkage halves it, never going below the base
class.

A Table is not safe for concurrent use. Callers that share a table across
goroutines must serialize access themselves, for example with a sync.Mutex
around every operation.
*/
package dhash
