package dhash

import (
	"strings"

	"github.com/theflywheel/dhash/prime"
)

const (
	// initialBaseSize seeds the size-class formula: the bucket count for
	// size class k is the smallest prime >= initialBaseSize << k, so a
	// fresh table starts with 53 buckets.
	initialBaseSize = 50

	// hashPrimeA and hashPrimeB parameterize the two polynomial hashes
	// that drive double hashing. Any two distinct small primes work;
	// distinct multipliers keep the probe step independent of the
	// starting bucket.
	hashPrimeA = 151
	hashPrimeB = 163

	// Load-factor thresholds in percent. Inserts grow the table above
	// maxLoadPercent, deletes shrink it below minLoadPercent.
	maxLoadPercent = 70
	minLoadPercent = 10
)

type slotState uint8

const (
	slotEmpty slotState = iota
	slotTombstone
	slotOccupied
)

// entry is one bucket slot. A tombstone marks a slot whose entry was
// deleted: probe sequences must continue through it to reach entries
// inserted behind it, but inserts may reclaim it.
type entry struct {
	state slotState
	key   string
	value string
}

// Table is a string-keyed hash table using open addressing with double
// hashing. The bucket count is always prime so every probe sequence
// visits every bucket before repeating.
//
// A Table is not safe for concurrent use; callers that share one across
// goroutines must provide their own locking.
type Table struct {
	sizeIndex int
	size      int
	count     int
	slots     []entry
}

// newSized creates an empty table at the given size class.
func newSized(sizeIndex int) *Table {
	size := prime.NextPrime(initialBaseSize << sizeIndex)
	return &Table{
		sizeIndex: sizeIndex,
		size:      size,
		slots:     make([]entry, size),
	}
}

// New creates an empty table at the base size class (53 buckets).
func New() *Table {
	return newSized(0)
}

// Destroy releases the bucket array and every entry it holds. The table
// must not be used afterwards.
func (t *Table) Destroy() {
	t.slots = nil
	t.size = 0
	t.sizeIndex = 0
	t.count = 0
}

// Len returns the number of live entries in the table.
func (t *Table) Len() int {
	return t.count
}

// stringHash computes the polynomial hash of s under multiplier a,
// reduced modulo m:
//
//	hash = (sum of a^(len-i+1) * s[i]) mod m
//
// The accumulator is reduced every step so the exponential term never
// wraps. Iterating from the last byte lets the power climb from a^2
// instead of materializing a^(len+1) up front.
func stringHash(s string, a, m int) int {
	if m <= 1 {
		return 0
	}
	mod := int64(m)
	mult := int64(a) % mod
	pow := mult * mult % mod
	var hash int64
	for i := len(s) - 1; i >= 0; i-- {
		hash = (hash + pow*int64(s[i])) % mod
		pow = pow * mult % mod
	}
	return int(hash)
}

// probe returns the starting bucket and probe step for key. The step is
// derived from the second hash taken modulo size-1, keeping it in
// [1, size-1]: never zero modulo the table size, and coprime with the
// prime size, so successive probes cycle through every bucket.
func (t *Table) probe(key string) (home, step int) {
	home = stringHash(key, hashPrimeA, t.size)
	step = stringHash(key, hashPrimeB, t.size-1) + 1
	return home, step
}

// Insert adds a key/value pair to the table, overwriting the value in
// place if the key is already present. The table stores its own copies
// of both strings and never retains the caller's backing arrays.
func (t *Table) Insert(key, value string) {
	// The check counts the incoming entry so the threshold is never
	// exceeded, even for the instant after this insert returns.
	if (t.count+1)*100/t.size > maxLoadPercent {
		t.resize(t.sizeIndex + 1)
	}

	home, step := t.probe(key)
	idx := home
	free := -1 // first reusable slot seen on the probe path

	for i := 0; i < t.size; i++ {
		slot := &t.slots[idx]
		switch slot.state {
		case slotEmpty:
			// The key is not in the table. Claim the earliest
			// reusable slot on the path so tombstones get recycled.
			if free < 0 {
				free = idx
			}
			t.occupy(free, key, value)
			return
		case slotTombstone:
			if free < 0 {
				free = idx
			}
		case slotOccupied:
			if slot.key == key {
				slot.value = strings.Clone(value)
				return
			}
		}
		idx = (idx + step) % t.size
	}

	// Every slot on the cycle was occupied or tombstoned. The grow
	// threshold keeps empties around, so a full cycle without a match
	// can only end at a tombstone recorded above.
	t.occupy(free, key, value)
}

func (t *Table) occupy(idx int, key, value string) {
	t.slots[idx] = entry{
		state: slotOccupied,
		key:   strings.Clone(key),
		value: strings.Clone(value),
	}
	t.count++
}

// Search returns the value stored under key, or ("", false) if the key
// is not present. It never modifies the table.
func (t *Table) Search(key string) (string, bool) {
	home, step := t.probe(key)
	idx := home

	for i := 0; i < t.size; i++ {
		slot := &t.slots[idx]
		switch slot.state {
		case slotEmpty:
			// Insert never leaves a gap before an entry on the
			// same probe path, so the key cannot be further along.
			return "", false
		case slotOccupied:
			if slot.key == key {
				return slot.value, true
			}
		}
		idx = (idx + step) % t.size
	}
	return "", false
}

// Delete removes key from the table, or does nothing if it is absent.
// The slot is tombstoned rather than emptied so probe sequences that
// pass through it stay intact.
func (t *Table) Delete(key string) {
	// The load check runs before the key is even looked up, matching
	// the insert-side check; deleting an absent key can still shrink.
	if t.count*100/t.size < minLoadPercent {
		t.resize(t.sizeIndex - 1)
	}

	home, step := t.probe(key)
	idx := home

	for i := 0; i < t.size; i++ {
		slot := &t.slots[idx]
		switch slot.state {
		case slotEmpty:
			return
		case slotOccupied:
			if slot.key == key {
				*slot = entry{state: slotTombstone}
				t.count--
				return
			}
		}
		idx = (idx + step) % t.size
	}
}

// resize rebuilds the table at the given size class. Shrinking below
// the base class is refused. Every live entry is re-inserted against
// the new bucket count; tombstones are dropped, which is how deleted
// slots are finally reclaimed. The swap at the end is what callers
// observe: before it the receiver is untouched, after it the rebuild
// is complete.
func (t *Table) resize(sizeIndex int) {
	if sizeIndex < 0 {
		return
	}

	fresh := newSized(sizeIndex)
	for i := range t.slots {
		slot := &t.slots[i]
		if slot.state == slotOccupied {
			fresh.Insert(slot.key, slot.value)
		}
	}

	t.sizeIndex = fresh.sizeIndex
	t.size = fresh.size
	t.count = fresh.count
	t.slots = fresh.slots
}
