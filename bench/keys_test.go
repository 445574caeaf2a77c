package dhash_test

import (
	"fmt"
	"testing"

	"github.com/cespare/xxhash/v2"

	"github.com/theflywheel/dhash"
)

var tableSizes = []int{1_000, 10_000, 100_000}

// buildKeys generates n distinct fixed-width keys.
func buildKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%010d", i)
	}
	return keys
}

// buildTable returns a table preloaded with the given keys.
func buildTable(keys []string) *dhash.Table {
	t := dhash.New()
	for i, key := range keys {
		t.Insert(key, fmt.Sprintf("value-%010d", i))
	}
	return t
}

// BenchmarkInsert measures building a whole table from scratch, resizes
// included, so one op is size inserts.
func BenchmarkInsert(b *testing.B) {
	for _, size := range tableSizes {
		b.Run(fmt.Sprintf("keys_%d", size), func(b *testing.B) {
			keys := buildKeys(size)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				table := dhash.New()
				for _, key := range keys {
					table.Insert(key, "value")
				}
				table.Destroy()
			}
		})
	}
}

func BenchmarkSearchHit(b *testing.B) {
	for _, size := range tableSizes {
		b.Run(fmt.Sprintf("keys_%d", size), func(b *testing.B) {
			keys := buildKeys(size)
			table := buildTable(keys)
			defer table.Destroy()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, ok := table.Search(keys[i%size]); !ok {
					b.Fatalf("key %q missing", keys[i%size])
				}
			}
		})
	}
}

func BenchmarkSearchMiss(b *testing.B) {
	for _, size := range tableSizes {
		b.Run(fmt.Sprintf("keys_%d", size), func(b *testing.B) {
			keys := buildKeys(size)
			table := buildTable(keys)
			defer table.Destroy()

			misses := make([]string, size)
			for i := range misses {
				misses[i] = fmt.Sprintf("absent-%010d", i)
			}
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, ok := table.Search(misses[i%size]); ok {
					b.Fatalf("unexpected hit for %q", misses[i%size])
				}
			}
		})
	}
}

func BenchmarkChurn(b *testing.B) {
	for _, size := range tableSizes {
		b.Run(fmt.Sprintf("keys_%d", size), func(b *testing.B) {
			keys := buildKeys(size)
			table := buildTable(keys)
			defer table.Destroy()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				key := keys[i%size]
				table.Delete(key)
				table.Insert(key, "churned")
			}
		})
	}
}

// BenchmarkXXHashBaseline measures raw xxhash throughput over the same
// key set. It is the floor a single hash pass costs, useful as the
// reference point when reading the Search numbers above (which pay for
// two polynomial hashes plus the probe walk).
func BenchmarkXXHashBaseline(b *testing.B) {
	for _, size := range tableSizes {
		b.Run(fmt.Sprintf("keys_%d", size), func(b *testing.B) {
			keys := buildKeys(size)
			b.ResetTimer()

			var sink uint64
			for i := 0; i < b.N; i++ {
				sink ^= xxhash.Sum64String(keys[i%size])
			}
			_ = sink
		})
	}
}
