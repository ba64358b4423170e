// Package luck is the deterministic randomness source for procedural
// population. The same key always maps to the same value, in any
// process, so world generation never has to be persisted.
package luck

import (
	"github.com/cespare/xxhash/v2"
)

// Value maps an arbitrary string key to a reproducible number in [0, 1).
func Value(key string) float64 {
	// top 53 bits of the hash, the widest mantissa a float64 can hold
	return float64(xxhash.Sum64String(key)>>11) / (1 << 53)
}
