package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
//
// Feature tables use it to derive stable 64-bit identifiers for layer and
// property column names, so lookups avoid string comparisons on hot paths.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
