// Package hash provides the content fingerprint used to identify packed
// regions.
package hash

import "github.com/cespare/xxhash/v2"

// Sum computes the xxHash64 fingerprint of the given bytes.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// SumString computes the xxHash64 fingerprint of the given string without
// copying it.
func SumString(data string) uint64 {
	return xxhash.Sum64String(data)
}
