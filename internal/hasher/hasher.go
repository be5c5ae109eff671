package hasher

import (
	"fmt"
	"hash/fnv"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// Hasher computes a fixed-width 64-bit hash of a byte sequence.
// Implementations must be deterministic: the same input always produces
// the same output, across calls and across process restarts.
type Hasher interface {
	Sum64(data []byte) uint64
}

// Func adapts a plain function to the Hasher interface. Useful for
// injecting deterministic stubs in tests.
type Func func(data []byte) uint64

// Sum64 calls f.
func (f Func) Sum64(data []byte) uint64 {
	return f(data)
}

// XXHash hashes with xxHash64. This is the default hash family.
type XXHash struct{}

// Sum64 returns the xxHash64 digest of data.
func (XXHash) Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Murmur3 hashes with MurmurHash3 (64-bit half of the x64 128-bit
// variant).
type Murmur3 struct{}

// Sum64 returns the Murmur3 digest of data.
func (Murmur3) Sum64(data []byte) uint64 {
	return murmur3.Sum64(data)
}

// FNV hashes with 64-bit FNV-1a from the standard library.
type FNV struct{}

// Sum64 returns the FNV-1a digest of data.
func (FNV) Sum64(data []byte) uint64 {
	h := fnv.New64a()
	h.Write(data)
	return h.Sum64()
}

// Default returns the hasher used when the caller does not supply one.
func Default() Hasher {
	return XXHash{}
}

// ByName returns the hasher registered under name. Known names are
// "xxhash", "murmur3" and "fnv".
func ByName(name string) (Hasher, error) {
	switch name {
	case "xxhash":
		return XXHash{}, nil
	case "murmur3":
		return Murmur3{}, nil
	case "fnv":
		return FNV{}, nil
	default:
		return nil, fmt.Errorf("unknown hash family: %q", name)
	}
}
