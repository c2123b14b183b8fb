package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"strconv"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hashing.
// As an example, the Sha256 function is a HashFunc.
// This lets us talk about hashing functions in a generic way.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents. This is useful for hashing
// objects so that they can be easily compared.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the SHA256 hashing of the given Hashable
// as a hex-encoded string. If the Hashable fails to
// update the hashing, an error is returned.
func Sha256(hashable Hashable) (string, error) {
	h := sha256.New()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Xxh3 returns the 64-bit XXH3 hash of the given Hashable, hex-encoded.
// It is much faster than Sha256 and is the default for in-memory
// deduplication, where collisions are resolved by Equals anyway.
func Xxh3(hashable Hashable) (string, error) {
	return sum64(xxh3.New(), hashable)
}

// XxHash64 returns the 64-bit xxHash of the given Hashable, hex-encoded.
func XxHash64(hashable Hashable) (string, error) {
	return sum64(xxhash.New64(), hashable)
}

func sum64(h hash.Hash64, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return strconv.FormatUint(h.Sum64(), 16), nil
}
