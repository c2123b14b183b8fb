package hashing

import (
	"bytes"
	"encoding/binary"
	"hash"
	"math"
)

type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))

	return err
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}

type HashableBytes []byte

func (b HashableBytes) UpdateHash(h hash.Hash) error {
	_, err := h.Write(b)

	return err
}

func (b HashableBytes) Equals(other HashableBytes) bool {
	return bytes.Equal(b, other)
}

type HashableInt int

func (i HashableInt) UpdateHash(h hash.Hash) error {
	return writeUint64(h, uint64(i)) //nolint:gosec
}

func (i HashableInt) Equals(other HashableInt) bool {
	return i == other
}

type HashableInt64 int64

func (i HashableInt64) UpdateHash(h hash.Hash) error {
	return writeUint64(h, uint64(i)) //nolint:gosec
}

func (i HashableInt64) Equals(other HashableInt64) bool {
	return i == other
}

// HashableFloat64 hashes the IEEE-754 bits of the value. Positive and
// negative zero hash identically since they compare equal.
type HashableFloat64 float64

func (f HashableFloat64) UpdateHash(h hash.Hash) error {
	v := float64(f)
	if v == 0 {
		v = 0
	}

	return writeUint64(h, math.Float64bits(v))
}

func (f HashableFloat64) Equals(other HashableFloat64) bool {
	return f == other
}

type HashableBool bool

func (b HashableBool) UpdateHash(h hash.Hash) error {
	var v uint64
	if b {
		v = 1
	}

	return writeUint64(h, v)
}

func (b HashableBool) Equals(other HashableBool) bool {
	return b == other
}

func writeUint64(h hash.Hash, v uint64) error {
	_, err := h.Write(binary.LittleEndian.AppendUint64(nil, v))

	return err
}
