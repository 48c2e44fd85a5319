// Package sbmurmur64a implements the 64-bit MurmurHash64A mixing hash
// used as the base digest throughout stretchbloom.
//
// Output is always encoded little-endian,
// so digests are identical across platforms.
package sbmurmur64a

import (
	"encoding/binary"

	"github.com/gordian-engine/stretchbloom/internal/sbword"
)

const (
	// Size is the digest width in bytes.
	Size = 8

	// Seed is the fixed initial accumulator value.
	Seed uint64 = 0x47E9D158EA7D4C05

	// M is the multiplicative mixing constant.
	M uint64 = 0xc6a4a7935bd1e995

	// R is the right-shift mixing distance.
	R = 47
)

// Sum64 returns the digest of in as an integer.
//
// Every 8-byte little-endian word of in is mixed into the accumulator,
// including a zero-padded final word when len(in) is not a multiple of 8.
// The trailing len(in)%8 bytes are then folded in again individually,
// from the highest one down to the first.
func Sum64(in []byte) uint64 {
	// The length is mixed in first,
	// so inputs sharing a prefix diverge immediately.
	h := Seed ^ (uint64(len(in)) * M)

	for k := range sbword.Words[uint64](in) {
		k *= M
		k ^= k >> R
		k *= M

		h ^= k
		h *= M
	}

	tail := in[len(in)&^7:]
	for i := len(tail) - 1; i >= 0; i-- {
		h ^= uint64(tail[i]) << (8 * i)
		if i == 0 {
			h *= M
		}
	}

	h ^= h >> R
	h *= M
	h ^= h >> R

	return h
}

// Sum returns the digest of in.
func Sum(in []byte) [Size]byte {
	var out [Size]byte
	binary.LittleEndian.PutUint64(out[:], Sum64(in))
	return out
}

// Hasher is an [sbhash.Algorithm] backed by [Sum64].
type Hasher struct{}

func (Hasher) Size() int { return Size }

func (Hasher) AppendSum(dst, in []byte) []byte {
	return binary.LittleEndian.AppendUint64(dst, Sum64(in))
}

func (Hasher) Name() string { return "murmur64a" }
