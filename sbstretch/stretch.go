package sbstretch

import (
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/gordian-engine/stretchbloom/sbhash"
	"github.com/gordian-engine/stretchbloom/sbhash/sbmurmur64a"
)

// SeedBytes is the number of leading digest bytes used to seed the generator,
// and the number of bytes hashed to produce each chunk.
const SeedBytes = 8

// Seed returns the generator for in,
// initialized from the first [SeedBytes] of alg's digest of in.
//
// A nil alg selects [sbmurmur64a.Hasher].
func Seed(alg sbhash.Algorithm, in []byte) Xorshift64 {
	alg = resolve(alg)

	var buf [32]byte
	d := alg.AppendSum(buf[:0], in)
	return Xorshift64{State: binary.LittleEndian.Uint64(d[:SeedBytes])}
}

// Sum returns the n-byte stretched digest of in.
//
// A nil alg selects [sbmurmur64a.Hasher].
// Sum panics if n is negative
// or if alg produces fewer than [SeedBytes] bytes.
func Sum(alg sbhash.Algorithm, in []byte, n int) []byte {
	if n < 0 {
		panic(fmt.Errorf("BUG: stretched digest length must not be negative (got %d)", n))
	}
	return AppendSum(alg, make([]byte, 0, n), in, n)
}

// AppendSum appends the n-byte stretched digest of in to dst
// and returns the extended slice.
// It has the same requirements as [Sum].
func AppendSum(alg sbhash.Algorithm, dst, in []byte, n int) []byte {
	if n < 0 {
		panic(fmt.Errorf("BUG: stretched digest length must not be negative (got %d)", n))
	}

	alg = resolve(alg)
	width := alg.Size()

	if n == 0 {
		return dst
	}

	rng := Seed(alg, in)

	dst = slices.Grow(dst, n)

	var block [SeedBytes]byte
	chunk := make([]byte, 0, width)
	for written := 0; written < n; written += width {
		binary.LittleEndian.PutUint64(block[:], rng.Next())
		chunk = alg.AppendSum(chunk[:0], block[:])

		dst = append(dst, chunk[:min(width, n-written)]...)
	}

	return dst
}

// Chunks returns the number of base digests needed for an n-byte output
// from an algorithm of the given width.
func Chunks(width, n int) int {
	return (n + width - 1) / width
}

func resolve(alg sbhash.Algorithm) sbhash.Algorithm {
	if alg == nil {
		return sbmurmur64a.Hasher{}
	}

	if sz := alg.Size(); sz < SeedBytes {
		panic(fmt.Errorf(
			"BUG: algorithm %s produces %d bytes; stretching requires at least %d",
			alg.Name(), sz, SeedBytes,
		))
	}

	return alg
}
