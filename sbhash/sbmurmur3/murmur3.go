// Package sbmurmur3 provides a 128-bit [sbhash.Algorithm]
// backed by MurmurHash3 x64_128.
package sbmurmur3

import (
	"encoding/binary"

	"github.com/spaolacci/murmur3"
)

const Size = 16

// Hasher is an [sbhash.Algorithm] backed by [murmur3.Sum128WithSeed].
// The zero value uses seed 0.
type Hasher struct {
	Seed uint32
}

func (Hasher) Size() int { return Size }

func (h Hasher) AppendSum(dst, in []byte) []byte {
	h1, h2 := murmur3.Sum128WithSeed(in, h.Seed)
	dst = binary.LittleEndian.AppendUint64(dst, h1)
	return binary.LittleEndian.AppendUint64(dst, h2)
}

func (Hasher) Name() string { return "murmur3-128" }
