// Package sbxxhash provides a 64-bit [sbhash.Algorithm] backed by XXH64.
package sbxxhash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

const Size = 8

// Hasher is an [sbhash.Algorithm] backed by [xxhash.Sum64].
type Hasher struct{}

func (Hasher) Size() int { return Size }

func (Hasher) AppendSum(dst, in []byte) []byte {
	return binary.LittleEndian.AppendUint64(dst, xxhash.Sum64(in))
}

func (Hasher) Name() string { return "xxh64" }
