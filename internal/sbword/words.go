// Package sbword reads fixed-width little-endian words out of byte slices.
package sbword

import (
	"iter"
	"unsafe"
)

// Word is the set of unsigned integer widths that [Words] can produce.
type Word interface {
	~uint16 | ~uint32 | ~uint64
}

// Width returns the number of bytes in a W.
func Width[W Word]() int {
	var w W
	return int(unsafe.Sizeof(w))
}

// Count returns the number of words [Words] yields for n input bytes.
func Count[W Word](n int) int {
	w := Width[W]()
	return (n + w - 1) / w
}

// Words returns an iterator over b in W-sized little-endian words.
//
// If len(b) is not a multiple of the word width,
// the final word holds the remaining bytes in its low positions
// and its high bytes are zero.
// An empty b yields nothing.
//
// The returned sequence does not copy b,
// so b must not be modified while ranging over the sequence.
// Each range over the sequence starts again from the first word.
func Words[W Word](b []byte) iter.Seq[W] {
	width := Width[W]()

	return func(yield func(W) bool) {
		for off := 0; off < len(b); off += width {
			end := min(off+width, len(b))
			if !yield(load[W](b[off:end])) {
				return
			}
		}
	}
}

// load decodes up to one word of little-endian bytes.
func load[W Word](b []byte) W {
	var w W
	for i := len(b) - 1; i >= 0; i-- {
		w = w<<8 | W(b[i])
	}
	return w
}
