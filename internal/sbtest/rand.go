// Package sbtest contains helpers shared by tests across the module.
package sbtest

import (
	"crypto/sha256"
	"math/rand/v2"
	"testing"
)

// NewRand returns a ChaCha8-backed generator seeded from the test name,
// so that every run of a given test sees the same sequence.
func NewRand(t testing.TB) *rand.Rand {
	// Sha256 happens to be the right size for the chacha8 seed,
	// and this fits well anyway since that means
	// we are not limited by the length of any particular test name.
	seed := sha256.Sum256([]byte(t.Name()))
	return rand.New(rand.NewChaCha8(seed))
}

// RandomDataForTest returns a byte slice of size sz
// containing pseudorandom data, derived from a seed based on the test name.
func RandomDataForTest(t testing.TB, sz int) []byte {
	seed := sha256.Sum256([]byte(t.Name()))
	chacha := rand.NewChaCha8(seed)

	out := make([]byte, sz)

	if _, err := chacha.Read(out); err != nil {
		panic(err)
	}

	return out
}

// DistinctInputs returns n distinct pseudorandom byte slices
// with lengths in [0, maxLen].
// At most one of the returned slices is empty.
func DistinctInputs(t testing.TB, n, maxLen int) [][]byte {
	rng := NewRand(t)
	seen := make(map[string]struct{}, n)
	out := make([][]byte, 0, n)

	for len(out) < n {
		b := make([]byte, rng.IntN(maxLen+1))
		for i := range b {
			b[i] = byte(rng.Uint32())
		}
		if _, ok := seen[string(b)]; ok {
			continue
		}
		seen[string(b)] = struct{}{}
		out = append(out, b)
	}

	return out
}
