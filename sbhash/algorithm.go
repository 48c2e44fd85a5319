// Package sbhash defines the [Algorithm] interface
// for the fixed-width digests that drive stretching and bloom filters.
//
// Implementations live in subpackages:
// [github.com/gordian-engine/stretchbloom/sbhash/sbmurmur64a] is the default,
// with MurmurHash3 and xxHash alternatives alongside it.
// Every implementation should pass the suite in
// [github.com/gordian-engine/stretchbloom/sbhash/sbhashtest].
package sbhash

// Algorithm is a non-cryptographic hash with a fixed output width.
//
// To be allocation-efficient, the Algorithm implementation
// must append its output to dst, instead of creating a new byte slice.
// Algorithm must not retain references to dst or in.
//
// Furthermore, Algorithm methods must be safe to call concurrently.
type Algorithm interface {
	// Size is the number of bytes AppendSum appends.
	Size() int

	// AppendSum appends the digest of in to dst and returns the result.
	AppendSum(dst, in []byte) []byte

	// Name is a short human-readable identifier, used in log output.
	Name() string
}
