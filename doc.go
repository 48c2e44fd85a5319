// Package stretchbloom contains non-cryptographic hashing primitives
// that produce digests of any requested length,
// and a bloom filter built on those digests.
//
// The pieces, leaves first:
//
//   - [github.com/gordian-engine/stretchbloom/sbhash/sbmurmur64a]
//     is the base digest, an 8-byte MurmurHash64A variant.
//   - [github.com/gordian-engine/stretchbloom/sbstretch]
//     stretches any [github.com/gordian-engine/stretchbloom/sbhash.Algorithm]
//     to an arbitrary length by seeding an xorshift generator
//     from the input's digest and hashing each generator output.
//   - [github.com/gordian-engine/stretchbloom/sbbloom]
//     maps every bit of a stretched digest directly onto a filter bit.
//   - [github.com/gordian-engine/stretchbloom/sbvec]
//     is a growable array with explicit copy and move operations.
//
// None of these types lock internally.
// See each package for its concurrency rules.
package stretchbloom
