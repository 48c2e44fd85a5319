// Package sbstretch turns a fixed-width digest into a digest of any length.
//
// The input is hashed once to seed an [Xorshift64] generator.
// Each generator output is then encoded as 8 little-endian bytes and hashed
// again, and those digests are concatenated until the requested length
// is reached, truncating the final one if necessary.
//
// The result depends only on the algorithm, the input, and the
// requested length; no state carries over between calls.
// Because chunks are produced in the same order regardless of length,
// a shorter stretched digest is always a prefix of a longer one
// for the same algorithm and input.
package sbstretch
