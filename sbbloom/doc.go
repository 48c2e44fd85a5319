// Package sbbloom contains a bloom filter driven by stretched digests.
//
// A [Filter] with a ByteCount of N holds exactly N*8 bits.
// Adding or querying a value computes the N-byte stretched digest
// of the value's byte view, and bit j of digest byte i
// corresponds directly to filter bit i*8+j.
// There are no separate index hashes:
// every digest bit acts as its own hash function.
//
// Because each value sets roughly half of all bits,
// the filter saturates after a small number of insertions.
// Use [EstimateFalsePositiveRate] and [MaxElements] when sizing a filter.
//
// # Concurrency
//
// A Filter has no internal locking.
// Any number of goroutines may call [*Filter.Exists] concurrently,
// but [*Filter.Add] must not run concurrently with any other method.
package sbbloom
