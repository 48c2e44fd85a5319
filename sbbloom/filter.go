package sbbloom

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/bits-and-blooms/bitset"
	"github.com/gordian-engine/stretchbloom/sbhash"
	"github.com/gordian-engine/stretchbloom/sbhash/sbmurmur64a"
	"github.com/gordian-engine/stretchbloom/sbstretch"
)

// Filter is a probabilistic set of T values.
// It never reports a false negative.
//
// Create instances with [New].
type Filter[T any] struct {
	alg  sbhash.Algorithm
	view func(T) []byte

	byteCount int

	bits *bitset.BitSet
}

// Config is the configuration for [New].
type Config[T any] struct {
	// Number of stretched digest bytes per value.
	// The filter holds ByteCount*8 bits.
	ByteCount int

	// Converts a value to the bytes that are hashed.
	// It must be deterministic, and it must not retain the value.
	ViewBytes func(T) []byte

	// Digest algorithm for stretching.
	// If nil, [sbmurmur64a.Hasher] is used.
	Algorithm sbhash.Algorithm
}

// validate panics if there are any illegal settings in the configuration.
func (c Config[T]) validate(log *slog.Logger) {
	var panicErrs error

	if log == nil {
		panicErrs = errors.Join(
			panicErrs,
			errors.New("BUG: log must not be nil"),
		)
	}

	if c.ByteCount <= 0 {
		panicErrs = errors.Join(
			panicErrs,
			fmt.Errorf("Config.ByteCount must be positive (got %d)", c.ByteCount),
		)
	}

	if c.ViewBytes == nil {
		panicErrs = errors.Join(
			panicErrs,
			errors.New("BUG: Config.ViewBytes must not be nil"),
		)
	}

	if c.Algorithm != nil && c.Algorithm.Size() < sbstretch.SeedBytes {
		panicErrs = errors.Join(
			panicErrs,
			fmt.Errorf(
				"Config.Algorithm %s produces %d bytes; at least %d are required",
				c.Algorithm.Name(), c.Algorithm.Size(), sbstretch.SeedBytes,
			),
		)
	}

	if panicErrs != nil {
		panic(panicErrs)
	}
}

// New returns a new, empty Filter.
// It panics if cfg is invalid.
func New[T any](log *slog.Logger, cfg Config[T]) *Filter[T] {
	cfg.validate(log)

	alg := cfg.Algorithm
	if alg == nil {
		alg = sbmurmur64a.Hasher{}
	}

	f := &Filter[T]{
		alg:  alg,
		view: cfg.ViewBytes,

		byteCount: cfg.ByteCount,

		bits: bitset.MustNew(uint(cfg.ByteCount) * 8),
	}

	log.Debug(
		"Created bloom filter",
		"byte_count", cfg.ByteCount,
		"bit_count", f.BitCount(),
		"algorithm", alg.Name(),
	)

	return f
}

// Add records v in the filter.
// Bits are only ever set, never cleared.
func (f *Filter[T]) Add(v T) {
	d := f.digest(v)
	for i, b := range d {
		for j := range 8 {
			if b>>j&1 == 1 {
				f.bits.Set(uint(i*8 + j))
			}
		}
	}
}

// Exists reports whether v may have been added to f.
// A false result is definitive;
// a true result may be a false positive.
func (f *Filter[T]) Exists(v T) bool {
	d := f.digest(v)
	for i, b := range d {
		for j := range 8 {
			if b>>j&1 == 1 && !f.bits.Test(uint(i*8+j)) {
				return false
			}
		}
	}
	return true
}

// BitCount returns the fixed number of bits in f, ByteCount*8.
func (f *Filter[T]) BitCount() uint {
	return uint(f.byteCount) * 8
}

// ByteCount returns the stretched digest length configured for f.
func (f *Filter[T]) ByteCount() int {
	return f.byteCount
}

// SetBits returns the number of bits currently set in f.
// It never decreases.
func (f *Filter[T]) SetBits() uint {
	return f.bits.Count()
}

// EstimatedFalsePositiveRate is shorthand for
// [EstimateFalsePositiveRate] with f's bit count.
func (f *Filter[T]) EstimatedFalsePositiveRate(n uint) float64 {
	return EstimateFalsePositiveRate(f.BitCount(), n)
}

func (f *Filter[T]) digest(v T) []byte {
	return sbstretch.Sum(f.alg, f.view(v), f.byteCount)
}
