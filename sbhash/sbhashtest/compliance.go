package sbhashtest

import (
	"sync"
	"testing"

	"github.com/gordian-engine/stretchbloom/internal/sbtest"
	"github.com/gordian-engine/stretchbloom/sbhash"
	"github.com/stretchr/testify/require"
)

type AlgorithmFactory func() sbhash.Algorithm

// TestAlgorithmCompliance runs the behaviors every [sbhash.Algorithm]
// must have, as subtests of t.
func TestAlgorithmCompliance(t *testing.T, f AlgorithmFactory) {
	t.Run("sum is deterministic", func(t *testing.T) {
		t.Parallel()

		a := f()
		in := []byte("deterministic_data")

		require.Equal(t, a.AppendSum(nil, in), a.AppendSum(nil, in))
	})

	t.Run("appends exactly Size bytes", func(t *testing.T) {
		t.Parallel()

		a := f()
		require.Positive(t, a.Size())

		prefix := []byte("prefix")
		dst := make([]byte, len(prefix), len(prefix)+a.Size())
		copy(dst, prefix)

		out := a.AppendSum(dst, []byte("hello"))
		require.Len(t, out, len(prefix)+a.Size())
		require.Equal(t, prefix, out[:len(prefix)])
		require.Equal(t, a.AppendSum(nil, []byte("hello")), out[len(prefix):])
	})

	t.Run("does not modify input", func(t *testing.T) {
		t.Parallel()

		a := f()
		in := sbtest.RandomDataForTest(t, 37)
		orig := append([]byte(nil), in...)

		_ = a.AppendSum(nil, in)
		require.Equal(t, orig, in)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		a := f()
		require.NotPanics(t, func() {
			_ = a.AppendSum(nil, nil)
		})
		require.Equal(t, a.AppendSum(nil, nil), a.AppendSum(nil, []byte{}))
		require.Len(t, a.AppendSum(nil, nil), a.Size())
	})

	t.Run("length separates trailing zeros", func(t *testing.T) {
		t.Parallel()

		a := f()

		// Each of these only differs from the previous by a trailing zero byte.
		in := []byte("abc")
		prev := a.AppendSum(nil, in)
		for range 16 {
			in = append(in, 0)
			cur := a.AppendSum(nil, in)
			require.NotEqual(t, prev, cur, "len=%d", len(in))
			prev = cur
		}
	})

	t.Run("single bit flip changes digest", func(t *testing.T) {
		t.Parallel()

		a := f()
		in := sbtest.RandomDataForTest(t, 24)
		base := a.AppendSum(nil, in)

		for i := range len(in) * 8 {
			flipped := append([]byte(nil), in...)
			flipped[i/8] ^= 1 << (i % 8)
			require.NotEqual(t, base, a.AppendSum(nil, flipped), "bit %d", i)
		}
	})

	t.Run("no collisions across distinct inputs", func(t *testing.T) {
		t.Parallel()

		a := f()
		inputs := sbtest.DistinctInputs(t, 2048, 40)

		seen := make(map[string]int, len(inputs))
		for i, in := range inputs {
			d := string(a.AppendSum(nil, in))
			j, ok := seen[d]
			require.Falsef(t, ok, "inputs %x and %x collided", inputs[j], in)
			seen[d] = i
		}
	})

	t.Run("safe for concurrent use", func(t *testing.T) {
		t.Parallel()

		a := f()
		in := sbtest.RandomDataForTest(t, 100)
		want := a.AppendSum(nil, in)

		var wg sync.WaitGroup
		results := make([][]byte, 8)
		for i := range results {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 100 {
					results[i] = a.AppendSum(results[i][:0], in)
				}
			}()
		}
		wg.Wait()

		for _, r := range results {
			require.Equal(t, want, r)
		}
	})
}
