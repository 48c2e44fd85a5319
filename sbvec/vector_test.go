package sbvec_test

import (
	"maps"
	"slices"
	"testing"

	"github.com/gordian-engine/stretchbloom/sbvec"
	"github.com/stretchr/testify/require"
)

func collect[T any](v *sbvec.Vector[T]) []T {
	var out []T
	for _, x := range v.All() {
		out = append(out, x)
	}
	return out
}

func TestVector_size(t *testing.T) {
	t.Parallel()

	v := sbvec.New[float64](10)
	require.Equal(t, 10, v.Capacity())
	require.Zero(t, v.Size())
	require.True(t, v.Empty())

	v.PushBack(1.3)
	require.Equal(t, 10, v.Capacity())
	require.Equal(t, 1, v.Size())

	for i := range 20 {
		v.PushBack(float64(i))
	}

	require.Equal(t, 21, v.Size())
	require.GreaterOrEqual(t, v.Capacity(), 21)

	// Growth is amortized: far fewer reallocations than pushes.
	require.Less(t, v.Grows(), 5)

	v.ShrinkToFit()
	require.Equal(t, 21, v.Capacity())
	require.Equal(t, v.Size(), v.Capacity())

	got, err := v.At(0)
	require.NoError(t, err)
	require.Equal(t, 1.3, got)

	got, err = v.At(20)
	require.NoError(t, err)
	require.Equal(t, 19.0, got)
}

func TestVector_growthPreservesOrder(t *testing.T) {
	t.Parallel()

	var v sbvec.Vector[int]
	want := make([]int, 0, 1000)
	for i := range 1000 {
		v.PushBack(i * 3)
		want = append(want, i*3)
	}

	require.Equal(t, want, collect(&v))
	require.LessOrEqual(t, v.Grows(), 11)
}

func TestVector_EmplaceBack(t *testing.T) {
	t.Parallel()

	type pair struct {
		A int
		B float64
	}

	v := sbvec.New[pair](0)

	p := v.EmplaceBack()
	p.A, p.B = 1, 3.5847

	p = v.EmplaceBack()
	p.A, p.B = 8, 6.9420

	first, err := v.At(0)
	require.NoError(t, err)
	require.Equal(t, pair{A: 1, B: 3.5847}, first)

	second, err := v.At(1)
	require.NoError(t, err)
	require.Equal(t, pair{A: 8, B: 6.9420}, second)
}

func TestVector_At_outOfRange(t *testing.T) {
	t.Parallel()

	v := sbvec.New[int](4)
	v.PushBack(7)

	for _, i := range []int{-1, 1, 3, 100} {
		_, err := v.At(i)

		var oor sbvec.OutOfRangeError
		require.ErrorAs(t, err, &oor)
		require.Equal(t, sbvec.OutOfRangeError{Index: i, Size: 1}, oor)
	}

	require.ErrorAs(t, v.Set(1, 0), new(sbvec.OutOfRangeError))
	require.NoError(t, v.Set(0, 9))

	got, err := v.At(0)
	require.NoError(t, err)
	require.Equal(t, 9, got)
}

func TestOutOfRangeError_Error(t *testing.T) {
	t.Parallel()

	err := sbvec.OutOfRangeError{Index: 5, Size: 2}
	require.Equal(t, "index 5 out of range for size 2", err.Error())
}

func TestVector_Clone(t *testing.T) {
	t.Parallel()

	odd := sbvec.New[int](10)
	for i := 1; i < 20; i += 2 {
		odd.PushBack(i)
	}

	c := odd.Clone()
	require.Equal(t, odd.Size(), c.Size())
	require.Equal(t, odd.Capacity(), c.Capacity())
	require.Equal(t, collect(odd), collect(c))

	// The copy has its own backing store.
	require.NoError(t, c.Set(0, 100))
	first, err := odd.At(0)
	require.NoError(t, err)
	require.Equal(t, 1, first)

	c.PushBack(21)
	require.Equal(t, 10, odd.Size())
}

func TestVector_Clone_empty(t *testing.T) {
	t.Parallel()

	var v sbvec.Vector[string]
	c := v.Clone()
	require.True(t, c.Empty())
	require.Zero(t, c.Capacity())
}

func TestVector_Move(t *testing.T) {
	t.Parallel()

	even := sbvec.New[int](10)
	for i := 0; i < 20; i += 2 {
		even.PushBack(i)
	}

	// Keep a pointer into the current store
	// to show the same store is handed over.
	p := even.EmplaceBack()
	*p = 20

	wantSize, wantCap := even.Size(), even.Capacity()
	want := collect(even)

	m := even.Move()
	require.Equal(t, wantSize, m.Size())
	require.Equal(t, wantCap, m.Capacity())
	require.Equal(t, want, collect(m))

	*p = 99
	last, err := m.Back()
	require.NoError(t, err)
	require.Equal(t, 99, last)

	require.True(t, even.Empty())
	require.Zero(t, even.Capacity())

	// The moved-from vector is still usable.
	even.PushBack(1)
	require.Equal(t, 1, even.Size())
}

func TestVector_Move_empty(t *testing.T) {
	t.Parallel()

	var v sbvec.Vector[int]
	m := v.Move()
	require.True(t, m.Empty())
	require.True(t, v.Empty())
}

func TestVector_Reserve(t *testing.T) {
	t.Parallel()

	v := sbvec.New[int](2)
	v.PushBack(1)
	v.PushBack(2)

	v.Reserve(50)
	require.Equal(t, 50, v.Capacity())
	require.Equal(t, []int{1, 2}, collect(v))

	// Reserve never shrinks.
	v.Reserve(3)
	require.Equal(t, 50, v.Capacity())

	grows := v.Grows()
	for i := range 48 {
		v.PushBack(i)
	}
	require.Equal(t, grows, v.Grows())
}

func TestVector_Resize(t *testing.T) {
	t.Parallel()

	v := sbvec.New[int](0)
	for i := range 5 {
		v.PushBack(i + 1)
	}

	v.Resize(8)
	require.Equal(t, []int{1, 2, 3, 4, 5, 0, 0, 0}, collect(v))

	v.Resize(2)
	require.Equal(t, []int{1, 2}, collect(v))

	// Shrinking then growing again exposes zero values, not stale ones.
	v.Resize(4)
	require.Equal(t, []int{1, 2, 0, 0}, collect(v))

	require.Panics(t, func() { v.Resize(-1) })
}

func TestVector_FrontBackPop(t *testing.T) {
	t.Parallel()

	var v sbvec.Vector[string]

	_, err := v.Front()
	require.ErrorIs(t, err, sbvec.ErrEmpty)
	_, err = v.Back()
	require.ErrorIs(t, err, sbvec.ErrEmpty)
	_, err = v.PopBack()
	require.ErrorIs(t, err, sbvec.ErrEmpty)

	v.PushBack("a")
	v.PushBack("b")

	front, err := v.Front()
	require.NoError(t, err)
	require.Equal(t, "a", front)

	back, err := v.PopBack()
	require.NoError(t, err)
	require.Equal(t, "b", back)
	require.Equal(t, 1, v.Size())

	back, err = v.Back()
	require.NoError(t, err)
	require.Equal(t, "a", back)
}

func TestVector_Clear(t *testing.T) {
	t.Parallel()

	v := sbvec.New[int](4)
	v.PushBack(1)
	v.PushBack(2)

	v.Clear()
	require.True(t, v.Empty())
	require.Equal(t, 4, v.Capacity())

	v.Resize(2)
	require.Equal(t, []int{0, 0}, collect(v))
}

func TestVector_All_earlyBreak(t *testing.T) {
	t.Parallel()

	v := sbvec.New[int](0)
	for i := range 10 {
		v.PushBack(i)
	}

	seen := map[int]int{}
	for i, x := range v.All() {
		seen[i] = x
		if i == 2 {
			break
		}
	}
	require.Equal(t, []int{0, 1, 2}, slices.Sorted(maps.Keys(seen)))
}

func TestNew_negativeCapacity(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { sbvec.New[int](-1) })
}
