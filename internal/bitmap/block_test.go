package bitmap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlock_Basic(t *testing.T) {
	var b Block

	assert.True(t, b.IsZero())
	assert.Equal(t, 0, b.Count())

	b.Set(100)
	assert.True(t, b.Test(100))
	assert.False(t, b.Test(200))
	assert.False(t, b.IsZero())
	assert.Equal(t, 1, b.Count())

	// Idempotent
	b.Set(100)
	assert.Equal(t, 1, b.Count())

	b.Unset(100)
	assert.True(t, b.IsZero())

	// Unset of a clear bit is a no-op
	b.Unset(7)
	assert.True(t, b.IsZero())
}

func TestBlock_WordBoundaries(t *testing.T) {
	for _, i := range []uint{0, 63, 64, 127, 128, 448, 511} {
		b := Singleton(i)
		assert.True(t, b.Test(i), "bit %d", i)
		assert.Equal(t, 1, b.Count(), "bit %d", i)

		lo, ok := b.Min()
		require.True(t, ok)
		assert.Equal(t, i, lo)

		hi, ok := b.Max()
		require.True(t, ok)
		assert.Equal(t, i, hi)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name   string
		n      uint64
		index  uint64
		offset uint
	}{
		{"zero", 0, 0, 0},
		{"last in first block", 511, 0, 511},
		{"first in second block", 512, 1, 0},
		{"mid", 1000, 1, 488},
		{"large", 1 << 40, (1 << 40) / BlockBits, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, off := Split(tt.n)
			assert.Equal(t, tt.index, idx)
			assert.Equal(t, tt.offset, off)
		})
	}
}

func TestBlock_Algebra(t *testing.T) {
	var a, b Block
	for i := uint(100); i < 300; i++ {
		a.Set(i)
	}
	for i := uint(200); i < 400; i++ {
		b.Set(i)
	}

	or := a.Or(b)
	assert.Equal(t, 300, or.Count())

	and := a.And(b)
	assert.Equal(t, 100, and.Count())
	assert.True(t, and.Test(200))
	assert.False(t, and.Test(199))

	andNot := a.AndNot(b)
	assert.Equal(t, 100, andNot.Count())
	assert.True(t, andNot.Test(100))
	assert.False(t, andNot.Test(200))

	xor := a.Xor(b)
	assert.Equal(t, 200, xor.Count())

	// Value receivers leave operands untouched
	assert.Equal(t, 200, a.Count())
	assert.Equal(t, 200, b.Count())
}

func TestBlock_Predicates(t *testing.T) {
	a := Singleton(5).Or(Singleton(70))
	b := Singleton(70)
	c := Singleton(300)

	assert.True(t, a.Intersects(&b))
	assert.False(t, a.Intersects(&c))

	assert.True(t, a.Covers(&b))
	assert.False(t, b.Covers(&a))
	assert.True(t, a.Covers(&a))

	var zero Block
	assert.True(t, a.Covers(&zero))
	assert.False(t, zero.Intersects(&a))
}

func TestBlock_MinMaxEmpty(t *testing.T) {
	var b Block

	_, ok := b.Min()
	assert.False(t, ok)

	_, ok = b.Max()
	assert.False(t, ok)
}

func TestBlock_ForEachAscending(t *testing.T) {
	rng := rand.New(rand.NewSource(4711))

	var b Block
	want := make(map[uint]bool)
	for range 100 {
		i := uint(rng.Intn(BlockBits))
		b.Set(i)
		want[i] = true
	}

	var got []uint
	b.ForEach(func(i uint) bool {
		got = append(got, i)
		return true
	})

	assert.Len(t, got, len(want))
	assert.Equal(t, len(want), b.Count())
	for k := 1; k < len(got); k++ {
		assert.Less(t, got[k-1], got[k])
	}
	for _, i := range got {
		assert.True(t, want[i])
	}
}

func TestBlock_ForEachStop(t *testing.T) {
	var b Block
	b.Set(1)
	b.Set(2)
	b.Set(300)

	var got []uint
	completed := b.ForEach(func(i uint) bool {
		got = append(got, i)
		return len(got) < 2
	})

	assert.False(t, completed)
	assert.Equal(t, []uint{1, 2}, got)
}
