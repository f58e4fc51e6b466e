package natset

import (
	"iter"
	"maps"
	"slices"

	"github.com/hupe1980/natset/internal/bitmap"
)

// SliceWidth is the number of consecutive integers covered by one slice.
const SliceWidth = bitmap.BlockBits

// Set is a set of non-negative integers.
//
// Membership is stored as a sparse mapping from slice index (n / SliceWidth)
// to a fixed-width bit block. Blocks that become all zero are removed, so
// memory is proportional to the number of occupied slices, not to the
// largest element.
//
// The zero value is an empty set ready to use. A Set is not safe for
// concurrent mutation; copy it with Clone, not by assignment.
type Set struct {
	slices map[uint64]bitmap.Block
}

// New returns an empty set.
func New() *Set {
	return &Set{}
}

// From returns a set holding every element of seq.
// It panics with *ErrNegativeElement if seq yields a negative value.
func From(seq iter.Seq[int]) *Set {
	return New().InsertAll(seq)
}

// FromSlice returns a set holding the given elements.
func FromSlice(xs ...int) *Set {
	return From(slices.Values(xs))
}

// FromRange returns the set {lo, lo+1, ..., hi}. Both bounds are
// inclusive; the set is empty when hi < lo.
func FromRange(lo, hi int) *Set {
	s := New()
	if hi < lo {
		return s
	}
	mustValidate(lo)
	for n := lo; n <= hi; n++ {
		s.Insert(n)
		if n == hi { // avoid overflow at math.MaxInt
			break
		}
	}
	return s
}

// FromFunc returns a set holding transform(x) for every x in seq.
//
// If transform yields a negative value, FromFunc stops and returns an
// *ErrNegativeElement; no partial set is returned.
func FromFunc(seq iter.Seq[int], transform func(int) int) (*Set, error) {
	s := New()
	for x := range seq {
		n := transform(x)
		if err := Validate(n); err != nil {
			return nil, err
		}
		s.Insert(n)
	}
	return s, nil
}

func locate(n int) (uint64, uint) {
	mustValidate(n)
	return bitmap.Split(uint64(n))
}

// Contains reports whether n is a member of s.
// It panics with *ErrNegativeElement if n < 0.
func (s *Set) Contains(n int) bool {
	idx, off := locate(n)
	if s == nil {
		return false
	}
	b, ok := s.slices[idx]
	return ok && b.Test(off)
}

// Insert adds n to s and returns s.
// It panics with *ErrNegativeElement if n < 0.
func (s *Set) Insert(n int) *Set {
	idx, off := locate(n)
	if s.slices == nil {
		s.slices = make(map[uint64]bitmap.Block)
	}
	b := s.slices[idx]
	b.Set(off)
	s.slices[idx] = b
	return s
}

// InsertAll adds every element of seq to s and returns s.
func (s *Set) InsertAll(seq iter.Seq[int]) *Set {
	for n := range seq {
		s.Insert(n)
	}
	return s
}

// Delete removes n from s and returns s. Deleting a non-member is a no-op.
// It panics with *ErrNegativeElement if n < 0.
func (s *Set) Delete(n int) *Set {
	idx, off := locate(n)
	if s == nil {
		return s
	}
	b, ok := s.slices[idx]
	if !ok {
		return s
	}
	b.Unset(off)
	if b.IsZero() {
		delete(s.slices, idx)
	} else {
		s.slices[idx] = b
	}
	return s
}

// Clear removes all elements and returns s.
func (s *Set) Clear() *Set {
	if s != nil {
		clear(s.slices)
	}
	return s
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	if s == nil {
		return New()
	}
	return &Set{slices: maps.Clone(s.slices)}
}

// IsEmpty reports whether s has no elements.
func (s *Set) IsEmpty() bool {
	return s == nil || len(s.slices) == 0
}

// Len returns the number of elements in s.
//
// The count is computed from the stored blocks on every call; it costs
// O(occupied slices) and no counter is kept in sync with mutations.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, b := range s.slices {
		n += b.Count()
	}
	return n
}

// Slices returns the number of occupied slices.
func (s *Set) Slices() int {
	if s == nil {
		return 0
	}
	return len(s.slices)
}

// sortedIndexes returns the occupied slice indexes in ascending order.
func (s *Set) sortedIndexes() []uint64 {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.slices))
}

// All returns an iterator over the elements of s in ascending order.
//
// The iterator is restartable: each range over it starts from the
// smallest element. Mutating s while iterating is not supported.
func (s *Set) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, idx := range s.sortedIndexes() {
			b := s.slices[idx]
			base := int(idx * SliceWidth)
			if !b.ForEach(func(off uint) bool {
				return yield(base + int(off))
			}) {
				return
			}
		}
	}
}

// ToSlice returns the elements of s in ascending order.
func (s *Set) ToSlice() []int {
	out := make([]int, 0, s.Len())
	for n := range s.All() {
		out = append(out, n)
	}
	return out
}

// Min returns the smallest element. ok is false if s is empty.
func (s *Set) Min() (n int, ok bool) {
	if s.IsEmpty() {
		return 0, false
	}
	idx := slices.Min(slices.Collect(maps.Keys(s.slices)))
	b := s.slices[idx]
	off, _ := b.Min()
	return int(idx*SliceWidth) + int(off), true
}

// Max returns the largest element. ok is false if s is empty.
func (s *Set) Max() (n int, ok bool) {
	if s.IsEmpty() {
		return 0, false
	}
	idx := slices.Max(slices.Collect(maps.Keys(s.slices)))
	b := s.slices[idx]
	off, _ := b.Max()
	return int(idx*SliceWidth) + int(off), true
}
