package natset

import "github.com/hupe1980/natset/internal/bitmap"

// Binary operations below never modify their arguments and never share
// storage with them. A nil *Set argument is treated as the empty set.

// smallerFirst orders a and b by number of occupied slices.
func smallerFirst(a, b *Set) (small, large *Set) {
	if a.Slices() <= b.Slices() {
		return a, b
	}
	return b, a
}

func (s *Set) block(idx uint64) bitmap.Block {
	if s == nil {
		return bitmap.Block{}
	}
	return s.slices[idx]
}

// Union returns a new set holding the elements of a or b.
func Union(a, b *Set) *Set {
	small, large := smallerFirst(a, b)
	out := large.Clone()
	if small.IsEmpty() {
		return out
	}
	if out.slices == nil {
		out.slices = make(map[uint64]bitmap.Block, len(small.slices))
	}
	for idx, blk := range small.slices {
		// OR with a non-zero block is never zero.
		out.slices[idx] = out.slices[idx].Or(blk)
	}
	return out
}

// Intersection returns a new set holding the elements of both a and b.
//
// Cost is bounded by the smaller operand: its slices are visited and
// probed in the larger one.
func Intersection(a, b *Set) *Set {
	small, large := smallerFirst(a, b)
	out := New()
	if small.IsEmpty() || large.IsEmpty() {
		return out
	}
	for idx, blk := range small.slices {
		other, ok := large.slices[idx]
		if !ok {
			continue
		}
		if and := blk.And(other); !and.IsZero() {
			out.put(idx, and)
		}
	}
	return out
}

// Difference returns a new set holding the elements of a that are not in b.
func Difference(a, b *Set) *Set {
	out := New()
	if a.IsEmpty() {
		return out
	}
	if b.IsEmpty() {
		return a.Clone()
	}
	for idx, blk := range a.slices {
		if diff := blk.AndNot(b.block(idx)); !diff.IsZero() {
			out.put(idx, diff)
		}
	}
	return out
}

// SymmetricDifference returns a new set holding the elements that are in
// exactly one of a and b.
func SymmetricDifference(a, b *Set) *Set {
	small, large := smallerFirst(a, b)
	out := large.Clone()
	for idx, blk := range small.slicesOrNil() {
		if x := out.block(idx).Xor(blk); x.IsZero() {
			delete(out.slices, idx)
		} else {
			out.put(idx, x)
		}
	}
	return out
}

// put stores a non-zero block, allocating the map on first use.
func (s *Set) put(idx uint64, b bitmap.Block) {
	if s.slices == nil {
		s.slices = make(map[uint64]bitmap.Block)
	}
	s.slices[idx] = b
}

func (s *Set) slicesOrNil() map[uint64]bitmap.Block {
	if s == nil {
		return nil
	}
	return s.slices
}
