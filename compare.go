package natset

import "maps"

// Equal reports whether a and b hold the same elements.
//
// Since no empty slice is ever stored, comparing the slice mappings
// directly is equivalent to comparing elements.
func Equal(a, b *Set) bool {
	return maps.Equal(a.slicesOrNil(), b.slicesOrNil())
}

// Disjoint reports whether a and b have no element in common.
func Disjoint(a, b *Set) bool {
	small, large := smallerFirst(a, b)
	if large.IsEmpty() {
		return true
	}
	for idx, blk := range small.slicesOrNil() {
		other, ok := large.slices[idx]
		if ok && blk.Intersects(&other) {
			return false
		}
	}
	return true
}

// Subset reports whether every element of a is also in b.
func Subset(a, b *Set) bool {
	for idx, blk := range a.slicesOrNil() {
		other := b.block(idx)
		if !other.Covers(&blk) {
			return false
		}
	}
	return true
}

// Equal reports whether s and o hold the same elements.
func (s *Set) Equal(o *Set) bool { return Equal(s, o) }

// SubsetOf reports whether every element of s is also in o.
func (s *Set) SubsetOf(o *Set) bool { return Subset(s, o) }

// DisjointFrom reports whether s and o have no element in common.
func (s *Set) DisjointFrom(o *Set) bool { return Disjoint(s, o) }
