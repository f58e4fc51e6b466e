package natset

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/natset/internal/conv"
)

// ToRoaring64 returns a roaring bitmap holding the elements of s.
//
// Elements are added in ascending order, slice by slice, which is the
// cheapest insertion order for roaring containers.
func (s *Set) ToRoaring64() *roaring64.Bitmap {
	rb := roaring64.New()
	for n := range s.All() {
		rb.Add(uint64(n))
	}
	return rb
}

// FromRoaring64 returns a set holding the elements of rb.
//
// Values above math.MaxInt cannot be represented and are reported with
// *ErrOverflow; no set is returned in that case.
func FromRoaring64(rb *roaring64.Bitmap) (*Set, error) {
	s := New()
	if rb == nil || rb.IsEmpty() {
		return s, nil
	}
	// The maximum bounds every element.
	if hi := rb.Maximum(); !fitsInt(hi) {
		return nil, &ErrOverflow{Value: hi}
	}
	it := rb.Iterator()
	for it.HasNext() {
		s.Insert(int(it.Next()))
	}
	return s, nil
}

func fitsInt(v uint64) bool {
	_, err := conv.Uint64ToInt(v)
	return err == nil
}
