// Package bitmap provides the fixed-width bit block used as the slice word
// of a natset.Set.
//
// A Block is 512 bits laid out as 8 uint64 words (one 64-byte cache line).
// The set stores one Block per occupied slice of the natural numbers and
// keeps no Block that is all zero.
//
// # Layout
//
//	position n  ->  block index n / 512,  bit n % 512
//	bit i       ->  word i / 64,          bit i % 64
//
// # Example Usage
//
//	idx, off := bitmap.Split(1000)  // idx = 1, off = 488
//	b := bitmap.Singleton(off)
//	b = b.Or(bitmap.Singleton(3))
//	b.ForEach(func(i uint) bool {
//	    fmt.Println(idx*bitmap.BlockBits + uint64(i))
//	    return true
//	})
//
// Operations return new values (Or, And, AndNot, Xor) or mutate through a
// pointer receiver (Set, Unset). No operation allocates.
package bitmap
