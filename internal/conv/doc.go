// Package conv provides safe integer type conversion utilities.
//
// natset elements are Go ints but are stored by unsigned slice index and
// exchanged with roaring64 as uint64. These helpers perform the bounds
// checks at those boundaries.
//
// For conversions that are provably safe by domain constraints (e.g., slice
// index times slice width of an element that was an int), use direct type
// casts instead to avoid overhead.
package conv
