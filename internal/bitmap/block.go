package bitmap

import "math/bits"

// BlockSize is the number of uint64 words per block (512 bits = 64 bytes).
// Chosen for cache line alignment.
const BlockSize = 8

// WordBits is the number of bits per word.
const WordBits = 64

// BlockBits is the number of bits per block.
const BlockBits = BlockSize * WordBits // 512 bits

// Block is a fixed-width bit block covering BlockBits consecutive positions.
//
// Bit i of the block lives in word i/WordBits at position i%WordBits, so
// bit 0 of word 0 is the least significant position of the whole block.
//
// Block is a value type: assignment copies all words.
//
//	┌────────────────────────────────────────────────────┐
//	│ word 0      │ word 1       │ ... │ word 7          │
//	│ bits [0,63] │ bits [64,127]│     │ bits [448,511]  │
//	└────────────────────────────────────────────────────┘
type Block [BlockSize]uint64

// Split returns the block index for position n and the bit offset
// inside that block.
//
//go:nosplit
func Split(n uint64) (index uint64, offset uint) {
	return n / BlockBits, uint(n % BlockBits)
}

// wordMask returns the word index and single-bit mask for bit i.
//
//go:nosplit
func wordMask(i uint) (w uint, mask uint64) {
	return i / WordBits, uint64(1) << (i % WordBits)
}

// Singleton returns a block with only bit i set.
func Singleton(i uint) Block {
	var b Block
	b.Set(i)
	return b
}

// Set sets bit i.
func (b *Block) Set(i uint) {
	w, mask := wordMask(i)
	b[w] |= mask
}

// Unset clears bit i.
func (b *Block) Unset(i uint) {
	w, mask := wordMask(i)
	b[w] &^= mask
}

// Test reports whether bit i is set.
func (b *Block) Test(i uint) bool {
	w, mask := wordMask(i)
	return b[w]&mask != 0
}

// IsZero reports whether no bit is set.
func (b *Block) IsZero() bool {
	var acc uint64
	for _, w := range b {
		acc |= w
	}
	return acc == 0
}

// Count returns the number of set bits.
func (b *Block) Count() int {
	n := 0
	for _, w := range b {
		n += bits.OnesCount64(w)
	}
	return n
}

// Or returns b | o.
func (b Block) Or(o Block) Block {
	for i := range b {
		b[i] |= o[i]
	}
	return b
}

// And returns b & o.
func (b Block) And(o Block) Block {
	for i := range b {
		b[i] &= o[i]
	}
	return b
}

// AndNot returns b &^ o.
func (b Block) AndNot(o Block) Block {
	for i := range b {
		b[i] &^= o[i]
	}
	return b
}

// Xor returns b ^ o.
func (b Block) Xor(o Block) Block {
	for i := range b {
		b[i] ^= o[i]
	}
	return b
}

// Intersects reports whether b & o has any set bit.
// Stops at the first overlapping word.
func (b *Block) Intersects(o *Block) bool {
	for i := range b {
		if b[i]&o[i] != 0 {
			return true
		}
	}
	return false
}

// Covers reports whether every bit set in o is also set in b.
func (b *Block) Covers(o *Block) bool {
	for i := range b {
		if o[i]&^b[i] != 0 {
			return false
		}
	}
	return true
}

// Min returns the lowest set bit. ok is false for a zero block.
func (b *Block) Min() (i uint, ok bool) {
	for w, word := range b {
		if word != 0 {
			return uint(w*WordBits + bits.TrailingZeros64(word)), true
		}
	}
	return 0, false
}

// Max returns the highest set bit. ok is false for a zero block.
func (b *Block) Max() (i uint, ok bool) {
	for w := BlockSize - 1; w >= 0; w-- {
		if word := b[w]; word != 0 {
			return uint(w*WordBits + WordBits - 1 - bits.LeadingZeros64(word)), true
		}
	}
	return 0, false
}

// ForEach calls fn for each set bit in ascending order.
// Iteration stops early if fn returns false; ForEach then returns false.
func (b *Block) ForEach(fn func(i uint) bool) bool {
	for w, word := range b {
		base := uint(w * WordBits)
		for word != 0 {
			if !fn(base + uint(bits.TrailingZeros64(word))) {
				return false
			}
			word &= word - 1 // clear lowest bit
		}
	}
	return true
}
