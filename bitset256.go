/*
Package bitset256 implements a fixed-capacity set of the integers 0..255
packed into four 64-bit words.

The zero value is the empty set. FixedBitSet256 is a plain value: it can be
copied, compared with ==, used as a map key and embedded without allocation.
It carries no internal synchronization.
*/
package bitset256

import "math/bits"

const (
	// Capacity is the number of addressable indices, 0..Capacity-1
	Capacity = 256

	// NotFound is returned by the search and ranking methods
	// when no matching index exists
	NotFound = Capacity

	wordSize = 64
	numWords = Capacity / wordSize
	allOnes  = ^uint64(0)
)

// FixedBitSet256 is a set of integers in [0, 256).
// Index n is stored in bit n%64 of word n/64.
type FixedBitSet256 struct {
	words [numWords]uint64
}

// New creates a FixedBitSet256 with the given indices set.
// It panics if any index is >= Capacity.
func New(indices ...uint) FixedBitSet256 {
	var b FixedBitSet256
	for _, n := range indices {
		b.Set(n)
	}
	return b
}

// FromWords creates a FixedBitSet256 from raw storage words, word 0 holding indices 0..63
func FromWords(words [4]uint64) FixedBitSet256 {
	return FixedBitSet256{words: words}
}

// Words returns a copy of the storage words
func (b FixedBitSet256) Words() [4]uint64 {
	return b.words
}

// SetAll sets every bit
func (b *FixedBitSet256) SetAll() {
	b.words[0] = allOnes
	b.words[1] = allOnes
	b.words[2] = allOnes
	b.words[3] = allOnes
}

// UnsetAll clears every bit
func (b *FixedBitSet256) UnsetAll() {
	b.words[0] = 0
	b.words[1] = 0
	b.words[2] = 0
	b.words[3] = 0
}

// FlipAll inverts every bit
func (b *FixedBitSet256) FlipAll() {
	b.words[0] ^= allOnes
	b.words[1] ^= allOnes
	b.words[2] ^= allOnes
	b.words[3] ^= allOnes
}

// Set sets the bit at index n. It panics if n >= Capacity.
func (b *FixedBitSet256) Set(n uint) {
	checkIndex(n)
	b.words[n>>6] |= 1 << (n & 63)
}

// Unset clears the bit at index n. It panics if n >= Capacity.
func (b *FixedBitSet256) Unset(n uint) {
	checkIndex(n)
	b.words[n>>6] &^= 1 << (n & 63)
}

// Flip inverts the bit at index n. It panics if n >= Capacity.
func (b *FixedBitSet256) Flip(n uint) {
	checkIndex(n)
	b.words[n>>6] ^= 1 << (n & 63)
}

// Test reports whether the bit at index n is set. It panics if n >= Capacity.
func (b FixedBitSet256) Test(n uint) bool {
	checkIndex(n)
	return b.words[n>>6]&(1<<(n&63)) != 0
}

// Count returns the number of set bits
func (b FixedBitSet256) Count() int {
	return bits.OnesCount64(b.words[0]) +
		bits.OnesCount64(b.words[1]) +
		bits.OnesCount64(b.words[2]) +
		bits.OnesCount64(b.words[3])
}

// None reports whether no bit is set
func (b FixedBitSet256) None() bool {
	return b.words[0] == 0 &&
		b.words[1] == 0 &&
		b.words[2] == 0 &&
		b.words[3] == 0
}

// Any reports whether at least one bit is set
func (b FixedBitSet256) Any() bool {
	return !b.None()
}

// All reports whether every bit is set
func (b FixedBitSet256) All() bool {
	return b.words[0] == allOnes &&
		b.words[1] == allOnes &&
		b.words[2] == allOnes &&
		b.words[3] == allOnes
}
