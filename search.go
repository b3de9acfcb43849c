package bitset256

import (
	"iter"
	"math/bits"
)

// FindFirst returns the lowest set index, or NotFound if the set is empty
func (b FixedBitSet256) FindFirst() uint {
	for i, word := range b.words {
		if word != 0 {
			return uint(i<<6 + bits.TrailingZeros64(word))
		}
	}
	return NotFound
}

// FindLast returns the highest set index, or NotFound if the set is empty
func (b FixedBitSet256) FindLast() uint {
	for i := numWords - 1; i >= 0; i-- {
		if word := b.words[i]; word != 0 {
			return uint(i<<6 + bits.Len64(word) - 1)
		}
	}
	return NotFound
}

// FindNext returns the smallest set index strictly greater than last,
// or NotFound if there is none. Any last >= Capacity yields NotFound.
func (b FixedBitSet256) FindNext(last uint) uint {
	if last >= Capacity-1 {
		return NotFound
	}
	next := last + 1
	w := next >> 6

	// the rest of the word holding next, then the following words
	if word := b.words[w] >> (next & 63); word != 0 {
		return next + uint(bits.TrailingZeros64(word))
	}
	for w++; w < numWords; w++ {
		if word := b.words[w]; word != 0 {
			return w<<6 + uint(bits.TrailingZeros64(word))
		}
	}
	return NotFound
}

// Select returns the index of the (n+1)-th set bit in ascending order,
// so Select(0) == FindFirst(). It returns NotFound if fewer than n+1 bits
// are set and panics if n >= Capacity.
func (b FixedBitSet256) Select(n uint) uint {
	checkIndex(n)
	for i, word := range b.words {
		c := uint(bits.OnesCount64(word))
		if n < c {
			for ; n > 0; n-- {
				word &= word - 1 // clear the lowest set bit
			}
			return uint(i<<6 + bits.TrailingZeros64(word))
		}
		// rank is relative to the words not yet scanned
		n -= c
	}
	return NotFound
}

// Rank returns the number of set bits with index <= n.
// It panics if n >= Capacity.
func (b FixedBitSet256) Rank(n uint) int {
	checkIndex(n)
	w := n >> 6
	rnk := bits.OnesCount64(b.words[w] & (allOnes >> (63 - (n & 63))))
	for i := uint(0); i < w; i++ {
		rnk += bits.OnesCount64(b.words[i])
	}
	return rnk
}

// Members returns an iterator over the set indices in ascending order.
// The iterator works on a copy taken when Members is called, so it can be
// restarted and is unaffected by later mutation of b.
func (b FixedBitSet256) Members() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		for i := b.FindFirst(); i != NotFound; i = b.FindNext(i) {
			if !yield(i) {
				return
			}
		}
	}
}

// AppendMembers appends the set indices to dst in ascending order and returns the extended slice
func (b FixedBitSet256) AppendMembers(dst []uint) []uint {
	for i, word := range b.words {
		for word != 0 {
			dst = append(dst, uint(i<<6+bits.TrailingZeros64(word)))
			word &= word - 1
		}
	}
	return dst
}
