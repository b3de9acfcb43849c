package bitset256

// SetRange sets every bit with index in [start, end], both inclusive.
// It panics if start > end or end >= Capacity.
func (b *FixedBitSet256) SetRange(start, end uint) {
	checkRange(start, end)
	first, last := start>>6, end>>6

	if first == last {
		b.words[first] |= spanMask(start&63, end&63)
		return
	}

	// tail of the first word, whole words in between, head of the last word
	b.words[first] |= allOnes << (start & 63)
	for i := first + 1; i < last; i++ {
		b.words[i] = allOnes
	}
	b.words[last] |= allOnes >> (63 - (end & 63))
}

// UnsetRange clears every bit with index in [start, end], both inclusive.
// It panics if start > end or end >= Capacity.
func (b *FixedBitSet256) UnsetRange(start, end uint) {
	checkRange(start, end)
	for i := start >> 6; i <= end>>6; i++ {
		b.words[i] &^= wordRangeMask(i, start, end)
	}
}

// FlipRange inverts every bit with index in [start, end], both inclusive.
// It panics if start > end or end >= Capacity.
func (b *FixedBitSet256) FlipRange(start, end uint) {
	checkRange(start, end)
	for i := start >> 6; i <= end>>6; i++ {
		b.words[i] ^= wordRangeMask(i, start, end)
	}
}

// TestRange reports whether every bit with index in [start, end] is set.
// It panics if start > end or end >= Capacity.
func (b FixedBitSet256) TestRange(start, end uint) bool {
	checkRange(start, end)
	for i := start >> 6; i <= end>>6; i++ {
		mask := wordRangeMask(i, start, end)
		if b.words[i]&mask != mask {
			return false
		}
	}
	return true
}

// spanMask returns a word with bits lo..hi set, 0 <= lo <= hi <= 63
func spanMask(lo, hi uint) uint64 {
	return (allOnes << lo) & (allOnes >> (63 - hi))
}

// wordRangeMask returns the bits of word w that fall inside [start, end].
// w must lie between start>>6 and end>>6.
func wordRangeMask(w, start, end uint) uint64 {
	lo, hi := uint(0), uint(63)
	if w == start>>6 {
		lo = start & 63
	}
	if w == end>>6 {
		hi = end & 63
	}
	return spanMask(lo, hi)
}
