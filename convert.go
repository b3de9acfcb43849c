package bitset256

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
)

// ToBitSet returns a dynamically sized bitset of length Capacity holding the same members.
// The result does not share storage with b.
func (b FixedBitSet256) ToBitSet() *bitset.BitSet {
	words := b.words
	return bitset.From(words[:])
}

// FromBitSet creates a FixedBitSet256 from the members of s.
// A nil s yields the empty set. It returns an error wrapping
// ErrIndexOutOfRange if s holds an index >= Capacity.
func FromBitSet(s *bitset.BitSet) (FixedBitSet256, error) {
	var b FixedBitSet256
	if s == nil {
		return b, nil
	}
	for i, ok := s.NextSet(0); ok; i, ok = s.NextSet(i + 1) {
		if i >= Capacity {
			return FixedBitSet256{}, fmt.Errorf("%w: bitset holds %d", ErrIndexOutOfRange, i)
		}
		b.words[i>>6] |= 1 << (i & 63)
	}
	return b, nil
}

// ToRoaring returns a new roaring bitmap holding the same members
func (b FixedBitSet256) ToRoaring() *roaring.Bitmap {
	rb := roaring.New()
	for i := range b.Members() {
		rb.Add(uint32(i))
	}
	return rb
}

// FromRoaring creates a FixedBitSet256 from the members of rb.
// A nil rb yields the empty set. It returns an error wrapping
// ErrIndexOutOfRange if rb holds a value >= Capacity.
func FromRoaring(rb *roaring.Bitmap) (FixedBitSet256, error) {
	var b FixedBitSet256
	if rb == nil || rb.IsEmpty() {
		return b, nil
	}
	if top := rb.Maximum(); top >= Capacity {
		return FixedBitSet256{}, fmt.Errorf("%w: roaring bitmap holds %d", ErrIndexOutOfRange, top)
	}
	rb.Iterate(func(x uint32) bool {
		b.words[x>>6] |= 1 << (x & 63)
		return true
	})
	return b, nil
}
