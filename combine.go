package bitset256

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/dgryski/go-metro"
)

const hashSeed = 1373

// And returns the intersection of b and o
func (b FixedBitSet256) And(o FixedBitSet256) FixedBitSet256 {
	b.InPlaceAnd(o)
	return b
}

// Or returns the union of b and o
func (b FixedBitSet256) Or(o FixedBitSet256) FixedBitSet256 {
	b.InPlaceOr(o)
	return b
}

// Xor returns the symmetric difference of b and o
func (b FixedBitSet256) Xor(o FixedBitSet256) FixedBitSet256 {
	b.InPlaceXor(o)
	return b
}

// AndNot returns the members of b that are not in o
func (b FixedBitSet256) AndNot(o FixedBitSet256) FixedBitSet256 {
	b.InPlaceAndNot(o)
	return b
}

// InPlaceAnd keeps only the members of b that are also in o
func (b *FixedBitSet256) InPlaceAnd(o FixedBitSet256) {
	b.words[0] &= o.words[0]
	b.words[1] &= o.words[1]
	b.words[2] &= o.words[2]
	b.words[3] &= o.words[3]
}

// InPlaceOr adds the members of o to b
func (b *FixedBitSet256) InPlaceOr(o FixedBitSet256) {
	b.words[0] |= o.words[0]
	b.words[1] |= o.words[1]
	b.words[2] |= o.words[2]
	b.words[3] |= o.words[3]
}

// InPlaceXor inverts in b every bit that is set in o
func (b *FixedBitSet256) InPlaceXor(o FixedBitSet256) {
	b.words[0] ^= o.words[0]
	b.words[1] ^= o.words[1]
	b.words[2] ^= o.words[2]
	b.words[3] ^= o.words[3]
}

// InPlaceAndNot removes the members of o from b
func (b *FixedBitSet256) InPlaceAndNot(o FixedBitSet256) {
	b.words[0] &^= o.words[0]
	b.words[1] &^= o.words[1]
	b.words[2] &^= o.words[2]
	b.words[3] &^= o.words[3]
}

// Intersects reports whether b and o share at least one member
func (b FixedBitSet256) Intersects(o FixedBitSet256) bool {
	return b.words[0]&o.words[0] != 0 ||
		b.words[1]&o.words[1] != 0 ||
		b.words[2]&o.words[2] != 0 ||
		b.words[3]&o.words[3] != 0
}

// IsSubsetOf reports whether every member of b is also in o
func (b FixedBitSet256) IsSubsetOf(o FixedBitSet256) bool {
	return b.AndNot(o).None()
}

// Equal reports whether b and o hold the same members. It is equivalent to b == o.
func (b FixedBitSet256) Equal(o FixedBitSet256) bool {
	return b.words == o.words
}

// Compare orders sets by their storage words, word 0 first, and returns
// -1, 0 or +1. The order is total and consistent with Equal, which makes it
// usable with slices.SortFunc and ordered containers. It is not the
// numeric order of the 256-bit value.
func (b FixedBitSet256) Compare(o FixedBitSet256) int {
	for i := range b.words {
		switch {
		case b.words[i] < o.words[i]:
			return -1
		case b.words[i] > o.words[i]:
			return 1
		}
	}
	return 0
}

// Hash returns a 64-bit hash of the members, stable across processes
func (b FixedBitSet256) Hash() uint64 {
	buf := b.wordBytes()
	return metro.Hash64(buf[:], hashSeed)
}

// Hash128 returns a 128-bit hash of the members as two halves,
// suitable for double hashing
func (b FixedBitSet256) Hash128() (uint64, uint64) {
	buf := b.wordBytes()
	return metro.Hash128(buf[:], hashSeed)
}

// String implements fmt.Stringer, e.g. "{3 7 17 80}"
func (b FixedBitSet256) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i := range b.Members() {
		if sb.Len() > 1 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatUint(uint64(i), 10))
	}
	sb.WriteByte('}')
	return sb.String()
}

func (b FixedBitSet256) wordBytes() [numWords * 8]byte {
	var buf [numWords * 8]byte
	for i, word := range b.words {
		binary.LittleEndian.PutUint64(buf[i*8:], word)
	}
	return buf
}
