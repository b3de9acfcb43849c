package bitset256

import "testing"

func rangeBySet(start, end uint) FixedBitSet256 {
	var b FixedBitSet256
	for k := start; k <= end; k++ {
		b.Set(k)
	}
	return b
}

func TestSetRangeMatchesSet(t *testing.T) {
	for start := uint(0); start < Capacity; start++ {
		for end := start; end < Capacity; end++ {
			var b FixedBitSet256
			b.SetRange(start, end)
			if want := rangeBySet(start, end); b != want {
				t.Fatalf("SetRange(%v, %v) should be %v, got %v", start, end, want, b)
			}
		}
	}
}

func TestSetRangeKeepsExistingBits(t *testing.T) {
	b := New(0, 100, 255)
	b.SetRange(60, 70)
	want := New(0, 100, 255).Or(rangeBySet(60, 70))
	if b != want {
		t.Fatalf("should be %v, got %v", want, b)
	}
}

func TestSetRangeWordBoundaries(t *testing.T) {
	cases := []struct{ start, end uint }{
		{0, 63}, {0, 64}, {63, 64}, {64, 127}, {1, 254}, {0, 255}, {127, 128}, {191, 192}, {65, 190},
	}
	for _, c := range cases {
		var b FixedBitSet256
		b.SetRange(c.start, c.end)
		if got, want := b.Count(), int(c.end-c.start+1); got != want {
			t.Fatalf("SetRange(%v, %v) count should be %v, got %v", c.start, c.end, want, got)
		}
		if first, last := b.FindFirst(), b.FindLast(); first != c.start || last != c.end {
			t.Fatalf("SetRange(%v, %v) should span exactly the range, got [%v, %v]", c.start, c.end, first, last)
		}
	}
}

func TestUnsetFlipTestRange(t *testing.T) {
	for start := uint(0); start < Capacity; start += 5 {
		for end := start; end < Capacity; end += 3 {
			inRange := rangeBySet(start, end)

			var full FixedBitSet256
			full.SetAll()
			full.UnsetRange(start, end)
			var all FixedBitSet256
			all.SetAll()
			if want := all.AndNot(inRange); full != want {
				t.Fatalf("UnsetRange(%v, %v) should be %v, got %v", start, end, want, full)
			}

			flipped := New(start, end)
			flipped.FlipRange(start, end)
			if want := New(start, end).Xor(inRange); flipped != want {
				t.Fatalf("FlipRange(%v, %v) should be %v, got %v", start, end, want, flipped)
			}

			if !inRange.TestRange(start, end) {
				t.Fatalf("TestRange(%v, %v) should be true on the filled range", start, end)
			}
			partial := inRange
			partial.Unset(end)
			if partial.TestRange(start, end) {
				t.Fatalf("TestRange(%v, %v) should be false with %v cleared", start, end, end)
			}
		}
	}
}

func TestRangeInvalid(t *testing.T) {
	var b FixedBitSet256
	expectPanic(t, ErrInvalidRange, func() { b.SetRange(10, 9) })
	expectPanic(t, ErrIndexOutOfRange, func() { b.SetRange(10, Capacity) })
	expectPanic(t, ErrIndexOutOfRange, func() { b.UnsetRange(0, 1000) })
	expectPanic(t, ErrInvalidRange, func() { b.FlipRange(255, 0) })
	expectPanic(t, ErrIndexOutOfRange, func() { b.TestRange(Capacity, Capacity) })
	if !b.None() {
		t.Fatal("failed calls should not mutate the set")
	}
}
