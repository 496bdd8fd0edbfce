package lazylist

import "strconv"

// Length is the declared length of a List.
// A non-negative value is an exact element count, any negative value means Infinite.
// A List whose length cannot be known without exhausting it is declared Infinite
// until an exhausting Get proves otherwise.
type Length int

// Infinite is the declared length of lists that are infinite, or not yet proven finite.
const Infinite Length = -1

// Exactly returns the Length of n elements.
// Negative counts are clamped to zero.
func Exactly(n int) Length {
	if n < 0 {
		return 0
	}
	return Length(n)
}

// Int returns the element count and true when the length is finite.
func (l Length) Int() (int, bool) {
	if l.IsInfinite() {
		return 0, false
	}
	return int(l), true
}

func (l Length) IsInfinite() bool { return l < 0 }

// Add sums two lengths. The sum is Infinite if either side is Infinite.
func (l Length) Add(oth Length) Length {
	if l.IsInfinite() || oth.IsInfinite() {
		return Infinite
	}
	sum := l + oth
	if sum < l { // overflow
		return Infinite
	}
	return sum
}

// Sub removes n elements from a finite length, saturating at zero.
func (l Length) Sub(n int) Length {
	if l.IsInfinite() {
		return Infinite
	}
	if n < 0 {
		n = 0
	}
	return Exactly(int(l) - n)
}

// Min returns the shorter of the two lengths.
func (l Length) Min(oth Length) Length {
	switch {
	case l.IsInfinite():
		return oth
	case oth.IsInfinite():
		return l
	case oth < l:
		return oth
	default:
		return l
	}
}

func (l Length) String() string {
	if l.IsInfinite() {
		return "∞"
	}
	return strconv.Itoa(int(l))
}
