package lazylist

import "go.llib.dev/frameless/pkg/iterkit"

// Iterate returns the infinite List x, fn(x), fn(fn(x)), ...
func Iterate[T any](x T, fn func(T) T) List[T] {
	return FromSeq(func(yield func(T) bool) {
		for v := x; ; v = fn(v) {
			if !yield(v) {
				return
			}
		}
	})
}

// Repeat returns the infinite List of x.
// Any index is answered from a single cached element.
func Repeat[T any](x T) List[T] {
	return Periodic(1, FromSeq(func(yield func(T) bool) {
		for yield(x) {
		}
	}))
}

// Replicate returns a List of n copies of x.
func Replicate[T any](x T, n int) List[T] {
	return Take(Repeat(x), n)
}

// Cycle repeats the elements of xs forever.
//
// Get never caches more than one pass over xs:
// the period is the number of elements the first pass actually yields,
// whatever length xs declares.
// Cycling an empty List yields the empty List.
func Cycle[T any](xs List[T]) List[T] {
	if n, ok := xs.Len().Int(); ok && n == 0 {
		return Empty[T]()
	}
	return cycled(FromSeq(func(yield func(T) bool) {
		for {
			var n int
			for v := range xs.All() {
				if !yield(v) {
					return
				}
				n++
			}
			if n == 0 {
				return
			}
		}
	}), xs.All())
}

// Unfoldr builds a List from a seed.
// fn returns the next element and the next seed, or false to end the List.
func Unfoldr[A, B any](seed B, fn func(B) (A, B, bool)) List[A] {
	return FromSeq(func(yield func(A) bool) {
		for b := seed; ; {
			a, next, ok := fn(b)
			if !ok || !yield(a) {
				return
			}
			b = next
		}
	})
}

// Range returns the integers from begin to end, both inclusive.
func Range(begin, end int) List[int] {
	if end < begin {
		return Empty[int]()
	}
	return FromSeq(iterkit.IntRange(begin, end), WithLength(Exactly(end-begin+1)))
}
