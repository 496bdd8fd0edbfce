package lazylist

import "iter"

// ZipN returns the List of element-wise tuples of the given lists.
// It ends with the shortest input.
func ZipN[T any](lists ...List[T]) List[[]T] {
	if len(lists) == 0 {
		return Empty[[]T]()
	}
	return derive(func(yield func([]T) bool) {
		var nexts = make([]func() (T, bool), len(lists))
		for i, l := range lists {
			next, stop := iter.Pull(l.All())
			defer stop()
			nexts[i] = next
		}
		for {
			var tuple = make([]T, len(nexts))
			for i, next := range nexts {
				v, ok := next()
				if !ok {
					return
				}
				tuple[i] = v
			}
			if !yield(tuple) {
				return
			}
		}
	}, func() Length {
		var length = Infinite
		for _, l := range lists {
			length = length.Min(l.Len())
		}
		return length
	})
}

// ZipWith combines the elements of as and bs pairwise with fn.
// It ends with the shorter input.
func ZipWith[A, B, C any](as List[A], bs List[B], fn func(A, B) C) List[C] {
	return derive(func(yield func(C) bool) {
		nextB, stop := iter.Pull(bs.All())
		defer stop()
		for a := range as.All() {
			b, ok := nextB()
			if !ok || !yield(fn(a, b)) {
				return
			}
		}
	}, func() Length { return as.Len().Min(bs.Len()) })
}

// Zip pairs up the elements of as and bs.
func Zip[A, B any](as List[A], bs List[B]) List[Pair[A, B]] {
	return ZipWith(as, bs, func(a A, b B) Pair[A, B] {
		return Pair[A, B]{First: a, Second: b}
	})
}

// Zip3 is Zip for three lists.
func Zip3[A, B, C any](as List[A], bs List[B], cs List[C]) List[Triple[A, B, C]] {
	return ZipWith(Zip(as, bs), cs, func(ab Pair[A, B], c C) Triple[A, B, C] {
		return Triple[A, B, C]{First: ab.First, Second: ab.Second, Third: c}
	})
}
