package lazylist

import (
	"iter"
	"math"
	"slices"
)

// Transpose swaps the rows and the columns of xss.
//
// Rows may have different lengths: a column only holds the elements of the rows long enough to reach it,
// as in [[1 2 3] [4] [5 6]] -> [[1 4 5] [2 6] [3]].
// Rows are read through Get on xss and on the rows themselves, so each element is realised once.
func Transpose[T any](xss List[List[T]]) List[List[T]] {
	return derive(func(yield func(List[T]) bool) {
		for k := 0; ; k++ {
			col := column(xss, k)
			if IsEmpty(col) || !yield(col) {
				return
			}
		}
	}, func() Length {
		if xss.Len().IsInfinite() {
			return Infinite
		}
		var longest Length
		for row := range rows(xss) {
			l := row.Len()
			if l.IsInfinite() {
				return Infinite
			}
			longest = max(longest, l)
		}
		return longest
	})
}

func column[T any](xss List[List[T]], k int) List[T] {
	return derive(func(yield func(T) bool) {
		for row := range rows(xss) {
			v, err := row.Get(k)
			if err != nil {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}, func() Length {
		if xss.Len().IsInfinite() {
			return Infinite
		}
		var n int
		for row := range rows(xss) {
			l := row.Len()
			if l.IsInfinite() {
				return Infinite
			}
			if int(l) > k {
				n++
			}
		}
		return Exactly(n)
	})
}

// rows iterates xss through Get, so the rows it yields are the same List values every time.
func rows[T any](xss List[List[T]]) iter.Seq[List[T]] {
	return func(yield func(List[T]) bool) {
		for i := 0; ; i++ {
			row, err := xss.Get(i)
			if err != nil || !yield(row) {
				return
			}
		}
	}
}

// Subsequences returns every subsequence of xs.
//
// They come in the order of a binary counter over the positions of xs,
// [1 2 3] -> [] [1] [2] [1 2] [3] [1 3] [2 3] [1 2 3],
// which lets an infinite xs produce its subsequences forever.
func Subsequences[T any](xs List[T]) List[List[T]] {
	return derive(func(yield func(List[T]) bool) {
		var seen = [][]T{nil}
		if !yield(Empty[T]()) {
			return
		}
		for x := range xs.All() {
			for _, prefix := range seen {
				sub := append(slices.Clip(prefix), x)
				seen = append(seen, sub)
				if !yield(FromSlice(sub)) {
					return
				}
			}
		}
	}, func() Length {
		n, ok := xs.Len().Int()
		if !ok || 62 < n {
			return Infinite
		}
		return Exactly(1 << n)
	})
}

// Permutations returns every permutation of the finite List xs.
//
// The first permutation is xs itself and the order is the one of Haskell's Data.List.permutations:
// [1 2 3] -> [1 2 3] [2 1 3] [3 2 1] [2 3 1] [3 1 2] [1 3 2].
func Permutations[T any](xs List[T]) List[List[T]] {
	return derive(func(yield func(List[T]) bool) {
		permutations(Collect(xs), func(p []T) bool {
			return yield(FromSlice(p))
		})
	}, func() Length {
		n, ok := xs.Len().Int()
		if !ok {
			return Infinite
		}
		var total = 1
		for i := 2; i <= n; i++ {
			if math.MaxInt/i < total {
				return Infinite
			}
			total *= i
		}
		return Exactly(total)
	})
}

func permutations[T any](xs []T, yield func([]T) bool) bool {
	if !yield(slices.Clone(xs)) {
		return false
	}
	return interleavings(xs, nil, yield)
}

// interleavings yields, for the head t of todo, t inserted before every element of every permutation of done,
// followed by the rest of todo, then moves t over to done.
func interleavings[T any](todo, done []T, yield func([]T) bool) bool {
	if len(todo) == 0 {
		return true
	}
	t, rest := todo[0], todo[1:]
	ok := permutations(done, func(p []T) bool {
		for j := range p {
			out := make([]T, 0, len(p)+1+len(rest))
			out = append(out, p[:j]...)
			out = append(out, t)
			out = append(out, p[j:]...)
			out = append(out, rest...)
			if !yield(out) {
				return false
			}
		}
		return true
	})
	if !ok {
		return false
	}
	return interleavings(rest, append([]T{t}, done...), yield)
}
