package lazylist

import (
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/lazylist/pkg/suspension"
)

// Cons returns x followed by the elements of xs.
func Cons[T any](x T, xs List[T]) List[T] {
	return derive(iterkit.Merge(iterkit.SingleValue(x), xs.All()), func() Length { return xs.Len().Add(1) })
}

// Append returns the elements of xs followed by the elements of ys.
// When xs is infinite, ys is never reached.
func Append[T any](xs, ys List[T]) List[T] {
	return derive(iterkit.Merge(xs.All(), ys.All()), func() Length { return xs.Len().Add(ys.Len()) })
}

// Concat flattens a List of Lists.
// Its length is the sum of the inner lengths when the outer List and every inner List is finite.
func Concat[T any](xss List[List[T]]) List[T] {
	return derive(func(yield func(T) bool) {
		for xs := range xss.All() {
			for v := range xs.All() {
				if !yield(v) {
					return
				}
			}
		}
	}, func() Length {
		if xss.Len().IsInfinite() {
			return Infinite
		}
		var total = Exactly(0)
		for xs := range xss.All() {
			total = total.Add(xs.Len())
			if total.IsInfinite() {
				break
			}
		}
		return total
	})
}

// Head returns the first element of xs.
func Head[T any](xs List[T]) (T, error) {
	v, ok := iterkit.First(xs.All())
	if !ok {
		return v, ErrEmptySequence.F("head")
	}
	return v, nil
}

// Last returns the last element of xs.
//
// It refuses to walk a List declared Infinite and fails with ErrInfiniteSequence.
// Lists whose length is only known by walking them are declared Infinite,
// so Last of a Filter, TakeWhile, DropWhile, Unfoldr or FromSeq result fails
// even when the list turns out to be finite, until a Get runs off its end and narrows its length.
// Walk such a List with All, or collect it with Collect, when it is known to end.
func Last[T any](xs List[T]) (T, error) {
	if xs.Len().IsInfinite() {
		var zero T
		return zero, ErrInfiniteSequence.F("last")
	}
	v, ok := iterkit.Last(xs.All())
	if !ok {
		return v, ErrEmptySequence.F("last")
	}
	return v, nil
}

// Tail returns every element of xs after the first one.
func Tail[T any](xs List[T]) (List[T], error) {
	if IsEmpty(xs) {
		return nil, ErrEmptySequence.F("tail")
	}
	return Drop(xs, 1), nil
}

// Init returns every element of xs except the last one.
func Init[T any](xs List[T]) (List[T], error) {
	if IsEmpty(xs) {
		return nil, ErrEmptySequence.F("init")
	}
	return derive(func(yield func(T) bool) {
		var (
			prev    T
			hasPrev bool
		)
		for v := range xs.All() {
			if hasPrev && !yield(prev) {
				return
			}
			prev, hasPrev = v, true
		}
	}, func() Length { return xs.Len().Sub(1) }), nil
}

// Count walks xs and counts its elements.
// Unlike Len, it is exact, but it only returns for finite lists.
func Count[T any](xs List[T]) int {
	return iterkit.Count(xs.All())
}

// IsEmpty reports whether xs has no elements.
// It looks at the first element only.
func IsEmpty[T any](xs List[T]) bool {
	return FoldR(xs, true, func(T, *suspension.Suspension[bool]) bool { return false })
}

// Map returns the List of fn applied to every element of xs.
// Elements are transformed on demand, and the length of xs is kept.
func Map[To, From any](xs List[From], fn func(From) To) List[To] {
	return derive(iterkit.Map(xs.All(), fn), xs.Len)
}

// MapWithIndex is Map with the index of each element passed to fn.
func MapWithIndex[To, From any](xs List[From], fn func(int, From) To) List[To] {
	return derive(func(yield func(To) bool) {
		var i int
		for v := range xs.All() {
			if !yield(fn(i, v)) {
				return
			}
			i++
		}
	}, xs.Len)
}

// Filter returns the elements of xs that satisfy pred.
func Filter[T any](xs List[T], pred func(T) bool) List[T] {
	return FromSeq(iterkit.Filter[T](xs.All(), pred))
}

// Reverse returns the elements of xs in reverse order.
// xs is materialised once, on the first iteration, so it must be finite.
func Reverse[T any](xs List[T]) List[T] {
	collected := suspension.Delay(func() []T { return Collect(xs) })
	return derive(func(yield func(T) bool) {
		iterkit.Reverse(iterkit.Slice(collected.Force()))(yield)
	}, xs.Len)
}

// Intersperse puts sep between every two adjacent elements of xs.
func Intersperse[T any](xs List[T], sep T) List[T] {
	return derive(func(yield func(T) bool) {
		var started bool
		for v := range xs.All() {
			if started && !yield(sep) {
				return
			}
			if !yield(v) {
				return
			}
			started = true
		}
	}, func() Length {
		n, ok := xs.Len().Int()
		if !ok {
			return Infinite
		}
		if n == 0 {
			return 0
		}
		return Exactly(2*n - 1)
	})
}

// Intercalate puts sep between every two adjacent Lists of xss and flattens the result.
func Intercalate[T any](xss List[List[T]], sep List[T]) List[T] {
	return Concat(Intersperse(xss, sep))
}

// Take returns the first n elements of xs, or all of them when xs is shorter.
func Take[T any](xs List[T], n int) List[T] {
	if n < 1 {
		return Empty[T]()
	}
	return derive(iterkit.Head(xs.All(), n), func() Length { return Exactly(n).Min(xs.Len()) })
}

// Drop returns the elements of xs after the first n.
func Drop[T any](xs List[T], n int) List[T] {
	if n < 1 {
		return xs
	}
	return derive(iterkit.Offset(xs.All(), n), func() Length { return xs.Len().Sub(n) })
}

// TakeWhile returns the longest prefix of xs whose elements all satisfy pred.
func TakeWhile[T any](xs List[T], pred func(T) bool) List[T] {
	return FromSeq(func(yield func(T) bool) {
		for v := range xs.All() {
			if !pred(v) || !yield(v) {
				return
			}
		}
	})
}

// DropWhile returns what remains of xs after its longest prefix whose elements satisfy pred.
func DropWhile[T any](xs List[T], pred func(T) bool) List[T] {
	return FromSeq(func(yield func(T) bool) {
		var dropping = true
		for v := range xs.All() {
			if dropping && pred(v) {
				continue
			}
			dropping = false
			if !yield(v) {
				return
			}
		}
	})
}

// Collect walks xs and returns its elements in a slice.
// It only returns for finite lists.
func Collect[T any](xs List[T]) []T {
	return iterkit.Collect(xs.All())
}
