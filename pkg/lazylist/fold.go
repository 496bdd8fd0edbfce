package lazylist

import (
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/lazylist/pkg/suspension"
)

// FoldL is a strict left fold: fn(...fn(fn(init, x0), x1)..., xn).
// It walks the whole List, so xs must be finite.
func FoldL[T, R any](xs List[T], init R, fn func(R, T) R) R {
	return iterkit.Reduce(xs.All(), init, fn)
}

// FoldL1 is FoldL seeded with the first element of xs.
func FoldL1[T any](xs List[T], fn func(T, T) T) (T, error) {
	first, ok := iterkit.First(xs.All())
	if !ok {
		return first, ErrEmptySequence.F("foldl1")
	}
	return iterkit.Reduce(iterkit.Offset(xs.All(), 1), first, fn), nil
}

// Reduce is FoldL under the name Foldable consumers know it by.
func Reduce[T, R any](xs List[T], init R, fn func(R, T) R) R {
	return FoldL(xs, init, fn)
}

// Reduce1 is FoldL1 under the name Foldable consumers know it by.
func Reduce1[T any](xs List[T], fn func(T, T) T) (T, error) {
	return FoldL1(xs, fn)
}

// FoldR is a lazy right fold: fn(x0, fn(x1, ...fn(xn, init))).
//
// The accumulator is passed to fn as a Suspension.
// The rest of the fold is computed only if fn forces it,
// so a fn that returns without forcing stops the fold early, even on an infinite List.
// Elements are read through Get, which realises each of them once.
func FoldR[T, R any](xs List[T], init R, fn func(T, *suspension.Suspension[R]) R) R {
	var step func(i int) R
	step = func(i int) R {
		v, err := xs.Get(i)
		if err != nil {
			return init
		}
		return fn(v, suspension.Delay(func() R { return step(i + 1) }))
	}
	return step(0)
}

// FoldR1 is FoldR seeded with the last element of xs.
func FoldR1[T any](xs List[T], fn func(T, *suspension.Suspension[T]) T) (T, error) {
	first, err := xs.Get(0)
	if err != nil {
		var zero T
		return zero, ErrEmptySequence.F("foldr1")
	}
	var step func(i int, v T) T
	step = func(i int, v T) T {
		next, err := xs.Get(i + 1)
		if err != nil {
			return v
		}
		return fn(v, suspension.Delay(func() T { return step(i+1, next) }))
	}
	return step(0, first), nil
}

// ConcatMap maps every element of xs to a List and flattens the results.
// Only as many elements of xs are mapped as the consumer of the result asks for.
func ConcatMap[To, From any](xs List[From], fn func(From) List[To]) List[To] {
	return Concat(Map(xs, fn))
}
