package lazylist

import (
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/lazylist/pkg/suspension"
)

// Chain is the monadic bind of List: the concatenation of fn(x) for every x of xs.
func Chain[To, From any](xs List[From], fn func(From) List[To]) List[To] {
	return ConcatMap(xs, fn)
}

// Ap applies every function of fs to every element of xs.
// The functions make the outer loop, so the results of fs[0] come first.
func Ap[To, From any](fs List[func(From) To], xs List[From]) List[To] {
	return ConcatMap(fs, func(fn func(From) To) List[To] {
		return Map(xs, fn)
	})
}

// Alt is the alternative of List, which is Append.
func Alt[T any](xs, ys List[T]) List[T] {
	return Append(xs, ys)
}

// Extend returns the List whose i-th element is fn applied to xs without its first i elements.
func Extend[To, From any](xs List[From], fn func(List[From]) To) List[To] {
	return MapWithIndex(xs, func(i int, _ From) To {
		return fn(Drop(xs, i))
	})
}

// Applicative is an applicative functor F that Traverse collects its results into.
//
// B is the element type, FB is F of B, and FL is F of List[B].
type Applicative[B, FB, FL any] interface {
	// Pure lifts a List into F.
	Pure(List[B]) FL
	// LiftA2 combines the value in fb with the List in fl using fn.
	LiftA2(fn func(B, List[B]) List[B], fb FB, fl FL) FL
}

// Traverse applies fn to every element of xs and collects the effects with the Applicative.
//
// Effects are combined right to left with FoldR,
// so traversing with the Pure of the Applicative returns the Pure of the List.
func Traverse[A, B, FB, FL any](xs List[A], ap Applicative[B, FB, FL], fn func(A) FB) FL {
	return FoldR(xs, ap.Pure(Empty[B]()), func(x A, rest *suspension.Suspension[FL]) FL {
		return ap.LiftA2(Cons[B], fn(x), rest.Force())
	})
}

// TraverseErr applies fn to every element of xs and returns the results,
// or the first error fn returned.
// It walks the whole List, so xs must be finite.
func TraverseErr[To, From any](xs List[From], fn func(From) (To, error)) (List[To], error) {
	vs, err := iterkit.ReduceErr(xs.All(), []To(nil), func(vs []To, x From) ([]To, error) {
		v, err := fn(x)
		if err != nil {
			return nil, err
		}
		return append(vs, v), nil
	})
	if err != nil {
		return nil, err
	}
	return FromSlice(vs), nil
}
