// Package identity implements the Identity functor, the trivial container of a single value.
//
// It is mostly useful as the Applicative of effect free traversals:
// traversing a lazylist.List with Applicative is the same as mapping over it.
package identity

import (
	"fmt"

	"go.llib.dev/lazylist/pkg/lazylist"
)

// Identity holds a single value.
type Identity[T any] struct {
	Value T
}

func Of[T any](v T) Identity[T] {
	return Identity[T]{Value: v}
}

func Map[To, From any](i Identity[From], fn func(From) To) Identity[To] {
	return Of(fn(i.Value))
}

// Ap applies the function held by fn to the value of i.
func Ap[To, From any](fn Identity[func(From) To], i Identity[From]) Identity[To] {
	return Map(i, fn.Value)
}

func Chain[To, From any](i Identity[From], fn func(From) Identity[To]) Identity[To] {
	return fn(i.Value)
}

func Reduce[T, R any](i Identity[T], init R, fn func(R, T) R) R {
	return fn(init, i.Value)
}

func Extend[To, From any](i Identity[From], fn func(Identity[From]) To) Identity[To] {
	return Of(fn(i))
}

// Traverse runs fn on the value of i and wraps the result back into an Identity inside the effect,
// with fmap being the Map of the effect FB.
func Traverse[A, B, FB, FI any](i Identity[A], fn func(A) FB, fmap func(FB, func(B) Identity[B]) FI) FI {
	return fmap(fn(i.Value), Of[B])
}

func (i Identity[T]) Equal(oth Identity[T]) bool {
	return lazylist.ValueEqual(i.Value, oth.Value)
}

func (i Identity[T]) String() string {
	return fmt.Sprintf("Identity(%v)", i.Value)
}

// Applicative is the Identity applicative for lazylist.Traverse.
type Applicative[B any] struct{}

func (Applicative[B]) Pure(xs lazylist.List[B]) Identity[lazylist.List[B]] {
	return Of(xs)
}

func (Applicative[B]) LiftA2(fn func(B, lazylist.List[B]) lazylist.List[B], fb Identity[B], fl Identity[lazylist.List[B]]) Identity[lazylist.List[B]] {
	return Of(fn(fb.Value, fl.Value))
}
