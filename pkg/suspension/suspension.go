// Package suspension provides memoized deferred computations.
//
// A Suspension wraps a zero argument function and evaluates it at most once.
// The first Force computes and caches the result, every later Force returns the cached value.
// Suspensions are how lazy right folds are expressed without call-by-need support from the language:
// the accumulator of a right fold is passed as a Suspension, and a folding function that never forces it
// never pays for the rest of the fold.
package suspension

import "go.llib.dev/frameless/pkg/lazyload"

// Suspension is a memoized thunk.
// The zero value is a suspension of the zero value of T.
// A Suspension must not be copied after first use.
type Suspension[T any] struct {
	value lazyload.Var[T]
}

// Delay creates a Suspension that evaluates thunk on the first Force.
func Delay[T any](thunk func() T) *Suspension[T] {
	s := &Suspension[T]{}
	s.value.Init = thunk
	return s
}

// Of creates an already evaluated Suspension.
func Of[T any](v T) *Suspension[T] {
	s := &Suspension[T]{}
	s.value.Set(v)
	return s
}

// Force evaluates the suspended computation on the first call and returns the cached result afterwards.
func (s *Suspension[T]) Force() T {
	return s.value.Get()
}
