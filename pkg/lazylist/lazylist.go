// Package lazylist provides a lazy, potentially infinite, memoizing list.
//
// # Summary
//
// A List is a reusable sequence of values.
// It never computes an element before somebody asks for it,
// and it can describe sequences that never end, like the natural numbers or a cycled slice.
// Iterating a List with All always starts from the beginning with a fresh cursor,
// so a List can be ranged over any number of times.
//
// Indexed access with Get is memoized.
// Every List keeps a cache of the elements it already realised and a single cursor that it advances
// only as far as the requested index, so sequential access to an expensive generator pays for each element once.
//
// Lists built by Repeat and Cycle are wrapped with Periodic,
// which caches a single period and answers Get(i) from index i modulo the period.
//
// The package level functions (Map, Take, Zip, FoldR, ...) build new Lists from existing ones
// without realising more of their inputs than their outputs require.
package lazylist

import (
	"iter"
	"runtime"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/lazylist/pkg/suspension"
)

// List is a lazy, restartable and possibly infinite ordered sequence of values.
type List[T any] interface {
	// Get returns the element at index i.
	// It fails with ErrIndex when i is negative or when the list ends before i.
	// Elements are realised once and cached, repeated calls for a cached index never touch the source.
	Get(i int) (T, error)
	// Len returns the declared length.
	// It is an estimate that narrows to the exact count once a Get runs off the end of the list.
	// Use Count for a strict count.
	Len() Length
	// All returns an iterator that walks the list from its first element.
	// Each call yields a fresh, independent iteration.
	All() iter.Seq[T]
	// Equal reports whether the two lists hold equal elements in the same order.
	// It stops at the first difference, but never terminates for two equal infinite lists.
	Equal(oth List[T]) bool
	// String renders the list.
	// Lists declared Infinite are rendered up to RenderLimit elements.
	String() string
	MarshalJSON() ([]byte, error)
	MarshalYAML() (any, error)
}

type list[T any] struct {
	src    iter.Seq[T]
	length *suspension.Suspension[Length]

	cache     []T
	cursor    *cursor[T]
	exhausted bool
}

func newList[T any](src iter.Seq[T], length *suspension.Suspension[Length]) *list[T] {
	if src == nil {
		src = iterkit.Empty[T]()
	}
	if length == nil {
		length = suspension.Of(Infinite)
	}
	return &list[T]{src: src, length: length}
}

// derive builds a List whose length is computed from its inputs only when Len is asked.
func derive[T any](src iter.Seq[T], length func() Length) List[T] {
	return newList(src, suspension.Delay(length))
}

func (l *list[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 {
		return zero, ErrIndex.F("negative index %d", i)
	}
	if i < len(l.cache) {
		return l.cache[i], nil
	}
	if l.exhausted {
		return zero, ErrIndex.F("index %d is too large", i)
	}
	if l.cursor == nil {
		l.cursor = pull(l, l.src)
	}
	for len(l.cache) <= i {
		v, ok := l.cursor.Next()
		if !ok {
			l.narrow()
			return zero, ErrIndex.F("index %d is too large", i)
		}
		l.cache = append(l.cache, v)
	}
	return l.cache[i], nil
}

// narrow records that the source ran out after the cached elements.
func (l *list[T]) narrow() {
	l.exhausted = true
	l.cursor = nil
	l.length = suspension.Of(Exactly(len(l.cache)))
}

func (l *list[T]) Len() Length { return l.length.Force() }

func (l *list[T]) All() iter.Seq[T] { return l.src }

func (l *list[T]) Equal(oth List[T]) bool { return equal[T](l, oth) }

func (l *list[T]) String() string { return Render[T](l, RenderLimit) }

func (l *list[T]) MarshalJSON() ([]byte, error) { return marshalJSON[T](l) }

func (l *list[T]) MarshalYAML() (any, error) { return marshalYAML[T](l) }

// cursor is a pull iterator over a source, stopped as soon as the source runs out.
type cursor[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

// pull starts a cursor that belongs to owner.
// When owner becomes unreachable, the cursor is stopped,
// so abandoned cursors over infinite sources don't outlive their list.
func pull[T, O any](owner *O, src iter.Seq[T]) *cursor[T] {
	next, stop := iter.Pull(src)
	c := &cursor[T]{next: next, stop: stop}
	runtime.AddCleanup(owner, func(stop func()) { stop() }, stop)
	return c
}

func (c *cursor[T]) Next() (T, bool) {
	if c.done {
		var zero T
		return zero, false
	}
	v, ok := c.next()
	if !ok {
		c.done = true
		c.stop()
	}
	return v, ok
}
