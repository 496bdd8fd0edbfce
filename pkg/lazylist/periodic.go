package lazylist

import (
	"iter"

	"go.llib.dev/frameless/pkg/iterkit"
)

// Periodic wraps a List that repeats itself every period elements.
//
// The wrapper caches at most one period of elements with its own cursor,
// and answers Get(i) with the cached element at i modulo period,
// so no index costs more than one period of realised elements.
// Every other method is forwarded to the wrapped List.
//
// An Infinite or empty period returns the List unchanged.
func Periodic[T any](period Length, l List[T]) List[T] {
	n, ok := period.Int()
	if !ok || n == 0 {
		return l
	}
	return &periodic[T]{List: l, pass: iterkit.Head(l.All(), n), period: n}
}

// cycled wraps the List that repeats pass forever.
// The period is learned from pass itself when its first iteration ends,
// so a declared length that is only an upper bound never becomes the period.
func cycled[T any](l List[T], pass iter.Seq[T]) List[T] {
	return &periodic[T]{List: l, pass: pass}
}

type periodic[T any] struct {
	List[T]
	// pass yields the first period of the wrapped List.
	pass iter.Seq[T]
	// period is zero until it is known.
	period int

	cache    []T
	cursor   *cursor[T]
	complete bool
}

func (p *periodic[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 {
		return zero, ErrIndex.F("negative index %d", i)
	}
	if n, ok := p.List.Len().Int(); ok && n <= i {
		return zero, ErrIndex.F("index %d is too large", i)
	}
	j := p.index(i)
	for len(p.cache) <= j && !p.complete {
		if p.cursor == nil {
			p.cursor = pull(p, p.pass)
		}
		v, ok := p.cursor.Next()
		if !ok {
			p.finish()
			j = p.index(i)
			break
		}
		p.cache = append(p.cache, v)
		if len(p.cache) == p.period {
			p.finish()
		}
	}
	if j < len(p.cache) {
		return p.cache[j], nil
	}
	return zero, ErrIndex.F("index %d is too large", i)
}

func (p *periodic[T]) index(i int) int {
	if p.period == 0 {
		return i
	}
	return i % p.period
}

// finish marks the first period as fully cached.
func (p *periodic[T]) finish() {
	p.complete = true
	if p.cursor != nil {
		p.cursor.stop()
		p.cursor = nil
	}
	if p.period == 0 {
		p.period = len(p.cache)
	}
}
