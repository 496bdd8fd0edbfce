package lazylist

import (
	"iter"
	"maps"
	"slices"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/lazylist/pkg/suspension"
)

// Config holds the construction settings of a List.
type Config struct {
	// Length, when set, overrides the length inferred from the source.
	Length *Length
}

type Option option.Option[Config]

// WithLength overrides the declared length inferred from the source.
func WithLength(l Length) Option {
	return option.Func[Config](func(c *Config) {
		c.Length = &l
	})
}

func build[T any](src iter.Seq[T], inferred Length, opts []Option) List[T] {
	length := inferred
	if c := option.ToConfig[Config](opts); c.Length != nil {
		length = *c.Length
	}
	return newList(src, suspension.Of(length))
}

// Iterable is a collection that can be walked from its beginning any number of times.
//
// FromCollection probes an Iterable for its size:
// a `Len() Length`, `Len() int` or `Size() int` method makes its length known,
// otherwise it is declared Infinite.
type Iterable[T any] interface {
	All() iter.Seq[T]
}

// Pair is a two element tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is a three element tuple.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Empty returns the empty List.
func Empty[T any]() List[T] {
	return newList[T](nil, suspension.Of(Exactly(0)))
}

// Of returns a List of the given values.
func Of[T any](vs ...T) List[T] {
	return FromSlice(vs)
}

// FromSlice returns a List over a copy of vs.
func FromSlice[T any](vs []T, opts ...Option) List[T] {
	vs = slices.Clone(vs)
	return build(iterkit.Slice(vs), Exactly(len(vs)), opts)
}

// FromString returns the List of runes in s.
func FromString(s string, opts ...Option) List[rune] {
	return FromSlice([]rune(s), opts...)
}

// FromMap returns the List of key-value pairs of m.
// The pair order is fixed when the List is created, so every iteration yields the same order.
func FromMap[K comparable, V any](m map[K]V, opts ...Option) List[Pair[K, V]] {
	kvs := iterkit.Collect2(maps.All(m), func(k K, v V) Pair[K, V] {
		return Pair[K, V]{First: k, Second: v}
	})
	return build(iterkit.Slice(kvs), Exactly(len(kvs)), opts)
}

// FromSeq returns a List over a generator function.
// The generator is called again for every fresh iteration, so it must be restartable.
// The List is declared Infinite unless WithLength says otherwise.
func FromSeq[T any](seq iter.Seq[T], opts ...Option) List[T] {
	if seq == nil {
		return Empty[T]()
	}
	return build(seq, Infinite, opts)
}

// FromFunc returns a List over a step function factory.
// The factory is called for every fresh iteration,
// and the step function it returns is called until it reports false.
// The List is declared Infinite unless WithLength says otherwise.
func FromFunc[T any](factory func() func() (T, bool), opts ...Option) List[T] {
	if factory == nil {
		return Empty[T]()
	}
	return build(func(yield func(T) bool) {
		iterkit.FromPull(factory())(yield)
	}, Infinite, opts)
}

// FromCollection returns a List over an Iterable.
// The length is taken from the collection when it exposes one, otherwise the List is declared Infinite.
func FromCollection[T any](c Iterable[T], opts ...Option) List[T] {
	if c == nil {
		return Empty[T]()
	}
	return build(func(yield func(T) bool) {
		c.All()(yield)
	}, sizeOf(c), opts)
}

func sizeOf(c any) Length {
	switch c := c.(type) {
	case interface{ Len() Length }:
		return c.Len()
	case interface{ Len() int }:
		return Exactly(c.Len())
	case interface{ Size() int }:
		return Exactly(c.Size())
	default:
		return Infinite
	}
}

// From turns any supported source into a List.
//
// Supported sources are nil, List[T], []T, iter.Seq[T], step function factories (func() func() (T, bool)),
// Iterable[T] and, for List[rune], a string.
func From[T any](src any, opts ...Option) (List[T], error) {
	switch src := src.(type) {
	case nil:
		return build[T](nil, Exactly(0), opts), nil
	case List[T]:
		if len(opts) == 0 {
			return src, nil
		}
		return FromCollection[T](src, opts...), nil
	case []T:
		return FromSlice(src, opts...), nil
	case iter.Seq[T]:
		return FromSeq(src, opts...), nil
	case func(func(T) bool):
		return FromSeq(src, opts...), nil
	case func() func() (T, bool):
		return FromFunc(src, opts...), nil
	case Iterable[T]:
		return FromCollection(src, opts...), nil
	case string:
		if l, ok := any(FromString(src, opts...)).(List[T]); ok {
			return l, nil
		}
	}
	return nil, ErrUnsupportedSource.F("%T", src)
}
