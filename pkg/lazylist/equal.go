package lazylist

import (
	"iter"
	"reflect"

	"github.com/google/go-cmp/cmp"
	"go.llib.dev/frameless/pkg/iterkit"
)

var cmpOptions = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// ValueEqual reports whether two elements are deeply equal.
// Values with an Equal method, Lists included, are compared with it.
func ValueEqual[T any](a, b T) bool {
	if eq, ok := any(a).(interface{ Equal(T) bool }); ok {
		return eq.Equal(b)
	}
	return cmp.Equal(a, b, cmpOptions...)
}

// equal walks both lists side by side and stops at the first mismatch.
// A nil List is treated as the empty List.
func equal[T any](a, b List[T]) bool {
	var as, bs = iterkit.Empty[T](), iterkit.Empty[T]()
	if a != nil {
		as = a.All()
	}
	if b != nil {
		bs = b.All()
	}
	nextA, stopA := iter.Pull(as)
	defer stopA()
	nextB, stopB := iter.Pull(bs)
	defer stopB()
	for {
		va, okA := nextA()
		vb, okB := nextB()
		if okA != okB {
			return false
		}
		if !okA {
			return true
		}
		if !ValueEqual(va, vb) {
			return false
		}
	}
}
