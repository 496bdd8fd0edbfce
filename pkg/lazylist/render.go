package lazylist

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	_ json.Marshaler = (*list[int])(nil)
	_ yaml.Marshaler = (*list[int])(nil)
)

// Render formats a List as "List[e0 e1 ...]".
// A List with a finite declared length is rendered in full.
// One declared Infinite is cut after limit elements, and the cut is marked with an ellipsis.
func Render[T any](l List[T], limit int) string {
	var (
		b         strings.Builder
		finite    = !l.Len().IsInfinite()
		n         int
		truncated bool
	)
	b.WriteString("List[")
	for v := range l.All() {
		if !finite && limit <= n {
			truncated = true
			break
		}
		if 0 < n {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
		n++
	}
	if truncated {
		if 0 < n {
			b.WriteByte(' ')
		}
		b.WriteString("...")
	}
	b.WriteByte(']')
	return b.String()
}

func marshalJSON[T any](l List[T]) ([]byte, error) {
	vs, err := collectFinite(l)
	if err != nil {
		return nil, err
	}
	return json.Marshal(vs)
}

func marshalYAML[T any](l List[T]) (any, error) {
	return collectFinite(l)
}

func collectFinite[T any](l List[T]) ([]T, error) {
	if l.Len().IsInfinite() {
		return nil, ErrInfiniteSequence.F("refusing to encode it")
	}
	vs := Collect(l)
	if vs == nil {
		vs = []T{}
	}
	return vs, nil
}
