package lazylist

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrIndex is returned for a negative index or for an index past the end of a List.
	ErrIndex errorkit.Error = "lazylist: index error"
	// ErrEmptySequence is returned by operations that need at least one element.
	ErrEmptySequence errorkit.Error = "lazylist: empty sequence"
	// ErrInfiniteSequence is returned by operations that refuse to exhaust a List declared Infinite.
	ErrInfiniteSequence errorkit.Error = "lazylist: infinite sequence"
	// ErrUnsupportedSource is returned by From when it can't turn its argument into a List.
	ErrUnsupportedSource errorkit.Error = "lazylist: unsupported source"
)
