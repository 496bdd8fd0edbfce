// Package rosetree implements multi-way trees, also known as rose trees, over lazy lists.
//
// Every node holds a label and a forest of child trees.
// The forest is a lazylist.List, so trees can be infinitely wide or deep,
// and functions like Map, Chain or UnfoldTree only build the parts of a tree that are visited.
package rosetree

import (
	"fmt"
	"iter"
	"strings"

	"go.llib.dev/lazylist/pkg/lazylist"
)

type Tree[T any] struct {
	Label T
	// Forest is the list of children. A nil Forest means no children.
	Forest lazylist.List[Tree[T]]
}

// Node creates a Tree from its label and children.
func Node[T any](label T, forest lazylist.List[Tree[T]]) Tree[T] {
	return Tree[T]{Label: label, Forest: forest}
}

// Of creates a Tree without children.
func Of[T any](label T) Tree[T] {
	return Node(label, lazylist.Empty[Tree[T]]())
}

// Branch creates a Tree with the given children.
func Branch[T any](label T, children ...Tree[T]) Tree[T] {
	return Node(label, lazylist.Of(children...))
}

func (t Tree[T]) forest() lazylist.List[Tree[T]] {
	if t.Forest == nil {
		return lazylist.Empty[Tree[T]]()
	}
	return t.Forest
}

// All walks the labels in pre-order.
func (t Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.walk(yield)
	}
}

func (t Tree[T]) walk(yield func(T) bool) bool {
	if !yield(t.Label) {
		return false
	}
	for child := range t.forest().All() {
		if !child.walk(yield) {
			return false
		}
	}
	return true
}

func (t Tree[T]) Equal(oth Tree[T]) bool {
	return lazylist.ValueEqual(t.Label, oth.Label) &&
		t.forest().Equal(oth.forest())
}

func (t Tree[T]) String() string {
	return fmt.Sprintf("Node(%v, %v)", t.Label, t.forest())
}

func Map[To, From any](t Tree[From], fn func(From) To) Tree[To] {
	return Node(fn(t.Label), lazylist.Map(t.forest(), func(child Tree[From]) Tree[To] {
		return Map(child, fn)
	}))
}

// Chain replaces every label with the tree fn makes of it.
// The children of the replaced node follow the children of the new tree.
func Chain[To, From any](t Tree[From], fn func(From) Tree[To]) Tree[To] {
	r := fn(t.Label)
	return Node(r.Label, lazylist.Append(r.forest(), lazylist.Map(t.forest(), func(child Tree[From]) Tree[To] {
		return Chain(child, fn)
	})))
}

func Ap[To, From any](fs Tree[func(From) To], t Tree[From]) Tree[To] {
	return Chain(fs, func(fn func(From) To) Tree[To] {
		return Map(t, fn)
	})
}

// Reduce folds the labels in pre-order.
func Reduce[T, R any](t Tree[T], init R, fn func(R, T) R) R {
	var acc = init
	for v := range t.All() {
		acc = fn(acc, v)
	}
	return acc
}

// Extend labels every node with fn applied to the subtree rooted at it.
func Extend[To, From any](t Tree[From], fn func(Tree[From]) To) Tree[To] {
	return Node(fn(t), lazylist.Map(t.forest(), func(child Tree[From]) Tree[To] {
		return Extend(child, fn)
	}))
}

// Flatten returns the labels of t in pre-order.
func Flatten[T any](t Tree[T]) lazylist.List[T] {
	return lazylist.FromSeq(t.All())
}

// Levels returns the labels of t level by level, starting with the root.
func Levels[T any](t Tree[T]) lazylist.List[lazylist.List[T]] {
	levels := lazylist.Iterate(lazylist.Of(t), func(level lazylist.List[Tree[T]]) lazylist.List[Tree[T]] {
		return lazylist.ConcatMap(level, Tree[T].forest)
	})
	levels = lazylist.TakeWhile(levels, func(level lazylist.List[Tree[T]]) bool {
		return !lazylist.IsEmpty(level)
	})
	return lazylist.Map(levels, func(level lazylist.List[Tree[T]]) lazylist.List[T] {
		return lazylist.Map(level, func(t Tree[T]) T { return t.Label })
	})
}

// FoldTree is the catamorphism of Tree: fn gets every label with the folded results of its children.
// The children are only folded when fn reads them.
func FoldTree[T, R any](t Tree[T], fn func(T, lazylist.List[R]) R) R {
	return fn(t.Label, lazylist.Map(t.forest(), func(child Tree[T]) R {
		return FoldTree(child, fn)
	}))
}

// UnfoldTree builds a Tree from a seed.
// fn returns the label of the node and the seeds of its children.
func UnfoldTree[T, B any](seed B, fn func(B) (T, lazylist.List[B])) Tree[T] {
	label, seeds := fn(seed)
	return Node(label, UnfoldForest(seeds, fn))
}

// UnfoldForest builds a Tree from each seed.
func UnfoldForest[T, B any](seeds lazylist.List[B], fn func(B) (T, lazylist.List[B])) lazylist.List[Tree[T]] {
	if seeds == nil {
		return lazylist.Empty[Tree[T]]()
	}
	return lazylist.Map(seeds, func(seed B) Tree[T] {
		return UnfoldTree(seed, fn)
	})
}

// Draw renders t in two dimensions, one line per label:
//
//	1
//	|
//	+- 2
//	|
//	`- 3
func Draw[T any](t Tree[T]) string {
	return strings.Join(draw(t), "\n") + "\n"
}

// DrawForest draws every tree of the forest, separated by an empty line.
func DrawForest[T any](forest lazylist.List[Tree[T]]) string {
	var b strings.Builder
	for t := range forest.All() {
		b.WriteString(Draw(t))
		b.WriteString("\n")
	}
	return b.String()
}

func draw[T any](t Tree[T]) []string {
	lines := strings.Split(fmt.Sprint(t.Label), "\n")
	children := lazylist.Collect(t.forest())
	for i, child := range children {
		first, other := "+- ", "|  "
		if i == len(children)-1 {
			first, other = "`- ", "   "
		}
		lines = append(lines, "|")
		for j, line := range draw(child) {
			if j == 0 {
				lines = append(lines, first+line)
			} else {
				lines = append(lines, other+line)
			}
		}
	}
	return lines
}
