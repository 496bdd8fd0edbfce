package rosetree_test

import (
	"strconv"
	"testing"

	"go.llib.dev/lazylist/pkg/lazylist"
	"go.llib.dev/lazylist/pkg/rosetree"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func TestTree(t *testing.T) {
	s := testcase.NewSpec(t)

	subject := testcase.Let(s, func(t *testcase.T) rosetree.Tree[string] {
		return rosetree.Branch("hi",
			rosetree.Of("there"),
			rosetree.Branch("you", rosetree.Of("man")),
			rosetree.Of("man"),
		)
	})

	s.Describe(".All", func(s *testcase.Spec) {
		s.Then("labels are walked in pre-order, any number of times", func(t *testcase.T) {
			exp := []string{"hi", "there", "you", "man", "man"}
			assert.Equal(t, exp, lazylist.Collect(rosetree.Flatten(subject.Get(t))))
			assert.Equal(t, exp, lazylist.Collect(rosetree.Flatten(subject.Get(t))))
		})
	})

	s.Describe(".Equal", func(s *testcase.Spec) {
		s.Then("leaves with the same label are equal", func(t *testcase.T) {
			t1 := rosetree.Node(1, lazylist.Empty[rosetree.Tree[int]]())
			t2 := rosetree.Of(1)
			assert.True(t, t1.Equal(t2))
			assert.True(t, t2.Equal(t1))
		})

		s.Then("trees with equal children are equal", func(t *testcase.T) {
			t1 := rosetree.Branch(1, rosetree.Of(2))
			t2 := rosetree.Branch(1, rosetree.Of(2))
			assert.True(t, t1.Equal(t2))
			assert.True(t, t2.Equal(t1))
		})

		s.Then("different children make the trees different", func(t *testcase.T) {
			assert.False(t, rosetree.Branch(1, rosetree.Of(2)).Equal(rosetree.Branch(1, rosetree.Of(3))))
			assert.False(t, rosetree.Branch(1, rosetree.Of(2)).Equal(rosetree.Of(1)))
		})

		s.Then("a nil forest is no children", func(t *testcase.T) {
			assert.True(t, rosetree.Tree[int]{Label: 1}.Equal(rosetree.Of(1)))
		})
	})

	s.Describe(".String", func(s *testcase.Spec) {
		s.Then("it shows the label and the forest", func(t *testcase.T) {
			assert.Equal(t, "Node(1, List[Node(2, List[])])", rosetree.Branch(1, rosetree.Of(2)).String())
		})
	})
}

func TestMap(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		label = let.Int(s)
		tree  = testcase.Let(s, func(t *testcase.T) rosetree.Tree[int] {
			return rosetree.Branch(label.Get(t), rosetree.Of(1), rosetree.Branch(2, rosetree.Of(3)))
		})
	)

	s.Test("identity", func(t *testcase.T) {
		got := rosetree.Map(tree.Get(t), func(n int) int { return n })
		assert.True(t, got.Equal(tree.Get(t)))
	})

	s.Test("composition", func(t *testcase.T) {
		f := func(n int) int { return n + 1 }
		g := strconv.Itoa
		a := rosetree.Map(rosetree.Map(tree.Get(t), f), g)
		b := rosetree.Map(tree.Get(t), func(n int) string { return g(f(n)) })
		assert.True(t, a.Equal(b))
	})
}

func TestChain(t *testing.T) {
	tree := rosetree.Branch(1, rosetree.Of(2))
	got := rosetree.Chain(tree, func(n int) rosetree.Tree[int] {
		return rosetree.Branch(n, rosetree.Of(n*10))
	})
	exp := rosetree.Branch(1, rosetree.Of(10), rosetree.Branch(2, rosetree.Of(20)))
	assert.True(t, got.Equal(exp))

	assert.True(t, rosetree.Chain(tree, rosetree.Of[int]).Equal(tree))
}

func TestAp(t *testing.T) {
	fs := rosetree.Branch(func(n int) int { return n + 1 }, rosetree.Of(func(n int) int { return n * 10 }))
	got := rosetree.Ap(fs, rosetree.Branch(1, rosetree.Of(2)))
	exp := rosetree.Branch(2, rosetree.Of(3), rosetree.Branch(10, rosetree.Of(20)))
	assert.True(t, got.Equal(exp))
}

func TestReduce(t *testing.T) {
	tree := rosetree.Branch("a", rosetree.Branch("b", rosetree.Of("c")), rosetree.Of("d"))
	assert.Equal(t, "abcd", rosetree.Reduce(tree, "", func(acc, s string) string { return acc + s }))
}

func TestExtend(t *testing.T) {
	tree := rosetree.Branch(1, rosetree.Branch(2, rosetree.Of(3)), rosetree.Of(4))
	sizes := rosetree.Extend(tree, func(t rosetree.Tree[int]) int {
		return lazylist.Count(rosetree.Flatten(t))
	})
	exp := rosetree.Branch(4, rosetree.Branch(2, rosetree.Of(1)), rosetree.Of(1))
	assert.True(t, sizes.Equal(exp))
}

func TestLevels(t *testing.T) {
	tree := rosetree.Branch(1, rosetree.Branch(2, rosetree.Of(4)), rosetree.Branch(3, rosetree.Of(5), rosetree.Of(6)))
	var got [][]int
	for level := range rosetree.Levels(tree).All() {
		got = append(got, lazylist.Collect(level))
	}
	assert.Equal(t, [][]int{{1}, {2, 3}, {4, 5, 6}}, got)
}

func TestFoldTree(t *testing.T) {
	tree := rosetree.Branch(1, rosetree.Branch(2, rosetree.Of(4)), rosetree.Of(3))
	depth := rosetree.FoldTree(tree, func(_ int, children lazylist.List[int]) int {
		return 1 + lazylist.FoldL(children, 0, func(a, b int) int { return max(a, b) })
	})
	assert.Equal(t, 3, depth)

	sum := rosetree.FoldTree(tree, func(n int, children lazylist.List[int]) int {
		return n + lazylist.FoldL(children, 0, func(a, b int) int { return a + b })
	})
	assert.Equal(t, 10, sum)
}

func TestUnfoldTree(t *testing.T) {
	s := testcase.NewSpec(t)

	// binary tree of the numbers below n: children of k are 2k and 2k+1
	below := func(n int) func(int) (int, lazylist.List[int]) {
		return func(k int) (int, lazylist.List[int]) {
			return k, lazylist.Filter(lazylist.Of(2*k, 2*k+1), func(c int) bool { return c < n })
		}
	}

	s.Test("finite", func(t *testcase.T) {
		tree := rosetree.UnfoldTree(1, below(8))
		assert.Equal(t, []int{1, 2, 4, 5, 3, 6, 7}, lazylist.Collect(rosetree.Flatten(tree)))
	})

	s.Test("infinite trees are only built as far as they are visited", func(t *testcase.T) {
		nat := rosetree.UnfoldTree(0, func(n int) (int, lazylist.List[int]) {
			return n, lazylist.Of(n + 1)
		})
		assert.Equal(t, []int{0, 1, 2, 3}, lazylist.Collect(lazylist.Take(rosetree.Flatten(nat), 4)))
	})

	s.Test("forest", func(t *testcase.T) {
		forest := rosetree.UnfoldForest(lazylist.Of(4, 5), below(11))
		var labels []int
		for tree := range forest.All() {
			labels = append(labels, lazylist.Collect(rosetree.Flatten(tree))...)
		}
		assert.Equal(t, []int{4, 8, 9, 5, 10}, labels)
	})
}

func TestDraw(t *testing.T) {
	tree := rosetree.Branch("1", rosetree.Branch("2", rosetree.Of("4")), rosetree.Of("3"))
	exp := "1\n" +
		"|\n" +
		"+- 2\n" +
		"|  |\n" +
		"|  `- 4\n" +
		"|\n" +
		"`- 3\n"
	assert.Equal(t, exp, rosetree.Draw(tree))

	forest := lazylist.Of(rosetree.Of(1), rosetree.Of(2))
	assert.Equal(t, "1\n\n2\n\n", rosetree.DrawForest(forest))
}
