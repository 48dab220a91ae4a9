// Copyright 2023 The rectangletree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package split

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/gogama/rectangletree"
	"github.com/gogama/rectangletree/descent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type strategy interface {
	rectangletree.SplitStrategy
	rectangletree.NonLeafSplitter
}

var strategies = []struct {
	name string
	s    strategy
}{
	{"Quadratic", Quadratic{}},
	{"Hilbert", Hilbert{}},
}

func TestMinFill(t *testing.T) {
	testCases := []struct {
		name       string
		configured int
		n          int
		expected   int
	}{
		{"Zero", 0, 5, 1},
		{"Configured", 2, 5, 2},
		{"CappedAtHalf", 6, 5, 2},
		{"TwoEntries", 6, 2, 1},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, minFill(testCase.configured, testCase.n))
		})
	}
}

func TestSplit_Invariants(t *testing.T) {
	configs := []rectangletree.Config{
		{MaxLeafSize: 4, MinLeafSize: 1, MaxNumChildren: 3, MinNumChildren: 1},
		{MaxLeafSize: 1, MinLeafSize: 0, MaxNumChildren: 2, MinNumChildren: 0},
		rectangletree.DefaultConfig(),
	}

	for _, st := range strategies {
		for _, cfg := range configs {
			for _, dim := range []int{1, 2, 3} {
				name := fmt.Sprintf("%s/Leaf%d/Children%d/Dim%d", st.name, cfg.MaxLeafSize, cfg.MaxNumChildren, dim)
				t.Run(name, func(t *testing.T) {
					r := rand.New(rand.NewSource(int64(dim)))
					tree := rectangletree.New(dim, cfg, st.s, rectangletree.WithDescent(descent.Enlargement{}))
					var points [][]float64
					for i := 0; i < 300; i++ {
						p := make([]float64, dim)
						for j := range p {
							p[j] = r.Float64()*200 - 100
						}
						points = append(points, p)
						root := tree.Insert(p)

						require.Equal(t, rectangletree.None, tree.Parent(root))
					}

					checkInvariants(t, tree, points)
				})
			}
		}
	}
}

func TestSplit_Duplicates(t *testing.T) {
	for _, st := range strategies {
		t.Run(st.name, func(t *testing.T) {
			cfg := rectangletree.Config{MaxLeafSize: 3, MinLeafSize: 1, MaxNumChildren: 2}
			tree := rectangletree.New(2, cfg, st.s)
			var points [][]float64
			for i := 0; i < 50; i++ {
				p := []float64{1, 1}
				points = append(points, p)
				tree.Insert(p)
			}

			checkInvariants(t, tree, points)
			assert.Equal(t, 0.0, tree.FurthestDescendantDistance(tree.Root()))
		})
	}
}

func TestSplit_TooFewEntries(t *testing.T) {
	for _, st := range strategies {
		t.Run(st.name, func(t *testing.T) {
			cfg := rectangletree.Config{MaxLeafSize: 1, MaxNumChildren: 2}
			tree := rectangletree.New(2, cfg, st.s)

			root := tree.Insert([]float64{1, 2})

			assert.Equal(t, tree.Root(), root)
			assert.True(t, tree.IsLeaf(root))
			assert.Equal(t, 1, tree.NumPoints(root))
			assert.Equal(t, 1, tree.TreeSize(root))
		})
	}
}

// checkInvariants verifies the structural invariants of a settled tree
// holding exactly the given points.
func checkInvariants(t *testing.T, tree *rectangletree.Tree, points [][]float64) {
	t.Helper()

	root := tree.Root()
	require.Equal(t, rectangletree.None, tree.Parent(root))
	assert.Equal(t, len(points), tree.NumDescendants(root))

	leafDepth := -1
	tree.Walk(root, func(id rectangletree.NodeID, depth int) bool {
		b := tree.Bound(id)
		assert.LessOrEqual(t, tree.NumChildren(id), tree.MaxNumChildren())
		for i := 0; i < tree.NumChildren(id); i++ {
			c := tree.Child(id, i)
			cb := tree.Bound(c)
			assert.Equal(t, id, tree.Parent(c))
			assert.True(t, b.ContainsRect(&cb), "bound of node %d must enclose child %d", id, c)
		}
		if tree.IsLeaf(id) {
			assert.LessOrEqual(t, tree.NumPoints(id), tree.MaxLeafSize())
			for i := 0; i < tree.NumPoints(id); i++ {
				assert.True(t, b.Contains(tree.Point(id, i)), "bound of leaf %d must enclose point %d", id, i)
			}
			if leafDepth < 0 {
				leafDepth = depth
			}
			assert.Equal(t, leafDepth, depth, "all leaves must be at the same depth")
		} else {
			assert.Equal(t, 0, tree.NumPoints(id))
			assert.Equal(t, 0.0, tree.FurthestPointDistance(id))
		}
		return true
	})
	assert.Equal(t, leafDepth+1, tree.TreeDepth(root))

	rb := tree.Bound(root)
	for _, p := range points {
		assert.True(t, rb.Contains(p))
	}
}
