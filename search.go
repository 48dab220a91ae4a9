// Copyright 2023 The rectangletree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rectangletree

import "github.com/gogama/rectangletree/hrect"

// Result is a single search result. A Result's fields can be passed to
// Tree.Point to retrieve the matching point.
type Result struct {
	// Leaf is the leaf node holding the point.
	Leaf NodeID
	// Index is the position of the point within the leaf.
	Index int
}

// Results is a list of search results which implements
// sort.Interface. The sort.Sort function will sort Results in ascending
// order of Leaf, then of Index.
type Results []Result

func (rs Results) Len() int {
	return len(rs)
}

func (rs Results) Less(i, j int) bool {
	if rs[i].Leaf != rs[j].Leaf {
		return rs[i].Leaf < rs[j].Leaf
	}
	return rs[i].Index < rs[j].Index
}

func (rs Results) Swap(i, j int) {
	rs[i], rs[j] = rs[j], rs[i]
}

// Search returns every point in the tree lying inside the closed query
// region b. Subtrees whose bound does not intersect b are skipped. The
// order of the search results is not defined. Panics if b does not have
// the tree's dimensionality.
//
// The results are only valid until the tree is next mutated.
func (t *Tree) Search(b *hrect.HRect) Results {
	if b.Dim() != t.dim {
		fmtPanic("query region has dimension %d, tree has dimension %d", b.Dim(), t.dim)
	}

	r := make(Results, 0)
	stack := []NodeID{t.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[id]
		if !b.Intersects(&n.bound) {
			continue
		}
		if len(n.children) != 0 {
			stack = append(stack, n.children...)
			continue
		}
		for i := 0; i < n.count; i++ {
			if b.Contains(n.points[i*t.dim : (i+1)*t.dim]) {
				r = append(r, Result{Leaf: id, Index: i})
			}
		}
	}
	return r
}
