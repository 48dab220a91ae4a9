// Copyright 2023 The rectangletree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rectangletree

import "github.com/gogama/rectangletree/internal/order"

// Insert adds a point to the tree, descending from the current root,
// and returns the root after the insertion. The point is copied.
func (t *Tree) Insert(p []float64) NodeID {
	return t.InsertPoint(t.root, p)
}

// InsertPoint adds a point to the subtree rooted at n and returns the
// root of the whole tree after the insertion. The point is copied.
// Panics if p does not have the tree's dimensionality.
//
// Every node on the path from n down to the leaf that receives the
// point has its bound expanded to include the point, as do n's
// ancestors. At each internal node the child with the strictly lowest
// descent score is chosen, and the first such child wins a tie. If the
// receiving leaf reaches MaxLeafSize points it is split, and the split
// may cascade upward and grow a new root, which is why the returned
// root may differ from any root the caller saw before.
func (t *Tree) InsertPoint(n NodeID, p []float64) NodeID {
	if len(p) != t.dim {
		fmtPanic("point has dimension %d, tree has dimension %d", len(p), t.dim)
	}
	for a := t.node(n).parent; a != None; a = t.nodes[a].parent {
		t.expand(a, p)
	}
	t.insert(n, p)
	return t.root
}

func (t *Tree) insert(id NodeID, p []float64) {
	t.expand(id, p)

	n := &t.nodes[id]
	if len(n.children) == 0 {
		t.appendPoint(id, p)
		t.observer.OnInsert(t, id, p)
		t.SplitNode(id)
		return
	}

	t.insert(n.children[t.chooseChild(id, p)], p)
}

// chooseChild returns the position, within the child list of internal
// node id, of the child to descend into when inserting p.
func (t *Tree) chooseChild(id NodeID, p []float64) int {
	children := t.nodes[id].children
	scores := make([]float64, len(children))
	for i, c := range children {
		scores[i] = t.descent.EvalNode(&t.nodes[c].bound, p)
	}
	return order.ArgMin(scores)
}

// appendPoint copies p into the point buffer of leaf id without
// touching any bound.
func (t *Tree) appendPoint(id NodeID, p []float64) {
	n := &t.nodes[id]
	if n.count > t.cfg.MaxLeafSize {
		fmtPanic("logic error: point buffer of node %d is full", id)
	}
	n.points = append(n.points, p...)
	n.count++
}
