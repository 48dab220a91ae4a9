// Copyright 2023 The rectangletree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rectangletree

import "github.com/gogama/rectangletree/hrect"

// TreeSize returns the number of nodes in the subtree rooted at n,
// including n itself.
func (t *Tree) TreeSize(n NodeID) int {
	size := 1
	for _, c := range t.node(n).children {
		size += t.TreeSize(c)
	}
	return size
}

// TreeDepth returns the number of levels in the subtree rooted at n. A
// node without children has depth 1.
func (t *Tree) TreeDepth(n NodeID) int {
	var maxSubDepth int
	for _, c := range t.node(n).children {
		if d := t.TreeDepth(c); d > maxSubDepth {
			maxSubDepth = d
		}
	}
	return maxSubDepth + 1
}

// IsLeaf reports whether n has no children.
func (t *Tree) IsLeaf(n NodeID) bool {
	return len(t.node(n).children) == 0
}

// NumPoints returns the number of points stored directly in n. An
// internal node always reports zero, whatever its descendants hold.
func (t *Tree) NumPoints(n NodeID) int {
	nd := t.node(n)
	if len(nd.children) != 0 {
		return 0
	}
	return nd.count
}

// NumDescendants returns the number of points stored anywhere in the
// subtree rooted at n.
func (t *Tree) NumDescendants(n NodeID) int {
	nd := t.node(n)
	count := nd.count
	for _, c := range nd.children {
		count += t.NumDescendants(c)
	}
	return count
}

// NumChildren returns the number of children of n.
func (t *Tree) NumChildren(n NodeID) int {
	return len(t.node(n).children)
}

// Child returns the i-th child of n.
func (t *Tree) Child(n NodeID, i int) NodeID {
	return t.node(n).children[i]
}

// Children returns a copy of n's child list.
func (t *Tree) Children(n NodeID) []NodeID {
	return append([]NodeID(nil), t.node(n).children...)
}

// Parent returns the parent of n, or None if n is the root.
func (t *Tree) Parent(n NodeID) NodeID {
	return t.node(n).parent
}

// Point returns the i-th point stored in leaf n. The returned slice
// aliases the leaf's buffer and must not be modified; it is only valid
// until the tree is next mutated.
func (t *Tree) Point(n NodeID, i int) []float64 {
	nd := t.node(n)
	if i < 0 || i >= nd.count {
		fmtPanic("point index %d out of range [0, %d)", i, nd.count)
	}
	return nd.points[i*t.dim : (i+1)*t.dim : (i+1)*t.dim]
}

// Bound returns a copy of n's bounding region.
func (t *Tree) Bound(n NodeID) hrect.HRect {
	return t.node(n).bound.Clone()
}

// Stat returns the statistic computed for n when it was created.
func (t *Tree) Stat(n NodeID) Statistic {
	return t.node(n).stat
}

// FurthestPointDistance returns an upper bound on the distance from the
// center of leaf n's bound to any point stored in it: half the bound's
// diameter. It is zero for internal nodes.
//
// The value is the distance from the center to a corner of the bound,
// not the distance to the furthest stored point, so it may overstate
// but never understate that distance.
func (t *Tree) FurthestPointDistance(n NodeID) float64 {
	nd := t.node(n)
	if len(nd.children) != 0 {
		return 0
	}
	return 0.5 * nd.bound.Diameter()
}

// FurthestDescendantDistance returns an upper bound on the distance
// from the center of n's bound to any point in the subtree rooted at n.
//
// The value is refreshed every time n's bound is expanded, so it stays
// a valid upper bound across insertions.
func (t *Tree) FurthestDescendantDistance(n NodeID) float64 {
	return t.node(n).furthestDescendantDistance
}

// Walk visits the subtree rooted at n in pre-order, calling fn with
// each node and its depth below n (n itself has depth 0). If fn returns
// false the node's children are skipped. The tree must not be mutated
// during the walk.
func (t *Tree) Walk(n NodeID, fn func(id NodeID, depth int) bool) {
	t.walk(n, 0, fn)
}

func (t *Tree) walk(n NodeID, depth int, fn func(NodeID, int) bool) {
	if !fn(n, depth) {
		return
	}
	for _, c := range t.node(n).children {
		t.walk(c, depth+1, fn)
	}
}
