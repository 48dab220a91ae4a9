// Copyright 2023 The rectangletree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rectangletree

// SplitNode hands leaf n to the split strategy if it has reached
// MaxLeafSize points, and otherwise does nothing. The strategy is
// invoked exactly once per call.
//
// Calling SplitNode on an internal node is a logic error and panics.
func (t *Tree) SplitNode(n NodeID) {
	nd := t.node(n)
	if len(nd.children) != 0 {
		fmtPanic("logic error: SplitNode called on internal node %d", n)
	}
	if nd.count < t.cfg.MaxLeafSize {
		return
	}
	t.observer.OnSplit(t, n)
	t.split.SplitLeafNode(t, n)
}

// splitNonLeaf hands an overflowing internal node to the split
// strategy's NonLeafSplitter capability.
func (t *Tree) splitNonLeaf(n NodeID) {
	s, ok := t.split.(NonLeafSplitter)
	if !ok {
		fmtPanic("logic error: node %d has %d children but split strategy %T cannot split internal nodes", n, len(t.nodes[n].children), t.split)
	}
	t.observer.OnSplit(t, n)
	s.SplitNonLeafNode(t, n)
}

// Sibling creates a new, empty node next to n and returns it. The new
// node inherits the tree's capacity parameters and has its statistic
// computed immediately.
//
// If n has a parent, the sibling is appended to the parent's child
// list, which may leave the parent holding one child more than
// MaxNumChildren until the caller splits it. If n is the root, a new
// root is created first and n becomes its first child, growing the tree
// by one level.
//
// Sibling is intended for use by split strategies.
func (t *Tree) Sibling(n NodeID) NodeID {
	parent := t.node(n).parent
	if parent == None {
		parent = t.newNode(None)
		t.attach(parent, n)
		t.root = parent
	}
	s := t.newNode(parent)
	t.attach(parent, s)
	return s
}

// attach links child into parent's child list and grows parent's bound
// to enclose it.
func (t *Tree) attach(parent, child NodeID) {
	p := &t.nodes[parent]
	if len(p.children) > t.cfg.MaxNumChildren {
		fmtPanic("logic error: child list of node %d is full", parent)
	}
	p.children = append(p.children, child)
	t.nodes[child].parent = parent
	t.expandRect(parent, &t.nodes[child].bound)
}

// TakePoints removes every point from leaf n and returns copies of
// them, in insertion order. The leaf's bound is left unchanged, since
// bounds never shrink. Panics if n is internal.
//
// TakePoints is intended for use by split strategies.
func (t *Tree) TakePoints(n NodeID) [][]float64 {
	nd := t.node(n)
	if len(nd.children) != 0 {
		fmtPanic("logic error: TakePoints called on internal node %d", n)
	}
	points := make([][]float64, nd.count)
	for i := range points {
		points[i] = append([]float64(nil), nd.points[i*t.dim:(i+1)*t.dim]...)
	}
	nd.points = nd.points[:0]
	nd.count = 0
	return points
}

// AddPoint stores a copy of p in leaf n and grows n's bound to include
// it. Unlike InsertPoint it neither touches ancestor bounds nor splits,
// so it should only be used to move points between nodes which share
// the same ancestors. Panics if n is internal or its point buffer is
// full.
//
// AddPoint is intended for use by split strategies.
func (t *Tree) AddPoint(n NodeID, p []float64) {
	if len(p) != t.dim {
		fmtPanic("point has dimension %d, tree has dimension %d", len(p), t.dim)
	}
	if len(t.node(n).children) != 0 {
		fmtPanic("logic error: AddPoint called on internal node %d", n)
	}
	t.appendPoint(n, p)
	t.expand(n, p)
}

// TakeChildren unlinks every child of internal node n and returns them
// in order. The returned nodes have no parent until they are attached
// again with AddChild, and n is left without children or points. The
// bound of n is unchanged.
//
// TakeChildren is intended for use by split strategies.
func (t *Tree) TakeChildren(n NodeID) []NodeID {
	nd := t.node(n)
	children := append([]NodeID(nil), nd.children...)
	nd.children = nd.children[:0]
	for _, c := range children {
		t.nodes[c].parent = None
	}
	return children
}

// AddChild links the parentless node child under n and grows n's bound
// to enclose the child's bound. Panics if n holds points, if child
// already has a parent or is the root, or if n's child list is full.
//
// AddChild is intended for use by split strategies.
func (t *Tree) AddChild(n, child NodeID) {
	if t.node(n).count != 0 {
		fmtPanic("logic error: AddChild called on leaf node %d holding points", n)
	}
	if t.node(child).parent != None || child == t.root {
		fmtPanic("logic error: node %d is already linked", child)
	}
	t.attach(n, child)
}

// Dissolve removes node n from the tree, handing what it holds to its
// parent, and returns the root after the removal.
//
// If n is internal its children are reattached to n's parent, which is
// split through the split strategy's NonLeafSplitter capability
// whenever it overflows. If n is a leaf its points are reinserted from
// the root once n has been unlinked. Either way n's slot is retired and
// may be reused by a later node. Bounds are never shrunk, so the
// ancestors of n continue to enclose everything that was beneath it.
// Reattached children sit one level higher than before, so dissolving
// an internal node leaves the tree unbalanced.
//
// Dissolving the root is a logic error and panics, as is dissolving an
// internal node whose parent would overflow when the split strategy is
// not a NonLeafSplitter. In both cases the panic happens before the
// tree is modified.
func (t *Tree) Dissolve(n NodeID) NodeID {
	parent := t.node(n).parent
	if parent == None {
		textPanic("logic error: cannot dissolve the root")
	}

	if k := len(t.nodes[n].children); k > 0 {
		if total := len(t.nodes[parent].children) - 1 + k; total > t.cfg.MaxNumChildren {
			if _, ok := t.split.(NonLeafSplitter); !ok {
				fmtPanic("logic error: node %d has %d children but split strategy %T cannot split internal nodes", parent, total, t.split)
			}
		}
	}

	var points [][]float64
	var children []NodeID
	if len(t.nodes[n].children) == 0 {
		points = t.TakePoints(n)
	} else {
		children = t.TakeChildren(n)
	}

	t.unlink(parent, n)
	t.retire(n)

	for _, c := range children {
		// A split leaves parent holding part of its children, so it
		// always has room for the next one.
		t.attach(parent, c)
		if len(t.nodes[parent].children) > t.cfg.MaxNumChildren {
			t.splitNonLeaf(parent)
		}
	}

	for _, p := range points {
		t.Insert(p)
	}

	return t.root
}

// unlink removes child from parent's child list, preserving the order
// of the remaining children.
func (t *Tree) unlink(parent, child NodeID) {
	p := &t.nodes[parent]
	for i, c := range p.children {
		if c == child {
			p.children = append(p.children[:i], p.children[i+1:]...)
			t.nodes[child].parent = None
			return
		}
	}
	fmtPanic("logic error: node %d is not a child of node %d", child, parent)
}
