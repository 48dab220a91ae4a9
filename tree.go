// Copyright 2023 The rectangletree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rectangletree

import (
	"github.com/gogama/rectangletree/descent"
	"github.com/gogama/rectangletree/hrect"
	"gonum.org/v1/gonum/mat"
)

// A NodeID addresses a node within a Tree's arena. A NodeID stays valid
// until the node it addresses is retired by Dissolve or Reset, after
// which the same NodeID may be reused for a new node.
type NodeID int

// None is the NodeID of a missing node, for example the parent of the
// root.
const None NodeID = -1

// A node is one entry of the Tree arena. A node is either a leaf,
// holding points in its buffer, or internal, holding child references;
// never both.
type node struct {
	// parent is the node's parent, or None for the root. It is only
	// ever used to walk upward.
	parent NodeID
	// children lists the node's children. Its capacity is one more
	// than MaxNumChildren so that a node can overflow briefly while a
	// split is in progress.
	children []NodeID
	// points is the flat point buffer, count*dim values long. Its
	// capacity is one point more than MaxLeafSize for the same reason.
	points []float64
	// count is the number of points stored in points.
	count int
	// bound encloses everything ever inserted beneath the node.
	bound hrect.HRect
	// stat is the node's opaque annotation.
	stat Statistic
	// furthestDescendantDistance is refreshed on every expansion of
	// bound, so it is always an upper bound.
	furthestDescendantDistance float64
	// retired is true once the node's slot has been released.
	retired bool
}

// Tree is a rectangle tree. Use New or Build to create one.
type Tree struct {
	dim       int
	cfg       Config
	nodes     []node
	free      []NodeID
	root      NodeID
	split     SplitStrategy
	descent   DescentStrategy
	statistic StatisticBuilder
	observer  Observer
}

// New creates a tree of the given dimensionality consisting of a
// single empty root leaf. Panics if split is nil.
//
// The capacity parameters in cfg are not checked. See Config.Validate.
func New(dim int, cfg Config, split SplitStrategy, opts ...Option) *Tree {
	if split == nil {
		textPanic("nil split strategy")
	}
	t := &Tree{
		dim:       dim,
		cfg:       cfg,
		split:     split,
		descent:   descent.Enlargement{},
		statistic: EmptyStatistic,
		observer:  nopObserver{},
	}
	for _, opt := range opts {
		opt(t)
	}
	t.root = t.newNode(None)
	return t
}

// Build creates a tree from a point source and inserts its points one
// at a time. Each column of data is one point and each row is one
// dimension. Every column from cfg.FirstDataIndex up to the last
// column is inserted, in column order.
func Build(data mat.Matrix, cfg Config, split SplitStrategy, opts ...Option) *Tree {
	r, c := data.Dims()
	t := New(r, cfg, split, opts...)
	root := t.Root()
	p := make([]float64, r)
	for j := cfg.FirstDataIndex; j < c; j++ {
		root = t.InsertPoint(root, mat.Col(p, j, data))
	}
	return t
}

// newNode allocates a node in the arena, reusing a retired slot if one
// is available, and computes its statistic. The node is not linked into
// its parent's child list.
func (t *Tree) newNode(parent NodeID) NodeID {
	n := node{
		parent:   parent,
		children: make([]NodeID, 0, t.cfg.MaxNumChildren+1),
		points:   make([]float64, 0, (t.cfg.MaxLeafSize+1)*t.dim),
		bound:    hrect.New(t.dim),
	}
	var id NodeID
	if k := len(t.free); k > 0 {
		id = t.free[k-1]
		t.free = t.free[:k-1]
		t.nodes[id] = n
	} else {
		id = NodeID(len(t.nodes))
		t.nodes = append(t.nodes, n)
	}
	t.nodes[id].stat = t.statistic.Build(t, id)
	return id
}

// retire releases a node's slot. Children are not touched.
func (t *Tree) retire(id NodeID) {
	t.nodes[id] = node{parent: None, retired: true}
	t.free = append(t.free, id)
}

// retireSubtree releases a node and all of its descendants, children
// before parents.
func (t *Tree) retireSubtree(id NodeID) {
	for _, c := range t.nodes[id].children {
		t.retireSubtree(c)
	}
	t.retire(id)
}

// node returns the arena entry for id, panicking if id does not address
// a live node.
func (t *Tree) node(id NodeID) *node {
	if id < 0 || int(id) >= len(t.nodes) || t.nodes[id].retired {
		fmtPanic("logic error: invalid node %d", id)
	}
	return &t.nodes[id]
}

// expand grows a node's bound to include p.
func (t *Tree) expand(id NodeID, p []float64) {
	n := &t.nodes[id]
	n.bound.ExpandToInclude(p)
	n.furthestDescendantDistance = 0.5 * n.bound.Diameter()
}

// expandRect grows a node's bound to include b.
func (t *Tree) expandRect(id NodeID, b *hrect.HRect) {
	n := &t.nodes[id]
	n.bound.ExpandToIncludeRect(b)
	n.furthestDescendantDistance = 0.5 * n.bound.Diameter()
}

// Reset discards every node and leaves the tree holding a single empty
// root leaf. Nodes are released children first; parent links are never
// followed.
func (t *Tree) Reset() {
	t.retireSubtree(t.root)
	t.root = t.newNode(None)
}

// Root returns the current root of the tree.
func (t *Tree) Root() NodeID {
	return t.root
}

// RootOf returns the root reached by following parent links upward
// from n.
func (t *Tree) RootOf(n NodeID) NodeID {
	for {
		p := t.node(n).parent
		if p == None {
			return n
		}
		n = p
	}
}

// Dim returns the dimensionality of the points in the tree.
func (t *Tree) Dim() int {
	return t.dim
}

// Config returns the capacity parameters the tree was created with.
func (t *Tree) Config() Config {
	return t.cfg
}

// MaxLeafSize returns the point count at which a leaf is split.
func (t *Tree) MaxLeafSize() int {
	return t.cfg.MaxLeafSize
}

// MinLeafSize returns the minimum leaf fill split strategies should
// honor.
func (t *Tree) MinLeafSize() int {
	return t.cfg.MinLeafSize
}

// MaxNumChildren returns the maximum child count of a node at rest.
func (t *Tree) MaxNumChildren() int {
	return t.cfg.MaxNumChildren
}

// MinNumChildren returns the minimum child fill split strategies should
// honor.
func (t *Tree) MinNumChildren() int {
	return t.cfg.MinNumChildren
}

// NumNodes returns the number of live nodes in the arena.
func (t *Tree) NumNodes() int {
	return len(t.nodes) - len(t.free)
}
