// Copyright 2023 The rectangletree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rectangletree

import "github.com/gogama/rectangletree/hrect"

// A SplitStrategy partitions an overflowing leaf into two nodes.
//
// SplitLeafNode is invoked exactly once each time a leaf reaches
// MaxLeafSize points. It owns the whole split: it creates the sibling
// with Tree.Sibling, redistributes points with Tree.TakePoints and
// Tree.AddPoint, and, if the parent now has more than MaxNumChildren
// children, splits the parent in turn, up to and including growing a
// new root. When it returns, every node must again satisfy the tree's
// capacity invariants.
type SplitStrategy interface {
	SplitLeafNode(t *Tree, n NodeID)
}

// A NonLeafSplitter can split an internal node whose child count has
// exceeded MaxNumChildren. Split strategies which cascade usually
// implement it; the Tree itself needs it only to repair a parent that
// overflows when Dissolve splices children into it.
type NonLeafSplitter interface {
	SplitNonLeafNode(t *Tree, n NodeID)
}

// A DescentStrategy scores a child's bounding region against a point
// being inserted. Lower scores are better. EvalNode must be pure.
type DescentStrategy interface {
	EvalNode(b *hrect.HRect, p []float64) float64
}

// A Statistic is an opaque per-node annotation. The tree computes it
// when a node is created and never looks at it again.
type Statistic interface{}

// A StatisticBuilder computes the Statistic of a newly created node.
type StatisticBuilder interface {
	Build(t *Tree, n NodeID) Statistic
}

// StatisticFunc adapts a plain function into a StatisticBuilder.
type StatisticFunc func(t *Tree, n NodeID) Statistic

func (f StatisticFunc) Build(t *Tree, n NodeID) Statistic { return f(t, n) }

// EmptyStatistic is a StatisticBuilder which annotates every node with
// nil.
var EmptyStatistic StatisticBuilder = StatisticFunc(func(*Tree, NodeID) Statistic { return nil })
