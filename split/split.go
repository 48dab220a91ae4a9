// Copyright 2023 The rectangletree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package split provides split strategies for rectangle trees.
//
// Each strategy splits an overflowing leaf into the leaf itself and a
// new sibling, then cascades: if the parent now holds more than
// MaxNumChildren children it is split the same way, up to the root.
// Splitting the root grows the tree by one level, so every leaf stays
// at the same depth.
//
// The strategies differ only in how they partition the overflowing
// entries into two groups.
package split

import (
	"github.com/gogama/rectangletree"
	"github.com/gogama/rectangletree/hrect"
)

// partitionFunc divides entries, described by their bounding regions,
// into two groups of indices. Each group must receive at least minFill
// entries.
type partitionFunc func(rects []hrect.HRect, minFill int) (a, b []int)

// splitLeaf moves leaf n's points into n and a new sibling according
// to partition, then repairs the parent.
func splitLeaf(t *rectangletree.Tree, n rectangletree.NodeID, partition partitionFunc) {
	if t.NumPoints(n) < 2 {
		return
	}
	points := t.TakePoints(n)
	rects := make([]hrect.HRect, len(points))
	for i := range points {
		rects[i] = hrect.FromPoints(t.Dim(), points[i])
	}
	a, b := partition(rects, minFill(t.MinLeafSize(), len(points)))
	s := t.Sibling(n)
	for _, i := range a {
		t.AddPoint(n, points[i])
	}
	for _, i := range b {
		t.AddPoint(s, points[i])
	}
	cascade(t, t.Parent(n), partition)
}

// splitNonLeaf moves internal node n's children into n and a new
// sibling according to partition, then repairs the parent.
func splitNonLeaf(t *rectangletree.Tree, n rectangletree.NodeID, partition partitionFunc) {
	if t.NumChildren(n) < 2 {
		return
	}
	children := t.TakeChildren(n)
	rects := make([]hrect.HRect, len(children))
	for i, c := range children {
		rects[i] = t.Bound(c)
	}
	a, b := partition(rects, minFill(t.MinNumChildren(), len(children)))
	s := t.Sibling(n)
	for _, i := range a {
		t.AddChild(n, children[i])
	}
	for _, i := range b {
		t.AddChild(s, children[i])
	}
	cascade(t, t.Parent(n), partition)
}

// cascade splits parent if it has overflowed.
func cascade(t *rectangletree.Tree, parent rectangletree.NodeID, partition partitionFunc) {
	if parent != rectangletree.None && t.NumChildren(parent) > t.MaxNumChildren() {
		splitNonLeaf(t, parent, partition)
	}
}

// minFill returns the minimum group size for splitting n entries given
// the configured minimum, which is capped at half of n and raised to
// at least one.
func minFill(configured, n int) int {
	m := configured
	if m > n/2 {
		m = n / 2
	}
	if m < 1 {
		m = 1
	}
	return m
}
