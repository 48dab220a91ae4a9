// Copyright 2023 The rectangletree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package rectangletree provides a generalized, multi-way rectangle
// tree: a mutable spatial index over fixed-dimension points, built by
// repeated single-point insertion, whose nodes are bounded by
// axis-aligned hyperrectangles.
//
// The way the tree grows is pluggable. A SplitStrategy partitions
// overflowing nodes (see package split for R-Tree style strategies), a
// DescentStrategy scores children when choosing where to insert (see
// package descent), and a StatisticBuilder annotates every node with an
// opaque Statistic when the node is created.
//
// All nodes live in an arena owned by the Tree and are addressed by
// NodeID. Because a split can grow a new root above the old one, the
// root is not stable across insertions: Insert and InsertPoint return
// the current root, and callers should use that value rather than
// caching an earlier one.
//
// A Tree is not safe for concurrent use.
package rectangletree
