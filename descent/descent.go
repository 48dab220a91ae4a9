// Copyright 2023 The rectangletree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package descent provides descent strategies for rectangle trees. A
// descent strategy scores each child of an internal node against a
// point being inserted; the child with the lowest score receives the
// point.
package descent

import "github.com/gogama/rectangletree/hrect"

// Enlargement is the classic R-Tree ChooseLeaf heuristic: the score is
// the growth in volume the child's bound would undergo to include the
// point.
type Enlargement struct{}

func (Enlargement) EvalNode(b *hrect.HRect, p []float64) float64 {
	return b.Enlargement(p)
}

// MinDistance scores a child by the Euclidean distance from the point
// to the child's bound, which is zero for every bound containing it.
type MinDistance struct{}

func (MinDistance) EvalNode(b *hrect.HRect, p []float64) float64 {
	return b.MinDistance(p)
}

// Margin scores a child by the growth in margin, the sum of the
// bound's side lengths, needed to include the point. Unlike
// Enlargement it still discriminates between bounds which are flat in
// some dimension.
type Margin struct{}

func (Margin) EvalNode(b *hrect.HRect, p []float64) float64 {
	return b.MarginEnlargement(p)
}
