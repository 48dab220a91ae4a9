// Copyright 2023 The rectangletree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package split

import (
	"math"
	"sort"

	"github.com/gogama/rectangletree"
	"github.com/gogama/rectangletree/hrect"
)

const (
	// HilbertOrder is the order of the Hilbert curve used by the
	// Hilbert split.
	HilbertOrder = 16
	// hilbertMax is the maximum input X- or Y-coordinate of
	// hilbertOfXY.
	//
	// In a Hilbert curve of order N, X- and Y- coordinates range from
	// zero to 2^N-1, so in a Hilbert curve of order 1, the X- and Y-
	// coordinates range from 0 to 1, and so on.
	hilbertMax = (1 << HilbertOrder) - 1
)

// Hilbert splits by ordering the entries along a Hilbert curve through
// the centers of their bounds and cutting the ordered list in half.
//
// Only the first two dimensions are projected onto the curve; a
// one-dimensional tree uses zero for the second coordinate. Entries
// which differ only in higher dimensions therefore share a Hilbert
// index. When every entry of a split shares the same index the curve
// carries no information, and the entries are partitioned as Quadratic
// would partition them instead.
type Hilbert struct{}

func (Hilbert) SplitLeafNode(t *rectangletree.Tree, n rectangletree.NodeID) {
	splitLeaf(t, n, hilbertPartition)
}

func (Hilbert) SplitNonLeafNode(t *rectangletree.Tree, n rectangletree.NodeID) {
	splitNonLeaf(t, n, hilbertPartition)
}

// hilbertSortable is an implementation of sort.Interface which sorts
// entry indices by precomputed Hilbert keys.
type hilbertSortable struct {
	indices []int
	keys    []uint32
}

func (hs *hilbertSortable) Len() int {
	return len(hs.indices)
}

func (hs *hilbertSortable) Less(i, j int) bool {
	return hs.keys[hs.indices[i]] < hs.keys[hs.indices[j]]
}

func (hs *hilbertSortable) Swap(i, j int) {
	hs.indices[i], hs.indices[j] = hs.indices[j], hs.indices[i]
}

// hilbertOrder returns the indices of rects sorted by the Hilbert index
// of their centers within the extent of all of them. Entries with the
// same Hilbert index keep their relative order. The second result
// reports whether at least two entries have different indices.
func hilbertOrder(rects []hrect.HRect) ([]int, bool) {
	extent := hrect.New(rects[0].Dim())
	for i := range rects {
		extent.ExpandToIncludeRect(&rects[i])
	}
	hs := hilbertSortable{
		indices: make([]int, len(rects)),
		keys:    make([]uint32, len(rects)),
	}
	spread := false
	for i := range rects {
		hs.indices[i] = i
		hs.keys[i] = hilbertOfCenter(&rects[i], &extent)
		if hs.keys[i] != hs.keys[0] {
			spread = true
		}
	}
	sort.Stable(&hs)
	return hs.indices, spread
}

func hilbertPartition(rects []hrect.HRect, minFill int) (a, b []int) {
	ordered, spread := hilbertOrder(rects)
	if !spread {
		return quadraticPartition(rects, minFill)
	}
	mid := len(ordered) / 2
	if mid < minFill {
		mid = minFill
	}
	return ordered[:mid], ordered[mid:]
}

// hilbertOfCenter calculates the Hilbert curve index of the center of b
// in the context of the extent e.
func hilbertOfCenter(b, e *hrect.HRect) uint32 {
	hx := hilbertCoord(b, e, 0)
	var hy uint32
	if b.Dim() > 1 {
		hy = hilbertCoord(b, e, 1)
	}
	return hilbertOfXY(hx, hy)
}

// hilbertCoord scales the center of b along dimension i into the range
// [0, hilbertMax] relative to the extent e.
func hilbertCoord(b, e *hrect.HRect, i int) uint32 {
	r := e.Range(i)
	w := r.Width()
	if w == 0 {
		return 0
	}
	return uint32(math.Floor(hilbertMax * (b.Range(i).Mid() - r.Lo) / w))
}

// hilbertOfXY calculates the Hilbert curve index of a given
// two-dimensional coordinate.
//
// NOTES:
//   - Based on https://github.com/rawrunprotected/hilbert_curves, which
//     is in the public domain.
func hilbertOfXY(x, y uint32) uint32 {
	a := x ^ y
	b := 0xFFFF ^ a
	c := 0xFFFF ^ (x | y)
	d := x & (y ^ 0xFFFF)

	A := a | (b >> 1)
	B := (a >> 1) ^ a
	C := ((c >> 1) ^ (b & (d >> 1))) ^ c
	D := ((a & (c >> 1)) ^ (d >> 1)) ^ d

	a = A
	b = B
	c = C
	d = D
	A = (a & (a >> 2)) ^ (b & (b >> 2))
	B = (a & (b >> 2)) ^ (b & ((a ^ b) >> 2))
	C ^= (a & (c >> 2)) ^ (b & (d >> 2))
	D ^= (b & (c >> 2)) ^ ((a ^ b) & (d >> 2))

	a = A
	b = B
	c = C
	d = D
	A = (a & (a >> 4)) ^ (b & (b >> 4))
	B = (a & (b >> 4)) ^ (b & ((a ^ b) >> 4))
	C ^= (a & (c >> 4)) ^ (b & (d >> 4))
	D ^= (b & (c >> 4)) ^ ((a ^ b) & (d >> 4))

	a = A
	b = B
	c = C
	d = D
	C ^= (a & (c >> 8)) ^ (b & (d >> 8))
	D ^= (b & (c >> 8)) ^ ((a ^ b) & (d >> 8))

	a = C ^ (C >> 1)
	b = D ^ (D >> 1)

	i0 := x ^ y
	i1 := b | (0xFFFF ^ (i0 | a))

	i0 = (i0 | (i0 << 8)) & 0x00FF00FF
	i0 = (i0 | (i0 << 4)) & 0x0F0F0F0F
	i0 = (i0 | (i0 << 2)) & 0x33333333
	i0 = (i0 | (i0 << 1)) & 0x55555555

	i1 = (i1 | (i1 << 8)) & 0x00FF00FF
	i1 = (i1 | (i1 << 4)) & 0x0F0F0F0F
	i1 = (i1 | (i1 << 2)) & 0x33333333
	i1 = (i1 | (i1 << 1)) & 0x55555555

	return (i1 << 1) | i0
}
