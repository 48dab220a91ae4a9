// Copyright 2023 The rectangletree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package hrect provides the axis-aligned hyperrectangle used as the
// bounding region of every rectangle tree node.
package hrect

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Range is a closed interval [Lo, Hi] along one dimension. An empty
// Range has Lo = +Inf and Hi = -Inf.
type Range struct {
	Lo float64
	Hi float64
}

// EmptyRange is the identity element for Range expansion.
var EmptyRange = Range{Lo: math.Inf(1), Hi: math.Inf(-1)}

// Width returns the length of the interval, or zero if the interval
// is empty.
func (r Range) Width() float64 {
	if r.Lo > r.Hi {
		return 0
	}
	return r.Hi - r.Lo
}

// Mid returns the midpoint of the interval. The midpoint of an empty
// interval is NaN.
func (r Range) Mid() float64 {
	return (r.Lo + r.Hi) / 2
}

// Contains tests whether v lies within the closed interval.
func (r Range) Contains(v float64) bool {
	return r.Lo <= v && v <= r.Hi
}

func (r *Range) expand(v float64) {
	if v < r.Lo {
		r.Lo = v
	}
	if v > r.Hi {
		r.Hi = v
	}
}

// An HRect is an axis-aligned hyperrectangle, represented as one Range
// per dimension. HRect values only grow: the expansion methods never
// shrink any Range, so an HRect always encloses every point or region
// that was ever expanded into it.
//
// The zero value is a zero-dimensional region. Use New to create a
// region of a given dimensionality.
type HRect struct {
	ranges []Range
}

// New returns an empty region of the given dimensionality.
func New(dim int) HRect {
	if dim < 0 {
		fmtPanic("negative dimension %d", dim)
	}
	ranges := make([]Range, dim)
	for i := range ranges {
		ranges[i] = EmptyRange
	}
	return HRect{ranges: ranges}
}

// FromPoints returns the smallest region enclosing every point given.
// All points must have length dim.
func FromPoints(dim int, points ...[]float64) HRect {
	h := New(dim)
	for _, p := range points {
		h.ExpandToInclude(p)
	}
	return h
}

// Dim returns the dimensionality of the region. It never changes over
// the lifetime of the region.
func (h *HRect) Dim() int {
	return len(h.ranges)
}

// Range returns the interval covered along dimension i.
func (h *HRect) Range(i int) Range {
	return h.ranges[i]
}

// IsEmpty reports whether nothing has been expanded into the region.
func (h *HRect) IsEmpty() bool {
	for i := range h.ranges {
		if h.ranges[i].Lo > h.ranges[i].Hi {
			return true
		}
	}
	return len(h.ranges) == 0
}

// Clone returns a deep copy of the region.
func (h *HRect) Clone() HRect {
	ranges := make([]Range, len(h.ranges))
	copy(ranges, h.ranges)
	return HRect{ranges: ranges}
}

// ExpandToInclude grows the region in place, if necessary, so that it
// contains p. Panics if p does not have the region's dimensionality.
func (h *HRect) ExpandToInclude(p []float64) {
	h.checkDim(len(p))
	for i := range h.ranges {
		h.ranges[i].expand(p[i])
	}
}

// ExpandToIncludeRect grows the region in place, if necessary, so that
// it contains o. Expanding by an empty region has no effect.
func (h *HRect) ExpandToIncludeRect(o *HRect) {
	h.checkDim(o.Dim())
	if o.IsEmpty() {
		return
	}
	for i := range h.ranges {
		h.ranges[i].expand(o.ranges[i].Lo)
		h.ranges[i].expand(o.ranges[i].Hi)
	}
}

// Contains tests whether p lies inside the closed region.
func (h *HRect) Contains(p []float64) bool {
	h.checkDim(len(p))
	for i := range h.ranges {
		if !h.ranges[i].Contains(p[i]) {
			return false
		}
	}
	return len(h.ranges) > 0
}

// ContainsRect tests whether o lies entirely inside the region. Every
// region contains the empty region.
func (h *HRect) ContainsRect(o *HRect) bool {
	h.checkDim(o.Dim())
	if o.IsEmpty() {
		return true
	}
	for i := range h.ranges {
		if o.ranges[i].Lo < h.ranges[i].Lo || o.ranges[i].Hi > h.ranges[i].Hi {
			return false
		}
	}
	return true
}

// Intersects tests whether the two closed regions share at least one
// point. An empty region intersects nothing.
func (h *HRect) Intersects(o *HRect) bool {
	h.checkDim(o.Dim())
	if h.IsEmpty() || o.IsEmpty() {
		return false
	}
	for i := range h.ranges {
		if o.ranges[i].Hi < h.ranges[i].Lo || o.ranges[i].Lo > h.ranges[i].Hi {
			return false
		}
	}
	return true
}

// widths returns the per-dimension widths of the region.
func (h *HRect) widths() []float64 {
	w := make([]float64, len(h.ranges))
	for i := range h.ranges {
		w[i] = h.ranges[i].Width()
	}
	return w
}

// Diameter returns the length of the region's main diagonal. It is a
// conservative bound on the distance between any two enclosed points,
// not an exact furthest-pair measurement. An empty region has zero
// diameter.
func (h *HRect) Diameter() float64 {
	if h.IsEmpty() {
		return 0
	}
	return floats.Norm(h.widths(), 2)
}

// Volume returns the product of the region's widths.
func (h *HRect) Volume() float64 {
	if h.IsEmpty() {
		return 0
	}
	return floats.Prod(h.widths())
}

// Margin returns the sum of the region's widths.
func (h *HRect) Margin() float64 {
	if h.IsEmpty() {
		return 0
	}
	return floats.Sum(h.widths())
}

// Center returns the midpoint of the region. The center of an empty
// region is nil.
func (h *HRect) Center() []float64 {
	if h.IsEmpty() {
		return nil
	}
	c := make([]float64, len(h.ranges))
	for i := range h.ranges {
		c[i] = h.ranges[i].Mid()
	}
	return c
}

// MinDistance returns the Euclidean distance from p to the nearest
// point of the region, which is zero when p is inside it. The distance
// to an empty region is +Inf.
func (h *HRect) MinDistance(p []float64) float64 {
	h.checkDim(len(p))
	if h.IsEmpty() {
		return math.Inf(1)
	}
	d := make([]float64, len(h.ranges))
	for i := range h.ranges {
		switch {
		case p[i] < h.ranges[i].Lo:
			d[i] = h.ranges[i].Lo - p[i]
		case p[i] > h.ranges[i].Hi:
			d[i] = p[i] - h.ranges[i].Hi
		}
	}
	return floats.Norm(d, 2)
}

// Enlargement returns how much the region's volume would grow if it
// were expanded to include p. The region itself is not modified.
func (h *HRect) Enlargement(p []float64) float64 {
	g := h.Clone()
	g.ExpandToInclude(p)
	return g.Volume() - h.Volume()
}

// EnlargementRect returns how much the region's volume would grow if
// it were expanded to include o. The region itself is not modified.
func (h *HRect) EnlargementRect(o *HRect) float64 {
	g := h.Clone()
	g.ExpandToIncludeRect(o)
	return g.Volume() - h.Volume()
}

// MarginEnlargement returns how much the region's margin would grow if
// it were expanded to include p.
func (h *HRect) MarginEnlargement(p []float64) float64 {
	g := h.Clone()
	g.ExpandToInclude(p)
	return g.Margin() - h.Margin()
}

func (h *HRect) checkDim(n int) {
	if n != len(h.ranges) {
		fmtPanic("dimension mismatch: region has %d, argument has %d", len(h.ranges), n)
	}
}
