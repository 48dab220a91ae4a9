// Copyright 2023 The rectangletree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package hrect

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rect(ranges ...Range) HRect {
	return HRect{ranges: ranges}
}

func TestNew(t *testing.T) {
	t.Run("NegativeDim", func(t *testing.T) {
		assert.PanicsWithValue(t, "hrect: negative dimension -1", func() {
			New(-1)
		})
	})

	testCases := []struct {
		name string
		dim  int
	}{
		{"Zero", 0},
		{"One", 1},
		{"Three", 3},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			h := New(testCase.dim)

			assert.Equal(t, testCase.dim, h.Dim())
			assert.True(t, h.IsEmpty())
			for i := 0; i < h.Dim(); i++ {
				assert.Equal(t, EmptyRange, h.Range(i))
			}
		})
	}
}

func TestHRect_ExpandToInclude(t *testing.T) {
	t.Run("DimMismatch", func(t *testing.T) {
		h := New(2)

		assert.PanicsWithValue(t, "hrect: dimension mismatch: region has 2, argument has 3", func() {
			h.ExpandToInclude([]float64{1, 2, 3})
		})
	})

	testCases := []struct {
		name     string
		h        HRect
		p        []float64
		expected HRect
	}{
		{"Empty", New(2), []float64{1, 2}, rect(Range{1, 1}, Range{2, 2})},
		{"Unchanged", rect(Range{0, 1}, Range{0, 1}), []float64{0.5, 0.5}, rect(Range{0, 1}, Range{0, 1})},
		{"GrowLo", rect(Range{0, 1}, Range{0, 1}), []float64{-1, 0.5}, rect(Range{-1, 1}, Range{0, 1})},
		{"GrowHi", rect(Range{0, 1}, Range{0, 1}), []float64{0.5, 3}, rect(Range{0, 1}, Range{0, 3})},
		{"GrowBoth", rect(Range{0, 1}, Range{0, 1}), []float64{-2, 2}, rect(Range{-2, 1}, Range{0, 2})},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			h := testCase.h.Clone()

			h.ExpandToInclude(testCase.p)

			assert.Equal(t, testCase.expected, h)
			assert.True(t, h.Contains(testCase.p))
			assert.True(t, h.ContainsRect(&testCase.h), "Expansion must never shrink the region.")
		})
	}
}

func TestHRect_ExpandToIncludeRect(t *testing.T) {
	testCases := []struct {
		name        string
		h, o        HRect
		expected    HRect
		expectEmpty bool
	}{
		{"EmptyByEmpty", New(2), New(2), New(2), true},
		{"EmptyByUnit", New(2), rect(Range{-1, 1}, Range{-1, 1}), rect(Range{-1, 1}, Range{-1, 1}), false},
		{"UnitByEmpty", rect(Range{-1, 1}, Range{-1, 1}), New(2), rect(Range{-1, 1}, Range{-1, 1}), false},
		{"Disjoint", rect(Range{0, 1}, Range{0, 1}), rect(Range{5, 6}, Range{-3, -2}), rect(Range{0, 6}, Range{-3, 1}), false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			h, o := testCase.h.Clone(), testCase.o.Clone()

			h.ExpandToIncludeRect(&o)

			assert.Equal(t, testCase.o, o, "Parameter region must not change.")
			assert.Equal(t, testCase.expected, h)
			assert.Equal(t, testCase.expectEmpty, h.IsEmpty())
			assert.True(t, h.ContainsRect(&o))
		})
	}
}

func TestHRect_Monotonic(t *testing.T) {
	points := [][]float64{{0, 0}, {1, -1}, {-3, 2}, {0.5, 0.5}, {10, 10}, {-3, -3}}
	h := New(2)
	prev := h.Clone()

	for i, p := range points {
		h.ExpandToInclude(p)

		assert.True(t, h.ContainsRect(&prev), "Region shrank at step %d.", i)
		for j := 0; j <= i; j++ {
			assert.True(t, h.Contains(points[j]), "Region lost point %d at step %d.", j, i)
		}
		prev = h.Clone()
	}
}

func TestHRect_Diameter(t *testing.T) {
	testCases := []struct {
		name     string
		h        HRect
		expected float64
	}{
		{"Empty", New(3), 0},
		{"SinglePoint", rect(Range{1, 1}, Range{2, 2}), 0},
		{"Segment", rect(Range{0, 5}), 5},
		{"ThreeFour", rect(Range{0, 3}, Range{-2, 2}), 5},
		{"UnitCube", rect(Range{0, 1}, Range{0, 1}, Range{0, 1}), math.Sqrt(3)},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := testCase.h.Diameter()

			assert.InDelta(t, testCase.expected, actual, 1e-12)
		})
	}
}

func TestHRect_VolumeAndMargin(t *testing.T) {
	testCases := []struct {
		name           string
		h              HRect
		volume, margin float64
	}{
		{"Empty", New(2), 0, 0},
		{"Degenerate", rect(Range{0, 0}, Range{0, 4}), 0, 4},
		{"Box", rect(Range{0, 2}, Range{1, 4}), 6, 5},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.volume, testCase.h.Volume())
			assert.Equal(t, testCase.margin, testCase.h.Margin())
		})
	}
}

func TestHRect_Center(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		h := New(2)

		assert.Nil(t, h.Center())
	})

	t.Run("Box", func(t *testing.T) {
		h := rect(Range{0, 2}, Range{-4, 0})

		assert.Equal(t, []float64{1, -2}, h.Center())
	})
}

func TestHRect_MinDistance(t *testing.T) {
	h := rect(Range{0, 1}, Range{0, 1})

	testCases := []struct {
		name     string
		p        []float64
		expected float64
	}{
		{"Inside", []float64{0.5, 0.5}, 0},
		{"OnEdge", []float64{1, 0.5}, 0},
		{"Left", []float64{-2, 0.5}, 2},
		{"Corner", []float64{4, 5}, 5},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.InDelta(t, testCase.expected, h.MinDistance(testCase.p), 1e-12)
		})
	}

	t.Run("Empty", func(t *testing.T) {
		e := New(2)

		assert.True(t, math.IsInf(e.MinDistance([]float64{0, 0}), 1))
	})
}

func TestHRect_Intersects(t *testing.T) {
	h := rect(Range{0, 1}, Range{0, 1})

	testCases := []struct {
		name     string
		o        HRect
		expected bool
	}{
		{"Same", rect(Range{0, 1}, Range{0, 1}), true},
		{"Overlap", rect(Range{0.5, 2}, Range{-1, 0.5}), true},
		{"Touch", rect(Range{1, 2}, Range{1, 2}), true},
		{"Inside", rect(Range{0.25, 0.5}, Range{0.25, 0.5}), true},
		{"DisjointX", rect(Range{1.5, 2}, Range{0, 1}), false},
		{"DisjointY", rect(Range{0, 1}, Range{-2, -1}), false},
		{"Empty", New(2), false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, h.Intersects(&testCase.o))
			assert.Equal(t, testCase.expected, testCase.o.Intersects(&h))
		})
	}
}

func TestHRect_Enlargement(t *testing.T) {
	h := rect(Range{0, 1}, Range{0, 1})
	before := h.Clone()

	assert.Equal(t, 0.0, h.Enlargement([]float64{0.5, 0.5}))
	assert.Equal(t, 1.0, h.Enlargement([]float64{2, 1}))
	assert.Equal(t, 1.0, h.MarginEnlargement([]float64{2, 1}))
	o := rect(Range{0, 1}, Range{0, 3})
	assert.Equal(t, 2.0, h.EnlargementRect(&o))
	require.Equal(t, before, h, "Enlargement queries must not modify the region.")
}

func TestHRect_String(t *testing.T) {
	testCases := []struct {
		name     string
		h        HRect
		expected string
	}{
		{"ZeroDim", HRect{}, "[]"},
		{"Empty", New(1), "[[+Inf,-Inf]]"},
		{"Box", rect(Range{-1.5, 2}, Range{0, 100}), "[[-1.5,2],[0,100]]"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.h.String())
		})
	}
}
