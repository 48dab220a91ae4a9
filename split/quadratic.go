// Copyright 2023 The rectangletree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package split

import (
	"math"

	"github.com/gogama/rectangletree"
	"github.com/gogama/rectangletree/hrect"
	"github.com/gogama/rectangletree/internal/order"
)

// Quadratic is Guttman's quadratic R-Tree split. It seeds the two
// groups with the pair of entries that would waste the most volume if
// grouped together, then repeatedly assigns the entry with the
// strongest preference for one group over the other to the group whose
// bound it enlarges least.
type Quadratic struct{}

func (Quadratic) SplitLeafNode(t *rectangletree.Tree, n rectangletree.NodeID) {
	splitLeaf(t, n, quadraticPartition)
}

func (Quadratic) SplitNonLeafNode(t *rectangletree.Tree, n rectangletree.NodeID) {
	splitNonLeaf(t, n, quadraticPartition)
}

func quadraticPartition(rects []hrect.HRect, minFill int) (a, b []int) {
	s1, s2 := pickSeeds(rects)
	a, b = []int{s1}, []int{s2}
	boundA, boundB := rects[s1].Clone(), rects[s2].Clone()

	remaining := make([]int, 0, len(rects)-2)
	for i := range rects {
		if i != s1 && i != s2 {
			remaining = append(remaining, i)
		}
	}

	for len(remaining) > 0 {
		// If one group needs every remaining entry to reach the
		// minimum fill, it gets them all.
		if len(a)+len(remaining) <= minFill {
			a = append(a, remaining...)
			break
		}
		if len(b)+len(remaining) <= minFill {
			b = append(b, remaining...)
			break
		}

		// PickNext: the entry whose enlargements differ the most.
		diffs := make([]float64, len(remaining))
		for k, i := range remaining {
			diffs[k] = math.Abs(boundA.EnlargementRect(&rects[i]) - boundB.EnlargementRect(&rects[i]))
		}
		k := order.ArgMax(diffs)
		i := remaining[k]
		remaining = append(remaining[:k], remaining[k+1:]...)

		if preferA(&boundA, &boundB, &rects[i], len(a), len(b)) {
			a = append(a, i)
			boundA.ExpandToIncludeRect(&rects[i])
		} else {
			b = append(b, i)
			boundB.ExpandToIncludeRect(&rects[i])
		}
	}

	return a, b
}

// preferA decides whether r joins group A. Ties in volume enlargement
// are resolved by margin enlargement, which still separates entries
// whose bounds are flat, then by smaller volume and then by fewer
// entries.
func preferA(boundA, boundB, r *hrect.HRect, lenA, lenB int) bool {
	ea, eb := boundA.EnlargementRect(r), boundB.EnlargementRect(r)
	if ea != eb {
		return ea < eb
	}
	ma, mb := marginEnlargement(boundA, r), marginEnlargement(boundB, r)
	if ma != mb {
		return ma < mb
	}
	va, vb := boundA.Volume(), boundB.Volume()
	if va != vb {
		return va < vb
	}
	return lenA <= lenB
}

// pickSeeds returns the pair of entries whose combined bound wastes the
// most volume, using wasted margin to break ties. The first such pair
// wins a tie, and entries whose bounds coincide yield the pair (0, 1).
func pickSeeds(rects []hrect.HRect) (int, int) {
	s1, s2 := 0, 1
	bestVolume, bestMargin := math.Inf(-1), math.Inf(-1)
	for i := 0; i < len(rects); i++ {
		for j := i + 1; j < len(rects); j++ {
			u := rects[i].Clone()
			u.ExpandToIncludeRect(&rects[j])
			volume := u.Volume() - rects[i].Volume() - rects[j].Volume()
			margin := u.Margin() - rects[i].Margin() - rects[j].Margin()
			if volume > bestVolume || volume == bestVolume && margin > bestMargin {
				bestVolume, bestMargin = volume, margin
				s1, s2 = i, j
			}
		}
	}
	return s1, s2
}

func marginEnlargement(b, r *hrect.HRect) float64 {
	g := b.Clone()
	g.ExpandToIncludeRect(r)
	return g.Margin() - b.Margin()
}
