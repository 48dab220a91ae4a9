// Copyright 2023 The rectangletree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package order contains small generic selection helpers shared by the
// tree core and the split strategies.
package order

import "golang.org/x/exp/constraints"

// ArgMin returns the index of the strictly lowest value in s. When
// several values tie for the minimum the first one wins. Returns -1 if
// s is empty.
func ArgMin[S constraints.Ordered](s []S) int {
	if len(s) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(s); i++ {
		if s[i] < s[best] {
			best = i
		}
	}
	return best
}

// ArgMax returns the index of the strictly highest value in s. When
// several values tie for the maximum the first one wins. Returns -1 if
// s is empty.
func ArgMax[S constraints.Ordered](s []S) int {
	if len(s) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(s); i++ {
		if s[i] > s[best] {
			best = i
		}
	}
	return best
}
