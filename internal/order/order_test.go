// Copyright 2023 The rectangletree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgMin(t *testing.T) {
	testCases := []struct {
		name     string
		input    []float64
		expected int
	}{
		{"Empty", nil, -1},
		{"Single", []float64{3}, 0},
		{"Last", []float64{3, 2, 1}, 2},
		{"TieFirstWins", []float64{2, 1, 5, 1, 1}, 1},
		{"AllEqual", []float64{7, 7, 7}, 0},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, ArgMin(testCase.input))
		})
	}
}

func TestArgMax(t *testing.T) {
	testCases := []struct {
		name     string
		input    []int
		expected int
	}{
		{"Empty", nil, -1},
		{"Single", []int{3}, 0},
		{"First", []int{3, 2, 1}, 0},
		{"TieFirstWins", []int{2, 5, 1, 5}, 1},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, ArgMax(testCase.input))
		})
	}
}
