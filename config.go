// Copyright 2023 The rectangletree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rectangletree

// Config holds the capacity parameters of a Tree. They are fixed when
// the tree is created and shared by every node in it.
type Config struct {
	// MaxLeafSize is the point count at which a leaf is split. Must be
	// at least 1.
	MaxLeafSize int
	// MinLeafSize is the minimum point count a split strategy should
	// leave in each half of a split leaf. Must not exceed MaxLeafSize.
	MinLeafSize int
	// MaxNumChildren is the maximum child count of an internal node at
	// rest. Must be at least 2.
	MaxNumChildren int
	// MinNumChildren is the minimum child count a split strategy should
	// leave in each half of a split internal node. Must not exceed
	// MaxNumChildren.
	MinNumChildren int
	// FirstDataIndex is the index of the first column Build inserts
	// from its point source.
	FirstDataIndex int
}

// DefaultConfig returns a Config with the default capacity parameters:
// leaves hold between 6 and 20 points and internal nodes hold up to 4
// children.
func DefaultConfig() Config {
	return Config{
		MaxLeafSize:    20,
		MinLeafSize:    6,
		MaxNumChildren: 4,
		MinNumChildren: 0,
		FirstDataIndex: 0,
	}
}

// Validate checks the capacity parameters for consistency.
//
// New and Build never call Validate: a malformed Config is a caller
// contract violation whose consequences are undefined. Callers taking
// parameters from untrusted input can use Validate to reject them
// first.
func (c Config) Validate() error {
	switch {
	case c.MaxLeafSize < 1:
		return fmtErr("max leaf size must be at least 1, got %d", c.MaxLeafSize)
	case c.MinLeafSize < 0 || c.MinLeafSize > c.MaxLeafSize:
		return fmtErr("min leaf size must be in [0, %d], got %d", c.MaxLeafSize, c.MinLeafSize)
	case c.MaxNumChildren < 2:
		return fmtErr("max num children must be at least 2, got %d", c.MaxNumChildren)
	case c.MinNumChildren < 0 || c.MinNumChildren > c.MaxNumChildren:
		return fmtErr("min num children must be in [0, %d], got %d", c.MaxNumChildren, c.MinNumChildren)
	case c.FirstDataIndex < 0:
		return textErr("first data index must not be negative")
	default:
		return nil
	}
}

// An Option customizes a Tree at construction time.
type Option func(*Tree)

// WithDescent sets the descent strategy used to choose a child during
// insertion. The default is descent.Enlargement.
func WithDescent(d DescentStrategy) Option {
	return func(t *Tree) {
		t.descent = d
	}
}

// WithStatistic sets the builder which computes each node's Statistic
// when the node is created. The default is EmptyStatistic.
func WithStatistic(b StatisticBuilder) Option {
	return func(t *Tree) {
		t.statistic = b
	}
}

// WithObserver sets an Observer notified on every insertion and split.
func WithObserver(o Observer) Option {
	return func(t *Tree) {
		t.observer = o
	}
}
