// Copyright 2023 The rectangletree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rectangletree

import "github.com/sirupsen/logrus"

// An Observer is notified at well-defined points of tree maintenance.
//
// OnInsert is called after a leaf has stored a point and before the
// leaf is checked for overflow. OnSplit is called immediately before a
// split strategy is invoked on a node. Observers must not mutate the
// tree.
type Observer interface {
	OnInsert(t *Tree, leaf NodeID, p []float64)
	OnSplit(t *Tree, n NodeID)
}

// ObserverFuncs adapts a pair of functions into an Observer. Either
// function may be nil.
type ObserverFuncs struct {
	Insert func(t *Tree, leaf NodeID, p []float64)
	Split  func(t *Tree, n NodeID)
}

func (o ObserverFuncs) OnInsert(t *Tree, leaf NodeID, p []float64) {
	if o.Insert != nil {
		o.Insert(t, leaf, p)
	}
}

func (o ObserverFuncs) OnSplit(t *Tree, n NodeID) {
	if o.Split != nil {
		o.Split(t, n)
	}
}

// Counters is an Observer which counts insertions and splits.
type Counters struct {
	Inserts int
	Splits  int
}

func (c *Counters) OnInsert(*Tree, NodeID, []float64) { c.Inserts++ }
func (c *Counters) OnSplit(*Tree, NodeID)             { c.Splits++ }

// LogObserver is an Observer which writes a structured log record for
// every insertion and split.
type LogObserver struct {
	// Logger receives the records. If nil, logrus.StandardLogger() is
	// used.
	Logger logrus.FieldLogger
	// Level is the level at which records are written. The zero value,
	// logrus.PanicLevel, means logrus.DebugLevel.
	Level logrus.Level
}

func (o LogObserver) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return logrus.StandardLogger()
}

func (o LogObserver) level() logrus.Level {
	if o.Level == logrus.PanicLevel {
		return logrus.DebugLevel
	}
	return o.Level
}

func (o LogObserver) OnInsert(t *Tree, leaf NodeID, p []float64) {
	o.logger().WithFields(logrus.Fields{
		"leaf":      int(leaf),
		"point":     p,
		"numPoints": t.NumPoints(leaf),
	}).Log(o.level(), "rectangletree: insert")
}

func (o LogObserver) OnSplit(t *Tree, n NodeID) {
	o.logger().WithFields(logrus.Fields{
		"node":        int(n),
		"isLeaf":      t.IsLeaf(n),
		"numPoints":   t.NumPoints(n),
		"numChildren": t.NumChildren(n),
		"bound":       t.Bound(n).String(),
	}).Log(o.level(), "rectangletree: split")
}

type nopObserver struct{}

func (nopObserver) OnInsert(*Tree, NodeID, []float64) {}
func (nopObserver) OnSplit(*Tree, NodeID)             {}
