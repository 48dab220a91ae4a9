// Copyright 2023 The rectangletree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rectangletree

import (
	"fmt"
	"strings"
)

// String returns a summary description of the tree.
func (t *Tree) String() string {
	return fmt.Sprintf("Tree{Dim:%d,Size:%d,Depth:%d,NumPoints:%d,MaxLeafSize:%d,MaxNumChildren:%d}",
		t.dim, t.TreeSize(t.root), t.TreeDepth(t.root), t.NumDescendants(t.root), t.cfg.MaxLeafSize, t.cfg.MaxNumChildren)
}

// Describe returns a multi-line, indented description of the subtree
// rooted at n, one line per node.
func (t *Tree) Describe(n NodeID) string {
	var b strings.Builder
	t.Walk(n, func(id NodeID, depth int) bool {
		nd := &t.nodes[id]
		b.WriteString(strings.Repeat("  ", depth))
		if len(nd.children) == 0 {
			_, _ = fmt.Fprintf(&b, "Leaf{ID:%d,NumPoints:%d,Bound:%s}\n", id, nd.count, nd.bound)
		} else {
			_, _ = fmt.Fprintf(&b, "Node{ID:%d,NumChildren:%d,Bound:%s}\n", id, len(nd.children), nd.bound)
		}
		return true
	})
	return b.String()
}
