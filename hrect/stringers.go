// Copyright 2023 The rectangletree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package hrect

import (
	"strconv"
	"strings"
)

func (r Range) String() string {
	var b strings.Builder
	r.write(&b)
	return b.String()
}

func (r Range) write(b *strings.Builder) {
	b.WriteByte('[')
	b.WriteString(strconv.FormatFloat(r.Lo, 'g', -1, 64))
	b.WriteByte(',')
	b.WriteString(strconv.FormatFloat(r.Hi, 'g', -1, 64))
	b.WriteByte(']')
}

// String returns the region as a bracketed list of per-dimension
// intervals, for example "[[0,1],[-2,2]]".
func (h HRect) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := range h.ranges {
		if i > 0 {
			b.WriteByte(',')
		}
		h.ranges[i].write(&b)
	}
	b.WriteByte(']')
	return b.String()
}
