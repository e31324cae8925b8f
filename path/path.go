/**
 * Copyright (c) 2026, The Patchwork Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package path implements the response path: an immutable sequence of segments (field
// names or list indices) identifying a position in a GraphQL response tree.
//
// A Path is used in two incompatible roles at once: as a wire value (the JSON array
// reported in an error or a patch record) and as a map key (the Patch Dispatcher indexes
// pending work by path). Segments() serves the former; Key() the latter.
package path

import (
	"strconv"
	"strings"
)

// segmentKind discriminates the two kinds of Segment.
type segmentKind uint8

const (
	segmentField segmentKind = iota
	segmentIndex
)

// Segment is a single step in a Path: either a response field name or a list index.
type Segment struct {
	kind  segmentKind
	name  string
	index int
}

// IsIndex reports whether the segment is a list index (as opposed to a field name).
func (s Segment) IsIndex() bool {
	return s.kind == segmentIndex
}

// Name returns the field name. It panics if the segment is an index.
func (s Segment) Name() string {
	if s.kind != segmentField {
		panic("path: Name called on an index segment")
	}
	return s.name
}

// Index returns the list index. It panics if the segment is a field name.
func (s Segment) Index() int {
	if s.kind != segmentIndex {
		panic("path: Index called on a field segment")
	}
	return s.index
}

// String renders a single segment the way it appears in Key(): ".name" or "[index]".
func (s Segment) String() string {
	if s.kind == segmentIndex {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	return "." + s.name
}

// Path is an immutable cons-list of Segments identifying a position in a response tree.
// The zero value is the empty path. Extending a Path (via Append{Field,Index}) never
// mutates the receiver; it returns a new Path that shares the old one's backing node.
type Path struct {
	// node is nil for the empty path.
	node *node
}

// node is one link of the cons-list, shared between every Path that was derived from it.
type node struct {
	parent *node
	depth  int
	seg    Segment
}

// Empty returns the path with no segments.
func Empty() Path {
	return Path{}
}

// AppendField returns a new Path with a field-name segment appended to the receiver.
func (p Path) AppendField(name string) Path {
	return p.append(Segment{kind: segmentField, name: name})
}

// AppendIndex returns a new Path with a list-index segment appended to the receiver.
func (p Path) AppendIndex(index int) Path {
	return p.append(Segment{kind: segmentIndex, index: index})
}

func (p Path) append(seg Segment) Path {
	depth := 0
	if p.node != nil {
		depth = p.node.depth + 1
	}
	return Path{node: &node{parent: p.node, depth: depth, seg: seg}}
}

// Len returns the number of segments in the path.
func (p Path) Len() int {
	if p.node == nil {
		return 0
	}
	return p.node.depth + 1
}

// IsEmpty reports whether the path has no segments.
func (p Path) IsEmpty() bool {
	return p.node == nil
}

// Segments returns the path's segments in root-to-leaf order. The returned slice is a
// fresh copy; mutating it does not affect the Path.
func (p Path) Segments() []Segment {
	n := p.Len()
	if n == 0 {
		return nil
	}
	segs := make([]Segment, n)
	cur := p.node
	for i := n - 1; i >= 0; i-- {
		segs[i] = cur.seg
		cur = cur.parent
	}
	return segs
}

// Key returns the stable string form of the path, suitable for use as a map key. Field
// segments are rendered ".name" and index segments "[i]", e.g. ".hero.friends[2]".
func (p Path) Key() string {
	segs := p.Segments()
	if len(segs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, seg := range segs {
		b.WriteString(seg.String())
	}
	return b.String()
}

// Equal reports whether two paths have identical segment sequences.
func (p Path) Equal(other Path) bool {
	a, b := p.Segments(), other.Segments()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].kind != b[i].kind || a[i].name != b[i].name || a[i].index != b[i].index {
			return false
		}
	}
	return true
}

// CommonPrefix returns the longest Path that is a prefix of every path given. An empty
// argument list or a nil-segment mismatch at position 0 yields the empty Path.
func CommonPrefix(paths ...Path) Path {
	if len(paths) == 0 {
		return Empty()
	}

	shortest := paths[0].Segments()
	for _, p := range paths[1:] {
		segs := p.Segments()
		if len(segs) < len(shortest) {
			shortest = segs
		}
	}

	prefixLen := len(shortest)
	for _, p := range paths {
		segs := p.Segments()
		for i := 0; i < prefixLen; i++ {
			if segs[i].kind != shortest[i].kind || segs[i].name != shortest[i].name || segs[i].index != shortest[i].index {
				prefixLen = i
				break
			}
		}
	}

	result := Empty()
	for i := 0; i < prefixLen; i++ {
		if shortest[i].kind == segmentIndex {
			result = result.AppendIndex(shortest[i].index)
		} else {
			result = result.AppendField(shortest[i].name)
		}
	}
	return result
}

// MarshalJSON renders the path as a JSON array of strings and numbers, e.g.
// ["hero","friends",2]. It implements json.Marshaler so a Path can be embedded directly
// in hand-rolled or encoding/json-based structures; the executor package's wire
// marshaling goes through jsonwriter instead for performance.
func (p Path) MarshalJSON() ([]byte, error) {
	segs := p.Segments()
	var b strings.Builder
	b.WriteByte('[')
	for i, seg := range segs {
		if i > 0 {
			b.WriteByte(',')
		}
		if seg.kind == segmentIndex {
			b.WriteString(strconv.Itoa(seg.index))
		} else {
			b.WriteByte('"')
			b.WriteString(seg.name)
			b.WriteByte('"')
		}
	}
	b.WriteByte(']')
	return []byte(b.String()), nil
}
