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

package executor

import (
	"github.com/patchwork-gql/patchql/graphql"
	"github.com/patchwork-gql/patchql/jsonwriter"
	"github.com/patchwork-gql/patchql/path"
)

// Patch is a single delta delivered after the initial result, produced by one `@defer`red
// fragment or one `@stream`ed list element. Streamed elements are not batched: every element
// past initial_count gets a Patch of its own.
type Patch struct {
	// Label identifies the directive site this patch corresponds to.
	Label string

	// Path is the response path at which Data should be merged into the result so far.
	Path path.Path

	// Data is the resolved value for Path: an object for a deferred fragment, or the
	// single resolved element for a streamed field.
	Data interface{}

	// Errors holds any resolution errors that occurred while producing Data. Non-empty
	// only when errors occurred; per P4 this is never an empty-but-present array.
	Errors []*graphql.Error
}

var _ jsonwriter.ValueMarshaler = (*Patch)(nil)

// MarshalJSONTo implements jsonwriter.ValueMarshaler.
func (p *Patch) MarshalJSONTo(stream *jsonwriter.Stream) error {
	stream.WriteObjectStart()

	stream.WriteObjectField("label")
	stream.WriteString(p.Label)

	stream.WriteMore()
	stream.WriteObjectField("path")
	stream.WriteInterface(segmentsToWire(p.Path))

	stream.WriteMore()
	stream.WriteObjectField("data")
	stream.WriteInterface(p.Data)

	if len(p.Errors) > 0 {
		stream.WriteMore()
		stream.WriteObjectField("errors")
		stream.WriteArrayStart()
		for i, err := range p.Errors {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteInterface(err)
		}
		stream.WriteArrayEnd()
	}

	stream.WriteObjectEnd()
	return stream.Error()
}

// MarshalJSON implements json.Marshaler via jsonwriter, so a *Patch can also be passed to
// encoding/json-based code (e.g. a transport layer framing patches as multipart parts).
func (p *Patch) MarshalJSON() ([]byte, error) {
	return jsonwriter.Marshal(p)
}

// segmentsToWire converts a Path to the []interface{} form WriteInterface knows how to encode
// as a JSON array of strings and numbers.
func segmentsToWire(p path.Path) []interface{} {
	segs := p.Segments()
	wire := make([]interface{}, len(segs))
	for i, seg := range segs {
		if seg.IsIndex() {
			wire[i] = seg.Index()
		} else {
			wire[i] = seg.Name()
		}
	}
	return wire
}
