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

package jsonwriter

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// ValueMarshaler is implemented by types that can write their own JSON encoding directly to a
// Stream, bypassing encoding/json's reflection-driven marshaling.
type ValueMarshaler interface {
	MarshalJSONTo(stream *Stream) error
}

// WriteValue writes marshaler's JSON encoding to stream.
func (stream *Stream) WriteValue(marshaler ValueMarshaler) {
	if stream.err != nil {
		return
	}

	value := reflect.ValueOf(marshaler)
	if value.Kind() == reflect.Ptr && value.IsNil() {
		stream.WriteNil()
		return
	}

	if err := marshaler.MarshalJSONTo(stream); err != nil {
		if stream.err == nil {
			stream.err = &json.MarshalerError{Type: value.Type(), Err: err}
		}
	}
}

// Marshal returns the JSON encoding produced by v.MarshalJSONTo. It lets a type implement
// json.Marshaler in terms of MarshalJSONTo with a single line: "return jsonwriter.Marshal(v)".
func Marshal(v ValueMarshaler) ([]byte, error) {
	value := reflect.ValueOf(v)
	if value.Kind() == reflect.Ptr && value.IsNil() {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	stream := NewStream(&buf)

	if err := v.MarshalJSONTo(stream); err != nil {
		return nil, err
	}
	if err := stream.Flush(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
