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

// Package jsonwriter provides a streaming JSON writer used to marshal execution results and
// patches directly to an io.Writer, without building an intermediate map[string]interface{} tree
// for encoding/json to walk.
package jsonwriter

import (
	"encoding/json"
	"io"
	"reflect"
)

const initialStreamBufSize = 512

// Stream provides functions for writing JSON encoding. Unlike encoding/json, writes go directly
// to the output via io.Writer, buffered only enough to make small fixed writes cheap.
type Stream struct {
	w io.Writer

	// buf sits in front of w. Its capacity starts at 512 bytes and may grow if many small writes
	// accumulate before the next flush.
	buf []byte

	// scratch backs strconv.Append{Int,Uint,Float} calls.
	scratch [64]byte

	// fallbackEncoder lazily handles values WriteInterface cannot handle directly.
	fallbackEncoder *json.Encoder

	err error
}

// NewStream creates a Stream writing to w.
func NewStream(w io.Writer) *Stream {
	return &Stream{
		w:   w,
		buf: make([]byte, 0, initialStreamBufSize),
	}
}

// Error returns the first error encountered while writing, if any.
func (stream *Stream) Error() error {
	return stream.err
}

func (stream *Stream) write(b []byte) {
	if stream.err != nil {
		return
	}

	buf := stream.buf
	bufSize := len(buf)
	if bufSize+len(b) < initialStreamBufSize {
		buf = buf[:bufSize+len(b)]
		stream.buf = buf
		copy(buf[bufSize:], b)
		return
	}

	if bufSize > 0 {
		_, err := stream.w.Write(buf)
		stream.buf = buf[:0]
		if err != nil {
			stream.err = err
			return
		}
	}

	if len(b) > 0 {
		if _, err := stream.w.Write(b); err != nil {
			stream.err = err
			return
		}
	}
}

// Flush writes any buffered data to the underlying io.Writer.
func (stream *Stream) Flush() error {
	if stream.err != nil {
		return stream.err
	}

	buf := stream.buf
	if len(buf) > 0 {
		_, err := stream.w.Write(buf)
		stream.buf = buf[:0]
		if err != nil {
			stream.err = err
			return err
		}
	}

	return nil
}

func (stream *Stream) writeOneByte(b byte)                             { stream.buf = append(stream.buf, b) }
func (stream *Stream) writeTwoBytes(b1, b2 byte)                       { stream.buf = append(stream.buf, b1, b2) }
func (stream *Stream) writeFourBytes(b1, b2, b3, b4 byte)               { stream.buf = append(stream.buf, b1, b2, b3, b4) }
func (stream *Stream) writeFiveBytes(b1, b2, b3, b4, b5 byte)           { stream.buf = append(stream.buf, b1, b2, b3, b4, b5) }

// WriteRawString writes raw bytes into output without quoting or escaping.
func (stream *Stream) WriteRawString(s string) {
	stream.write([]byte(s))
}

// WriteMore writes a ",".
func (stream *Stream) WriteMore() { stream.writeOneByte(',') }

// WriteArrayStart writes a "[".
func (stream *Stream) WriteArrayStart() { stream.writeOneByte('[') }

// WriteArrayEnd writes a "]".
func (stream *Stream) WriteArrayEnd() { stream.writeOneByte(']') }

// WriteEmptyArray writes "[]".
func (stream *Stream) WriteEmptyArray() { stream.writeTwoBytes('[', ']') }

// WriteObjectStart writes a "{".
func (stream *Stream) WriteObjectStart() { stream.writeOneByte('{') }

// WriteObjectField writes `"field":`.
func (stream *Stream) WriteObjectField(field string) {
	stream.WriteString(field)
	stream.writeOneByte(':')
}

// WriteObjectEnd writes a "}".
func (stream *Stream) WriteObjectEnd() { stream.writeOneByte('}') }

// WriteEmptyObject writes "{}".
func (stream *Stream) WriteEmptyObject() { stream.writeTwoBytes('{', '}') }

// WriteBool encodes a boolean value.
func (stream *Stream) WriteBool(b bool) {
	if b {
		stream.writeFourBytes('t', 'r', 'u', 'e')
	} else {
		stream.writeFiveBytes('f', 'a', 'l', 's', 'e')
	}
}

// WriteNil writes "null".
func (stream *Stream) WriteNil() { stream.writeFourBytes('n', 'u', 'l', 'l') }

// streamWriter adapts a Stream into an io.Writer for the fallback json.Encoder.
type streamWriter struct {
	stream *Stream
}

func (writer streamWriter) Write(p []byte) (n int, err error) {
	stream := writer.stream
	stream.write(p)
	err = stream.err
	if err == nil {
		n = len(p)
	}
	return
}

var jsonMarshalerType = reflect.TypeOf(new(json.Marshaler)).Elem()

// WriteInterface writes an arbitrary Go value. It fast-paths the common scalar kinds and
// ValueMarshaler, and falls back to encoding/json (via a streamed json.Encoder) for anything else,
// including types implementing json.Marshaler.
func (stream *Stream) WriteInterface(v interface{}) {
	if stream.err != nil {
		return
	}

	switch v := v.(type) {
	case bool:
		stream.WriteBool(v)
	case string:
		stream.WriteString(v)
	case int:
		stream.WriteInt(v)
	case int32:
		stream.WriteInt32(v)
	case int64:
		stream.WriteInt64(v)
	case uint:
		stream.WriteUint(v)
	case uint32:
		stream.WriteUint32(v)
	case uint64:
		stream.WriteUint64(v)
	case float32:
		stream.WriteFloat32(v)
	case float64:
		stream.WriteFloat64(v)
	case ValueMarshaler:
		stream.WriteValue(v)
	case nil:
		stream.WriteNil()
	default:
		value := reflect.ValueOf(v)

		if value.IsValid() && value.Type().Implements(jsonMarshalerType) {
			stream.writeInterfaceFallback(v)
			return
		}

		switch value.Kind() {
		case reflect.Invalid:
			stream.WriteNil()
		case reflect.Bool:
			stream.WriteBool(value.Bool())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			stream.WriteInt64(value.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			stream.WriteUint64(value.Uint())
		case reflect.Float32:
			stream.WriteFloat32(float32(value.Float()))
		case reflect.Float64:
			stream.WriteFloat64(value.Float())
		case reflect.String:
			stream.WriteString(value.String())
		case reflect.Slice, reflect.Array:
			stream.writeReflectSequence(value)
		case reflect.Map:
			stream.writeReflectMap(value)
		case reflect.Ptr, reflect.Interface:
			elemValue := value.Elem()
			if !elemValue.IsValid() {
				stream.WriteNil()
			} else {
				stream.WriteInterface(elemValue.Interface())
			}
		default:
			stream.writeInterfaceFallback(v)
		}
	}
}

func (stream *Stream) writeReflectSequence(value reflect.Value) {
	n := value.Len()
	if n == 0 {
		stream.WriteEmptyArray()
		return
	}
	stream.WriteArrayStart()
	for i := 0; i < n; i++ {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteInterface(value.Index(i).Interface())
	}
	stream.WriteArrayEnd()
}

func (stream *Stream) writeReflectMap(value reflect.Value) {
	keys := value.MapKeys()
	if len(keys) == 0 {
		stream.WriteEmptyObject()
		return
	}
	stream.WriteObjectStart()
	for i, k := range keys {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(interfaceToString(k.Interface()))
		stream.WriteInterface(value.MapIndex(k).Interface())
	}
	stream.WriteObjectEnd()
}

func interfaceToString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, _ := json.Marshal(v)
	return string(b)
}

func (stream *Stream) writeInterfaceFallback(v interface{}) {
	encoder := stream.fallbackEncoder
	if encoder == nil {
		encoder = json.NewEncoder(streamWriter{stream})
		stream.fallbackEncoder = encoder
	}

	if err := encoder.Encode(v); err != nil {
		if stream.err == nil {
			stream.err = err
		}
	}
}
