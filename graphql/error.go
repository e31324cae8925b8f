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

package graphql

import (
	"fmt"
	"log"
	"runtime"
	"unsafe"

	jsoniter "github.com/json-iterator/go"

	"github.com/patchwork-gql/patchql/path"
)

// ErrKind classifies an Error for diagnostic purposes. It is never serialized to the response.
type ErrKind uint8

// Enumeration of ErrKind.
const (
	ErrKindOther     ErrKind = iota // Unclassified error.
	ErrKindCoercion                 // Failed to coerce an input or result value.
	ErrKindExecution                // Error raised while resolving or completing a field.
	ErrKindInternal                 // Internal invariant violation.
)

// ErrorLocation points at a line/column in the originating GraphQL document.
type ErrorLocation struct {
	Line   uint
	Column uint
}

// ErrorExtensions carries vendor-specific data under the response error's "extensions" key.
//
// Reference: https://github.com/facebook/graphql/pull/407
type ErrorExtensions map[string]interface{}

// Op names the operation that raised an Error, usually "package.Func".
type Op string

// Error is a GraphQL response error as defined by the spec:
// https://spec.graphql.org/October2021/#sec-Errors
//
// The shape and construction style (NewError taking self-describing typed arguments) follows
// upspin.io/errors: https://commandcenter.blogspot.com/2017/12/error-handling-in-upspin.html
type Error struct {
	Message    string
	Locations  []ErrorLocation
	Path       path.Path
	Extensions ErrorExtensions
	Err        error
	Op         Op
	Kind       ErrKind
}

var _ error = (*Error)(nil)

// NewError builds an Error from message plus any number of typed context arguments: an
// ErrorLocation or []ErrorLocation, a path.Path, ErrorExtensions, an error (wrapped as cause), an
// Op, or an ErrKind. Unknown argument types are a programmer error and are logged.
func NewError(message string, args ...interface{}) *Error {
	e := &Error{Message: message}

	for _, arg := range args {
		switch arg := arg.(type) {
		case ErrorLocation:
			e.Locations = []ErrorLocation{arg}
		case []ErrorLocation:
			e.Locations = arg
		case path.Path:
			e.Path = arg
		case ErrorExtensions:
			e.Extensions = arg
		case error:
			e.Err = arg
		case Op:
			e.Op = arg
		case ErrKind:
			e.Kind = arg
		default:
			_, file, line, _ := runtime.Caller(1)
			log.Printf("graphql.NewError: bad call from %s:%d: %v", file, line, arg)
		}
	}

	if e.Err != nil && len(e.Locations) == 0 {
		if prev, ok := e.Err.(*Error); ok {
			e.Locations = prev.Locations
		}
	}

	return e
}

// Error implements Go's error interface. The message includes Op and the wrapped Err when present, which
// makes it more useful in logs than the wire representation produced by MarshalJSON.
func (e *Error) Error() string {
	s := e.Message
	if e.Op != "" {
		s = fmt.Sprintf("%s: %s", e.Op, s)
	}
	if e.Err != nil {
		s = fmt.Sprintf("%s: %s", s, e.Err.Error())
	}
	return s
}

// Unwrap supports errors.Is/errors.As against the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// MarshalJSON implements json.Marshaler by delegating to the registered jsoniter encoder, which
// omits empty optional fields per spec.
func (e *Error) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(e)
}

// errorEncoder implements jsoniter.ValEncoder for *Error.
type errorEncoder struct{}

var _ jsoniter.ValEncoder = errorEncoder{}

func (errorEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	return (*Error)(ptr) == nil
}

func (errorEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	err := (*Error)(ptr)
	stream.WriteObjectStart()

	stream.WriteObjectField("message")
	stream.WriteString(err.Message)

	if n := len(err.Locations); n > 0 {
		stream.WriteMore()
		stream.WriteObjectField("locations")
		stream.WriteArrayStart()
		for i := range err.Locations {
			loc := &err.Locations[i]
			stream.WriteObjectStart()
			stream.WriteObjectField("line")
			stream.WriteUint(loc.Line)
			stream.WriteMore()
			stream.WriteObjectField("column")
			stream.WriteUint(loc.Column)
			stream.WriteObjectEnd()
			if i != n-1 {
				stream.WriteMore()
			}
		}
		stream.WriteArrayEnd()
	}

	if !err.Path.IsEmpty() {
		stream.WriteMore()
		stream.WriteObjectField("path")
		stream.WriteVal(err.Path)
	}

	if n := len(err.Extensions); n > 0 {
		stream.WriteMore()
		stream.WriteObjectField("extensions")
		stream.WriteObjectStart()
		i := 0
		for k, v := range err.Extensions {
			stream.WriteObjectField(k)
			stream.WriteVal(v)
			i++
			if i != n {
				stream.WriteMore()
			}
		}
		stream.WriteObjectEnd()
	}

	stream.WriteObjectEnd()
}

func init() {
	jsoniter.RegisterTypeEncoder("graphql.Error", errorEncoder{})
}
