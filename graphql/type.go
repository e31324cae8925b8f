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

// Package graphql provides a minimal GraphQL type system (Scalar, Enum, Object, Interface,
// Union, List, NonNull) plus the GraphQL Error value used throughout the module. Unlike a
// schema-definition-language loader, types here are built directly with constructors that take
// already-resolved element/field types, which keeps the package independent of any particular
// document parser.
package graphql

import "fmt"

// Type is implemented by every member of the GraphQL type system.
type Type interface {
	// String returns the type's SDL notation, e.g. "[String!]!".
	String() string
}

// NamedType is a Type that carries an SDL name (Scalar, Enum, Object, Interface, Union).
type NamedType interface {
	Type
	Name() string
	Description() string
}

// WrappingType is a Type that wraps another Type: List and NonNull.
type WrappingType interface {
	Type
	ElementType() Type
}

// LeafType is a Type whose values are scalars: Scalar and Enum.
type LeafType interface {
	NamedType

	// CoerceResultValue converts a resolver's Go value into a JSON-serializable value for the
	// response, or returns an error if value cannot be represented as this type.
	CoerceResultValue(value interface{}) (interface{}, error)
}

// AbstractType is implemented by Interface and Union: types whose concrete runtime type must be
// determined per value via ResolveType.
type AbstractType interface {
	NamedType

	// PossibleTypes lists every Object type that may satisfy this abstract type.
	PossibleTypes() []*Object

	// ResolveType returns the concrete Object type for value, or nil plus an error if none match.
	ResolveType(value interface{}) (*Object, error)
}

// CompositeType is implemented by every NamedType that has fields to select: Object, Interface
// and Union (Union fields are limited to __typename, handled by the executor directly).
type CompositeType interface {
	NamedType
}

// NamedTypeOf unwraps any number of List/NonNull wrappers and returns the innermost NamedType.
func NamedTypeOf(t Type) NamedType {
	for {
		wrapping, ok := t.(WrappingType)
		if !ok {
			named, _ := t.(NamedType)
			return named
		}
		t = wrapping.ElementType()
	}
}

// IsNonNullType reports whether t is a NonNull type.
func IsNonNullType(t Type) bool {
	_, ok := t.(*NonNull)
	return ok
}

// IsListType reports whether t is a List, looking through a leading NonNull wrapper.
func IsListType(t Type) bool {
	if nn, ok := t.(*NonNull); ok {
		t = nn.ElementType()
	}
	_, ok := t.(*List)
	return ok
}

// newTypeError builds a *Error describing a value that cannot be represented as a type.
func newTypeError(format string, args ...interface{}) error {
	return NewError(fmt.Sprintf(format, args...))
}
