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

import "fmt"

// List represents a GraphQL list type, written "[ElementType]" in SDL.
type List struct {
	elementType Type
	notation    string
}

var _ WrappingType = (*List)(nil)

// ListOf wraps elementType in a List.
func ListOf(elementType Type) *List {
	return &List{
		elementType: elementType,
		notation:    fmt.Sprintf("[%s]", elementType.String()),
	}
}

func (l *List) ElementType() Type { return l.elementType }
func (l *List) String() string    { return l.notation }

// NonNull represents a GraphQL non-null type, written "ElementType!" in SDL. The element type
// must itself be nullable; NonNull cannot wrap another NonNull.
type NonNull struct {
	elementType Type
	notation    string
}

var _ WrappingType = (*NonNull)(nil)

// NonNullOf wraps elementType in a NonNull. It panics if elementType is already a NonNull, which
// is a programmer error in a statically-constructed schema.
func NonNullOf(elementType Type) *NonNull {
	if IsNonNullType(elementType) {
		panic(fmt.Sprintf("NonNull cannot wrap another NonNull type %s", elementType.String()))
	}
	return &NonNull{
		elementType: elementType,
		notation:    fmt.Sprintf("%s!", elementType.String()),
	}
}

func (n *NonNull) ElementType() Type { return n.elementType }
func (n *NonNull) String() string    { return n.notation }
