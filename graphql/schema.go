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

// Schema binds the root operation types together. Subscriptions are out of scope: this module
// executes queries and mutations, incrementally delivering patches for their deferred/streamed
// selections.
type Schema struct {
	query    *Object
	mutation *Object
}

// SchemaConfig configures NewSchema.
type SchemaConfig struct {
	Query    *Object
	Mutation *Object
}

// NewSchema defines a Schema. It panics if Query is nil, which is a programmer error.
func NewSchema(config SchemaConfig) *Schema {
	if config.Query == nil {
		panic("graphql: Schema must have a Query root type")
	}
	return &Schema{query: config.Query, mutation: config.Mutation}
}

// Query returns the schema's root Query type.
func (s *Schema) Query() *Object { return s.query }

// Mutation returns the schema's root Mutation type, or nil if the schema has none.
func (s *Schema) Mutation() *Object { return s.mutation }

// RootType returns the root Object type for the given operation kind name ("query" or
// "mutation"), or nil if the schema doesn't support it.
func (s *Schema) RootType(operation string) *Object {
	switch operation {
	case "query", "":
		return s.query
	case "mutation":
		return s.mutation
	default:
		return nil
	}
}
