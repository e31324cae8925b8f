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
	"context"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/patchwork-gql/patchql/path"
)

// FieldResolver resolves a field's value during execution.
//
// source is the value produced by resolving the field's enclosing object. info carries the rest
// of the execution context the resolver may need. The returned value may itself be a
// future.Future, in which case the executor polls it to completion instead of treating it as the
// final result (see the executor package).
//
// Reference: https://spec.graphql.org/October2021/#sec-Value-Resolution
type FieldResolver interface {
	Resolve(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error)
}

// FieldResolverFunc adapts a plain function to FieldResolver.
type FieldResolverFunc func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error)

// Resolve calls f.
func (f FieldResolverFunc) Resolve(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
	return f(ctx, source, info)
}

var _ FieldResolver = FieldResolverFunc(nil)

// ResolveInfo collects the ambient state a FieldResolver may consult: the schema, the field's AST
// occurrences, the coerced argument and variable values, and the response Path at which the
// field currently being resolved will appear.
type ResolveInfo interface {
	// Schema of the executing operation.
	Schema() *Schema

	// RootValue is the root value given to the operation.
	RootValue() interface{}

	// AppContext is the application-defined context value given to the operation.
	AppContext() interface{}

	// VariableValues holds the operation's coerced variables.
	VariableValues() map[string]interface{}

	// Path is the response path of the field currently being resolved.
	Path() path.Path

	// ParentType is the Object type that owns the field being resolved.
	ParentType() *Object

	// FieldName is the response key's underlying schema field name (pre-alias).
	FieldName() string

	// FieldASTs are every occurrence of the field collected for this response key (merged per
	// field collection rules when a field is selected more than once).
	FieldASTs() []*ast.Field

	// Args returns the field's coerced argument values.
	Args() map[string]interface{}
}

// Fields maps a field's schema name to its definition.
type Fields map[string]*FieldDefinition

// FieldDefinition describes one field of an Object or Interface type.
type FieldDefinition struct {
	Name        string
	Description string
	Type        Type
	Args        ArgumentConfigMap
	Resolver    FieldResolver
	Deprecation string // empty if not deprecated
}

// ArgumentConfigMap maps an argument's schema name to its definition.
type ArgumentConfigMap map[string]*ArgumentConfig

// ArgumentConfig describes one argument accepted by a field.
type ArgumentConfig struct {
	Description  string
	Type         Type
	DefaultValue interface{}
	HasDefault   bool
}
