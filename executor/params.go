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

// Package executor implements incremental execution of a prepared GraphQL operation: the
// initial traversal produces the immediate "data"/"errors" result, while any selection
// deferred with `@defer` or list field streamed with `@stream` is registered on a Dispatcher
// and exposed to the caller as a lazily-produced, ordered sequence of Patch records.
//
// Parsing and validating the query document is out of scope for this package; callers supply
// an already-parsed *ast.QueryDocument (see github.com/vektah/gqlparser/v2) and already-coerced
// variable values.
package executor

import (
	"context"
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/patchwork-gql/patchql/graphql"
	"github.com/patchwork-gql/patchql/jsonwriter"
)

// PrepareParams selects which operation of document to execute.
type PrepareParams struct {
	Schema *graphql.Schema
	Document *ast.QueryDocument

	// OperationName selects one of document's named operations. It may be empty only when
	// document defines exactly one operation.
	OperationName string
}

// PreparedOperation is a document resolved to one concrete, executable operation.
type PreparedOperation struct {
	schema    *graphql.Schema
	document  *ast.QueryDocument
	operation *ast.OperationDefinition
}

// Prepare resolves params.OperationName (or the document's sole operation) to a
// PreparedOperation ready to Execute, failing if the document is ambiguous or names an
// operation that isn't present.
func Prepare(params PrepareParams) (*PreparedOperation, error) {
	operation, err := selectOperation(params.Document, params.OperationName)
	if err != nil {
		return nil, err
	}
	return &PreparedOperation{schema: params.Schema, document: params.Document, operation: operation}, nil
}

func selectOperation(document *ast.QueryDocument, name string) (*ast.OperationDefinition, error) {
	if name != "" {
		op := document.Operations.ForName(name)
		if op == nil {
			return nil, fmt.Errorf("patchql: no operation named %q", name)
		}
		return op, nil
	}

	switch len(document.Operations) {
	case 0:
		return nil, fmt.Errorf("patchql: document defines no operations")
	case 1:
		return document.Operations[0], nil
	default:
		return nil, fmt.Errorf("patchql: document defines multiple operations; an operation name is required")
	}
}

// ExecuteParams supplies the per-request values a PreparedOperation is executed against.
type ExecuteParams struct {
	Context       context.Context
	RootValue     interface{}
	AppContext    interface{}
	VariableValues map[string]interface{}

	// EnableDeferredDelivery controls whether `@defer`/`@stream` directives are honored at all.
	// When false, every deferred fragment's fields are resolved inline and every streamed list
	// is resolved in full, exactly as if the directives were absent — the fallback the
	// distilled spec requires for clients that did not negotiate incremental delivery.
	EnableDeferredDelivery bool
}

// Execute runs op against params, returning the initial result immediately. Any deferred/stream
// units discovered along the way are available, once drained, from ExecutionResult.Patches.
func (op *PreparedOperation) Execute(params ExecuteParams) *ExecutionResult {
	ctx := params.Context
	if ctx == nil {
		ctx = context.Background()
	}

	ec := &executionContext{
		ctx:                    ctx,
		schema:                 op.schema,
		document:               op.document,
		operation:              op.operation,
		rootValue:              params.RootValue,
		appContext:             params.AppContext,
		variables:              params.VariableValues,
		enableDeferredDelivery: params.EnableDeferredDelivery,
		dispatcher:             NewDispatcher(),
		labels:                 make(map[string]bool),
	}

	data, errs := ec.execute()

	return &ExecutionResult{
		Data:    data,
		Errors:  errs.Errors,
		Patches: ec.dispatcher.Patches(),
	}
}

// ExecutionResult is the outcome of Execute: the initial "data"/"errors" result, plus the lazy
// sequence of Patch records to deliver afterward. Patches is nil-safe to drain even when no
// `@defer`/`@stream` site ever fired (its Next immediately returns iterator.Done).
type ExecutionResult struct {
	Data    interface{}
	Errors  []*graphql.Error
	Patches *PatchIterator
}

var _ jsonwriter.ValueMarshaler = (*ExecutionResult)(nil)

// MarshalJSONTo writes the initial result's wire shape, {"data":...,"errors"?:[...]}. Patches are
// not part of this encoding: they belong to a separate, transport-defined incremental delivery
// framing that drains ExecutionResult.Patches on its own schedule.
func (r *ExecutionResult) MarshalJSONTo(stream *jsonwriter.Stream) error {
	stream.WriteObjectStart()

	stream.WriteObjectField("data")
	stream.WriteInterface(r.Data)

	if len(r.Errors) > 0 {
		stream.WriteMore()
		stream.WriteObjectField("errors")
		stream.WriteArrayStart()
		for i, err := range r.Errors {
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

// MarshalJSON implements json.Marshaler via jsonwriter.
func (r *ExecutionResult) MarshalJSON() ([]byte, error) {
	return jsonwriter.Marshal(r)
}

// HasIncrementalDelivery reports whether executing op ever registered at least one
// `@defer`/`@stream` unit, i.e. whether Patches will yield anything.
func (r *ExecutionResult) HasIncrementalDelivery() bool {
	return r.Patches != nil && r.Patches.d.HasWork()
}
