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
	"context"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/patchwork-gql/patchql/graphql"
)

// executionContext holds everything shared across one Execute call: the prepared operation, the
// caller-supplied values, and the mutable state accumulated while walking the selection set (the
// Dispatcher units discovered, request-level errors, and the set of `@defer`/`@stream` labels
// claimed so far).
type executionContext struct {
	ctx        context.Context
	schema     *graphql.Schema
	document   *ast.QueryDocument
	operation  *ast.OperationDefinition
	rootValue  interface{}
	appContext interface{}
	variables  map[string]interface{}

	enableDeferredDelivery bool

	dispatcher *Dispatcher
	errors     graphql.Errors
	labels     map[string]bool
}

// addError appends err to the request-level error list (the top-level "errors" array of the
// initial result, as opposed to a Patch's own Errors).
func (ec *executionContext) addError(err *graphql.Error) {
	ec.errors.Append(err)
}

// claimLabel reports whether label has not yet been used by any `@defer` or `@stream` site in
// this operation, claiming it if so. A label reused across sites is rejected by the caller.
func (ec *executionContext) claimLabel(label string) bool {
	if ec.labels[label] {
		return false
	}
	ec.labels[label] = true
	return true
}
