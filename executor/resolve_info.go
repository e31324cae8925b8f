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
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/patchwork-gql/patchql/graphql"
	"github.com/patchwork-gql/patchql/path"
)

// resolveInfo is the concrete graphql.ResolveInfo passed to every FieldResolver.
type resolveInfo struct {
	ec         *executionContext
	parentType *graphql.Object
	fieldName  string
	fieldASTs  []*ast.Field
	path       path.Path
	args       map[string]interface{}
}

var _ graphql.ResolveInfo = (*resolveInfo)(nil)

func (info *resolveInfo) Schema() *graphql.Schema                     { return info.ec.schema }
func (info *resolveInfo) RootValue() interface{}                      { return info.ec.rootValue }
func (info *resolveInfo) AppContext() interface{}                     { return info.ec.appContext }
func (info *resolveInfo) VariableValues() map[string]interface{}      { return info.ec.variables }
func (info *resolveInfo) Path() path.Path                             { return info.path }
func (info *resolveInfo) ParentType() *graphql.Object                 { return info.parentType }
func (info *resolveInfo) FieldName() string                           { return info.fieldName }
func (info *resolveInfo) FieldASTs() []*ast.Field                     { return info.fieldASTs }
func (info *resolveInfo) Args() map[string]interface{}                { return info.args }
