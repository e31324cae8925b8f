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

import "github.com/vektah/gqlparser/v2/ast"

// Names of the directives the executor recognizes, and of their arguments. Schema validation and
// parsing of these directives into the AST is delegated to gqlparser; this module is responsible
// only for interpreting them during execution.
const (
	SkipDirective    = "skip"
	IncludeDirective = "include"
	DeferDirective   = "defer"
	StreamDirective  = "stream"

	IfArgument           = "if"
	LabelArgument        = "label"
	InitialCountArgument = "initial_count"
)

// DirectiveArgValue evaluates the named argument of directive against the given coerced variable
// values, returning (nil, false) if the directive has no such argument.
func DirectiveArgValue(directive *ast.Directive, name string, variables map[string]interface{}) (interface{}, bool, error) {
	arg := directive.Arguments.ForName(name)
	if arg == nil {
		return nil, false, nil
	}
	value, err := arg.Value.Value(variables)
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// FindDirective returns the first directive named name in directives, or nil.
func FindDirective(directives ast.DirectiveList, name string) *ast.Directive {
	return directives.ForName(name)
}
