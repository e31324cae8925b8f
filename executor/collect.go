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
)

// deferredSite is a `@defer`red fragment spread or inline fragment found while collecting
// fields for one selection set. The caller (executeSelectionSet) is responsible for turning
// it into a dispatcher unit once it knows the parent value and path the fragment was
// encountered at.
type deferredSite struct {
	label        string
	selectionSet ast.SelectionSet
}

// collectedFields is the result of field collection for one selection set against one
// runtime object type: fields to resolve now, in response order, and any `@defer`red
// fragments found at this level (deeper levels are collected when that field's value is
// itself completed).
type collectedFields struct {
	fields   map[string][]*ast.Field
	order    []string
	deferred []*deferredSite
}

// collectFields walks selectionSet (expanding fragment spreads and inline fragments),
// merging same-response-key field selections and pulling out `@defer`red fragments rather
// than inlining their fields, per the distilled spec's traversal rules.
func (ec *executionContext) collectFields(
	runtimeType *graphql.Object,
	selectionSet ast.SelectionSet,
	visited map[*ast.FragmentDefinition]bool,
) (*collectedFields, error) {
	result := &collectedFields{fields: make(map[string][]*ast.Field)}
	if err := ec.collectFieldsInto(runtimeType, selectionSet, visited, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (ec *executionContext) collectFieldsInto(
	runtimeType *graphql.Object,
	selectionSet ast.SelectionSet,
	visited map[*ast.FragmentDefinition]bool,
	result *collectedFields,
) error {
	for _, selection := range selectionSet {
		switch sel := selection.(type) {
		case *ast.Field:
			include, err := shouldInclude(sel.Directives, ec.variables)
			if err != nil {
				return err
			}
			if !include {
				continue
			}

			key := responseKey(sel)
			if _, seen := result.fields[key]; !seen {
				result.order = append(result.order, key)
			}
			result.fields[key] = append(result.fields[key], sel)

		case *ast.InlineFragment:
			include, err := shouldInclude(sel.Directives, ec.variables)
			if err != nil {
				return err
			}
			if !include || !fragmentApplies(runtimeType, sel.TypeCondition) {
				continue
			}

			deferred, proceed, err := ec.checkDefer(sel.Directives)
			if err != nil {
				return err
			}
			if deferred != nil {
				result.deferred = append(result.deferred, &deferredSite{
					label:        deferred.label,
					selectionSet: sel.SelectionSet,
				})
				continue
			}
			if !proceed {
				continue
			}

			if err := ec.collectFieldsInto(runtimeType, sel.SelectionSet, visited, result); err != nil {
				return err
			}

		case *ast.FragmentSpread:
			include, err := shouldInclude(sel.Directives, ec.variables)
			if err != nil {
				return err
			}
			if !include {
				continue
			}

			def := ec.document.Fragments.ForName(sel.Name)
			if def == nil || visited[def] {
				continue
			}
			if !fragmentApplies(runtimeType, def.TypeCondition) {
				continue
			}

			deferred, proceed, err := ec.checkDefer(sel.Directives)
			if err != nil {
				return err
			}
			if deferred != nil {
				result.deferred = append(result.deferred, &deferredSite{
					label:        deferred.label,
					selectionSet: def.SelectionSet,
				})
				continue
			}
			if !proceed {
				continue
			}

			visited[def] = true
			if err := ec.collectFieldsInto(runtimeType, def.SelectionSet, visited, result); err != nil {
				return err
			}
			delete(visited, def)
		}
	}

	return nil
}

// deferInfo is the decoded `@defer` directive on a fragment spread or inline fragment.
type deferInfo struct {
	label string
}

// checkDefer evaluates a `@defer` directive, if present. It returns (nil, true, nil) when
// `@defer` is absent, disabled for the request, or its `if:` argument is false — meaning the
// caller should proceed to inline the fragment's fields as usual. It returns (info, _, nil)
// when the fragment should instead be registered as a deferred unit. Duplicate labels are
// recorded as a request error and treated as if `@defer` were absent, per the distilled
// spec's choice to reject rather than silently aggregate unannounced duplicates.
func (ec *executionContext) checkDefer(directives ast.DirectiveList) (*deferInfo, bool, error) {
	if !ec.enableDeferredDelivery {
		return nil, true, nil
	}

	directive := graphql.FindDirective(directives, graphql.DeferDirective)
	if directive == nil {
		return nil, true, nil
	}

	labelValue, ok, err := graphql.DirectiveArgValue(directive, graphql.LabelArgument, ec.variables)
	if err != nil {
		return nil, false, err
	}
	label, _ := labelValue.(string)
	if !ok || label == "" {
		ec.addError(graphql.NewError("@defer requires a non-empty label"))
		return nil, true, nil
	}

	ifValue, hasIf, err := graphql.DirectiveArgValue(directive, graphql.IfArgument, ec.variables)
	if err != nil {
		return nil, false, err
	}
	if hasIf {
		if b, ok := ifValue.(bool); ok && !b {
			return nil, true, nil
		}
	}

	if !ec.claimLabel(label) {
		ec.addError(graphql.NewError("duplicate @defer/@stream label " + label))
		return nil, true, nil
	}

	return &deferInfo{label: label}, false, nil
}

// responseKey returns the key a field's result is stored under in the response: its alias if
// one was given, otherwise its name.
func responseKey(f *ast.Field) string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// shouldInclude evaluates `@skip`/`@include` against directives, in that order (a selection
// both skipped and included is skipped, matching the GraphQL spec's field-collection rule).
func shouldInclude(directives ast.DirectiveList, variables map[string]interface{}) (bool, error) {
	if d := graphql.FindDirective(directives, graphql.SkipDirective); d != nil {
		v, ok, err := graphql.DirectiveArgValue(d, graphql.IfArgument, variables)
		if err != nil {
			return false, err
		}
		if ok {
			if b, _ := v.(bool); b {
				return false, nil
			}
		}
	}

	if d := graphql.FindDirective(directives, graphql.IncludeDirective); d != nil {
		v, ok, err := graphql.DirectiveArgValue(d, graphql.IfArgument, variables)
		if err != nil {
			return false, err
		}
		if ok {
			if b, _ := v.(bool); !b {
				return false, nil
			}
		}
	}

	return true, nil
}

// fragmentApplies reports whether runtimeType satisfies typeCondition: an empty condition
// (inline fragments without a type condition) always applies; otherwise the condition must
// name runtimeType itself or one of the interfaces it implements.
func fragmentApplies(runtimeType *graphql.Object, typeCondition string) bool {
	if typeCondition == "" || typeCondition == runtimeType.Name() {
		return true
	}
	for _, iface := range runtimeType.Interfaces() {
		if iface.Name() == typeCondition {
			return true
		}
	}
	return false
}
