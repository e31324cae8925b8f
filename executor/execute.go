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
	"fmt"
	"reflect"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/patchwork-gql/patchql/graphql"
	"github.com/patchwork-gql/patchql/iterator"
	"github.com/patchwork-gql/patchql/path"
)

// bubble is the sentinel returned by completeValue/executeField/executeSelectionSet when a
// non-null field resolved to null: the caller must itself become null and, if its own position
// is non-null, keep propagating the sentinel up, per the standard GraphQL null-propagation rule.
// The originating error has already been recorded into the relevant errAcc at the point the
// violation was discovered, so callers that stop the bubble (because their own position is
// nullable) simply discard it.
var errNullBubble = fmt.Errorf("patchql: null bubbled to a non-null field")

// execute runs the prepared operation's root selection set, returning the top-level "data" value
// and request-level errors. Deferred/stream units discovered anywhere in the traversal are
// registered onto ec.dispatcher for the caller to drain separately.
func (ec *executionContext) execute() (interface{}, graphql.Errors) {
	rootType := ec.schema.RootType(string(ec.operation.Operation))
	if rootType == nil {
		ec.addError(graphql.NewError("schema does not support " + string(ec.operation.Operation) + " operations"))
		return nil, ec.errors
	}

	data, children, bubbled := ec.executeSelectionSet(rootType, ec.rootValue, path.Empty(), ec.operation.SelectionSet, &ec.errors)
	if bubbled != nil {
		data = nil
	}

	for _, child := range children {
		ec.dispatcher.registerUnit(child)
	}

	return data, ec.errors
}

// executeSelectionSet collects and resolves every field of selectionSet against objectType/
// source, returning the response object for this level plus any deferred/stream units found
// while doing so. errAcc receives every field-resolution error encountered directly at this
// level (not inside a unit's own run, which uses its own accumulator).
func (ec *executionContext) executeSelectionSet(
	objectType *graphql.Object,
	source interface{},
	p path.Path,
	selectionSet ast.SelectionSet,
	errAcc *graphql.Errors,
) (map[string]interface{}, []*unit, error) {
	collected, err := ec.collectFields(objectType, selectionSet, map[*ast.FragmentDefinition]bool{})
	if err != nil {
		errAcc.Append(graphql.NewError(err.Error(), p))
		return nil, nil, nil
	}

	result := make(map[string]interface{}, len(collected.order))
	var children []*unit

	for _, key := range collected.order {
		fieldASTs := collected.fields[key]
		name := fieldASTs[0].Name

		if name == "__typename" {
			result[key] = objectType.Name()
			continue
		}

		fieldDef, ok := objectType.Field(name)
		if !ok {
			errAcc.Append(graphql.NewError("unknown field "+name+" on type "+objectType.Name(), p.AppendField(key)))
			continue
		}

		fieldPath := p.AppendField(key)
		value, fieldChildren, bubbled := ec.executeField(objectType, source, fieldDef, fieldASTs, fieldPath, errAcc)
		if bubbled != nil {
			if graphql.IsNonNullType(fieldDef.Type) {
				return nil, nil, bubbled
			}
			result[key] = nil
			continue
		}

		result[key] = value
		children = append(children, fieldChildren...)
	}

	for _, d := range collected.deferred {
		children = append(children, ec.deferredUnit(objectType, source, p, d))
	}

	return result, children, nil
}

// deferredUnit builds the dispatcher unit for one `@defer`red fragment found while collecting
// objectType/source's fields at p. The fragment's own selection set is executed lazily, against
// a private error accumulator that becomes the resulting Patch's Errors.
func (ec *executionContext) deferredUnit(objectType *graphql.Object, source interface{}, p path.Path, d *deferredSite) *unit {
	label := d.label
	selectionSet := d.selectionSet

	return &unit{
		patchLabel: label,
		groupKey:   label,
		path:       p,
		run: func() (interface{}, []*graphql.Error, []*unit) {
			var errs graphql.Errors
			data, nested, bubbled := ec.executeSelectionSet(objectType, source, p, selectionSet, &errs)
			if bubbled != nil {
				data = nil
			}
			return data, errs.Errors, nested
		},
	}
}

// executeField resolves one field occurrence (possibly merged across fieldASTs) and completes
// its value against fieldDef.Type.
func (ec *executionContext) executeField(
	parentType *graphql.Object,
	source interface{},
	fieldDef *graphql.FieldDefinition,
	fieldASTs []*ast.Field,
	p path.Path,
	errAcc *graphql.Errors,
) (interface{}, []*unit, error) {
	args, err := coerceArgumentValues(fieldDef, fieldASTs[0], ec.variables)
	if err != nil {
		errAcc.Append(graphql.NewError(err.Error(), p))
		if graphql.IsNonNullType(fieldDef.Type) {
			return nil, nil, errNullBubble
		}
		return nil, nil, nil
	}

	info := &resolveInfo{
		ec:         ec,
		parentType: parentType,
		fieldName:  fieldDef.Name,
		fieldASTs:  fieldASTs,
		path:       p,
		args:       args,
	}

	resolver := fieldDef.Resolver
	if resolver == nil {
		resolver = graphql.FieldResolverFunc(defaultResolve)
	}

	raw, err := resolver.Resolve(ec.ctx, source, info)
	if err == nil {
		raw, err = resolvedValue(raw)
	}
	if err != nil {
		errAcc.Append(graphql.NewError(err.Error(), p))
		if graphql.IsNonNullType(fieldDef.Type) {
			return nil, nil, errNullBubble
		}
		return nil, nil, nil
	}

	return ec.completeValue(fieldDef.Type, fieldASTs, p, raw, errAcc)
}

// completeValue converts a resolver's raw Go value into its response shape according to t,
// recursing through wrapping (NonNull/List), then dispatching to leaf coercion or nested
// selection-set execution for composite types.
func (ec *executionContext) completeValue(
	t graphql.Type,
	fieldASTs []*ast.Field,
	p path.Path,
	result interface{},
	errAcc *graphql.Errors,
) (interface{}, []*unit, error) {
	if nn, ok := t.(*graphql.NonNull); ok {
		value, children, bubbled := ec.completeValue(nn.ElementType(), fieldASTs, p, result, errAcc)
		if bubbled != nil {
			return nil, nil, bubbled
		}
		if value == nil {
			errAcc.Append(graphql.NewError("cannot return null for non-nullable field", p))
			return nil, nil, errNullBubble
		}
		return value, children, nil
	}

	if result == nil {
		return nil, nil, nil
	}

	switch named := t.(type) {
	case *graphql.List:
		return ec.completeListValue(named, fieldASTs, p, result, errAcc)

	case graphql.LeafType:
		v, err := named.CoerceResultValue(result)
		if err != nil {
			errAcc.Append(graphql.NewError(err.Error(), p))
			return nil, nil, errNullBubble
		}
		return v, nil, nil

	case *graphql.Object:
		return ec.completeCompositeValue(named, fieldASTs, p, result, errAcc)

	case graphql.AbstractType:
		objectType, err := named.ResolveType(result)
		if err != nil {
			errAcc.Append(graphql.NewError(err.Error(), p))
			return nil, nil, errNullBubble
		}
		return ec.completeCompositeValue(objectType, fieldASTs, p, result, errAcc)

	default:
		errAcc.Append(graphql.NewError(fmt.Sprintf("cannot complete value of unsupported type %s", t.String()), p))
		return nil, nil, errNullBubble
	}
}

// completeCompositeValue executes the merged selection set of fieldASTs against objectType/
// result, the shared tail of completeValue's Object and AbstractType branches.
func (ec *executionContext) completeCompositeValue(
	objectType *graphql.Object,
	fieldASTs []*ast.Field,
	p path.Path,
	result interface{},
	errAcc *graphql.Errors,
) (interface{}, []*unit, error) {
	return ec.executeSelectionSet(objectType, result, p, mergedSelectionSet(fieldASTs), errAcc)
}

// completeListValue completes a List field, splitting it into an inline leading portion and a
// lazily-resolved streamed tail when the field carries an active `@stream` directive.
func (ec *executionContext) completeListValue(
	listType *graphql.List,
	fieldASTs []*ast.Field,
	p path.Path,
	result interface{},
	errAcc *graphql.Errors,
) (interface{}, []*unit, error) {
	elementType := listType.ElementType()

	streamed, label, initialCount, err := ec.checkStream(fieldASTs[0].Directives)
	if err != nil {
		errAcc.Append(graphql.NewError(err.Error(), p))
		return nil, nil, errNullBubble
	}

	// A SizedIterable result reports its length without being drained, so a streamed field
	// backed by one never has to materialize more than its initial elements up front; the
	// tail is pulled one element at a time from the same Iterator as each stream unit runs.
	if streamed {
		if sized, ok := result.(graphql.SizedIterable); ok {
			return ec.completeSizedStreamedList(elementType, fieldASTs, p, sized, label, initialCount, errAcc)
		}
	}

	items, err := toItemSlice(result)
	if err != nil {
		errAcc.Append(graphql.NewError(err.Error(), p))
		return nil, nil, errNullBubble
	}

	if !streamed {
		values := make([]interface{}, len(items))
		var children []*unit
		for i, item := range items {
			v, itemChildren, bubbled := ec.completeValue(elementType, fieldASTs, p.AppendIndex(i), item, errAcc)
			if bubbled != nil {
				if graphql.IsNonNullType(elementType) {
					return nil, nil, bubbled
				}
				v, itemChildren = nil, nil
			}
			values[i] = v
			children = append(children, itemChildren...)
		}
		return values, children, nil
	}

	n := initialCount
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}

	values := make([]interface{}, n)
	var children []*unit
	for i := 0; i < n; i++ {
		v, itemChildren, bubbled := ec.completeValue(elementType, fieldASTs, p.AppendIndex(i), items[i], errAcc)
		if bubbled != nil {
			if graphql.IsNonNullType(elementType) {
				return nil, nil, bubbled
			}
			v, itemChildren = nil, nil
		}
		values[i] = v
		children = append(children, itemChildren...)
	}

	for i := n; i < len(items); i++ {
		elemPath := p.AppendIndex(i)
		item := items[i]
		children = append(children, &unit{
			patchLabel: label,
			groupKey:   label + "\x00" + elemPath.Key(),
			path:       elemPath,
			run: func() (interface{}, []*graphql.Error, []*unit) {
				var errs graphql.Errors
				v, nested, bubbled := ec.completeValue(elementType, fieldASTs, elemPath, item, &errs)
				if bubbled != nil {
					v = nil
				}
				return v, errs.Errors, nested
			},
		})
	}

	return values, children, nil
}

// completeSizedStreamedList is completeListValue's path for a streamed field whose resolved
// value already knows its length (a graphql.SizedIterable): only the initial leading elements
// are drained eagerly, via Size() rather than a full Iterator pass; the remaining elements are
// pulled from the same Iterator lazily, one per stream unit, in the order the dispatcher runs
// them (registration order, which the Dispatcher preserves).
func (ec *executionContext) completeSizedStreamedList(
	elementType graphql.Type,
	fieldASTs []*ast.Field,
	p path.Path,
	sized graphql.SizedIterable,
	label string,
	initialCount int,
	errAcc *graphql.Errors,
) (interface{}, []*unit, error) {
	n := initialCount
	if n < 0 {
		n = 0
	}
	total := sized.Size()
	if n > total {
		n = total
	}

	it := sized.Iterator()

	values := make([]interface{}, n)
	var children []*unit
	for i := 0; i < n; i++ {
		item, err := it.Next()
		if err != nil {
			errAcc.Append(graphql.NewError(err.Error(), p))
			return nil, nil, errNullBubble
		}
		v, itemChildren, bubbled := ec.completeValue(elementType, fieldASTs, p.AppendIndex(i), item, errAcc)
		if bubbled != nil {
			if graphql.IsNonNullType(elementType) {
				return nil, nil, bubbled
			}
			v, itemChildren = nil, nil
		}
		values[i] = v
		children = append(children, itemChildren...)
	}

	for i := n; i < total; i++ {
		elemPath := p.AppendIndex(i)
		children = append(children, &unit{
			patchLabel: label,
			groupKey:   label + "\x00" + elemPath.Key(),
			path:       elemPath,
			run: func() (interface{}, []*graphql.Error, []*unit) {
				var errs graphql.Errors
				item, err := it.Next()
				if err != nil {
					errs.Append(graphql.NewError(err.Error(), elemPath))
					return nil, errs.Errors, nil
				}
				v, nested, bubbled := ec.completeValue(elementType, fieldASTs, elemPath, item, &errs)
				if bubbled != nil {
					v = nil
				}
				return v, errs.Errors, nested
			},
		})
	}

	return values, children, nil
}

// checkStream evaluates an `@stream` directive, mirroring checkDefer's handling of `if:`,
// label uniqueness and the shared enableDeferredDelivery gate.
func (ec *executionContext) checkStream(directives ast.DirectiveList) (streamed bool, label string, initialCount int, err error) {
	if !ec.enableDeferredDelivery {
		return false, "", 0, nil
	}

	directive := graphql.FindDirective(directives, graphql.StreamDirective)
	if directive == nil {
		return false, "", 0, nil
	}

	labelValue, ok, err := graphql.DirectiveArgValue(directive, graphql.LabelArgument, ec.variables)
	if err != nil {
		return false, "", 0, err
	}
	label, _ = labelValue.(string)
	if !ok || label == "" {
		ec.addError(graphql.NewError("@stream requires a non-empty label"))
		return false, "", 0, nil
	}

	ifValue, hasIf, err := graphql.DirectiveArgValue(directive, graphql.IfArgument, ec.variables)
	if err != nil {
		return false, "", 0, err
	}
	if hasIf {
		if b, ok := ifValue.(bool); ok && !b {
			return false, "", 0, nil
		}
	}

	if !ec.claimLabel(label) {
		ec.addError(graphql.NewError("duplicate @defer/@stream label " + label))
		return false, "", 0, nil
	}

	icValue, hasIC, err := graphql.DirectiveArgValue(directive, graphql.InitialCountArgument, ec.variables)
	if err != nil {
		return false, "", 0, err
	}
	if hasIC {
		switch n := icValue.(type) {
		case int:
			initialCount = n
		case int64:
			initialCount = int(n)
		case float64:
			initialCount = int(n)
		}
	}
	if initialCount < 0 {
		ec.addError(graphql.NewError(fmt.Sprintf("@stream initial_count must be non-negative, got %d", initialCount)))
		return false, "", 0, nil
	}

	return true, label, initialCount, nil
}

// mergedSelectionSet concatenates every occurrence's selection set, letting the next level's
// collectFields re-merge duplicate response keys across them.
func mergedSelectionSet(fieldASTs []*ast.Field) ast.SelectionSet {
	var merged ast.SelectionSet
	for _, f := range fieldASTs {
		merged = append(merged, f.SelectionSet...)
	}
	return merged
}

// coerceArgumentValues evaluates a field's argument AST against its declared ArgumentConfigMap,
// substituting declared defaults for arguments the query omits.
func coerceArgumentValues(fieldDef *graphql.FieldDefinition, fieldAST *ast.Field, variables map[string]interface{}) (map[string]interface{}, error) {
	if len(fieldDef.Args) == 0 {
		return nil, nil
	}

	args := make(map[string]interface{}, len(fieldDef.Args))
	for name, cfg := range fieldDef.Args {
		argAST := fieldAST.Arguments.ForName(name)
		if argAST == nil {
			if cfg.HasDefault {
				args[name] = cfg.DefaultValue
			}
			continue
		}
		v, err := argAST.Value.Value(variables)
		if err != nil {
			return nil, err
		}
		args[name] = v
	}
	return args, nil
}

// toItemSlice materializes a List field's resolved value into a slice, accepting a plain
// []interface{}, a graphql.Iterable (drained fully via its Iterator), or any other Go
// slice/array via reflection. A streamed field whose value is a graphql.SizedIterable bypasses
// this entirely (see completeSizedStreamedList); this is the path for everything else, where the
// whole list is needed up front regardless of whether it ends up split by `@stream`.
func toItemSlice(result interface{}) ([]interface{}, error) {
	if items, ok := result.([]interface{}); ok {
		return items, nil
	}

	if iterable, ok := result.(graphql.Iterable); ok {
		var items []interface{}
		it := iterable.Iterator()
		for {
			v, err := it.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	}

	rv := reflect.ValueOf(result)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("cannot complete list value from %T", result)
	}
	items := make([]interface{}, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, nil
}

// defaultResolve is used for fields with no explicit Resolver: it looks the field name up as a
// map key, or a same-named (case-insensitive) struct field, on source.
func defaultResolve(_ context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
	if source == nil {
		return nil, nil
	}
	if m, ok := source.(map[string]interface{}); ok {
		return m[info.FieldName()], nil
	}

	rv := reflect.ValueOf(source)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, nil
	}

	name := info.FieldName()
	field := rv.FieldByNameFunc(func(n string) bool { return strings.EqualFold(n, name) })
	if !field.IsValid() {
		return nil, nil
	}
	return field.Interface(), nil
}
