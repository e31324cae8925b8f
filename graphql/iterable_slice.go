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
	"reflect"

	"github.com/patchwork-gql/patchql/iterator"
)

// reflectSliceIterable wraps a Go slice, read via reflection, as a SizedIterable.
type reflectSliceIterable struct {
	v reflect.Value
}

func newReflectSliceIterable(v interface{}) *reflectSliceIterable {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		panic("graphql: SliceIterable requires a slice or array value")
	}
	return &reflectSliceIterable{v: rv}
}

// Size implements SizedIterable.
func (it *reflectSliceIterable) Size() int {
	return it.v.Len()
}

// Iterator implements Iterable.
func (it *reflectSliceIterable) Iterator() Iterator {
	return &reflectSliceIterator{v: it.v}
}

type reflectSliceIterator struct {
	v   reflect.Value
	idx int
}

// Next implements Iterator.
func (it *reflectSliceIterator) Next() (interface{}, error) {
	if it.idx >= it.v.Len() {
		return nil, iterator.Done
	}
	value := it.v.Index(it.idx).Interface()
	it.idx++
	return value, nil
}
