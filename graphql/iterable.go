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

import "github.com/patchwork-gql/patchql/iterator"

// Iterable is recognized by the executor when a List field's resolved value is not a Go slice: it
// lets a resolver hand back a lazily-produced sequence. The executor drains a plain Iterable in
// full before completing the list, even under @stream; only a SizedIterable is consumed element by
// element for a streamed field.
type Iterable interface {
	Iterator() Iterator
}

// SizedIterable is an Iterable that can report its length ahead of iteration. A streamed list
// field whose resolved value implements it never has to be drained up front: the executor calls
// Size to learn where the initial/deferred boundary falls and pulls the deferred tail from the
// same Iterator lazily, one element per stream unit.
type SizedIterable interface {
	Iterable
	Size() int
}

// Iterator loops over the values of an Iterable, following the iterator package's Next
// convention: Next returns iterator.Done once exhausted.
type Iterator interface {
	Next() (interface{}, error)
}

// SliceIterable adapts a Go slice or array, accessed via reflection, into a SizedIterable.
// SliceIterable panics if v is neither a slice nor an array.
func SliceIterable(v interface{}) SizedIterable {
	return newReflectSliceIterable(v)
}
