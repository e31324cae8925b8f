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

// Package dataloader batches and caches value-by-key loads behind a future.Future, the way a
// resolver for a `hero.friends` or `droid.secretBackstory`-style field fans out to a backend
// without issuing one request per item.
package dataloader

import "github.com/patchwork-gql/patchql/iterator"

// Key identifies one value a DataLoader can load, e.g. a database row id.
type Key interface{}

// Keys enumerates a set of keys to load together.
type Keys interface {
	Iterator() KeyIterator
}

// KeysWithSize is a Keys that can report its length ahead of iteration.
type KeysWithSize interface {
	Keys
	Size() int
}

// KeyIterator loops over a Keys value, following the iterator package's Next convention.
type KeyIterator interface {
	Next() (Key, error)
}

type keySlice []Key

// KeysFromSlice adapts a plain slice of keys into a KeysWithSize.
func KeysFromSlice(keys ...Key) KeysWithSize {
	return keySlice(keys)
}

func (ks keySlice) Size() int { return len(ks) }

func (ks keySlice) Iterator() KeyIterator {
	return &keySliceIterator{keys: ks}
}

type keySliceIterator struct {
	keys keySlice
	i    int
}

func (it *keySliceIterator) Next() (Key, error) {
	if it.i >= len(it.keys) {
		return nil, iterator.Done
	}
	k := it.keys[it.i]
	it.i++
	return k, nil
}
