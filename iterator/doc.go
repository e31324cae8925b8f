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

// Package iterator documents the convention used throughout this module for a
// synchronous pull sequence, and the one used by executor.PatchIterator for the asynchronous
// patch sequence.
//
// A type that produces a sequence of T provides a method returning an iterator. The
// iterator has a single Next method:
//
//	type Iterator struct { ... }
//
//	func (it *Iterator) Next() (T, error) {
//		...
//	}
//
// Callers loop until Next returns iterator.Done:
//
//	it := thing.Iterator()
//	for {
//		item, err := it.Next()
//		if err == iterator.Done {
//			break
//		} else if err != nil {
//			return err
//		}
//		process(item)
//	}
//
// executor.PatchIterator follows the same convention but Next may block the calling
// goroutine: draining it is what drives resolution of deferred/streamed work (see
// executor.Dispatcher for the cooperative scheduling model).
package iterator
