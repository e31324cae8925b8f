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

package future

// A Waker is a handle to "wake up" a Future that was previously polled to pending. It
// notifies whoever drives the future's task that it should be polled again.
type Waker interface {
	// Wake indicates the associated task is ready to make progress.
	Wake() error
}

// WakerFunc adapts an ordinary function to a Waker.
type WakerFunc func() error

// Wake implements Waker.
func (f WakerFunc) Wake() error {
	return f()
}

// nopWaker is a Waker that does nothing; useful as a placeholder when polling for the
// first time and no wakeup is meaningful yet.
type nopWaker int

// Wake implements Waker.
func (nopWaker) Wake() error {
	return nil
}

// NopWaker is a Waker that does nothing.
const NopWaker nopWaker = 0
