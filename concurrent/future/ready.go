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

// ready implements Future for a value that is already available.
type ready struct {
	value interface{}
}

// Poll implements Future.
func (f ready) Poll(Waker) (PollResult, error) {
	return f.value, nil
}

// Ready creates a Future that is immediately ready with value.
func Ready(value interface{}) Future {
	return ready{value: value}
}

// failed implements Future for a computation that has already failed.
type failed struct {
	err error
}

// Poll implements Future.
func (f failed) Poll(Waker) (PollResult, error) {
	return nil, f.err
}

// Err creates a Future that is immediately done with err.
func Err(err error) Future {
	return failed{err: err}
}
