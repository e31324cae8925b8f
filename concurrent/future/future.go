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

// Package future provides a poll-based asynchronous value, in the style of Rust's
// std::future::Future. A Future is inert until polled; Poll either returns a value (the
// future is done), an error (the future failed), or PollResultPending (not ready yet, a
// Waker has been recorded and will be woken when progress can be made).
//
// This is deliberately not goroutine-based: the executor that drives Futures in this
// module runs a single cooperative task (see executor.Dispatcher), and Poll must
// never block.
package future

// A Future represents an asynchronous computation that may not have finished yet.
//
// Futures alone are inert; they must be actively polled to make progress. Poll should
// only be called again after the Waker previously given to it has been woken — callers
// must not busy-poll.
//
// An implementation of Poll must never block; if the work is genuinely blocking it
// should be handed off elsewhere and the Future should simply record its Waker.
type Future interface {
	// Poll attempts to resolve the future to a final value, registering waker for wakeup
	// if the value isn't available yet.
	//
	//   - (value, nil):            the future finished successfully with value.
	//   - (nil, err):              the future finished with an error.
	//   - (PollResultPending, nil): not ready; waker will be woken later.
	//
	// Once a future has produced a value or an error, callers must not poll it again.
	Poll(waker Waker) (PollResult, error)
}
