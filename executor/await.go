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

import "github.com/patchwork-gql/patchql/concurrent/future"

// awaitFuture drives f to completion on the calling goroutine. If f is pending, the caller
// blocks on a channel rather than busy-polling; whatever goroutine eventually completes f
// (e.g. one started by a resolver to perform I/O) is responsible for calling the Waker this
// installs. This is the executor's only suspension primitive: it is what lets a single
// cooperative task interleave with asynchronous resolvers without the executor itself
// spawning any workers.
func awaitFuture(f future.Future) (interface{}, error) {
	woken := make(chan struct{}, 1)
	waker := future.WakerFunc(func() error {
		select {
		case woken <- struct{}{}:
		default:
		}
		return nil
	})

	for {
		value, err := f.Poll(waker)
		if err != nil {
			return nil, err
		}
		if value != future.PollResultPending {
			return value, nil
		}
		<-woken
	}
}

// resolvedValue lifts a resolver's return value to its final form: if v is itself a
// future.Future, it is awaited; otherwise v is returned as-is. This is the "lift to a future
// uniformly at the Executor boundary" step the design calls for.
func resolvedValue(v interface{}) (interface{}, error) {
	if f, ok := v.(future.Future); ok {
		return awaitFuture(f)
	}
	return v, nil
}
