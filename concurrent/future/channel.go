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

import "sync/atomic"

// Completer is the producer side of a ChannelFuture: exactly one call to Complete or
// Fail is expected; later calls are ignored.
type Completer struct {
	f *channelFuture
}

// Complete resolves the future with value.
func (c Completer) Complete(value interface{}) {
	c.f.settle(value, nil)
}

// Fail resolves the future with err.
func (c Completer) Fail(err error) {
	c.f.settle(nil, err)
}

type channelFuture struct {
	done    chan struct{}
	settled int32

	value interface{}
	err   error

	waker atomic.Value // Waker
}

func (f *channelFuture) settle(value interface{}, err error) {
	if !atomic.CompareAndSwapInt32(&f.settled, 0, 1) {
		return
	}
	f.value, f.err = value, err
	close(f.done)
	if w, ok := f.waker.Load().(Waker); ok && w != nil {
		w.Wake()
	}
}

// Poll implements Future. This is safe to call from the single cooperative task that
// owns the executor: it never blocks. If the future is not resolved yet it stashes the
// waker so that whichever goroutine calls Complete/Fail (e.g. a background goroutine
// performing I/O) wakes the caller's task.
func (f *channelFuture) Poll(waker Waker) (PollResult, error) {
	select {
	case <-f.done:
		return f.value, f.err
	default:
		f.waker.Store(waker)
		// Re-check: settle() may have run concurrently with the store above.
		select {
		case <-f.done:
			return f.value, f.err
		default:
			return PollResultPending, nil
		}
	}
}

// NewChannelFuture returns a Future together with the Completer used to resolve it
// exactly once from any goroutine. It is the escape hatch resolvers use to represent
// genuinely asynchronous work (network I/O, timers, a dataloader batch dispatch) as a
// future.Future without the single-threaded executor itself spawning any workers.
func NewChannelFuture() (Future, Completer) {
	f := &channelFuture{done: make(chan struct{})}
	return f, Completer{f: f}
}
