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

package dataloader

import (
	"fmt"
	"log"
	"reflect"
	"sync/atomic"
	"unsafe"

	"github.com/patchwork-gql/patchql/concurrent/future"
)

type taskResultKind int

const (
	taskNotCompleted taskResultKind = iota
	taskResultErr
	taskResultValue
)

type taskResult struct {
	kind taskResultKind

	// value holds, depending on kind: the pending wakers waiting on this task
	// (taskNotCompleted), the load error (taskResultErr), or the loaded value
	// (taskResultValue).
	value interface{}
}

var initialTaskResult = &taskResult{kind: taskNotCompleted, value: []future.Waker{}}

// Task tracks one key's load: the batch that will fetch it, and the future(s) waiting on its
// result. A Task completes exactly once, via Complete or SetError.
type Task struct {
	key Key

	// result is *taskResult, accessed atomically since a batch running on its own goroutine may
	// complete a task while the executor goroutine concurrently polls a future over it.
	result unsafe.Pointer
}

func newTask(key Key) *Task {
	return &Task{key: key, result: unsafe.Pointer(initialTaskResult)}
}

// Key returns the key this task loads.
func (t *Task) Key() Key { return t.key }

func (t *Task) loadResult() *taskResult {
	return (*taskResult)(atomic.LoadPointer(&t.result))
}

// Completed reports whether the task has finished, with either a value or an error.
func (t *Task) Completed() bool {
	return t.loadResult().kind != taskNotCompleted
}

func (t *Task) complete(newResult *taskResult) error {
	for {
		old := t.loadResult()
		if old.kind != taskNotCompleted {
			return fmt.Errorf("dataloader: task for key %v already completed", t.key)
		}
		if atomic.CompareAndSwapPointer(&t.result, unsafe.Pointer(old), unsafe.Pointer(newResult)) {
			for _, waker := range old.value.([]future.Waker) {
				if err := waker.Wake(); err != nil {
					log.Printf("dataloader: waker failed waking task for key %v: %v", t.key, err)
				}
			}
			return nil
		}
	}
}

// Complete resolves the task with value.
func (t *Task) Complete(value interface{}) error {
	return t.complete(&taskResult{kind: taskResultValue, value: value})
}

// SetError resolves the task with err.
func (t *Task) SetError(err error) error {
	return t.complete(&taskResult{kind: taskResultErr, value: err})
}

// future returns a future.Future over this task's eventual result.
func (t *Task) future() future.Future {
	return &taskFuture{task: t, waker: future.NopWaker}
}

// taskFuture implements future.Future by polling a Task, registering itself in the task's waker
// list until the task completes.
type taskFuture struct {
	task  *Task
	waker future.Waker
}

var _ future.Future = (*taskFuture)(nil)

// Poll implements future.Future.
func (f *taskFuture) Poll(waker future.Waker) (future.PollResult, error) {
	for {
		result := f.task.loadResult()
		switch result.kind {
		case taskNotCompleted:
			if !reflect.DeepEqual(f.waker, waker) {
				wakers := append(append([]future.Waker(nil), result.value.([]future.Waker)...), waker)
				swapped := atomic.CompareAndSwapPointer(
					&f.task.result,
					unsafe.Pointer(result),
					unsafe.Pointer(&taskResult{kind: taskNotCompleted, value: wakers}),
				)
				if !swapped {
					continue
				}
				f.waker = waker
			}
			return future.PollResultPending, nil

		case taskResultErr:
			return nil, result.value.(error)

		default:
			return result.value, nil
		}
	}
}
