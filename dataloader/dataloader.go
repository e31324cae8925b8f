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
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/patchwork-gql/patchql/concurrent/future"
	"github.com/patchwork-gql/patchql/iterator"
)

// BatchLoader loads the data identified by every task in tasks, completing each one (via
// Task.Complete or Task.SetError) before returning.
type BatchLoader interface {
	Load(ctx context.Context, tasks []*Task)
}

// BatchLoadFunc adapts a plain function to BatchLoader.
type BatchLoadFunc func(ctx context.Context, tasks []*Task)

// Load implements BatchLoader.
func (f BatchLoadFunc) Load(ctx context.Context, tasks []*Task) { f(ctx, tasks) }

// Config configures a DataLoader.
type Config struct {
	// BatchLoader is required: it performs the actual batched fetch.
	BatchLoader BatchLoader

	// MaxBatchSize caps how many tasks one Dispatch sends to BatchLoader at once; 0 means
	// unlimited. Setting it to 1 disables batching.
	MaxBatchSize int

	// CacheMap overrides the per-key task cache. Leave nil for a DefaultCacheMap, or set to
	// NoCacheMap to disable caching.
	CacheMap CacheMap
}

var errMissingBatchLoader = errors.New("dataloader: Config.BatchLoader is required")

// DataLoader batches same-tick loads of distinct keys into as few BatchLoader.Load calls as
// possible, per the batch-and-cache pattern field resolvers use to avoid issuing one request per
// item (e.g. resolving every friend of a list of heroes with a single query).
//
// Unlike a goroutine-per-request dataloader, Dispatch runs BatchLoader.Load on the calling
// goroutine: the core executor never spawns workers of its own (see the executor package), so
// queued tasks are drained explicitly rather than on a timer or the next event loop tick. A
// resolver is still free to have BatchLoader perform genuinely asynchronous I/O and complete
// tasks from another goroutine; Task's Future just needs to be polled again afterward.
type DataLoader struct {
	config Config

	mu      sync.Mutex
	pending []*Task
	cache   CacheMap
}

// New creates a DataLoader from config.
func New(config Config) (*DataLoader, error) {
	if config.BatchLoader == nil {
		return nil, errMissingBatchLoader
	}

	cache := config.CacheMap
	if cache == nil {
		cache = &DefaultCacheMap{}
	}

	return &DataLoader{config: config, cache: cache}, nil
}

// Load returns a Future for the value identified by key, enqueuing a task for it (or reusing one
// already cached/enqueued for the same key) until the next Dispatch.
func (loader *DataLoader) Load(key Key) (future.Future, error) {
	if key == nil {
		return nil, errors.New("dataloader: key must not be nil")
	}

	if cached := loader.cache.Get(key); cached != nil {
		return cached.future(), nil
	}

	loader.mu.Lock()
	task := newTask(key)
	task = loader.cache.Set(task)
	if len(loader.pending) == 0 || loader.pending[len(loader.pending)-1] != task {
		loader.pending = append(loader.pending, task)
	}
	loader.mu.Unlock()

	return task.future(), nil
}

// LoadMany returns a Future that resolves to a []interface{} of every key's value, in order, once
// all of them have loaded.
func (loader *DataLoader) LoadMany(keys Keys) (future.Future, error) {
	var futures []future.Future
	if sized, ok := keys.(KeysWithSize); ok {
		futures = make([]future.Future, 0, sized.Size())
	}

	it := keys.Iterator()
	for {
		key, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		f, err := loader.Load(key)
		if err != nil {
			return nil, err
		}
		futures = append(futures, f)
	}

	return future.Join(futures...), nil
}

// Dispatch runs BatchLoader.Load over every task enqueued since the last Dispatch, split into
// batches of at most Config.MaxBatchSize tasks (0 meaning unlimited).
func (loader *DataLoader) Dispatch(ctx context.Context) {
	loader.mu.Lock()
	tasks := loader.pending
	loader.pending = nil
	loader.mu.Unlock()

	if len(tasks) == 0 {
		return
	}

	maxBatchSize := loader.config.MaxBatchSize
	if maxBatchSize <= 0 {
		loader.runBatch(ctx, tasks)
		return
	}

	for start := 0; start < len(tasks); start += maxBatchSize {
		end := start + maxBatchSize
		if end > len(tasks) {
			end = len(tasks)
		}
		loader.runBatch(ctx, tasks[start:end])
	}
}

func (loader *DataLoader) runBatch(ctx context.Context, tasks []*Task) {
	loader.config.BatchLoader.Load(ctx, tasks)

	for _, task := range tasks {
		if !task.Completed() {
			task.SetError(fmt.Errorf("dataloader: BatchLoader did not complete task for key %v", task.Key()))
		}
	}
}

// Clear evicts key from the cache, if present.
func (loader *DataLoader) Clear(key Key) {
	loader.cache.Delete(key)
}

// ClearAll empties the cache.
func (loader *DataLoader) ClearAll() {
	loader.cache.Clear()
}

// Prime seeds the cache with a known value for key, as if it had already been loaded. It has no
// effect if key is already cached.
func (loader *DataLoader) Prime(key Key, value interface{}) {
	task := newTask(key)
	task.Complete(value)
	loader.cache.Set(task)
}
