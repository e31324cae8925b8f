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

import "sync"

// CacheMap caches the Task loading each key a DataLoader has seen, so repeated loads of the same
// key within a request share one Task (and thus one batch slot) instead of issuing it twice.
type CacheMap interface {
	// Get returns the cached task for key, or nil.
	Get(key Key) *Task

	// Set caches task, returning whichever task ends up associated with its key: task itself, or
	// one a concurrent caller already installed first.
	Set(task *Task) *Task

	// Delete evicts key from the cache.
	Delete(key Key)

	// Clear empties the cache.
	Clear()
}

// DefaultCacheMap is the CacheMap used when Config.CacheMap is left unset.
type DefaultCacheMap struct {
	m sync.Map
}

var _ CacheMap = (*DefaultCacheMap)(nil)

// Get implements CacheMap.
func (c *DefaultCacheMap) Get(key Key) *Task {
	v, ok := c.m.Load(key)
	if !ok {
		return nil
	}
	return v.(*Task)
}

// Set implements CacheMap.
func (c *DefaultCacheMap) Set(task *Task) *Task {
	actual, _ := c.m.LoadOrStore(task.Key(), task)
	return actual.(*Task)
}

// Delete implements CacheMap.
func (c *DefaultCacheMap) Delete(key Key) {
	c.m.Delete(key)
}

// Clear implements CacheMap.
func (c *DefaultCacheMap) Clear() {
	c.m.Range(func(key, _ interface{}) bool {
		c.m.Delete(key)
		return true
	})
}

// noCacheMap implements CacheMap by caching nothing, used as NoCacheMap.
type noCacheMap struct{}

var _ CacheMap = noCacheMap{}

func (noCacheMap) Get(Key) *Task  { return nil }
func (noCacheMap) Set(t *Task) *Task { return t }
func (noCacheMap) Delete(Key)     {}
func (noCacheMap) Clear()         {}

// NoCacheMap, given as Config.CacheMap, disables per-key caching: every Load issues a fresh Task,
// even for a key already loaded earlier in the same request.
var NoCacheMap CacheMap = noCacheMap{}
