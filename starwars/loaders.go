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

package starwars

import (
	"context"
	"sync"
	"time"

	"github.com/patchwork-gql/patchql/dataloader"
)

// Loaders holds the batch loaders the demo schema's resolvers share for the lifetime of one
// operation. Construct a fresh Loaders per request (see NewLoaders) and thread it through
// ExecuteParams.AppContext; reusing one across requests would let one operation's cached
// characters leak into another's.
type Loaders struct {
	Character *dataloader.DataLoader

	mu        sync.Mutex
	loadCalls [][]string
}

// NewLoaders returns a Loaders ready to back one operation's execution.
func NewLoaders() *Loaders {
	loaders := &Loaders{}
	characterLoader, err := dataloader.New(dataloader.Config{
		BatchLoader: dataloader.BatchLoadFunc(loaders.loadCharacters),
	})
	if err != nil {
		panic(err)
	}
	loaders.Character = characterLoader
	return loaders
}

// loadCharacters is the Character loader's BatchLoader: it resolves every requested id against
// the fixtures in a single batch. Completion happens after a short simulated fetch delay, so a
// resolver's returned Future is still genuinely pending by the time the executor first polls it,
// the way a real BatchLoader backed by a database or RPC client would behave.
func (l *Loaders) loadCharacters(ctx context.Context, tasks []*dataloader.Task) {
	ids := make([]string, len(tasks))
	for i, task := range tasks {
		ids[i], _ = task.Key().(string)
	}

	l.mu.Lock()
	l.loadCalls = append(l.loadCalls, ids)
	l.mu.Unlock()

	time.Sleep(time.Millisecond)

	for i, task := range tasks {
		task.Complete(getCharacter(ids[i]))
	}
}

// CharacterLoadCalls returns the key batches passed to the character BatchLoader so far, in call
// order. Tests use it to confirm sibling friends lookups were coalesced into one call rather than
// issued one key at a time.
func (l *Loaders) CharacterLoadCalls() [][]string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([][]string(nil), l.loadCalls...)
}

// loadFriends resolves ids through the Character loader and returns the resulting Future.
// Dispatch runs on its own goroutine rather than inline, so the Future is still pending when
// resolveCharacterFriends returns it to the executor.
func (l *Loaders) loadFriends(ctx context.Context, ids []string) (interface{}, error) {
	if len(ids) == 0 {
		return []interface{}{}, nil
	}

	keys := make([]dataloader.Key, len(ids))
	for i, id := range ids {
		keys[i] = id
	}

	f, err := l.Character.LoadMany(dataloader.KeysFromSlice(keys...))
	if err != nil {
		return nil, err
	}

	go l.Character.Dispatch(ctx)

	return f, nil
}
