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

package dataloader_test

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/patchwork-gql/patchql/concurrent/future"
	"github.com/patchwork-gql/patchql/dataloader"
)

func TestDataLoader(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "DataLoader Suite")
}

func pollToValue(f future.Future) (interface{}, error) {
	for {
		v, err := f.Poll(future.NopWaker)
		if err != nil {
			return nil, err
		}
		if v != future.PollResultPending {
			return v, nil
		}
	}
}

var _ = Describe("DataLoader", func() {
	It("batches every key loaded before Dispatch into a single BatchLoader call", func() {
		var batches [][]dataloader.Key

		loader, err := dataloader.New(dataloader.Config{
			BatchLoader: dataloader.BatchLoadFunc(func(ctx context.Context, tasks []*dataloader.Task) {
				keys := make([]dataloader.Key, len(tasks))
				for i, t := range tasks {
					keys[i] = t.Key()
					t.Complete(t.Key().(int) * 10)
				}
				batches = append(batches, keys)
			}),
		})
		Expect(err).NotTo(HaveOccurred())

		f1, err := loader.Load(1)
		Expect(err).NotTo(HaveOccurred())
		f2, err := loader.Load(2)
		Expect(err).NotTo(HaveOccurred())

		loader.Dispatch(context.Background())

		v1, err := pollToValue(f1)
		Expect(err).NotTo(HaveOccurred())
		Expect(v1).To(Equal(10))

		v2, err := pollToValue(f2)
		Expect(err).NotTo(HaveOccurred())
		Expect(v2).To(Equal(20))

		Expect(batches).To(HaveLen(1))
		Expect(batches[0]).To(ConsistOf(1, 2))
	})

	It("caches repeated loads of the same key into one task", func() {
		calls := 0
		batchSize := 0
		loader, err := dataloader.New(dataloader.Config{
			BatchLoader: dataloader.BatchLoadFunc(func(ctx context.Context, tasks []*dataloader.Task) {
				calls++
				batchSize = len(tasks)
				for _, t := range tasks {
					t.Complete(t.Key())
				}
			}),
		})
		Expect(err).NotTo(HaveOccurred())

		_, err = loader.Load("a")
		Expect(err).NotTo(HaveOccurred())
		_, err = loader.Load("a")
		Expect(err).NotTo(HaveOccurred())

		loader.Dispatch(context.Background())
		Expect(calls).To(Equal(1))
		Expect(batchSize).To(Equal(1))
	})

	It("reports an error for a task BatchLoader never completes", func() {
		loader, err := dataloader.New(dataloader.Config{
			BatchLoader: dataloader.BatchLoadFunc(func(ctx context.Context, tasks []*dataloader.Task) {
				// Deliberately leaves every task incomplete.
			}),
		})
		Expect(err).NotTo(HaveOccurred())

		f, err := loader.Load(1)
		Expect(err).NotTo(HaveOccurred())

		loader.Dispatch(context.Background())

		_, err = pollToValue(f)
		Expect(err).To(HaveOccurred())
	})
})
