package future_test

import (
	"errors"
	"testing"

	"github.com/patchwork-gql/patchql/concurrent/future"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestFuture(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Future Suite")
}

var _ = Describe("Ready and Err", func() {
	It("is immediately ready with a value", func() {
		value, err := future.Ready(1).Poll(future.NopWaker)
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal(1))
	})

	It("is immediately done with an error", func() {
		testErr := errors.New("boom")
		_, err := future.Err(testErr).Poll(future.NopWaker)
		Expect(err).To(MatchError(testErr))
	})
})

var _ = Describe("Join", func() {
	It("collects results from every input in order", func() {
		joined := future.Join(future.Ready(1), future.Ready(2), future.Ready(3))
		value, err := joined.Poll(future.NopWaker)
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal([]interface{}{1, 2, 3}))
	})

	It("stays pending until every input resolves", func() {
		pending, completer := future.NewChannelFuture()
		joined := future.Join(future.Ready(1), pending)

		value, err := joined.Poll(future.NopWaker)
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal(future.PollResultPending))

		completer.Complete(2)
		value, err = joined.Poll(future.NopWaker)
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal([]interface{}{1, 2}))
	})

	It("fails as soon as any input fails", func() {
		testErr := errors.New("boom")
		joined := future.Join(future.Ready(1), future.Err(testErr))
		_, err := joined.Poll(future.NopWaker)
		Expect(err).To(MatchError(testErr))
	})
})

var _ = Describe("ChannelFuture", func() {
	It("wakes the waker exactly once, from whichever goroutine completes it", func() {
		f, completer := future.NewChannelFuture()

		woken := make(chan struct{}, 1)
		waker := future.WakerFunc(func() error {
			woken <- struct{}{}
			return nil
		})

		value, err := f.Poll(waker)
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal(future.PollResultPending))

		go completer.Complete("done")

		<-woken
		value, err = f.Poll(future.NopWaker)
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal("done"))
	})
})
