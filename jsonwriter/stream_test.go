package jsonwriter_test

import (
	"bytes"
	"testing"

	"github.com/patchwork-gql/patchql/jsonwriter"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestJSONWriter(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "jsonwriter Suite")
}

func writeAndFlush(f func(stream *jsonwriter.Stream)) string {
	var buf bytes.Buffer
	stream := jsonwriter.NewStream(&buf)
	f(stream)
	Expect(stream.Flush()).To(Succeed())
	return buf.String()
}

var _ = Describe("Stream", func() {
	It("writes scalars", func() {
		Expect(writeAndFlush(func(s *jsonwriter.Stream) { s.WriteBool(true) })).To(Equal("true"))
		Expect(writeAndFlush(func(s *jsonwriter.Stream) { s.WriteNil() })).To(Equal("null"))
		Expect(writeAndFlush(func(s *jsonwriter.Stream) { s.WriteInt(-42) })).To(Equal("-42"))
		Expect(writeAndFlush(func(s *jsonwriter.Stream) { s.WriteFloat64(1.5) })).To(Equal("1.5"))
	})

	It("escapes control characters and quotes in strings", func() {
		Expect(writeAndFlush(func(s *jsonwriter.Stream) {
			s.WriteString("hello \"world\"\n")
		})).To(Equal(`"hello \"world\"\n"`))
	})

	It("passes through multi-byte UTF-8 unescaped", func() {
		Expect(writeAndFlush(func(s *jsonwriter.Stream) {
			s.WriteString("héllo")
		})).To(Equal(`"héllo"`))
	})

	It("writes objects and arrays via WriteInterface", func() {
		got := writeAndFlush(func(s *jsonwriter.Stream) {
			s.WriteObjectStart()
			s.WriteObjectField("droids")
			s.WriteInterface([]interface{}{"R2-D2", "C-3PO"})
			s.WriteObjectEnd()
		})
		Expect(got).To(MatchJSON(`{"droids":["R2-D2","C-3PO"]}`))
	})
})
