package path_test

import (
	"testing"

	"github.com/patchwork-gql/patchql/path"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestPath(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Path Suite")
}

var _ = Describe("Path", func() {
	It("is empty for the zero value", func() {
		Expect(path.Empty().IsEmpty()).To(BeTrue())
		Expect(path.Empty().Len()).To(Equal(0))
		Expect(path.Empty().Key()).To(Equal(""))
	})

	It("appends fields and indices without mutating the receiver", func() {
		base := path.Empty().AppendField("hero")
		withFriends := base.AppendField("friends")
		withIndex := withFriends.AppendIndex(2)

		Expect(base.Key()).To(Equal(".hero"))
		Expect(withFriends.Key()).To(Equal(".hero.friends"))
		Expect(withIndex.Key()).To(Equal(".hero.friends[2]"))
	})

	It("renders Segments in root-to-leaf order", func() {
		p := path.Empty().AppendField("hero").AppendField("friends").AppendIndex(0)
		segs := p.Segments()
		Expect(segs).To(HaveLen(3))
		Expect(segs[0].Name()).To(Equal("hero"))
		Expect(segs[1].Name()).To(Equal("friends"))
		Expect(segs[2].IsIndex()).To(BeTrue())
		Expect(segs[2].Index()).To(Equal(0))
	})

	It("marshals as a JSON array of strings and numbers", func() {
		p := path.Empty().AppendField("hero").AppendField("friends").AppendIndex(2)
		b, err := p.MarshalJSON()
		Expect(err).NotTo(HaveOccurred())
		Expect(string(b)).To(MatchJSON(`["hero","friends",2]`))
	})

	It("reports equality based on segment sequence", func() {
		a := path.Empty().AppendField("hero").AppendIndex(1)
		b := path.Empty().AppendField("hero").AppendIndex(1)
		c := path.Empty().AppendField("hero").AppendIndex(2)
		Expect(a.Equal(b)).To(BeTrue())
		Expect(a.Equal(c)).To(BeFalse())
	})

	Describe("CommonPrefix", func() {
		It("returns the empty path when given none", func() {
			Expect(path.CommonPrefix().IsEmpty()).To(BeTrue())
		})

		It("returns the longest shared prefix", func() {
			a := path.Empty().AppendField("hero").AppendField("friends").AppendIndex(0)
			b := path.Empty().AppendField("hero").AppendField("friends").AppendIndex(1)
			prefix := path.CommonPrefix(a, b)
			Expect(prefix.Key()).To(Equal(".hero.friends"))
		})

		It("returns the empty path when the first segment differs", func() {
			a := path.Empty().AppendField("hero")
			b := path.Empty().AppendField("droid")
			Expect(path.CommonPrefix(a, b).IsEmpty()).To(BeTrue())
		})

		It("is legal to return a fully empty prefix even with non-empty inputs", func() {
			a := path.Empty().AppendField("hero")
			Expect(path.CommonPrefix(a, path.Empty()).IsEmpty()).To(BeTrue())
		})
	})
})
