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

package executor_test

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/patchwork-gql/patchql/executor"
	"github.com/patchwork-gql/patchql/iterator"
	"github.com/patchwork-gql/patchql/path"
	"github.com/patchwork-gql/patchql/starwars"
)

func TestExecutor(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Executor Suite")
}

// runQuery parses and executes query against the starwars demo schema, failing the spec
// immediately on a parse or prepare error so assertions can focus on the result shape.
func runQuery(query string, enableDeferredDelivery bool) *executor.ExecutionResult {
	document, err := parser.ParseQuery(&ast.Source{Input: query})
	Expect(err).NotTo(HaveOccurred())

	op, err := executor.Prepare(executor.PrepareParams{Schema: starwars.Schema, Document: document})
	Expect(err).NotTo(HaveOccurred())

	return op.Execute(executor.ExecuteParams{
		Context:                context.Background(),
		AppContext:             starwars.NewLoaders(),
		EnableDeferredDelivery: enableDeferredDelivery,
	})
}

// drainPatches runs patches to exhaustion, in completion order.
func drainPatches(result *executor.ExecutionResult) []executor.Patch {
	var patches []executor.Patch
	for {
		p, err := result.Patches.Next()
		if err == iterator.Done {
			break
		}
		Expect(err).NotTo(HaveOccurred())
		patches = append(patches, p)
	}
	return patches
}

// fieldPath builds a response path out of field-name segments, for comparing against a
// Patch's Path.
func fieldPath(names ...string) path.Path {
	p := path.Empty()
	for _, n := range names {
		p = p.AppendField(n)
	}
	return p
}

var _ = Describe("Execute", func() {
	Describe("without incremental delivery", func() {
		It("resolves a deferred fragment's fields inline", func() {
			result := runQuery(`
				{
					hero {
						id
						...N @defer(label: "NameFragment")
					}
				}
				fragment N on Droid { id name }
			`, false)

			Expect(result.Errors).To(BeEmpty())
			Expect(result.Data).To(Equal(map[string]interface{}{
				"hero": map[string]interface{}{
					"id":   "2001",
					"name": "R2-D2",
				},
			}))
			Expect(result.HasIncrementalDelivery()).To(BeFalse())
			Expect(drainPatches(result)).To(BeEmpty())
		})

		It("resolves a streamed list in full", func() {
			result := runQuery(`
				{
					hero {
						friends @stream(initial_count: 2, label: "HeroFriends") { id name }
					}
				}
			`, false)

			Expect(result.Errors).To(BeEmpty())
			hero := result.Data.(map[string]interface{})["hero"].(map[string]interface{})
			Expect(hero["friends"]).To(Equal([]interface{}{
				map[string]interface{}{"id": "1000", "name": "Luke Skywalker"},
				map[string]interface{}{"id": "1002", "name": "Han Solo"},
				map[string]interface{}{"id": "1003", "name": "Leia Organa"},
			}))
			Expect(drainPatches(result)).To(BeEmpty())
		})
	})

	Describe("seed scenario 1: deferred scalar fragment", func() {
		It("holds the fragment's fields back into a single patch", func() {
			result := runQuery(`
				{
					hero {
						id
						...N @defer(label: "NameFragment")
					}
				}
				fragment N on Droid { id name }
			`, true)

			Expect(result.Errors).To(BeEmpty())
			Expect(result.Data).To(Equal(map[string]interface{}{
				"hero": map[string]interface{}{"id": "2001"},
			}))

			patches := drainPatches(result)
			Expect(patches).To(HaveLen(1))
			Expect(patches[0].Label).To(Equal("NameFragment"))
			Expect(patches[0].Path.Equal(fieldPath("hero"))).To(BeTrue())
			Expect(patches[0].Data).To(Equal(map[string]interface{}{
				"id":   "2001",
				"name": "R2-D2",
			}))
			Expect(patches[0].Errors).To(BeEmpty())
		})
	})

	Describe("seed scenario 2: nested defer", func() {
		It("emits the nested patch before its enclosing one", func() {
			result := runQuery(`
				{
					hero {
						id
						...DroidFragment @defer(label: "DeferDroid")
					}
				}
				fragment DroidFragment on Droid {
					id
					name
					...DroidNestedFragment @defer(label: "DeferNested")
				}
				fragment DroidNestedFragment on Droid {
					appearsIn
					primaryFunction
				}
			`, true)

			Expect(result.Errors).To(BeEmpty())
			Expect(result.Data).To(Equal(map[string]interface{}{
				"hero": map[string]interface{}{"id": "2001"},
			}))

			patches := drainPatches(result)
			Expect(patches).To(HaveLen(2))

			Expect(patches[0].Label).To(Equal("DeferNested"))
			Expect(patches[0].Path.Equal(fieldPath("hero"))).To(BeTrue())
			Expect(patches[0].Data).To(Equal(map[string]interface{}{
				"appearsIn":       []interface{}{"NEWHOPE", "EMPIRE", "JEDI"},
				"primaryFunction": "Astromech",
			}))

			Expect(patches[1].Label).To(Equal("DeferDroid"))
			Expect(patches[1].Path.Equal(fieldPath("hero"))).To(BeTrue())
			Expect(patches[1].Data).To(Equal(map[string]interface{}{
				"id":   "2001",
				"name": "R2-D2",
			}))
		})
	})

	Describe("seed scenario 3: error inside a deferred fragment", func() {
		It("places the resolver error in the patch, not the initial errors", func() {
			result := runQuery(`
				{
					hero {
						id
						...SecretFragment @defer(label: "SecretFragment")
					}
				}
				fragment SecretFragment on Droid { name secretBackstory }
			`, true)

			Expect(result.Errors).To(BeEmpty())

			patches := drainPatches(result)
			Expect(patches).To(HaveLen(1))
			Expect(patches[0].Label).To(Equal("SecretFragment"))
			Expect(patches[0].Path.Equal(fieldPath("hero"))).To(BeTrue())
			Expect(patches[0].Data).To(Equal(map[string]interface{}{
				"name":            "R2-D2",
				"secretBackstory": nil,
			}))
			Expect(patches[0].Errors).To(HaveLen(1))
			Expect(patches[0].Errors[0].Message).To(Equal("secretBackstory is secret."))
			Expect(patches[0].Errors[0].Path.Equal(fieldPath("hero", "secretBackstory"))).To(BeTrue())
		})
	})

	Describe("seed scenario 4: error inside a deferred fragment within a list", func() {
		It("reports one error per failing list element", func() {
			result := runQuery(`
				{
					hero {
						id
						...Friends @defer(label: "FriendsFragment")
					}
				}
				fragment Friends on Droid {
					friends { name secretBackstory }
				}
			`, true)

			patches := drainPatches(result)
			Expect(patches).To(HaveLen(1))
			patch := patches[0]

			friends := patch.Data.(map[string]interface{})["friends"].([]interface{})
			Expect(friends).To(HaveLen(3))
			for _, f := range friends {
				Expect(f.(map[string]interface{})["secretBackstory"]).To(BeNil())
			}

			Expect(patch.Errors).To(HaveLen(3))
			for i, err := range patch.Errors {
				Expect(err.Message).To(Equal("secretBackstory is secret."))
				Expect(err.Path.Equal(fieldPath("hero", "friends").AppendIndex(i).AppendField("secretBackstory"))).To(BeTrue())
			}
		})
	})

	Describe("seed scenario 5: stream", func() {
		It("holds back elements past initial_count as their own patch", func() {
			result := runQuery(`
				{
					hero {
						friends @stream(initial_count: 2, label: "HeroFriends") { id name }
					}
				}
			`, true)

			Expect(result.Errors).To(BeEmpty())
			hero := result.Data.(map[string]interface{})["hero"].(map[string]interface{})
			Expect(hero["friends"]).To(Equal([]interface{}{
				map[string]interface{}{"id": "1000", "name": "Luke Skywalker"},
				map[string]interface{}{"id": "1002", "name": "Han Solo"},
			}))

			patches := drainPatches(result)
			Expect(patches).To(HaveLen(1))
			Expect(patches[0].Label).To(Equal("HeroFriends"))
			Expect(patches[0].Path.Equal(fieldPath("hero", "friends").AppendIndex(2))).To(BeTrue())
			Expect(patches[0].Data).To(Equal(map[string]interface{}{
				"id":   "1003",
				"name": "Leia Organa",
			}))
			Expect(patches[0].Errors).To(BeEmpty())
		})

		It("yields no patches when initial_count already covers the whole list", func() {
			result := runQuery(`
				{
					hero {
						friends @stream(initial_count: 10, label: "HeroFriends") { id }
					}
				}
			`, true)

			Expect(drainPatches(result)).To(BeEmpty())
		})
	})

	Describe("seed scenario 6: multiple streams with distinct labels", func() {
		It("keeps each stream's patches under its own label", func() {
			result := runQuery(`
				{
					droid(id: "2000") {
						friends @stream(initial_count: 1, label: "CThreePOFriends") { id name }
					}
					hero {
						friends @stream(initial_count: 2, label: "HeroFriends") { id name }
					}
				}
			`, true)

			Expect(result.Errors).To(BeEmpty())

			patches := drainPatches(result)
			labels := make(map[string]int)
			for _, p := range patches {
				labels[p.Label]++
			}
			// C-3PO has 4 friends, held back to 3; the hero (R2-D2) has 3, held back to 1.
			Expect(labels["CThreePOFriends"]).To(Equal(3))
			Expect(labels["HeroFriends"]).To(Equal(1))
		})
	})

	Describe("dataloader-backed friends resolution", func() {
		It("batches sibling friend lookups into a single BatchLoader call via a genuinely pending Future", func() {
			loaders := starwars.NewLoaders()

			document, err := parser.ParseQuery(&ast.Source{Input: `
				{
					hero {
						friends { id name }
					}
				}
			`})
			Expect(err).NotTo(HaveOccurred())

			op, err := executor.Prepare(executor.PrepareParams{Schema: starwars.Schema, Document: document})
			Expect(err).NotTo(HaveOccurred())

			result := op.Execute(executor.ExecuteParams{
				Context:    context.Background(),
				AppContext: loaders,
			})

			// resolveCharacterFriends returns the Future before loadCharacters has had a
			// chance to run (it completes tasks from its own goroutine after a simulated
			// fetch delay), so awaitFuture's first Poll of it necessarily observed
			// future.PollResultPending and blocked on its wake channel rather than
			// returning immediately: the exact path this test exists to exercise.
			Expect(result.Errors).To(BeEmpty())
			hero := result.Data.(map[string]interface{})["hero"].(map[string]interface{})
			Expect(hero["friends"]).To(Equal([]interface{}{
				map[string]interface{}{"id": "1000", "name": "Luke Skywalker"},
				map[string]interface{}{"id": "1002", "name": "Han Solo"},
				map[string]interface{}{"id": "1003", "name": "Leia Organa"},
			}))

			calls := loaders.CharacterLoadCalls()
			Expect(calls).To(HaveLen(1))
			Expect(calls[0]).To(ConsistOf("1000", "1002", "1003"))
		})
	})

	Describe("SizedIterable-backed list streaming", func() {
		It("streams a resolver's SliceIterable result through Size rather than draining it up front", func() {
			result := runQuery(`
				{
					droid(id: "2001") {
						appearsIn @stream(initial_count: 1, label: "Films")
					}
				}
			`, true)

			Expect(result.Errors).To(BeEmpty())
			droid := result.Data.(map[string]interface{})["droid"].(map[string]interface{})
			Expect(droid["appearsIn"]).To(Equal([]interface{}{"NEWHOPE"}))

			patches := drainPatches(result)
			Expect(patches).To(HaveLen(2))
			Expect(patches[0].Label).To(Equal("Films"))
			Expect(patches[0].Data).To(Equal("EMPIRE"))
			Expect(patches[1].Label).To(Equal("Films"))
			Expect(patches[1].Data).To(Equal("JEDI"))
		})
	})

	Describe("property: label uniqueness (P2)", func() {
		It("rejects two defer/stream directives sharing a label", func() {
			result := runQuery(`
				{
					hero {
						id
						...A @defer(label: "Dup")
						friends @stream(initial_count: 0, label: "Dup") { id }
					}
				}
				fragment A on Droid { name }
			`, true)

			Expect(result.Errors).NotTo(BeEmpty())
			found := false
			for _, err := range result.Errors {
				if err.Message == "duplicate @defer/@stream label Dup" {
					found = true
				}
			}
			Expect(found).To(BeTrue())
		})
	})

	Describe("property: patch payload shape (P4)", func() {
		It("never emits an empty errors array", func() {
			result := runQuery(`
				{
					hero {
						id
						...N @defer(label: "NameFragment")
					}
				}
				fragment N on Droid { id name }
			`, true)

			for _, p := range drainPatches(result) {
				Expect(p.Label).NotTo(BeEmpty())
				Expect(p.Data).NotTo(BeNil())
				if p.Errors != nil {
					Expect(p.Errors).NotTo(BeEmpty())
				}
			}
		})
	})

	Describe("property: error isolation (P5)", func() {
		It("never surfaces a deferred unit's resolver error in the initial errors", func() {
			result := runQuery(`
				{
					hero {
						id
						...SecretFragment @defer(label: "SecretFragment")
					}
				}
				fragment SecretFragment on Droid { secretBackstory }
			`, true)

			Expect(result.Errors).To(BeEmpty())
		})
	})

	Describe("property: compatibility (P1)", func() {
		It("produces the same merged result whether or not deferred delivery is enabled", func() {
			query := `
				{
					hero {
						id
						...N @defer(label: "NameFragment")
						friends @stream(initial_count: 1, label: "HeroFriends") { id name }
					}
				}
				fragment N on Droid { name }
			`

			inline := runQuery(query, false)
			Expect(inline.Errors).To(BeEmpty())

			incremental := runQuery(query, true)
			Expect(incremental.Errors).To(BeEmpty())

			merged := map[string]interface{}{}
			for k, v := range incremental.Data.(map[string]interface{}) {
				merged[k] = v
			}
			hero := merged["hero"].(map[string]interface{})
			heroCopy := map[string]interface{}{}
			for k, v := range hero {
				heroCopy[k] = v
			}

			for _, p := range drainPatches(incremental) {
				switch p.Label {
				case "NameFragment":
					for k, v := range p.Data.(map[string]interface{}) {
						heroCopy[k] = v
					}
				case "HeroFriends":
					friends := append([]interface{}(nil), heroCopy["friends"].([]interface{})...)
					idx := p.Path.Segments()[len(p.Path.Segments())-1].Index()
					for len(friends) <= idx {
						friends = append(friends, nil)
					}
					friends[idx] = p.Data
					heroCopy["friends"] = friends
				}
			}
			merged["hero"] = heroCopy

			Expect(merged).To(Equal(inline.Data))
		})
	})
})
