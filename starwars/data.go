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

// Package starwars is a small fixture schema, modeled on the Star Wars example that
// graphql.github.io and most GraphQL implementations demo with, used to exercise incremental
// delivery end to end: a hero with friends deep enough to nest @defer and @stream, and a
// secretBackstory field that always errors so that error placement inside a patch can be
// observed.
package starwars

// Episode is one of the three films a character appears in.
type Episode string

const (
	NewHope Episode = "NEWHOPE"
	Empire  Episode = "EMPIRE"
	Jedi    Episode = "JEDI"
)

// Human is a character with a home planet.
type Human struct {
	ID         string
	Name       string
	FriendIDs  []string
	AppearsIn  []Episode
	HomePlanet string
}

// Droid is a character with a primary function.
type Droid struct {
	ID              string
	Name            string
	FriendIDs       []string
	AppearsIn       []Episode
	PrimaryFunction string
}

// character is implemented by both Human and Droid, letting the Character interface's common
// fields (id, name, friends, appearsIn) be resolved without a type switch at every call site.
type character interface {
	characterID() string
	characterName() string
	characterFriendIDs() []string
	characterAppearsIn() []Episode
}

func (h *Human) characterID() string          { return h.ID }
func (h *Human) characterName() string        { return h.Name }
func (h *Human) characterFriendIDs() []string { return h.FriendIDs }
func (h *Human) characterAppearsIn() []Episode { return h.AppearsIn }

func (d *Droid) characterID() string          { return d.ID }
func (d *Droid) characterName() string        { return d.Name }
func (d *Droid) characterFriendIDs() []string { return d.FriendIDs }
func (d *Droid) characterAppearsIn() []Episode { return d.AppearsIn }

var _ character = (*Human)(nil)
var _ character = (*Droid)(nil)

var threeFilms = []Episode{NewHope, Empire, Jedi}

// humanData and droidData are keyed by ID, following the same fixture shape the original
// swapiSchema.js example ships.
var humanData = map[string]*Human{
	"1000": {
		ID:         "1000",
		Name:       "Luke Skywalker",
		FriendIDs:  []string{"1002", "1003", "2000", "2001"},
		AppearsIn:  threeFilms,
		HomePlanet: "Tatooine",
	},
	"1002": {
		ID:         "1002",
		Name:       "Han Solo",
		FriendIDs:  []string{"1000", "1003", "2001"},
		AppearsIn:  []Episode{Empire, Jedi},
		HomePlanet: "",
	},
	"1003": {
		ID:         "1003",
		Name:       "Leia Organa",
		FriendIDs:  []string{"1000", "1002", "2000", "2001"},
		AppearsIn:  threeFilms,
		HomePlanet: "Alderaan",
	},
}

var droidData = map[string]*Droid{
	"2000": {
		ID:              "2000",
		Name:            "C-3PO",
		FriendIDs:       []string{"1000", "1002", "1003", "2001"},
		AppearsIn:       threeFilms,
		PrimaryFunction: "Protocol",
	},
	"2001": {
		ID:              "2001",
		Name:            "R2-D2",
		FriendIDs:       []string{"1000", "1002", "1003"},
		AppearsIn:       threeFilms,
		PrimaryFunction: "Astromech",
	},
}

// getCharacter looks up id across both the human and droid fixtures.
func getCharacter(id string) character {
	if h, ok := humanData[id]; ok {
		return h
	}
	if d, ok := droidData[id]; ok {
		return d
	}
	return nil
}

func getHuman(id string) *Human { return humanData[id] }
func getDroid(id string) *Droid { return droidData[id] }

// getFriends resolves a character's FriendIDs to their character values, in order, dropping any
// id the fixtures don't recognize.
func getFriends(ids []string) []interface{} {
	friends := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		if c := getCharacter(id); c != nil {
			friends = append(friends, c)
		}
	}
	return friends
}

// getHero returns the episode's hero, mirroring the reference implementation: Luke Skywalker for
// Empire, R2-D2 otherwise.
func getHero(episode Episode) character {
	if episode == Empire {
		return humanData["1000"]
	}
	return droidData["2001"]
}
