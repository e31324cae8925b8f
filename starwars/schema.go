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
	"errors"

	"github.com/patchwork-gql/patchql/graphql"
)

var episodeType = graphql.NewEnum("Episode", "One of the films in the original Star Wars trilogy.",
	map[string]graphql.EnumValueConfig{
		"NEWHOPE": {Value: NewHope},
		"EMPIRE":  {Value: Empire},
		"JEDI":    {Value: Jedi},
	})

var characterInterface = graphql.NewInterface(graphql.InterfaceConfig{
	Name:        "Character",
	Description: "A character from the Star Wars universe",
	Fields: graphql.Fields{
		"id":        {Type: graphql.NonNullOf(graphql.ID)},
		"name":      {Type: graphql.NonNullOf(graphql.String)},
		"appearsIn": {Type: graphql.ListOf(episodeType)},
		// "friends" is patched in below once characterInterface itself exists, since its type
		// (a list of Character) refers back to this very interface.
	},
	ResolveType: func(value interface{}) (*graphql.Object, error) {
		switch value.(type) {
		case *Human:
			return humanType, nil
		case *Droid:
			return droidType, nil
		default:
			return nil, errors.New("starwars: value is neither Human nor Droid")
		}
	},
})

func init() {
	characterInterface.Fields()["friends"] = &graphql.FieldDefinition{
		Name: "friends",
		Type: graphql.ListOf(characterInterface),
	}
}

func resolveCharacterID(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
	return source.(character).characterID(), nil
}

func resolveCharacterName(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
	return source.(character).characterName(), nil
}

// resolveCharacterFriends resolves friend ids through the per-operation Loaders in
// info.AppContext(), when present, returning the dataloader's future.Future directly so the
// executor awaits it; callers that don't supply a Loaders (e.g. tests exercising the plain
// synchronous path) fall back to the in-memory getFriends lookup.
func resolveCharacterFriends(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
	ids := source.(character).characterFriendIDs()
	if loaders, ok := info.AppContext().(*Loaders); ok {
		return loaders.loadFriends(ctx, ids)
	}
	return getFriends(ids), nil
}

// resolveCharacterAppearsIn returns a graphql.SliceIterable over the character's films instead of
// the backing slice directly, so a `@stream` site on appearsIn is completed through the
// SizedIterable path (see completeSizedStreamedList) rather than toItemSlice's eager drain.
func resolveCharacterAppearsIn(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
	return graphql.SliceIterable(source.(character).characterAppearsIn()), nil
}

func resolveSecretBackstory(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
	return nil, errors.New("secretBackstory is secret.")
}

// commonCharacterFields returns the id/name/friends/appearsIn field set shared by Human and
// Droid, so neither object's definition has to repeat the interface's resolvers.
func commonCharacterFields() graphql.Fields {
	return graphql.Fields{
		"id": {
			Type:     graphql.NonNullOf(graphql.ID),
			Resolver: graphql.FieldResolverFunc(resolveCharacterID),
		},
		"name": {
			Type:     graphql.NonNullOf(graphql.String),
			Resolver: graphql.FieldResolverFunc(resolveCharacterName),
		},
		"friends": {
			Type:     graphql.ListOf(characterInterface),
			Resolver: graphql.FieldResolverFunc(resolveCharacterFriends),
		},
		"appearsIn": {
			Type:     graphql.ListOf(episodeType),
			Resolver: graphql.FieldResolverFunc(resolveCharacterAppearsIn),
		},
		"secretBackstory": {
			Type:     graphql.String,
			Resolver: graphql.FieldResolverFunc(resolveSecretBackstory),
		},
	}
}

var humanType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "Human",
	Description: "A humanoid creature from the Star Wars universe",
	Interfaces:  []*graphql.Interface{characterInterface},
	IsTypeOf: func(value interface{}) bool {
		_, ok := value.(*Human)
		return ok
	},
	Fields: mergeFields(commonCharacterFields(), graphql.Fields{
		"homePlanet": {
			Type: graphql.String,
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				return source.(*Human).HomePlanet, nil
			}),
		},
	}),
})

var droidType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "Droid",
	Description: "A mechanical creature from the Star Wars universe",
	Interfaces:  []*graphql.Interface{characterInterface},
	IsTypeOf: func(value interface{}) bool {
		_, ok := value.(*Droid)
		return ok
	},
	Fields: mergeFields(commonCharacterFields(), graphql.Fields{
		"primaryFunction": {
			Type: graphql.String,
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				return source.(*Droid).PrimaryFunction, nil
			}),
		},
	}),
})

func mergeFields(base graphql.Fields, extra graphql.Fields) graphql.Fields {
	merged := make(graphql.Fields, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

var queryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Query",
	Fields: graphql.Fields{
		"hero": {
			Type: characterInterface,
			Args: graphql.ArgumentConfigMap{
				"episode": {Type: episodeType},
			},
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				episode, _ := info.Args()["episode"].(string)
				return getHero(Episode(episode)), nil
			}),
		},
		"human": {
			Type: humanType,
			Args: graphql.ArgumentConfigMap{
				"id": {Type: graphql.NonNullOf(graphql.ID)},
			},
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				id := info.Args()["id"].(string)
				if h := getHuman(id); h != nil {
					return h, nil
				}
				return nil, nil
			}),
		},
		"droid": {
			Type: droidType,
			Args: graphql.ArgumentConfigMap{
				"id": {Type: graphql.NonNullOf(graphql.ID)},
			},
			Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				id := info.Args()["id"].(string)
				if d := getDroid(id); d != nil {
					return d, nil
				}
				return nil, nil
			}),
		},
	},
})

// Schema is the Star Wars demo schema: Query.hero/human/droid over the Character interface,
// exercising @defer and @stream against a friends graph several levels deep.
var Schema = graphql.NewSchema(graphql.SchemaConfig{Query: queryType})
