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

package graphql

import (
	"fmt"
	"strconv"
)

// ResultCoercer converts a resolver's Go value into a JSON-serializable leaf value.
type ResultCoercer func(value interface{}) (interface{}, error)

// Scalar is a leaf type with a custom result coercion function.
type Scalar struct {
	name        string
	description string
	coerce      ResultCoercer
}

var _ LeafType = (*Scalar)(nil)

// NewScalar defines a Scalar type named name, coercing result values with coerce.
func NewScalar(name, description string, coerce ResultCoercer) *Scalar {
	return &Scalar{name: name, description: description, coerce: coerce}
}

func (s *Scalar) Name() string                 { return s.name }
func (s *Scalar) Description() string          { return s.description }
func (s *Scalar) String() string               { return s.name }
func (s *Scalar) CoerceResultValue(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	return s.coerce(v)
}

// Enum is a leaf type whose result values are restricted to a fixed set of named members.
type Enum struct {
	name        string
	description string
	values      map[string]interface{}
}

var _ LeafType = (*Enum)(nil)

// EnumValueConfig maps an enum member name to the internal value a resolver may return for it.
type EnumValueConfig struct {
	Value interface{}
}

// NewEnum defines an Enum type from a map of member name to internal value.
func NewEnum(name, description string, values map[string]EnumValueConfig) *Enum {
	vs := make(map[string]interface{}, len(values))
	for k, v := range values {
		vs[k] = v.Value
	}
	return &Enum{name: name, description: description, values: vs}
}

func (e *Enum) Name() string        { return e.name }
func (e *Enum) Description() string { return e.description }
func (e *Enum) String() string      { return e.name }

// CoerceResultValue accepts either the enum's string name or the internal value registered for
// it, and always returns the serialized member name.
func (e *Enum) CoerceResultValue(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	if s, ok := v.(string); ok {
		if _, known := e.values[s]; known {
			return s, nil
		}
	}
	for name, internal := range e.values {
		if internal == v {
			return name, nil
		}
	}
	return nil, newTypeError("%s is not a member of enum %s", v, e.name)
}

// Predefined built-in scalar types, mirroring the GraphQL specification's built-ins.
var (
	String = NewScalar("String", "The String scalar type represents textual data.",
		func(v interface{}) (interface{}, error) {
			switch v := v.(type) {
			case string:
				return v, nil
			case fmt.Stringer:
				return v.String(), nil
			}
			return nil, newTypeError("cannot coerce %v to String", v)
		})

	Boolean = NewScalar("Boolean", "The Boolean scalar type represents true or false.",
		func(v interface{}) (interface{}, error) {
			if b, ok := v.(bool); ok {
				return b, nil
			}
			return nil, newTypeError("cannot coerce %v to Boolean", v)
		})

	Int = NewScalar("Int", "The Int scalar type represents a signed 32-bit numeric value.",
		func(v interface{}) (interface{}, error) {
			switch v := v.(type) {
			case int:
				return v, nil
			case int32:
				return int(v), nil
			case int64:
				return int(v), nil
			}
			return nil, newTypeError("cannot coerce %v to Int", v)
		})

	Float = NewScalar("Float", "The Float scalar type represents signed double-precision fractional values.",
		func(v interface{}) (interface{}, error) {
			switch v := v.(type) {
			case float64:
				return v, nil
			case float32:
				return float64(v), nil
			case int:
				return float64(v), nil
			}
			return nil, newTypeError("cannot coerce %v to Float", v)
		})

	ID = NewScalar("ID", "The ID scalar type represents a unique identifier.",
		func(v interface{}) (interface{}, error) {
			switch v := v.(type) {
			case string:
				return v, nil
			case int:
				return strconv.Itoa(v), nil
			case fmt.Stringer:
				return v.String(), nil
			}
			return nil, newTypeError("cannot coerce %v to ID", v)
		})
)
