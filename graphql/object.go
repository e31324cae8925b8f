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

// IsTypeOfFunc determines, for an abstract type's possible Object, whether a given resolved value
// is an instance of that Object. Either this or Union/Interface.ResolveType must be able to
// determine the concrete type for every value the schema can produce.
type IsTypeOfFunc func(value interface{}) bool

// Object is a composite output type with a fixed, named set of fields.
type Object struct {
	name        string
	description string
	fields      Fields
	interfaces  []*Interface
	isTypeOf    IsTypeOfFunc
}

var (
	_ NamedType     = (*Object)(nil)
	_ CompositeType = (*Object)(nil)
)

// ObjectConfig configures NewObject.
type ObjectConfig struct {
	Name        string
	Description string
	Interfaces  []*Interface
	Fields      Fields
	IsTypeOf    IsTypeOfFunc
}

// NewObject defines an Object type. It panics if Name is empty or Fields is empty, which are
// programmer errors in a statically-constructed schema.
func NewObject(config ObjectConfig) *Object {
	if config.Name == "" {
		panic("graphql: Object must have a Name")
	}
	if len(config.Fields) == 0 {
		panic("graphql: Object " + config.Name + " must define at least one field")
	}
	for name, f := range config.Fields {
		if f.Name == "" {
			f.Name = name
		}
	}
	o := &Object{
		name:        config.Name,
		description: config.Description,
		fields:      config.Fields,
		interfaces:  config.Interfaces,
		isTypeOf:    config.IsTypeOf,
	}
	for _, iface := range config.Interfaces {
		iface.addImplementation(o)
	}
	return o
}

func (o *Object) Name() string        { return o.name }
func (o *Object) Description() string { return o.description }
func (o *Object) String() string      { return o.name }
func (o *Object) Fields() Fields      { return o.fields }
func (o *Object) Interfaces() []*Interface { return o.interfaces }

// Field looks up a field by schema name.
func (o *Object) Field(name string) (*FieldDefinition, bool) {
	f, ok := o.fields[name]
	return f, ok
}

// IsTypeOf reports whether value is an instance of this Object, per the IsTypeOfFunc given at
// construction. Objects without one are assumed to match (Interface.ResolveType and
// Union.ResolveType fall back to this when they were given no ResolveType function).
func (o *Object) IsTypeOf(value interface{}) bool {
	if o.isTypeOf == nil {
		return true
	}
	return o.isTypeOf(value)
}

// Interface is an abstract type: a named set of fields that Object types may implement.
type Interface struct {
	name           string
	description    string
	fields         Fields
	resolveType    func(value interface{}) (*Object, error)
	implementedBy  []*Object
}

var (
	_ NamedType     = (*Interface)(nil)
	_ AbstractType  = (*Interface)(nil)
	_ CompositeType = (*Interface)(nil)
)

// InterfaceConfig configures NewInterface.
type InterfaceConfig struct {
	Name        string
	Description string
	Fields      Fields
	ResolveType func(value interface{}) (*Object, error)
}

// NewInterface defines an Interface type.
func NewInterface(config InterfaceConfig) *Interface {
	if config.Name == "" {
		panic("graphql: Interface must have a Name")
	}
	for name, f := range config.Fields {
		if f.Name == "" {
			f.Name = name
		}
	}
	return &Interface{
		name:        config.Name,
		description: config.Description,
		fields:      config.Fields,
		resolveType: config.ResolveType,
	}
}

func (i *Interface) Name() string        { return i.name }
func (i *Interface) Description() string { return i.description }
func (i *Interface) String() string      { return i.name }
func (i *Interface) Fields() Fields      { return i.fields }

func (i *Interface) Field(name string) (*FieldDefinition, bool) {
	f, ok := i.fields[name]
	return f, ok
}

func (i *Interface) addImplementation(o *Object) {
	i.implementedBy = append(i.implementedBy, o)
}

// PossibleTypes implements AbstractType.
func (i *Interface) PossibleTypes() []*Object {
	return i.implementedBy
}

// ResolveType implements AbstractType. When the Interface was not given an explicit ResolveType
// function, it falls back to probing each implementing Object's IsTypeOf.
func (i *Interface) ResolveType(value interface{}) (*Object, error) {
	if i.resolveType != nil {
		return i.resolveType(value)
	}
	for _, o := range i.implementedBy {
		if o.IsTypeOf(value) {
			return o, nil
		}
	}
	return nil, newTypeError("unable to resolve concrete type for interface %s", i.name)
}

// Union is an abstract type that enumerates a fixed set of possible Object types, with no fields
// of its own beyond the meta-field __typename.
type Union struct {
	name          string
	description   string
	possibleTypes []*Object
	resolveType   func(value interface{}) (*Object, error)
}

var (
	_ NamedType    = (*Union)(nil)
	_ AbstractType = (*Union)(nil)
)

// UnionConfig configures NewUnion.
type UnionConfig struct {
	Name          string
	Description   string
	Types         []*Object
	ResolveType   func(value interface{}) (*Object, error)
}

// NewUnion defines a Union type.
func NewUnion(config UnionConfig) *Union {
	if config.Name == "" {
		panic("graphql: Union must have a Name")
	}
	if len(config.Types) == 0 {
		panic("graphql: Union " + config.Name + " must list at least one possible type")
	}
	return &Union{
		name:          config.Name,
		description:   config.Description,
		possibleTypes: config.Types,
		resolveType:   config.ResolveType,
	}
}

func (u *Union) Name() string        { return u.name }
func (u *Union) Description() string { return u.description }
func (u *Union) String() string      { return u.name }

// PossibleTypes implements AbstractType.
func (u *Union) PossibleTypes() []*Object {
	return u.possibleTypes
}

// ResolveType implements AbstractType, falling back to probing IsTypeOf on each possible type.
func (u *Union) ResolveType(value interface{}) (*Object, error) {
	if u.resolveType != nil {
		return u.resolveType(value)
	}
	for _, o := range u.possibleTypes {
		if o.IsTypeOf(value) {
			return o, nil
		}
	}
	return nil, newTypeError("unable to resolve concrete type for union %s", u.name)
}
