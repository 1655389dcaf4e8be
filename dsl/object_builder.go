package dsl

import (
	"context"
	"slices"

	"github.com/reoring/skemalab"
)

// Builder is anything that builds an object schema: *ObjectBuilder or the
// step returned by Field.
type Builder interface {
	Build() (skemalab.Schema[map[string]any], error)
}

// Shape is an object declaration that can be extended or merged into
// another builder.
type Shape interface {
	Builder
	shape() *ObjectBuilder
}

// ObjectBuilder declares an object schema. Fields are required unless marked
// Optional or given a Default; unknown keys are stripped unless another policy
// is chosen.
type ObjectBuilder struct {
	order         []string
	fields        map[string]AnyAdapter
	optional      map[string]struct{}
	unknownPolicy skemalab.UnknownPolicy
	unknownTarget string
	refines       []objRefine
}

// fieldStep is returned by Field so the last field can be tuned. It embeds
// the builder, so declaration continues with any builder method.
type fieldStep struct {
	*ObjectBuilder
	name string
}

// Object creates a new object builder (UnknownStrip, fields required).
func Object() *ObjectBuilder {
	return &ObjectBuilder{
		fields:        map[string]AnyAdapter{},
		optional:      map[string]struct{}{},
		unknownPolicy: skemalab.UnknownStrip,
	}
}

// Field registers a required field with its adapter. Registering an existing
// name replaces the adapter and keeps the original position.
func (b *ObjectBuilder) Field(name string, ad AnyAdapter) *fieldStep {
	if _, ok := b.fields[name]; !ok {
		b.order = append(b.order, name)
	}
	b.fields[name] = ad
	delete(b.optional, name)
	return &fieldStep{ObjectBuilder: b, name: name}
}

// Required marks the field as required (the default) and returns the builder.
func (f *fieldStep) Required() *ObjectBuilder {
	delete(f.optional, f.name)
	return f.ObjectBuilder
}

// Optional lets the field be absent; Bind leaves the target at its zero value
// (nil for pointer fields).
func (f *fieldStep) Optional() *ObjectBuilder {
	f.optional[f.name] = struct{}{}
	return f.ObjectBuilder
}

// Default fills an absent field by parsing v through the field schema and
// exports v as the JSON Schema default.
func (f *fieldStep) Default(v any) *ObjectBuilder {
	f.fields[f.name] = f.fields[f.name].withDefault(v)
	return f.ObjectBuilder
}

func (b *ObjectBuilder) shape() *ObjectBuilder { return b }

// Clone returns an independent copy of the builder.
func (b *ObjectBuilder) Clone() *ObjectBuilder {
	out := &ObjectBuilder{
		order:         slices.Clone(b.order),
		fields:        make(map[string]AnyAdapter, len(b.fields)),
		optional:      make(map[string]struct{}, len(b.optional)),
		unknownPolicy: b.unknownPolicy,
		unknownTarget: b.unknownTarget,
		refines:       slices.Clone(b.refines),
	}
	for k, v := range b.fields {
		out.fields[k] = v
	}
	for k := range b.optional {
		out.optional[k] = struct{}{}
	}
	return out
}

// Extend copies the fields of other into b, like zod's base.extend(...).
// Fields already declared on b keep their position but take other's schema.
func (b *ObjectBuilder) Extend(s Shape) *ObjectBuilder {
	if s == nil {
		return b
	}
	other := s.shape()
	for _, k := range other.order {
		b.Field(k, other.fields[k])
		if _, opt := other.optional[k]; opt {
			b.optional[k] = struct{}{}
		}
	}
	return b
}

// Merge is Extend that also adopts other's unknown-key policy and refines.
func (b *ObjectBuilder) Merge(s Shape) *ObjectBuilder {
	if s == nil {
		return b
	}
	other := s.shape()
	b.Extend(other)
	b.unknownPolicy = other.unknownPolicy
	b.unknownTarget = other.unknownTarget
	b.refines = append(b.refines, other.refines...)
	return b
}

// Pick keeps only the named fields.
func (b *ObjectBuilder) Pick(names ...string) *ObjectBuilder {
	keep := make(map[string]struct{}, len(names))
	for _, n := range names {
		keep[n] = struct{}{}
	}
	return b.filter(func(k string) bool { _, ok := keep[k]; return ok })
}

// Omit drops the named fields.
func (b *ObjectBuilder) Omit(names ...string) *ObjectBuilder {
	return b.filter(func(k string) bool { return !slices.Contains(names, k) })
}

func (b *ObjectBuilder) filter(keep func(string) bool) *ObjectBuilder {
	order := b.order[:0:0]
	for _, k := range b.order {
		if keep(k) {
			order = append(order, k)
			continue
		}
		delete(b.fields, k)
		delete(b.optional, k)
	}
	b.order = order
	return b
}

// Partial makes every declared field optional.
func (b *ObjectBuilder) Partial() *ObjectBuilder {
	for _, k := range b.order {
		b.optional[k] = struct{}{}
	}
	return b
}

// UnknownStrict rejects unknown keys.
func (b *ObjectBuilder) UnknownStrict() *ObjectBuilder {
	b.unknownPolicy = skemalab.UnknownStrict
	b.unknownTarget = ""
	return b
}

// UnknownStrip drops unknown keys (default).
func (b *ObjectBuilder) UnknownStrip() *ObjectBuilder {
	b.unknownPolicy = skemalab.UnknownStrip
	b.unknownTarget = ""
	return b
}

// UnknownPassthrough keeps unknown keys. With a target they are collected
// into that map field; with "" they stay at the top level of the result.
func (b *ObjectBuilder) UnknownPassthrough(target string) *ObjectBuilder {
	b.unknownPolicy = skemalab.UnknownPassthrough
	b.unknownTarget = target
	return b
}

// Refine adds an object-level check. It runs after every field parsed cleanly.
func (b *ObjectBuilder) Refine(name string, fn func(context.Context, map[string]any) error) *ObjectBuilder {
	if fn == nil {
		return b
	}
	b.refines = append(b.refines, objRefine{name: name, fn: fn})
	return b
}

// Build validates the builder and returns a Schema.
func (b *ObjectBuilder) Build() (skemalab.Schema[map[string]any], error) {
	if b.unknownPolicy == skemalab.UnknownPassthrough && b.unknownTarget != "" {
		if _, ok := b.fields[b.unknownTarget]; ok {
			return nil, skemalab.Issues{{Path: fieldPath(b.unknownTarget), Code: skemalab.CodeParseError, Message: "passthrough target collides with a declared field"}}
		}
	}
	return b.build(), nil
}

func (b *ObjectBuilder) build() *objectSchema {
	c := b.Clone()
	return &objectSchema{
		order:         c.order,
		fields:        c.fields,
		optional:      c.optional,
		unknownPolicy: c.unknownPolicy,
		unknownTarget: c.unknownTarget,
		refines:       c.refines,
	}
}

// MustBuild is like Build but panics on error.
func (b *ObjectBuilder) MustBuild() skemalab.Schema[map[string]any] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
