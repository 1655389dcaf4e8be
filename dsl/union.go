package dsl

import (
	"context"

	"github.com/reoring/skemalab"
	js "github.com/reoring/skemalab/jsonschema"
)

type unionSchema[T any] struct{ options []skemalab.Schema[T] }

// Union tries each option in order and returns the first success. When all
// options fail the result is a single invalid_union issue whose params hold
// the per-option issues under "unionErrors".
func Union[T any](options ...skemalab.Schema[T]) skemalab.Schema[T] {
	return unionSchema[T]{options: options}
}

func (u unionSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	var zero T
	var causes []skemalab.Issues
	for _, o := range u.options {
		out, err := o.Parse(ctx, v)
		if err == nil {
			return out, nil
		}
		causes = append(causes, skemalab.IssuesFromErr("/", err))
	}
	it := newIssue(skemalab.CodeInvalidUnion, nil)
	it.Params = map[string]any{"unionErrors": causes}
	return zero, skemalab.Issues{it}
}

func (u unionSchema[T]) ParseWithMeta(ctx context.Context, v any) (skemalab.Decoded[T], error) {
	var zero T
	var causes []skemalab.Issues
	for _, o := range u.options {
		d, err := o.ParseWithMeta(ctx, v)
		if err == nil {
			return d, nil
		}
		causes = append(causes, skemalab.IssuesFromErr("/", err))
	}
	it := newIssue(skemalab.CodeInvalidUnion, nil)
	it.Params = map[string]any{"unionErrors": causes}
	return skemalab.Decoded[T]{Value: zero, Presence: skemalab.RootSeen()}, skemalab.Issues{it}
}

func (u unionSchema[T]) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{AnyOf: make([]*js.Schema, 0, len(u.options))}
	for _, o := range u.options {
		s, err := o.JSONSchema()
		if err != nil {
			return nil, err
		}
		out.AnyOf = append(out.AnyOf, s)
	}
	return out, nil
}

// UnionVariant defines a named variant schema for discriminated unions.
type UnionVariant struct {
	name   string
	schema skemalab.Schema[map[string]any]
}

// Variant constructs a UnionVariant.
func Variant(name string, s skemalab.Schema[map[string]any]) UnionVariant {
	return UnionVariant{name: name, schema: s}
}

// discriminatedUnion selects an object variant by the string value at key.
type discriminatedUnion struct {
	discriminator string
	names         []string
	mapping       map[string]skemalab.Schema[map[string]any]
}

// DiscriminatedUnion builds a union over object variants keyed by the string
// field key, like z.discriminatedUnion.
func DiscriminatedUnion(key string, vars ...UnionVariant) skemalab.Schema[map[string]any] {
	u := &discriminatedUnion{discriminator: key, mapping: make(map[string]skemalab.Schema[map[string]any], len(vars))}
	for _, v := range vars {
		if v.name == "" || v.schema == nil {
			continue
		}
		if _, dup := u.mapping[v.name]; !dup {
			u.names = append(u.names, v.name)
		}
		u.mapping[v.name] = v.schema
	}
	return u
}

func (u *discriminatedUnion) pick(v any) (skemalab.Schema[map[string]any], skemalab.Issues) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, invalidType("object", v)
	}
	path := fieldPath(u.discriminator)
	params := map[string]any{"options": quoteOptions(u.names)}
	tag, _ := m[u.discriminator].(string)
	if tag == "" {
		it := newIssue(skemalab.CodeDiscriminatorMissing, params)
		it.Path = path
		return nil, skemalab.Issues{it}
	}
	s, ok := u.mapping[tag]
	if !ok {
		it := newIssue(skemalab.CodeDiscriminatorUnknown, params)
		it.Path = path
		it.Hint = "unknown variant: '" + tag + "'"
		return nil, skemalab.Issues{it}
	}
	return s, nil
}

func (u *discriminatedUnion) Parse(ctx context.Context, v any) (map[string]any, error) {
	s, iss := u.pick(v)
	if iss != nil {
		return nil, iss
	}
	return s.Parse(ctx, v)
}

func (u *discriminatedUnion) ParseWithMeta(ctx context.Context, v any) (skemalab.Decoded[map[string]any], error) {
	s, iss := u.pick(v)
	if iss != nil {
		return skemalab.Decoded[map[string]any]{Presence: skemalab.RootSeen()}, iss
	}
	return s.ParseWithMeta(ctx, v)
}

func (u *discriminatedUnion) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{OneOf: make([]*js.Schema, 0, len(u.names))}
	for _, n := range u.names {
		vs, err := u.mapping[n].JSONSchema()
		if err != nil {
			return nil, err
		}
		out.OneOf = append(out.OneOf, vs)
	}
	return out, nil
}
