package dsl

import (
	"context"

	"github.com/reoring/skemalab"
	js "github.com/reoring/skemalab/jsonschema"
)

// AnyAdapter adapts Schema[T] to an any-typed DSL wrapper so heterogeneous
// schemas can live side by side in an object builder. It keeps the original
// schema to support default application and JSON Schema export.
type AnyAdapter struct {
	parse        func(context.Context, any) (any, error)
	parseMeta    func(context.Context, any) (any, skemalab.PresenceMap, error)
	applyDefault func(context.Context) (any, error)
	jsonSchema   func() (*js.Schema, error)
	orig         any
}

// anyAdapterFromSchema wraps a strongly typed Schema[T] as AnyAdapter for Field builders.
func anyAdapterFromSchema[T any](s skemalab.Schema[T]) AnyAdapter {
	return AnyAdapter{
		parse: func(ctx context.Context, v any) (any, error) { return s.Parse(ctx, v) },
		parseMeta: func(ctx context.Context, v any) (any, skemalab.PresenceMap, error) {
			d, err := s.ParseWithMeta(ctx, v)
			return d.Value, d.Presence, err
		},
		jsonSchema: s.JSONSchema,
		orig:       s,
	}
}

// Orig returns the original underlying Schema[T] used to create this adapter.
func (ad AnyAdapter) Orig() any { return ad.orig }

// Parse runs the wrapped schema and returns its value as any.
func (ad AnyAdapter) Parse(ctx context.Context, v any) (any, error) {
	if ad.parse == nil {
		return v, nil
	}
	return ad.parse(ctx, v)
}

// JSONSchema exports the wrapped schema.
func (ad AnyAdapter) JSONSchema() (*js.Schema, error) {
	if ad.jsonSchema == nil {
		return &js.Schema{}, nil
	}
	return ad.jsonSchema()
}

// Nullable wraps an AnyAdapter to accept JSON null. A null input parses to nil.
func Nullable(ad AnyAdapter) AnyAdapter {
	prevParse := ad.parse
	prevMeta := ad.parseMeta
	prevJSON := ad.jsonSchema
	out := ad
	out.parse = func(ctx context.Context, v any) (any, error) {
		if v == nil || prevParse == nil {
			return v, nil
		}
		return prevParse(ctx, v)
	}
	out.parseMeta = func(ctx context.Context, v any) (any, skemalab.PresenceMap, error) {
		if v == nil {
			return nil, skemalab.PresenceMap{"/": skemalab.PresenceSeen | skemalab.PresenceWasNull}, nil
		}
		if prevMeta == nil {
			return v, skemalab.RootSeen(), nil
		}
		return prevMeta(ctx, v)
	}
	out.jsonSchema = func() (*js.Schema, error) {
		if prevJSON == nil {
			return js.Nullable(&js.Schema{}), nil
		}
		s, err := prevJSON()
		if err != nil {
			return nil, err
		}
		return js.Nullable(s), nil
	}
	return out
}

// Nullable enables fluent chaining: StringOf[T]().Nullable()
func (ad AnyAdapter) Nullable() AnyAdapter { return Nullable(ad) }

// withDefault returns a copy of ad whose missing value is filled by parsing v.
func (ad AnyAdapter) withDefault(v any) AnyAdapter {
	parse := ad.parse
	ad.applyDefault = func(ctx context.Context) (any, error) {
		if parse == nil {
			return v, nil
		}
		return parse(ctx, v)
	}
	prev := ad.jsonSchema
	ad.jsonSchema = func() (*js.Schema, error) {
		if prev == nil {
			return &js.Schema{Default: v}, nil
		}
		s, err := prev()
		if err != nil {
			return nil, err
		}
		if s == nil {
			s = &js.Schema{}
		}
		cp := *s
		cp.Default = v
		return &cp, nil
	}
	return ad
}

// parseWithMeta falls back to a root-only presence map when the wrapped
// schema does not report one.
func (ad AnyAdapter) parseWithMeta(ctx context.Context, v any) (any, skemalab.PresenceMap, error) {
	if ad.parseMeta != nil {
		return ad.parseMeta(ctx, v)
	}
	out, err := ad.Parse(ctx, v)
	return out, skemalab.RootSeen(), err
}
