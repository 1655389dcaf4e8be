package dsl

import (
	"context"

	"github.com/reoring/skemalab"
	js "github.com/reoring/skemalab/jsonschema"
)

// Default returns def when the input is nil (absent or JSON null) and
// otherwise defers to s. Inside an object prefer Field(...).Default(v).
func Default[T any](s skemalab.Schema[T], def T) skemalab.Schema[T] {
	return defaultSchema[T]{inner: s, def: def}
}

type defaultSchema[T any] struct {
	inner skemalab.Schema[T]
	def   T
}

func (d defaultSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	if v == nil {
		return d.def, nil
	}
	return d.inner.Parse(ctx, v)
}

func (d defaultSchema[T]) ParseWithMeta(ctx context.Context, v any) (skemalab.Decoded[T], error) {
	if v == nil {
		return skemalab.Decoded[T]{Value: d.def, Presence: skemalab.PresenceMap{"/": skemalab.PresenceDefaultApplied}}, nil
	}
	return d.inner.ParseWithMeta(ctx, v)
}

func (d defaultSchema[T]) JSONSchema() (*js.Schema, error) {
	s, err := d.inner.JSONSchema()
	if err != nil {
		return nil, err
	}
	cp := *s
	cp.Default = d.def
	return &cp, nil
}
