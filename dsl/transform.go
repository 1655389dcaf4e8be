package dsl

import (
	"context"

	"github.com/reoring/skemalab"
	js "github.com/reoring/skemalab/jsonschema"
)

// Transform parses with in, then maps the result with fn, like zod's
// .transform(). JSON Schema describes the input side.
func Transform[A, B any](in skemalab.Schema[A], fn func(A) B) skemalab.Schema[B] {
	return transformSchema[A, B]{in: in, fn: func(_ context.Context, a A) (B, error) { return fn(a), nil }}
}

// TransformErr is Transform with a fallible mapping. A plain error becomes a
// custom issue at the root; Issues pass through unchanged.
func TransformErr[A, B any](in skemalab.Schema[A], fn func(context.Context, A) (B, error)) skemalab.Schema[B] {
	return transformSchema[A, B]{in: in, fn: fn}
}

type transformSchema[A, B any] struct {
	in skemalab.Schema[A]
	fn func(context.Context, A) (B, error)
}

func (s transformSchema[A, B]) Parse(ctx context.Context, v any) (B, error) {
	var zero B
	a, err := s.in.Parse(ctx, v)
	if err != nil {
		return zero, err
	}
	b, err := s.fn(ctx, a)
	if err != nil {
		return zero, skemalab.IssuesFromErr("/", err)
	}
	return b, nil
}

func (s transformSchema[A, B]) ParseWithMeta(ctx context.Context, v any) (skemalab.Decoded[B], error) {
	da, err := s.in.ParseWithMeta(ctx, v)
	if err != nil {
		return skemalab.Decoded[B]{Presence: da.Presence}, err
	}
	b, err := s.fn(ctx, da.Value)
	if err != nil {
		return skemalab.Decoded[B]{Presence: da.Presence}, skemalab.IssuesFromErr("/", err)
	}
	return skemalab.Decoded[B]{Value: b, Presence: da.Presence}, nil
}

func (s transformSchema[A, B]) JSONSchema() (*js.Schema, error) { return s.in.JSONSchema() }
