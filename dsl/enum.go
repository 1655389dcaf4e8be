package dsl

import (
	"context"
	"slices"

	"github.com/reoring/skemalab"
	js "github.com/reoring/skemalab/jsonschema"
)

type enumSchema[T ~string] struct{ values []T }

// Enum accepts one of a fixed set of strings, like z.enum([...]).
func Enum[T ~string](values ...T) skemalab.Schema[T] {
	return enumSchema[T]{values: slices.Clone(values)}
}

func (e enumSchema[T]) Parse(_ context.Context, v any) (T, error) {
	s, ok := v.(string)
	if !ok {
		var zero T
		return zero, invalidType("string", v)
	}
	if slices.Contains(e.values, T(s)) {
		return T(s), nil
	}
	var zero T
	return zero, skemalab.Issues{newIssue(skemalab.CodeInvalidEnum, map[string]any{"options": quoteOptions(e.options()), "received": s})}
}

func (e enumSchema[T]) options() []string {
	out := make([]string, len(e.values))
	for i, v := range e.values {
		out[i] = string(v)
	}
	return out
}

func (e enumSchema[T]) ParseWithMeta(ctx context.Context, v any) (skemalab.Decoded[T], error) {
	out, err := e.Parse(ctx, v)
	return skemalab.Decoded[T]{Value: out, Presence: skemalab.RootSeen()}, err
}

func (e enumSchema[T]) JSONSchema() (*js.Schema, error) {
	vals := make([]any, len(e.values))
	for i, v := range e.values {
		vals[i] = string(v)
	}
	return &js.Schema{Type: "string", Enum: vals}, nil
}
