package dsl

import (
	"context"
	"encoding/json"
	"math"
	"reflect"
	"strconv"

	"github.com/reoring/skemalab"
	js "github.com/reoring/skemalab/jsonschema"
)

type boolSchema struct{}

// Bool returns the boolean schema.
func Bool() skemalab.Schema[bool] { return boolSchema{} }

func (boolSchema) Parse(_ context.Context, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, invalidType("boolean", v)
	}
	return b, nil
}

func (s boolSchema) ParseWithMeta(ctx context.Context, v any) (skemalab.Decoded[bool], error) {
	b, err := s.Parse(ctx, v)
	return skemalab.Decoded[bool]{Value: b, Presence: skemalab.RootSeen()}, err
}

func (boolSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "boolean"}, nil }

type literalSchema[T comparable] struct{ want T }

// Literal accepts exactly one value. Inputs of the same kind are converted
// before comparing, so Literal(Level("a")) accepts "a". Numeric literals
// compare by value, so Literal(1) accepts json.Number("1").
func Literal[T comparable](v T) skemalab.Schema[T] { return literalSchema[T]{want: v} }

func (l literalSchema[T]) Parse(_ context.Context, v any) (T, error) {
	if rv := reflect.ValueOf(v); rv.IsValid() {
		wt := reflect.TypeOf(l.want)
		_, isNum := v.(json.Number)
		if wt != nil && (!isNum || rv.Type() == wt) && rv.Kind() == wt.Kind() && rv.Type().ConvertibleTo(wt) && rv.Convert(wt).Interface() == any(l.want) {
			return l.want, nil
		}
	}
	if wf, ok := toFloat64(any(l.want)); ok {
		if gf, ok := toFloat64(v); ok && gf == wf {
			return l.want, nil
		}
	}
	var zero T
	return zero, skemalab.Issues{newIssue(skemalab.CodeInvalidLiteral, map[string]any{"expected": literalText(l.want), "received": typeName(v)})}
}

func (l literalSchema[T]) ParseWithMeta(ctx context.Context, v any) (skemalab.Decoded[T], error) {
	out, err := l.Parse(ctx, v)
	return skemalab.Decoded[T]{Value: out, Presence: skemalab.RootSeen()}, err
}

func (l literalSchema[T]) JSONSchema() (*js.Schema, error) { return &js.Schema{Const: l.want}, nil }

func literalText(v any) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	return paramString(v)
}

// stringAsSchema projects a string schema onto a domain type T with underlying string.
type stringAsSchema[T ~string] struct{ inner *StringSchema }

func (s stringAsSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	str, err := s.inner.Parse(ctx, v)
	return T(str), err
}

func (s stringAsSchema[T]) ParseWithMeta(ctx context.Context, v any) (skemalab.Decoded[T], error) {
	out, err := s.Parse(ctx, v)
	return skemalab.Decoded[T]{Value: out, Presence: skemalab.RootSeen()}, err
}

func (s stringAsSchema[T]) JSONSchema() (*js.Schema, error) { return s.inner.JSONSchema() }

// StringOf returns an AnyAdapter for a string projected to domain type T.
// An optional constrained schema replaces the plain String().
func StringOf[T ~string](base ...*StringSchema) AnyAdapter {
	inner := String()
	if len(base) > 0 && base[0] != nil {
		inner = base[0]
	}
	ad := anyAdapterFromSchema[T](stringAsSchema[T]{inner: inner})
	ad.orig = inner
	return ad
}

type boolAsSchema[T ~bool] struct{}

func (boolAsSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	b, err := boolSchema{}.Parse(ctx, v)
	return T(b), err
}

func (s boolAsSchema[T]) ParseWithMeta(ctx context.Context, v any) (skemalab.Decoded[T], error) {
	out, err := s.Parse(ctx, v)
	return skemalab.Decoded[T]{Value: out, Presence: skemalab.RootSeen()}, err
}

func (boolAsSchema[T]) JSONSchema() (*js.Schema, error) { return boolSchema{}.JSONSchema() }

// BoolOf returns an AnyAdapter for a boolean projected to domain type T.
func BoolOf[T ~bool]() AnyAdapter {
	ad := anyAdapterFromSchema[T](boolAsSchema[T]{})
	ad.orig = boolSchema{}
	return ad
}

// Numeric lists the Go types NumberOf can project onto.
type Numeric interface {
	~float64 | ~float32 | ~int | ~int32 | ~int64
}

type numberAsSchema[T Numeric] struct{ inner *NumberSchema }

func (s numberAsSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	f, err := s.inner.Parse(ctx, v)
	if err != nil {
		return 0, err
	}
	if it := outOfRange[T](f); it != nil {
		return 0, skemalab.Issues{*it}
	}
	return T(f), nil
}

// outOfRange reports f when T cannot hold it. Integer bounds are rendered as
// exact integers.
func outOfRange[T Numeric](f float64) *skemalab.Issue {
	var (
		lo, hi      float64 // hi is exclusive
		least, most int64
	)
	switch k := reflect.TypeOf((*T)(nil)).Elem().Kind(); {
	case k == reflect.Int32, k == reflect.Int && strconv.IntSize == 32:
		lo, hi = math.MinInt32, math.MaxInt32+1
		least, most = math.MinInt32, math.MaxInt32
	case k == reflect.Int, k == reflect.Int64:
		lo, hi = math.MinInt64, 1<<63
		least, most = math.MinInt64, math.MaxInt64
	case k == reflect.Float32:
		if f > math.MaxFloat32 {
			it := newIssue(skemalab.CodeTooBig, map[string]any{"type": "number", "maximum": float64(math.MaxFloat32), "inclusive": true})
			return &it
		}
		if f < -math.MaxFloat32 {
			it := newIssue(skemalab.CodeTooSmall, map[string]any{"type": "number", "minimum": float64(-math.MaxFloat32), "inclusive": true})
			return &it
		}
		return nil
	default:
		return nil
	}
	switch {
	case f >= hi:
		it := newIssue(skemalab.CodeTooBig, map[string]any{"type": "number", "maximum": most, "inclusive": true})
		return &it
	case f < lo:
		it := newIssue(skemalab.CodeTooSmall, map[string]any{"type": "number", "minimum": least, "inclusive": true})
		return &it
	}
	return nil
}

func (s numberAsSchema[T]) ParseWithMeta(ctx context.Context, v any) (skemalab.Decoded[T], error) {
	out, err := s.Parse(ctx, v)
	return skemalab.Decoded[T]{Value: out, Presence: skemalab.RootSeen()}, err
}

func (s numberAsSchema[T]) JSONSchema() (*js.Schema, error) { return s.inner.JSONSchema() }

// NumberOf returns an AnyAdapter for a number projected to T. Integer targets
// get the Int() check so fractions are reported instead of truncated.
func NumberOf[T Numeric](base ...*NumberSchema) AnyAdapter {
	inner := Number()
	if len(base) > 0 && base[0] != nil {
		inner = base[0]
	}
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Float32, reflect.Float64:
	default:
		if !inner.isInt {
			inner = inner.Int()
		}
	}
	ad := anyAdapterFromSchema[T](numberAsSchema[T]{inner: inner})
	ad.orig = inner
	return ad
}
