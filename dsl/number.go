package dsl

import (
	"context"
	"encoding/json"
	"math"
	"strconv"

	"github.com/reoring/skemalab"
	js "github.com/reoring/skemalab/jsonschema"
)

type numberCheck func(float64) *skemalab.Issue

// NumberSchema validates numbers into float64. It accepts json.Number, Go
// floats and Go integers; strings are rejected, never coerced.
type NumberSchema struct {
	checks []numberCheck
	isInt  bool

	minimum, maximum           *float64
	exclusiveMin, exclusiveMax *float64
}

var _ skemalab.Schema[float64] = (*NumberSchema)(nil)

// Number returns a number schema with no constraints.
func Number() *NumberSchema { return &NumberSchema{} }

func (n *NumberSchema) with(c numberCheck) *NumberSchema {
	cp := *n
	cp.checks = append(append([]numberCheck(nil), n.checks...), c)
	return &cp
}

// Min requires v >= min.
func (n *NumberSchema) Min(min float64) *NumberSchema {
	out := n.with(func(v float64) *skemalab.Issue {
		if v >= min {
			return nil
		}
		it := newIssue(skemalab.CodeTooSmall, map[string]any{"type": "number", "minimum": min, "inclusive": true})
		return &it
	})
	out.minimum = &min
	return out
}

// Max requires v <= max.
func (n *NumberSchema) Max(max float64) *NumberSchema {
	out := n.with(func(v float64) *skemalab.Issue {
		if v <= max {
			return nil
		}
		it := newIssue(skemalab.CodeTooBig, map[string]any{"type": "number", "maximum": max, "inclusive": true})
		return &it
	})
	out.maximum = &max
	return out
}

// Positive requires v > 0.
func (n *NumberSchema) Positive() *NumberSchema {
	out := n.with(func(v float64) *skemalab.Issue {
		if v > 0 {
			return nil
		}
		it := newIssue(skemalab.CodeTooSmall, map[string]any{"type": "number", "minimum": 0, "inclusive": false})
		return &it
	})
	zero := 0.0
	out.exclusiveMin = &zero
	return out
}

// Int rejects values with a fractional part.
func (n *NumberSchema) Int() *NumberSchema {
	out := n.with(func(v float64) *skemalab.Issue {
		if v == math.Trunc(v) {
			return nil
		}
		it := newIssue(skemalab.CodeInvalidType, map[string]any{"expected": "integer", "received": "float"})
		return &it
	})
	out.isInt = true
	return out
}

// toFloat64 reports the numeric value of v and whether v is a number at all.
func toFloat64(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case json.Number:
		f, err := strconv.ParseFloat(string(t), 64)
		return f, err == nil
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	}
	return 0, false
}

func (n *NumberSchema) Parse(ctx context.Context, v any) (float64, error) {
	f, ok := toFloat64(v)
	if !ok {
		return 0, invalidType("number", v)
	}
	if math.IsNaN(f) {
		return 0, skemalab.Issues{newIssue(skemalab.CodeInvalidType, map[string]any{"expected": "number", "received": "nan"})}
	}
	var iss skemalab.Issues
	for _, c := range n.checks {
		if it := c(f); it != nil {
			iss = skemalab.AppendIssues(iss, *it)
			if skemalab.IsFailFast(ctx) {
				break
			}
		}
	}
	if len(iss) > 0 {
		return 0, iss
	}
	return f, nil
}

func (n *NumberSchema) ParseWithMeta(ctx context.Context, v any) (skemalab.Decoded[float64], error) {
	f, err := n.Parse(ctx, v)
	return skemalab.Decoded[float64]{Value: f, Presence: skemalab.RootSeen()}, err
}

func (n *NumberSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: "number", Minimum: n.minimum, Maximum: n.maximum, ExclusiveMinimum: n.exclusiveMin, ExclusiveMaximum: n.exclusiveMax}
	if n.isInt {
		out.Type = "integer"
	}
	return out, nil
}
