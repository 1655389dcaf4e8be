package dsl_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/reoring/skemalab"
	g "github.com/reoring/skemalab/dsl"
)

func TestNumber_AcceptsNumbersOnly(t *testing.T) {
	ctx := context.Background()
	for _, in := range []any{1, int64(2), 1.5, float32(3), json.Number("4.25"), uint8(7)} {
		if _, err := g.Number().Parse(ctx, in); err != nil {
			t.Fatalf("%T should parse: %v", in, err)
		}
	}
	_, err := g.Number().Parse(ctx, "123")
	if err == nil || err.Error() != "Expected number, received string" {
		t.Fatalf("unexpected: %v", err)
	}
	if v, _ := g.Number().Parse(ctx, json.Number("4.25")); v != 4.25 {
		t.Fatalf("want 4.25, got %v", v)
	}
}

func TestNumber_Bounds(t *testing.T) {
	ctx := context.Background()
	s := g.Number().Min(1).Max(10)
	_, err := s.Parse(ctx, 0)
	if err == nil || err.Error() != "Number must be greater than or equal to 1" {
		t.Fatalf("min: %v", err)
	}
	_, err = s.Parse(ctx, 11)
	if err == nil || err.Error() != "Number must be less than or equal to 10" {
		t.Fatalf("max: %v", err)
	}
	_, err = g.Number().Positive().Parse(ctx, 0)
	if err == nil || err.Error() != "Number must be greater than 0" {
		t.Fatalf("positive: %v", err)
	}
}

func TestNumber_Int(t *testing.T) {
	ctx := context.Background()
	if _, err := g.Number().Int().Parse(ctx, json.Number("3")); err != nil {
		t.Fatalf("3 is an integer: %v", err)
	}
	_, err := g.Number().Int().Parse(ctx, 3.5)
	iss, ok := skemalab.AsIssues(err)
	if !ok || iss.First().Code != skemalab.CodeInvalidType || iss.First().Message != "Expected integer, received float" {
		t.Fatalf("unexpected: %v", err)
	}
	sch, _ := g.Number().Int().Min(0).JSONSchema()
	if sch.Type != "integer" || *sch.Minimum != 0 {
		t.Fatalf("unexpected schema: %+v", sch)
	}
}

type score float64

func TestNumberOf_Projection(t *testing.T) {
	ctx := context.Background()
	type row struct {
		Count int   `json:"count"`
		Score score `json:"score"`
	}
	s := g.MustBind[row](g.Object().
		Field("count", g.NumberOf[int]()).
		Field("score", g.NumberOf[score](g.Number().Min(0))))

	r, err := s.Parse(ctx, map[string]any{"count": json.Number("3"), "score": 0.5})
	if err != nil || r.Count != 3 || r.Score != 0.5 {
		t.Fatalf("unexpected: %+v err=%v", r, err)
	}
	_, err = s.Parse(ctx, map[string]any{"count": 1.5, "score": 1})
	if err == nil || err.Error() != "/count: Expected integer, received float" {
		t.Fatalf("int target must reject fractions: %v", err)
	}
}

func TestNumberOf_RejectsOutOfRange(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name string
		s    g.AnyAdapter
		in   any
		want string
	}{
		{"int64 overflow", g.NumberOf[int64](), 1e30, "Number must be less than or equal to 9223372036854775807"},
		{"int64 underflow", g.NumberOf[int64](), -1e30, "Number must be greater than or equal to -9223372036854775808"},
		{"int32 overflow", g.NumberOf[int32](), json.Number("3000000000"), "Number must be less than or equal to 2147483647"},
		{"int32 underflow", g.NumberOf[int32](), -3e9, "Number must be greater than or equal to -2147483648"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.s.Parse(ctx, tc.in)
			iss, ok := skemalab.AsIssues(err)
			if !ok || len(iss) != 1 || iss[0].Message != tc.want {
				t.Fatalf("unexpected: %v", err)
			}
		})
	}
	if v, err := g.NumberOf[int32]().Parse(ctx, json.Number("2147483647")); err != nil || v != int32(2147483647) {
		t.Fatalf("edge value must pass: %v %v", v, err)
	}
}
