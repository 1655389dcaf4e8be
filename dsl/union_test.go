package dsl_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/reoring/skemalab"
	g "github.com/reoring/skemalab/dsl"
)

func TestLiteral(t *testing.T) {
	ctx := context.Background()
	if v, err := g.Literal("private").Parse(ctx, "private"); err != nil || v != "private" {
		t.Fatalf("unexpected: %v %v", v, err)
	}
	_, err := g.Literal("private").Parse(ctx, "public")
	if err == nil || err.Error() != `Invalid literal value, expected "private"` {
		t.Fatalf("unexpected: %v", err)
	}
	if _, err := g.Literal(1).Parse(ctx, json.Number("1")); err != nil {
		t.Fatalf("numeric literal should compare by value: %v", err)
	}
}

func TestUnion_FirstMatchWins(t *testing.T) {
	ctx := context.Background()
	level := g.Union(g.Literal("private"), g.Literal("public"))

	for _, in := range []string{"private", "public"} {
		if v, err := level.Parse(ctx, in); err != nil || v != in {
			t.Fatalf("%s: %v %v", in, v, err)
		}
	}
	_, err := level.Parse(ctx, "something-not-allowed")
	iss, ok := skemalab.AsIssues(err)
	if !ok || iss.First().Code != skemalab.CodeInvalidUnion || iss.First().Message != "Invalid input" {
		t.Fatalf("unexpected: %v", err)
	}
	causes, _ := iss.First().Params["unionErrors"].([]skemalab.Issues)
	if len(causes) != 2 {
		t.Fatalf("want one cause per option, got %v", causes)
	}
	sch, _ := level.JSONSchema()
	if len(sch.AnyOf) != 2 || sch.AnyOf[0].Const != "private" {
		t.Fatalf("schema: %+v", sch)
	}
}

type privacy string

func TestEnum(t *testing.T) {
	ctx := context.Background()
	e := g.Enum[privacy]("private", "public")
	if v, err := e.Parse(ctx, "public"); err != nil || v != privacy("public") {
		t.Fatalf("unexpected: %v %v", v, err)
	}
	_, err := e.Parse(ctx, "x")
	if err == nil || err.Error() != "Invalid enum value. Expected 'private' | 'public', received 'x'" {
		t.Fatalf("unexpected: %v", err)
	}
	sch, _ := e.JSONSchema()
	if len(sch.Enum) != 2 {
		t.Fatalf("schema: %+v", sch)
	}
}

func TestDiscriminatedUnion(t *testing.T) {
	ctx := context.Background()
	u := g.DiscriminatedUnion("type",
		g.Variant("a", g.Object().Field("type", g.StringOf[string]()).Field("x", g.StringOf[string]()).MustBuild()),
		g.Variant("b", g.Object().Field("type", g.StringOf[string]()).Field("y", g.NumberOf[float64]()).MustBuild()),
	)

	v, err := u.Parse(ctx, map[string]any{"type": "b", "y": 1})
	if err != nil || v["y"] != float64(1) {
		t.Fatalf("unexpected: %v %v", v, err)
	}

	_, err = u.Parse(ctx, map[string]any{"type": "c"})
	iss, _ := skemalab.AsIssues(err)
	if iss.First().Code != skemalab.CodeDiscriminatorUnknown || iss.First().Path != "/type" {
		t.Fatalf("unexpected: %v", err)
	}
	if iss.First().Message != "Invalid discriminator value. Expected 'a' | 'b'" {
		t.Fatalf("message: %q", iss.First().Message)
	}

	_, err = u.Parse(ctx, map[string]any{})
	iss, _ = skemalab.AsIssues(err)
	if iss.First().Code != skemalab.CodeDiscriminatorMissing {
		t.Fatalf("unexpected: %v", err)
	}

	sch, _ := u.JSONSchema()
	if len(sch.OneOf) != 2 {
		t.Fatalf("schema: %+v", sch)
	}
}
