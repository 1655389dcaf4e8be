package dsl_test

import (
	"context"
	"testing"

	"github.com/reoring/skemalab"
	g "github.com/reoring/skemalab/dsl"
)

type address struct {
	City string `json:"city"`
}

type account struct {
	ID       string   `skemalab:"name=id" json:"identifier"`
	Nick     *string  `json:"nick"`
	Tags     []string `json:"tags"`
	Home     address  `json:"home"`
	Work     *address `json:"work"`
	Internal string   `json:"-"`
}

func accountSchema() skemalab.Schema[account] {
	addr := g.MustBind[address](g.Object().Field("city", g.StringOf[string]()))
	return g.MustBind[account](g.Object().
		Field("id", g.StringOf[string]()).
		Field("nick", g.StringOf[string]()).Optional().
		Field("tags", g.ArrayOf[string](g.String())).Default([]string{}).
		Field("home", g.SchemaOf[address](addr)).
		Field("work", g.SchemaOf[address](addr)).Optional())
}

func TestBind_ProjectsOntoStruct(t *testing.T) {
	ctx := context.Background()
	s := accountSchema()

	a, err := s.Parse(ctx, map[string]any{
		"id":   "u1",
		"nick": "reo",
		"home": map[string]any{"city": "Tokyo"},
		"work": map[string]any{"city": "Osaka"},
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if a.ID != "u1" || a.Nick == nil || *a.Nick != "reo" || a.Home.City != "Tokyo" {
		t.Fatalf("unexpected: %+v", a)
	}
	if a.Work == nil || a.Work.City != "Osaka" {
		t.Fatalf("pointer to nested struct not set: %+v", a.Work)
	}
	if a.Tags == nil || len(a.Tags) != 0 {
		t.Fatalf("default tags should be empty non-nil, got %#v", a.Tags)
	}
}

func TestBind_OptionalPointerStaysNil(t *testing.T) {
	ctx := context.Background()
	a, err := accountSchema().Parse(ctx, map[string]any{"id": "u1", "home": map[string]any{"city": "x"}})
	if err != nil {
		t.Fatal(err)
	}
	if a.Nick != nil || a.Work != nil {
		t.Fatalf("absent optional fields must stay nil: %+v", a)
	}
}

func TestBind_NestedIssuePath(t *testing.T) {
	ctx := context.Background()
	_, err := accountSchema().Parse(ctx, map[string]any{"id": "u1", "home": map[string]any{}})
	if err == nil || err.Error() != "/home/city: Required" {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestBind_PointerTarget(t *testing.T) {
	ctx := context.Background()
	s := g.MustBind[*address](g.Object().Field("city", g.StringOf[string]()))
	a, err := s.Parse(ctx, map[string]any{"city": "Kyoto"})
	if err != nil || a == nil || a.City != "Kyoto" {
		t.Fatalf("unexpected: %+v err=%v", a, err)
	}
}

func TestBind_RejectsNonStruct(t *testing.T) {
	if _, err := g.Bind[int](g.Object()); err == nil {
		t.Fatalf("Bind[int] must fail")
	}
}

func TestBind_ParseWithMeta(t *testing.T) {
	ctx := context.Background()
	dm, err := accountSchema().ParseWithMeta(ctx, map[string]any{"id": "u1", "home": map[string]any{"city": "x"}})
	if err != nil {
		t.Fatal(err)
	}
	if dm.Value.ID != "u1" {
		t.Fatalf("value: %+v", dm.Value)
	}
	if !dm.Presence.Has("/home/city", skemalab.PresenceSeen) || !dm.Presence.Has("/tags", skemalab.PresenceDefaultApplied) {
		t.Fatalf("presence: %v", dm.Presence)
	}
}

func TestBind_RejectsKeyWithoutField(t *testing.T) {
	type partial struct {
		Name string `json:"name"`
	}
	_, err := g.Bind[partial](g.Object().
		Field("name", g.StringOf[string]()).
		Field("age", g.NumberOf[int]()))
	iss, ok := skemalab.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("unexpected: %v", err)
	}
	if iss[0].Path != "/age" || iss[0].Message != "Bind[T]: no struct field for key 'age'" {
		t.Fatalf("unexpected issue: %+v", iss[0])
	}

	_, err = g.Bind[address](g.Object().
		Field("city", g.StringOf[string]()).
		UnknownPassthrough("extra"))
	if err == nil {
		t.Fatalf("passthrough target without a field must fail")
	}
}
