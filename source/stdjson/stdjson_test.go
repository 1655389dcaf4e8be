package stdjson_test

import (
	"encoding/json"
	"strings"
	"testing"

	eng "github.com/reoring/skemalab/internal/engine"
	"github.com/reoring/skemalab/source/stdjson"
)

func TestNewBytes_Kinds(t *testing.T) {
	src := stdjson.NewBytes([]byte(`{"a":[1,"x"],"b":{"c":null},"d":false}`))
	want := []eng.Kind{
		eng.KindBeginObject,
		eng.KindKey, eng.KindBeginArray, eng.KindNumber, eng.KindString, eng.KindEndArray,
		eng.KindKey, eng.KindBeginObject, eng.KindKey, eng.KindNull, eng.KindEndObject,
		eng.KindKey, eng.KindBool,
		eng.KindEndObject,
	}
	var got []eng.Kind
	for {
		tok, err := src.NextToken()
		if err != nil {
			break
		}
		got = append(got, tok.Kind)
	}
	if len(got) != len(want) {
		t.Fatalf("token count: want %d, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: want %v, got %v", i, want[i], got[i])
		}
	}
}

func TestLocation_StartsUnknown(t *testing.T) {
	src := stdjson.NewReader(strings.NewReader(`{"k":1}`))
	if got := src.Location(); got != -1 {
		t.Fatalf("want -1 before first token, got %d", got)
	}
	if _, err := src.NextToken(); err != nil {
		t.Fatal(err)
	}
	if got := src.Location(); got != 1 {
		t.Fatalf("want offset 1 after '{', got %d", got)
	}
}

func TestDecodeThroughEngine(t *testing.T) {
	v, err := eng.DecodeAnyFromSource(stdjson.NewBytes([]byte(`{"height":"172","mass":77.50}`)))
	if err != nil {
		t.Fatal(err)
	}
	m := v.(map[string]any)
	if m["height"] != "172" {
		t.Fatalf("height: %v", m["height"])
	}
	if n, ok := m["mass"].(json.Number); !ok || n.String() != "77.50" {
		t.Fatalf("mass: %#v", m["mass"])
	}
}

func TestTruncatedInput(t *testing.T) {
	_, err := eng.DecodeAnyFromSource(stdjson.NewBytes([]byte(`{"a":`)))
	if err == nil {
		t.Fatal("want error for truncated input")
	}
}
