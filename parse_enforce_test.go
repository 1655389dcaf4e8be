package skemalab_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/reoring/skemalab"
	js "github.com/reoring/skemalab/jsonschema"
)

// noop schema for tests
type noopSchema struct{}

func (noopSchema) Parse(ctx context.Context, v any) (struct{}, error) { return struct{}{}, nil }
func (noopSchema) ParseWithMeta(ctx context.Context, v any) (skemalab.Decoded[struct{}], error) {
	return skemalab.Decoded[struct{}]{Value: struct{}{}, Presence: skemalab.RootSeen()}, nil
}
func (noopSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{}, nil }

func firstIssue(t *testing.T, err error) skemalab.Issue {
	t.Helper()
	iss, ok := skemalab.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues error, got: %v", err)
	}
	return iss[0]
}

func TestStreamParse_DuplicateKey_Error(t *testing.T) {
	jsb := []byte(`{"a":1,"a":2}`)
	opt := skemalab.ParseOpt{Strictness: skemalab.Strictness{OnDuplicateKey: skemalab.Error}}
	_, err := skemalab.StreamParse[struct{}](context.Background(), noopSchema{}, bytes.NewReader(jsb), opt)
	it := firstIssue(t, err)
	if it.Code != skemalab.CodeDuplicateKey || it.Path != "/a" {
		t.Fatalf("expected duplicate_key at /a, got: %+v", it)
	}
}

func TestStreamParse_DuplicateKey_Nested(t *testing.T) {
	jsb := []byte(`{"results":[{"name":"a"},{"name":"b","name":"c"}]}`)
	opt := skemalab.ParseOpt{Strictness: skemalab.Strictness{OnDuplicateKey: skemalab.Error}}
	_, err := skemalab.StreamParse[struct{}](context.Background(), noopSchema{}, bytes.NewReader(jsb), opt)
	if it := firstIssue(t, err); it.Path != "/results/1/name" {
		t.Fatalf("path: %s", it.Path)
	}
}

func TestStreamParse_DuplicateKey_WarnAndIgnore(t *testing.T) {
	jsb := []byte(`{"a":1,"a":2}`)
	for _, sev := range []skemalab.Severity{skemalab.Warn, skemalab.Ignore} {
		opt := skemalab.ParseOpt{Strictness: skemalab.Strictness{OnDuplicateKey: sev}}
		if _, err := skemalab.StreamParse[struct{}](context.Background(), noopSchema{}, bytes.NewReader(jsb), opt); err != nil {
			t.Fatalf("severity %d should not fail: %v", sev, err)
		}
	}
}

func TestStreamParse_DuplicateKey_WarnFailFast(t *testing.T) {
	jsb := []byte(`{"a":1,"a":2}`)
	opt := skemalab.ParseOpt{Strictness: skemalab.Strictness{OnDuplicateKey: skemalab.Warn}, FailFast: true}
	_, err := skemalab.StreamParse[struct{}](context.Background(), noopSchema{}, bytes.NewReader(jsb), opt)
	if it := firstIssue(t, err); it.Code != skemalab.CodeDuplicateKey {
		t.Fatalf("fail-fast promotes warnings, got %+v", it)
	}
}

func TestStreamParse_MaxDepth(t *testing.T) {
	jsb := []byte(`{"a":[[1]]}`)
	opt := skemalab.ParseOpt{MaxDepth: 2}
	_, err := skemalab.StreamParse[struct{}](context.Background(), noopSchema{}, bytes.NewReader(jsb), opt)
	it := firstIssue(t, err)
	if it.Code != skemalab.CodeParseError || it.Path != "/a/0" {
		t.Fatalf("unexpected: %+v", it)
	}
	if _, err := skemalab.StreamParse[struct{}](context.Background(), noopSchema{}, bytes.NewReader(jsb), skemalab.ParseOpt{MaxDepth: 3}); err != nil {
		t.Fatalf("depth 3 fits: %v", err)
	}
}

func TestStreamParse_MaxBytes(t *testing.T) {
	jsb := []byte(`{"name":"Luke Skywalker"}`)
	_, err := skemalab.StreamParse[struct{}](context.Background(), noopSchema{}, bytes.NewReader(jsb), skemalab.ParseOpt{MaxBytes: 8})
	if it := firstIssue(t, err); it.Code != skemalab.CodeTruncated {
		t.Fatalf("unexpected: %+v", it)
	}
	opt := skemalab.ParseOpt{MaxBytes: int64(len(jsb))}
	if _, err := skemalab.StreamParse[struct{}](context.Background(), noopSchema{}, bytes.NewReader(jsb), opt); err != nil {
		t.Fatalf("exact size fits: %v", err)
	}
}

func TestStreamParse_TruncatedInput(t *testing.T) {
	_, err := skemalab.StreamParse[struct{}](context.Background(), noopSchema{}, bytes.NewReader([]byte(`{"a":`)))
	if it := firstIssue(t, err); it.Code != skemalab.CodeParseError {
		t.Fatalf("unexpected: %+v", it)
	}
}

func TestParseFrom_DuplicateKey_WarnReported(t *testing.T) {
	jsb := []byte(`{"n":1,"n":2,"m":{"k":1,"k":2}}`)
	var warned []skemalab.Issue
	opt := skemalab.ParseOpt{
		Strictness: skemalab.Strictness{OnDuplicateKey: skemalab.Warn},
		OnWarning:  func(it skemalab.Issue) { warned = append(warned, it) },
	}
	if _, err := skemalab.ParseFrom[struct{}](context.Background(), noopSchema{}, skemalab.JSONBytes(jsb), opt); err != nil {
		t.Fatalf("warn must not fail: %v", err)
	}
	if len(warned) != 2 || warned[0].Path != "/n" || warned[1].Path != "/m/k" || warned[0].Code != skemalab.CodeDuplicateKey {
		t.Fatalf("unexpected warnings: %+v", warned)
	}

	warned = nil
	opt.Strictness.OnDuplicateKey = skemalab.Ignore
	if _, err := skemalab.ParseFrom[struct{}](context.Background(), noopSchema{}, skemalab.JSONBytes(jsb), opt); err != nil {
		t.Fatal(err)
	}
	if len(warned) != 0 {
		t.Fatalf("ignore reports nothing, got %+v", warned)
	}
}

func TestParseFrom_DuplicateKey_ErrorNotWarned(t *testing.T) {
	var warned []skemalab.Issue
	opt := skemalab.ParseOpt{
		Strictness: skemalab.Strictness{OnDuplicateKey: skemalab.Error},
		OnWarning:  func(it skemalab.Issue) { warned = append(warned, it) },
	}
	_, err := skemalab.ParseFrom[struct{}](context.Background(), noopSchema{}, skemalab.JSONBytes([]byte(`{"n":1,"n":2}`)), opt)
	if it := firstIssue(t, err); it.Code != skemalab.CodeDuplicateKey {
		t.Fatalf("unexpected: %+v", it)
	}
	if len(warned) != 0 {
		t.Fatalf("errors are not warnings: %+v", warned)
	}
}

func TestParseFrom_RejectsTrailingData(t *testing.T) {
	cases := []struct {
		name string
		src  skemalab.Source
	}{
		{"go-json second value", skemalab.JSONBytes([]byte(`{"n":1} {"n":"oops"}`))},
		{"go-json garbage", skemalab.JSONBytes([]byte(`{"n":1} garbage`))},
		{"go-json extra brace", skemalab.JSONBytes([]byte(`{"n":1}}`))},
		{"encoding/json second value", skemalab.StdJSONDriver().NewBytes([]byte(`{"n":1} {"n":"oops"}`))},
		{"encoding/json garbage", skemalab.StdJSONDriver().NewBytes([]byte(`[1] garbage`))},
		{"yaml second document", skemalab.YAMLBytes([]byte("n: 1\n---\nn: oops\n"))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := skemalab.ParseFrom[struct{}](context.Background(), noopSchema{}, tc.src)
			it := firstIssue(t, err)
			if it.Code != skemalab.CodeParseError || it.Path != "/" || !strings.HasPrefix(it.Message, "unexpected data after top-level value") {
				t.Fatalf("unexpected: %+v", it)
			}
		})
	}
}

func TestParseFrom_TrailingWhitespaceIsFine(t *testing.T) {
	for _, src := range []skemalab.Source{
		skemalab.JSONBytes([]byte("{\"n\":1}\n\t ")),
		skemalab.StdJSONDriver().NewBytes([]byte("{\"n\":1}\n")),
		skemalab.YAMLBytes([]byte("n: 1\n# done\n")),
	} {
		if _, err := skemalab.ParseFrom[struct{}](context.Background(), noopSchema{}, src); err != nil {
			t.Fatalf("unexpected: %v", err)
		}
	}
}
