package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	t      *testing.T
	dir    string
	config string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("SKEMALAB_CONFIG", "")
	t.Setenv("SKEMALAB_LANG", "")
	t.Setenv("SKEMALAB_SWAPI_URL", "")
	env := &testEnv{t: t, dir: dir, config: filepath.Join(dir, "config.yaml")}
	env.writeConfig("language: en\n")
	return env
}

func (e *testEnv) writeConfig(body string) {
	e.t.Helper()
	require.NoError(e.t, os.WriteFile(e.config, []byte(body), 0o600))
}

func (e *testEnv) file(name, body string) string {
	e.t.Helper()
	p := filepath.Join(e.dir, name)
	require.NoError(e.t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// run executes the CLI with stdin and returns exit code, stdout and stderr.
func (e *testEnv) run(stdin string, args ...string) (int, string, string) {
	e.t.Helper()
	var out, errOut bytes.Buffer
	args = append([]string{"--config", e.config, "--no-color"}, args...)
	code := run(context.Background(), args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestList(t *testing.T) {
	env := newTestEnv(t)
	code, out, _ := env.run("", "list")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "01-number")
	assert.Contains(t, out, "user,post,comment")
	assert.NotContains(t, out, "04-")
	assert.Equal(t, 9, strings.Count(out, "\n"))
}

func TestCheck_StdinOK(t *testing.T) {
	env := newTestEnv(t)
	code, out, errOut := env.run(`{"name":"Matt","extra":true}`, "check", "optional")
	require.Equal(t, 0, code, errOut)
	assert.JSONEq(t, `{"name":"Matt"}`, out)
	assert.Contains(t, errOut, "05-optional/form")
}

func TestCheck_Issues(t *testing.T) {
	env := newTestEnv(t)
	code, out, _ := env.run(`{"name":"Matt","email":"matt","phoneNumber":"1"}`, "check", "08")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "2 issue(s)")
	assert.Contains(t, out, "/phoneNumber: String must contain at least 5 character(s) [too_small]")
	assert.Contains(t, out, "/email: Invalid email [invalid_format]")

	code, out, _ = env.run(`{"name":"Matt","email":"matt","phoneNumber":"1"}`, "check", "08", "--fail-fast")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "1 issue(s)")
}

func TestCheck_Language(t *testing.T) {
	env := newTestEnv(t)
	code, out, _ := env.run(`{"name":"Matt","email":"matt"}`, "--lang", "zh", "check", "validations")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "无效的电子邮件地址")

	env.writeConfig("language: ja\n")
	_, out, _ = env.run(`{}`, "check", "optional")
	assert.Contains(t, out, "/name: 必須です")
}

func TestCheck_YAMLFileAndTarget(t *testing.T) {
	env := newTestEnv(t)
	p := env.file("post.yaml", "id: 7f1d3e56-2a7b-4c5d-9e8f-0123456789ab\ntitle: Hello\nbody: World\n")
	code, out, errOut := env.run("", "check", "composing", p, "--target", "post")
	require.Equal(t, 0, code, errOut)
	assert.JSONEq(t, `{"id":"7f1d3e56-2a7b-4c5d-9e8f-0123456789ab","title":"Hello","body":"World"}`, out)

	code, out, _ = env.run("", "check", "composing", p)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "/name: Required")
}

func TestCheck_NumberLesson(t *testing.T) {
	env := newTestEnv(t)
	code, out, _ := env.run(`42`, "check", "1")
	require.Equal(t, 0, code)
	assert.Equal(t, "\"42\"\n", out)

	code, out, _ = env.run(`"123"`, "check", "1")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "/: Expected number, received string")
}

func TestCheck_DuplicateKeys(t *testing.T) {
	env := newTestEnv(t)
	code, out, _ := env.run(`{"name":"a","name":"b"}`, "check", "optional")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "[duplicate_key]")

	code, _, _ = env.run(`{"name":"a","name":"b"}`, "check", "optional", "--duplicate-keys", "ignore")
	assert.Equal(t, 0, code)
}

func TestCheck_Errors(t *testing.T) {
	env := newTestEnv(t)
	code, _, errOut := env.run("", "check", "04")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown lesson")

	code, _, errOut = env.run("", "check", "optional", filepath.Join(env.dir, "missing.json"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "read input")

	env.writeConfig("colour: red\n")
	code, _, errOut = env.run("", "list")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Unrecognized key(s) in object: 'colour'")
}

func TestSchema(t *testing.T) {
	env := newTestEnv(t)
	code, out, _ := env.run("", "schema", "09", "--target", "comment")
	require.Equal(t, 0, code)
	assert.Contains(t, out, `"$schema"`)
	assert.Contains(t, out, `"title": "09-composing/comment"`)
	assert.Contains(t, out, `"format": "uuid"`)
}

func TestExplain(t *testing.T) {
	env := newTestEnv(t)
	code, out, _ := env.run("", "explain", "union")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "# 07 · union"))

	code, out, _ = env.run("", "explain", "union", "--width", "60")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "invalid_union")
	assert.False(t, strings.HasPrefix(out, "# 07"))
}

func fakeSWAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /people/1/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Luke Skywalker"}`))
	})
	mux.HandleFunc("GET /people/{$}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[{"name":"Luke Skywalker"},{"name":"C-3PO"}]}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSWAPI(t *testing.T) {
	env := newTestEnv(t)
	srv := fakeSWAPI(t)
	env.writeConfig("swapi:\n  base_url: " + srv.URL + "\n")

	code, out, _ := env.run("", "swapi", "person", "1")
	require.Equal(t, 0, code)
	assert.Equal(t, "Luke Skywalker\n", out)

	code, out, _ = env.run("", "swapi", "people")
	require.Equal(t, 0, code)
	assert.JSONEq(t, `[{"name":"Luke Skywalker"},{"name":"C-3PO"}]`, out)

	code, out, errOut := env.run("", "--debug", "swapi", "people", "--transform")
	require.Equal(t, 0, code)
	assert.Contains(t, out, `"nameAsArray"`)
	assert.Contains(t, errOut, "swapi.response")

	code, _, errOut = env.run("", "swapi", "person", "2")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "404")
}

func TestSWAPI_EnvOverride(t *testing.T) {
	env := newTestEnv(t)
	srv := fakeSWAPI(t)
	t.Setenv("SKEMALAB_SWAPI_URL", srv.URL)

	code, out, _ := env.run("", "swapi", "person", "1")
	require.Equal(t, 0, code)
	assert.Equal(t, "Luke Skywalker\n", out)
}

func TestConfig(t *testing.T) {
	env := newTestEnv(t)
	env.writeConfig("language: zh\nlog:\n  format: json\n")
	code, out, _ := env.run("", "config")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "# "+env.config)
	assert.Contains(t, out, "language: zh")
	assert.Contains(t, out, "format: json")
}

func TestCheck_StdJSONDriver(t *testing.T) {
	env := newTestEnv(t)
	code, out, errOut := env.run(`{"name":"Matt"}`, "check", "optional", "--json-driver", "std")
	require.Equal(t, 0, code, errOut)
	assert.JSONEq(t, `{"name":"Matt"}`, out)

	code, _, errOut = env.run(`{"name":"Matt"}`, "check", "optional", "--json-driver", "simd")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, `invalid --json-driver "simd"`)
}

func TestCheck_DuplicateKeysWarn(t *testing.T) {
	env := newTestEnv(t)
	code, out, errOut := env.run(`{"name":"a","name":"b"}`, "check", "optional", "--duplicate-keys", "warn")
	require.Equal(t, 0, code, errOut)
	assert.JSONEq(t, `{"name":"b"}`, out)
	assert.Contains(t, errOut, "! /name: key 'name' duplicated [duplicate_key]")
}

func TestCheck_TrailingData(t *testing.T) {
	env := newTestEnv(t)
	code, out, _ := env.run(`{"name":"Matt"} {"name":1} garbage`, "check", "optional")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "unexpected data after top-level value")
	assert.Contains(t, out, "[parse_error]")
}

func TestCheck_MaxBytesIsIndependentOfSWAPI(t *testing.T) {
	env := newTestEnv(t)
	env.writeConfig("swapi:\n  max_bytes: 4\n")
	code, out, errOut := env.run(`{"name":"Matt"}`, "check", "optional")
	require.Equal(t, 0, code, errOut)
	assert.JSONEq(t, `{"name":"Matt"}`, out)

	code, out, _ = env.run(`{"name":"Matt"}`, "check", "optional", "--max-bytes", "4")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "[truncated]")
}
