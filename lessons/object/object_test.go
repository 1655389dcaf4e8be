package object_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/skemalab"
	"github.com/reoring/skemalab/lessons/object"
	"github.com/reoring/skemalab/swapi"
)

func fakeSWAPI(t *testing.T) *swapi.Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/people/1/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Luke Skywalker","height":"172","films":["https://swapi.dev/api/films/1/"]}`))
	})
	mux.HandleFunc("GET /api/people/2/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"C-3PO","height":"167"}`))
	})
	mux.HandleFunc("GET /api/people/3/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"height":"96"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return swapi.New(swapi.Config{BaseURL: srv.URL + "/api"})
}

func TestFetchStarWarsPersonName(t *testing.T) {
	c := fakeSWAPI(t)
	ctx := context.Background()

	name, err := object.FetchStarWarsPersonName(ctx, c, "1")
	require.NoError(t, err)
	assert.Equal(t, "Luke Skywalker", name)

	name, err = object.FetchStarWarsPersonName(ctx, c, "2")
	require.NoError(t, err)
	assert.Equal(t, "C-3PO", name)
}

func TestFetchStarWarsPersonName_MissingName(t *testing.T) {
	_, err := object.FetchStarWarsPersonName(context.Background(), fakeSWAPI(t), "3")
	require.EqualError(t, err, "/name: Required")
}

func TestFetchStarWarsPersonName_NotFound(t *testing.T) {
	_, err := object.FetchStarWarsPersonName(context.Background(), fakeSWAPI(t), "999")
	require.Error(t, err)
	assert.True(t, swapi.IsNotFound(err))
}

func TestPersonResult_StripsUnknownKeys(t *testing.T) {
	p, err := object.PersonResult.Parse(context.Background(), map[string]any{"name": "Leia", "height": "150"})
	require.NoError(t, err)
	assert.Equal(t, object.Person{Name: "Leia"}, p)

	_, err = object.PersonResult.Parse(context.Background(), map[string]any{"name": 1})
	iss, ok := skemalab.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, "/name", iss.First().Path)
}
