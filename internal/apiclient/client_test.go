package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/categories/", r.URL.Path)
		_, _ = w.Write([]byte(`[{"slug":"computers"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/api/", srv.Client())

	var out []struct {
		Slug string `json:"slug"`
	}
	require.NoError(t, c.Get(context.Background(), "/categories/", &out))
	require.Len(t, out, 1)
	assert.Equal(t, "computers", out[0].Slug)
}

func TestClient_PostSendsJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ada", body["name"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())

	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, c.Post(context.Background(), "/contact/", map[string]string{"name": "Ada"}, &out))
	assert.True(t, out.OK)
}

func TestClient_NonSuccessStatus(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusBadRequest} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		}))

		err := New(srv.URL, srv.Client()).Get(context.Background(), "/products/x/", &struct{}{})
		srv.Close()

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrRequestFailed))

		var apiErr *Error
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, status, apiErr.StatusCode)
		assert.Equal(t, status == http.StatusNotFound, IsNotFound(err))
	}
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := New(url, nil).Get(context.Background(), "/settings/", &struct{}{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRequestFailed))
	assert.False(t, IsNotFound(err))
}
