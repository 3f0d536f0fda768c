package utils

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIGetMergesParams(t *testing.T) {
	var gotQuery url.Values
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(`{"name":"ok","count":3}`))
	}))
	defer server.Close()

	api := NewAPI(server.URL+"/3/", time.Second, url.Values{"api_key": {"secret"}, "language": {"en-US"}})

	var out struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	err := api.Get(context.Background(), "/movie/popular", url.Values{"language": {"ko-KR"}, "page": {"1"}}, &out)
	require.NoError(t, err)

	assert.Equal(t, "/3/movie/popular", gotPath)
	assert.Equal(t, "secret", gotQuery.Get("api_key"))
	assert.Equal(t, "ko-KR", gotQuery.Get("language"), "request params override defaults")
	assert.Equal(t, "1", gotQuery.Get("page"))
	assert.Equal(t, "ok", out.Name)
	assert.Equal(t, 3, out.Count)
}

func TestAPIGetStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status_message":"Invalid API key"}`))
	}))
	defer server.Close()

	api := NewAPI(server.URL, time.Second, nil)
	var out map[string]any
	err := api.Get(context.Background(), "/movie/popular", nil, &out)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnauthorized, statusErr.Code)
	assert.Contains(t, statusErr.Error(), "Invalid API key")
}

func TestAPIGetDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	api := NewAPI(server.URL, time.Second, nil)
	var out map[string]any
	assert.Error(t, api.Get(context.Background(), "/x", nil, &out))
}

func TestAPIGetHonoursContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	api := NewAPI(server.URL, time.Second, nil)
	var out map[string]any
	assert.ErrorIs(t, api.Get(ctx, "/x", nil, &out), context.Canceled)
}

func TestAPIBytesLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("0123456789"))
	}))
	defer server.Close()

	api := NewAPI(server.URL, time.Second, nil)
	body, err := api.Bytes(context.Background(), "/w780/a.jpg", 4)
	require.NoError(t, err)
	assert.Equal(t, "0123", string(body))
}
