package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gaurav-prasanna/sheetfolio/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Key,Value\nName,Jane"))
	}))
	defer server.Close()

	result, err := New(nil).Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, server.URL, result.URL)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.Equal(t, "Key,Value\nName,Jane", string(result.Body))
}

func TestFetch_NoStoreHeaders(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	opts := DefaultOptions()
	opts.NoStore = true
	_, err := New(opts).Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "no-store", got.Get("Cache-Control"))
	assert.Equal(t, "no-cache", got.Get("Pragma"))
	assert.Equal(t, DefaultUserAgent, got.Get("User-Agent"))
}

func TestFetch_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := New(nil).Fetch(context.Background(), server.URL)
	require.Error(t, err)

	var netErr *core.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, http.StatusNotFound, netErr.StatusCode)
	assert.Contains(t, err.Error(), "404")
}

func TestFetch_InvalidURL(t *testing.T) {
	_, err := New(nil).Fetch(context.Background(), "://missing-scheme")
	require.Error(t, err)

	var netErr *core.NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestFetch_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(nil).Fetch(ctx, server.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
