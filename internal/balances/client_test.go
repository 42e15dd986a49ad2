package balances

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(strings.TrimPrefix(srv.URL, "http://"), 2*time.Second)
}

func TestBalance(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/balances/1234567890", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Write([]byte("100"))
	})

	balance, err := client.Balance(context.Background(), "1234567890", "test-token")
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance)
}

func TestBalance_TrimsWhitespace(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("42\n"))
	})

	balance, err := client.Balance(context.Background(), "1234567890", "test-token")
	require.NoError(t, err)
	assert.Equal(t, int64(42), balance)
}

func TestBalance_ServiceError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Balance(context.Background(), "1234567890", "test-token")
	assert.Error(t, err)
}

func TestBalance_BadBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not a number"))
	})

	_, err := client.Balance(context.Background(), "1234567890", "test-token")
	assert.Error(t, err)
}

func TestBalance_Unreachable(t *testing.T) {
	client := NewHTTPClient("127.0.0.1:1", time.Second)

	_, err := client.Balance(context.Background(), "1234567890", "test-token")
	assert.Error(t, err)
}
