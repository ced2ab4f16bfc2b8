package hellosdk

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"code":"E_NOT_FOUND","error":"not found"}`))
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	for _, raw := range []string{"", "localhost:3000", "ftp://localhost", "http://"} {
		_, err := New(raw, time.Second)
		assert.Error(t, err, raw)
	}
}

func TestNew_DefaultTimeout(t *testing.T) {
	c, err := New("http://127.0.0.1:3000", 0)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:3000", c.BaseURL())
}

func TestClient_Endpoints(t *testing.T) {
	now := time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
	srv := newFakeServer(t, map[string]string{
		PathIndex:  `{"message":"Hello from Jenkins CI/CD!","version":"2.3.1"}`,
		PathHealth: `{"status":"healthy","timestamp":"` + now + `"}`,
		PathReady:  `{"status":"ready"}`,
	})

	c, err := New(srv.URL, time.Second)
	require.NoError(t, err)
	ctx := context.Background()

	index, err := c.Index(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Hello from Jenkins CI/CD!", index.Message)
	assert.Equal(t, "2.3.1", index.Version)

	health, err := c.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, StatusHealthy, health.Status)
	ts, err := health.Time()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, 5*time.Second)

	ready, err := c.Ready(ctx)
	require.NoError(t, err)
	assert.Equal(t, StatusReady, ready.Status)

	assert.NoError(t, c.Check(ctx, EndpointHealth))
	assert.NoError(t, c.Check(ctx, EndpointReady))
}

func TestClient_Check_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown endpoint", func(t *testing.T) {
		c, err := New("http://127.0.0.1:1", time.Second)
		require.NoError(t, err)

		err = c.Check(ctx, "live")
		assert.True(t, errors.Is(err, ErrUnknownEndpoint))
	})

	t.Run("not found", func(t *testing.T) {
		srv := newFakeServer(t, map[string]string{})
		c, err := New(srv.URL, time.Second)
		require.NoError(t, err)

		err = c.Check(ctx, EndpointReady)
		require.Error(t, err)
		assert.True(t, IsStatusError(err))

		var se *StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, http.StatusNotFound, se.StatusCode)
		assert.Equal(t, "E_NOT_FOUND", se.Code)
		assert.Equal(t, PathReady, se.Path)
	})

	t.Run("unexpected status", func(t *testing.T) {
		srv := newFakeServer(t, map[string]string{
			PathHealth: `{"status":"degraded","timestamp":"2025-01-01T00:00:00.000Z"}`,
			PathReady:  `{"status":"starting"}`,
		})
		c, err := New(srv.URL, time.Second)
		require.NoError(t, err)

		assert.True(t, errors.Is(c.Check(ctx, EndpointHealth), ErrUnexpectedBody))
		assert.True(t, errors.Is(c.Check(ctx, EndpointReady), ErrUnexpectedBody))
	})

	t.Run("bad timestamp", func(t *testing.T) {
		srv := newFakeServer(t, map[string]string{
			PathHealth: `{"status":"healthy","timestamp":"yesterday"}`,
		})
		c, err := New(srv.URL, time.Second)
		require.NoError(t, err)

		assert.True(t, errors.Is(c.Check(ctx, EndpointHealth), ErrUnexpectedBody))
	})

	t.Run("connection refused", func(t *testing.T) {
		srv := newFakeServer(t, map[string]string{})
		url := srv.URL
		srv.Close()

		c, err := New(url, time.Second)
		require.NoError(t, err)

		err = c.Check(ctx, EndpointHealth)
		require.Error(t, err)
		assert.False(t, IsStatusError(err))
		assert.True(t, strings.HasPrefix(err.Error(), "GET /health"))
	})
}

func TestUserAgent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(HeaderUserAgent)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ready"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, time.Second)
	require.NoError(t, err)
	_, err = c.Ready(context.Background())
	require.NoError(t, err)

	assert.Equal(t, UserAgent, got)
}
