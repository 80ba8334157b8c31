package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/letsdodifferent/HCLTech/internal/apperror"
)

func envelopeHandler(status int, message string, data any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": status < 400,
			"message": message,
			"data":    data,
		})
	}
}

func TestBearerAttachedWhenTokenPresent(t *testing.T) {
	var gotAuth, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		envelopeHandler(http.StatusOK, "", map[string]string{"ok": "yes"})(w, r)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, zaptest.NewLogger(t),
		WithTokenFunc(func() string { return "tok-123" }))

	var out map[string]string
	err := c.Get(context.Background(), "/anything", &out)

	assert.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID, "every request carries a request id")
	assert.Equal(t, "yes", out["ok"])
}

func TestNoBearerWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		envelopeHandler(http.StatusOK, "", nil)(w, r)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, zaptest.NewLogger(t))
	err := c.Get(context.Background(), "/public/tip", nil)

	assert.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestUnauthorizedClearsSessionAndPropagates(t *testing.T) {
	srv := httptest.NewServer(envelopeHandler(http.StatusUnauthorized, "Not authorized", nil))
	defer srv.Close()

	cleared := false
	c := New(srv.URL, 5*time.Second, zaptest.NewLogger(t),
		WithTokenFunc(func() string { return "stale" }),
		WithUnauthorized(func() { cleared = true }))

	err := c.Get(context.Background(), "/patient/wellness", nil)

	assert.True(t, cleared, "401 must run the session teardown hook")
	assert.Error(t, err)
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
	assert.Equal(t, "Not authorized", apperror.UserMessage(err))
}

func TestErrorStatusesLoggedWithServerMessage(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		message    string
		expectKind apperror.Kind
		expectLog  string
	}{
		{name: "forbidden", status: 403, message: "no access", expectKind: apperror.KindForbidden, expectLog: "access forbidden"},
		{name: "not found", status: 404, message: "missing", expectKind: apperror.KindNotFound, expectLog: "resource not found"},
		{name: "server error", status: 500, message: "boom", expectKind: apperror.KindServer, expectLog: "server error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(envelopeHandler(tc.status, tc.message, nil))
			defer srv.Close()

			core, logs := observer.New(zapcore.InfoLevel)
			c := New(srv.URL, 5*time.Second, zap.New(core))

			err := c.Get(context.Background(), "/some/path", nil)

			assert.Error(t, err)
			assert.Equal(t, tc.expectKind, apperror.KindOf(err))
			assert.Equal(t, tc.message, apperror.UserMessage(err))
			assert.Equal(t, 1, logs.FilterMessage(tc.expectLog).Len())
		})
	}
}

func TestErrorWithoutServerMessageFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, zaptest.NewLogger(t))
	err := c.Get(context.Background(), "/broken", nil)

	assert.Error(t, err)
	assert.Equal(t, "Something went wrong. Please try again.", apperror.UserMessage(err))
}

func TestNetworkErrorSurfacesAsConnectivity(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	c := New("http://127.0.0.1:1", 200*time.Millisecond, zap.New(core))

	err := c.Get(context.Background(), "/anything", nil)

	assert.Error(t, err)
	assert.Equal(t, apperror.KindNetwork, apperror.KindOf(err))
	assert.Equal(t, 1, logs.FilterMessage("network error - no response from server").Len())
}

func TestPostEncodesBody(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		envelopeHandler(http.StatusOK, "", nil)(w, r)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, zaptest.NewLogger(t))
	err := c.Post(context.Background(), "/patient/logs", map[string]any{"steps": 7500}, nil)

	assert.NoError(t, err)
	assert.Equal(t, float64(7500), got["steps"])
}
