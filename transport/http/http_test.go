package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"eventbook/config"
	otelMocks "eventbook/infras/otel/mocks"
	"eventbook/shared/background"
	"eventbook/transport/http/middleware"
	"eventbook/transport/http/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *HTTP {
	cfg := &config.Config{}
	cfg.App.Name = "eventbook"
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"*"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}

	otl := otelMocks.NewOtel()

	return New(cfg, router.New(router.DomainHandlers{}), middleware.NewAppMiddleware(otl, cfg, nil), otl)
}

func TestHealth(t *testing.T) {
	server := newTestServer()
	handler := server.Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "OK", body["status"])
	assert.NotEmpty(t, body["timestamp"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestHealthDuringGracePeriod(t *testing.T) {
	server := newTestServer()
	handler := server.Handler()

	server.state.Store(int32(ServerStateInGracePeriod))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"message":"SERVER PREPARING TO SHUT DOWN"}`, rec.Body.String())
}

func TestCORS(t *testing.T) {
	handler := newTestServer().Handler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://frontend.local")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}

func TestReleaseDrainsBackgroundTasksBeforeClosers(t *testing.T) {
	tasks := background.New()

	var published atomic.Bool

	tasks.Go(func() {
		time.Sleep(30 * time.Millisecond)
		published.Store(true)
	})

	var publishedAtClose bool

	server := newTestServer()
	server.server = &http.Server{}
	server.Closers = []io.Closer{
		tasks,
		closerFunc(func() error {
			publishedAtClose = published.Load()

			return nil
		}),
	}

	server.release()

	assert.True(t, publishedAtClose)

	select {
	case <-server.released:
	default:
		t.Fatal("release did not signal completion")
	}
}
