package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventbook/config"
	otelMocks "eventbook/infras/otel/mocks"
	"eventbook/shared/cache/mocks"
	"eventbook/shared/constant"
	"eventbook/shared/password"
	"eventbook/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func TestRequestID(t *testing.T) {
	mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

	var seen string

	handler := mw.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "abc", seen)
}

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	tests := []struct {
		name     string
		count    int64
		cacheErr error
		wantCode int
	}{
		{name: "under the limit", count: 1, wantCode: http.StatusNoContent},
		{name: "at the limit", count: 2, wantCode: http.StatusNoContent},
		{name: "over the limit", count: 3, wantCode: http.StatusTooManyRequests},
		{name: "cache unavailable", cacheErr: errors.New("redis down"), wantCode: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cache := mocks.NewMockRedisCache(ctrl)

			cache.EXPECT().
				Increment(gomock.Any(), "limiter:10.0.0.1:test-agent", 60).
				Return(tt.count, tt.cacheErr)

			mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, cache)

			req := httptest.NewRequest(http.MethodGet, "/book", nil)
			req.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
			req.Header.Set("User-Agent", "test-agent")

			rec := httptest.NewRecorder()
			mw.RateLimit()(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestRateLimitDisabled(t *testing.T) {
	mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

	rec := httptest.NewRecorder()
	mw.RateLimit()(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAdminAuth(t *testing.T) {
	hash, err := password.Hash("s3cret")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.App.Admin.Username = "admin"
	cfg.App.Admin.PasswordHash = hash

	tests := []struct {
		name     string
		user     string
		pass     string
		noAuth   bool
		wantCode int
	}{
		{name: "valid credentials", user: "admin", pass: "s3cret", wantCode: http.StatusNoContent},
		{name: "wrong password", user: "admin", pass: "nope", wantCode: http.StatusUnauthorized},
		{name: "wrong user", user: "root", pass: "s3cret", wantCode: http.StatusUnauthorized},
		{name: "no credentials", noAuth: true, wantCode: http.StatusUnauthorized},
	}

	auth := middleware.NewAuthMiddleware(otelMocks.NewOtel(), cfg)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
			if !tt.noAuth {
				req.SetBasicAuth(tt.user, tt.pass)
			}

			rec := httptest.NewRecorder()
			auth.AdminAuth(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusUnauthorized {
				assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "Basic")
			}
		})
	}
}

func TestAdminAuthOpenWithoutUsername(t *testing.T) {
	auth := middleware.NewAuthMiddleware(otelMocks.NewOtel(), &config.Config{})

	rec := httptest.NewRecorder()
	auth.AdminAuth(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
