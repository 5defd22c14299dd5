package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"articlehub/config"
	deliverycontext "articlehub/internal/delivery/context"
	domainerrors "articlehub/internal/domain/errors"
	"articlehub/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newContext(e *echo.Echo, remoteAddr string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestRateLimiter_BurstThenReject(t *testing.T) {
	e := echo.New()
	limiter := NewRateLimiter(&config.RateLimitConfig{Enabled: true, RequestsPerMin: 1, Burst: 2}, newDiscardLogger())
	t.Cleanup(limiter.Stop)
	h := limiter.Handle(okHandler)

	for range 2 {
		c, rec := newContext(e, "10.0.0.1:5000")
		require.NoError(t, h(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}

	c, rec := newContext(e, "10.0.0.1:5001")
	err := h(c)
	assert.True(t, errors.Is(err, domainerrors.ErrTooManyRequests))
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))

	// Another client has its own bucket.
	c, _ = newContext(e, "10.0.0.2:5000")
	assert.NoError(t, h(c))
	assert.Equal(t, 2, limiter.ClientCount())
}

func TestRateLimiter_DisabledPassesThrough(t *testing.T) {
	e := echo.New()
	limiter := NewRateLimiter(&config.RateLimitConfig{Enabled: false, Burst: 1}, newDiscardLogger())
	h := limiter.Handle(okHandler)

	for range 5 {
		c, _ := newContext(e, "10.0.0.1:5000")
		require.NoError(t, h(c))
	}
	assert.Zero(t, limiter.ClientCount())
	limiter.Stop()
	limiter.Stop()
}

func TestRateLimiter_CleanupDropsIdleClients(t *testing.T) {
	limiter := NewRateLimiter(&config.RateLimitConfig{
		Enabled:         true,
		Burst:           1,
		CleanupInterval: time.Hour,
	}, newDiscardLogger())
	t.Cleanup(limiter.Stop)

	limiter.limiterFor("10.0.0.1")
	limiter.limiterFor("10.0.0.2")
	limiter.mu.Lock()
	limiter.limiters["10.0.0.1"].lastAccess = time.Now().Add(-3 * time.Hour)
	limiter.mu.Unlock()

	limiter.cleanup(time.Now())

	assert.Equal(t, 1, limiter.ClientCount())
}

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	m := NewRequestIDMiddleware(newDiscardLogger())

	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "client id kept", header: "abc-123", wantSame: true},
		{name: "missing id generated", header: "", wantSame: false},
		{name: "control characters rejected", header: "abc\x00def", wantSame: false},
		{name: "overlong id rejected", header: string(make([]byte, maxRequestIDLength+1)), wantSame: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			var hasLogger bool
			err := m.Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				hasLogger = deliverycontext.GetLogger(c.Request().Context()) != nil

				return nil
			})(c)
			require.NoError(t, err)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, got)
			assert.Equal(t, got, ctxID)
			assert.True(t, hasLogger)
			if tt.wantSame {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}

type recordedRequest struct {
	method string
	route  string
	status int
}

type fakeHTTPMetrics struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (f *fakeHTTPMetrics) RecordHTTPRequest(method, route string, status int, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, recordedRequest{method: method, route: route, status: status})
}

func TestMetricsMiddleware_RecordsRouteAndStatus(t *testing.T) {
	e := echo.New()
	recorder := &fakeHTTPMetrics{}
	m := NewMetricsMiddleware(recorder)

	e.Use(m.Handle)
	e.GET("/articles/:slug", func(c echo.Context) error {
		if c.Param("slug") == "missing" {
			return domainerrors.ErrArticleNotFound
		}

		return c.NoContent(http.StatusOK)
	})

	for _, path := range []string{"/articles/a", "/articles/missing"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Len(t, recorder.requests, 2)
	assert.Equal(t, recordedRequest{method: http.MethodGet, route: "/articles/:slug", status: http.StatusOK}, recorder.requests[0])
	assert.Equal(t, recordedRequest{method: http.MethodGet, route: "/articles/:slug", status: http.StatusNotFound}, recorder.requests[1])
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusTooManyRequests, statusOf(errors.Wrap(domainerrors.ErrTooManyRequests, "limited")))
	assert.Equal(t, http.StatusMethodNotAllowed, statusOf(echo.ErrMethodNotAllowed))
	assert.Equal(t, http.StatusInternalServerError, statusOf(errors.New("boom")))
}

func TestLoggerMiddleware_ResolvesErrors(t *testing.T) {
	e := echo.New()
	var handled error
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		handled = err
		_ = c.NoContent(http.StatusTeapot)
	}

	cfg := &config.Config{}
	m := NewLoggerMiddleware(newDiscardLogger(), cfg)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.Handle(func(echo.Context) error { return domainerrors.ErrNotFound })(c)

	assert.NoError(t, err)
	assert.True(t, errors.Is(handled, domainerrors.ErrNotFound))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
