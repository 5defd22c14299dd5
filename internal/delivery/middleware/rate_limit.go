package middleware

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"sync"
	"time"

	"articlehub/config"
	domainerrors "articlehub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	defaultRequestsPerMin  = 30
	defaultBurst           = 10
	defaultCleanupInterval = 5 * time.Minute
)

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter is a token bucket per client IP.
type RateLimiter struct {
	enabled         bool
	perMinute       float64
	limit           rate.Limit
	burst           int
	cleanupInterval time.Duration
	logger          *slog.Logger

	mu       sync.Mutex
	limiters map[string]*clientLimiter

	stopOnce sync.Once
	stopCh   chan struct{}
}

// RateLimiterParams holds dependencies for RateLimiter, injected by Fx.
type RateLimiterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// ProvideRateLimiter builds the limiter from configuration and stops its
// cleanup loop with the application.
func ProvideRateLimiter(params RateLimiterParams) *RateLimiter {
	limiter := NewRateLimiter(params.Config.RateLimit, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			limiter.Stop()

			return nil
		},
	})

	return limiter
}

// NewRateLimiter starts the background cleanup when limiting is enabled. A nil
// or disabled config yields a pass-through limiter.
func NewRateLimiter(cfg *config.RateLimitConfig, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		perMinute:       defaultRequestsPerMin,
		burst:           defaultBurst,
		cleanupInterval: defaultCleanupInterval,
		logger:          logger,
		limiters:        make(map[string]*clientLimiter),
		stopCh:          make(chan struct{}),
	}
	if cfg == nil || !cfg.Enabled {
		return rl
	}

	rl.enabled = true
	if cfg.RequestsPerMin > 0 {
		rl.perMinute = cfg.RequestsPerMin
	}
	rl.limit = rate.Limit(rl.perMinute / 60.0)
	if cfg.Burst > 0 {
		rl.burst = cfg.Burst
	}
	if cfg.CleanupInterval > 0 {
		rl.cleanupInterval = cfg.CleanupInterval
	}

	go rl.cleanupLoop()

	return rl
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Handle rejects requests beyond the client's budget with 429.
func (rl *RateLimiter) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !rl.enabled {
			return next(c)
		}

		ip := c.RealIP()
		if !rl.limiterFor(ip).Allow() {
			c.Response().Header().Set("Retry-After", strconv.Itoa(rl.retryAfterSeconds()))
			rl.logger.WarnContext(c.Request().Context(), "rate limit exceeded",
				slog.String("remote_ip", ip),
				slog.String("route", c.Path()),
			)

			return domainerrors.ErrTooManyRequests
		}

		return next(c)
	}
}

// ClientCount returns the number of tracked clients.
func (rl *RateLimiter) ClientCount() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	return len(rl.limiters)
}

func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if cl, ok := rl.limiters[ip]; ok {
		cl.lastAccess = now

		return cl.limiter
	}

	cl := &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst), lastAccess: now}
	rl.limiters[ip] = cl

	return cl.limiter
}

func (rl *RateLimiter) retryAfterSeconds() int {
	return max(1, int(math.Ceil(60/rl.perMinute)))
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup(time.Now())
		case <-rl.stopCh:
			return
		}
	}
}

// cleanup drops clients idle for more than two cleanup intervals.
func (rl *RateLimiter) cleanup(now time.Time) {
	ttl := rl.cleanupInterval * 2

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, cl := range rl.limiters {
		if now.Sub(cl.lastAccess) > ttl {
			delete(rl.limiters, ip)
		}
	}
}
