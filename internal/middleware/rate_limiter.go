package middleware

import (
	"context"
	"sync"
	"time"

	"church-treasury/internal/errors"
	"church-treasury/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	visitorCleanupInterval = time.Minute
	visitorIdleTimeout     = 3 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter keeps one token bucket per client IP
type IPRateLimiter struct {
	mu                sync.Mutex
	visitors          map[string]*visitor
	requestsPerSecond float64
	burst             int
	exempt            map[string]bool
	now               func() time.Time
}

// NewIPRateLimiter creates a limiter allowing rps requests per second with the given burst per IP.
// Requests to the exempt paths are never limited.
func NewIPRateLimiter(rps float64, burst int, exemptPaths ...string) *IPRateLimiter {
	exempt := make(map[string]bool, len(exemptPaths))
	for _, path := range exemptPaths {
		exempt[path] = true
	}

	return &IPRateLimiter{
		visitors:          make(map[string]*visitor),
		requestsPerSecond: rps,
		burst:             burst,
		exempt:            exempt,
		now:               time.Now,
	}
}

// Middleware rejects requests over the limit with SYSTEM_006
func (l *IPRateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if l.exempt[c.Request().URL.Path] {
				return next(c)
			}

			if !l.limiterFor(handlers.ClientIP(c)).Allow() {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}

			return next(c)
		}
	}
}

// Run evicts idle visitors until ctx is cancelled
func (l *IPRateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(visitorCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.evictIdle()
		}
	}
}

func (l *IPRateLimiter) limiterFor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, exists := l.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rate.Limit(l.requestsPerSecond), l.burst)}
		l.visitors[ip] = v
	}

	v.lastSeen = l.now()
	return v.limiter
}

func (l *IPRateLimiter) evictIdle() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for ip, v := range l.visitors {
		if l.now().Sub(v.lastSeen) > visitorIdleTimeout {
			delete(l.visitors, ip)
		}
	}
}

func (l *IPRateLimiter) visitorCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}
