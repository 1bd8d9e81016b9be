package middleware

import (
	"log/slog"

	deliverycontext "bookshelf/internal/delivery/context"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware throttles requests per client IP.
type RateLimitMiddleware struct {
	limiter *ratelimit.KeyedRateLimiter
	logger  *slog.Logger
}

// NewRateLimitMiddleware creates a new rate limit middleware
func NewRateLimitMiddleware(limiter *ratelimit.KeyedRateLimiter, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		logger:  logger,
	}
}

// Handle rejects the request with 429 once the caller's bucket is empty.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ip := c.RealIP()
		if !m.limiter.Allow(ip) {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Warn("Rate limit exceeded", slog.String("remote_ip", ip), slog.String("path", c.Path()))

			return domainerrors.ErrTooManyRequests
		}

		return next(c)
	}
}
