package middlewares

import (
	"time"

	"delivery-hours-service/internal/app/config"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	RateLimiter    *RateLimiter
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig) *Middlewares {
	rateLimiter := NewRateLimiter(
		internalConfig.RateLimiter.RequestsPerSecond,
		time.Second,
		time.Duration(internalConfig.RateLimiter.BlockSeconds)*time.Second,
		logger,
	)
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		RateLimiter:    rateLimiter,
	}
}
