package config

import (
	"strings"

	"delivery-hours-service/internal/app/models"
	"delivery-hours-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Version:         utils.GetEnvString("APP_VERSION", "1.0.0"),
			Address:         utils.GetEnvString("APP_ADDRESS", "localhost"),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 50),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		Cors: Cors{
			AllowedOrigins:   splitOrigins(utils.GetEnvString("CORS_ALLOWED_ORIGINS", "*")),
			AllowCredentials: utils.GetEnvBool("CORS_ALLOW_CREDENTIALS", true),
			MaxAgeSeconds:    utils.GetEnvInt("CORS_MAX_AGE_SECONDS", 300),
		},
		VenueService: UpstreamService{
			BaseUrl:        utils.GetEnvString("VENUE_SERVICE_URL", "http://localhost:8080/venue-service"),
			TimeoutSeconds: utils.GetEnvInt("VENUE_SERVICE_TIMEOUT_SECONDS", 5),
		},
		CourierService: UpstreamService{
			BaseUrl:        utils.GetEnvString("COURIER_SERVICE_URL", "http://localhost:8080/courier-service"),
			TimeoutSeconds: utils.GetEnvInt("COURIER_SERVICE_TIMEOUT_SECONDS", 5),
		},
		Delivery: Delivery{
			MinimumDurationSeconds: utils.GetEnvInt("DELIVERY_MINIMUM_DURATION_SECONDS", models.DefaultMinimumDeliveryDurationSeconds),
		},
		Cache: Cache{
			TTLSeconds: utils.GetEnvInt("CACHE_TTL_SECONDS", 300),
		},
		CircuitBreaker: CircuitBreaker{
			FailureThreshold:    utils.GetEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			ResetTimeoutSeconds: utils.GetEnvInt("CIRCUIT_BREAKER_RESET_TIMEOUT_SECONDS", 60),
			HalfOpenMaxCalls:    utils.GetEnvInt("CIRCUIT_BREAKER_HALF_OPEN_MAX_CALLS", 3),
		},
		RateLimiter: RateLimiter{
			RequestsPerSecond: utils.GetEnvInt("RATE_LIMITER_REQUESTS_PER_SECOND", 20),
			BlockSeconds:      utils.GetEnvInt("RATE_LIMITER_BLOCK_SECONDS", 60),
		},
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
