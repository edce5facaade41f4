package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		Redis          *redis.Client
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App            App
		Cors           Cors
		VenueService   UpstreamService
		CourierService UpstreamService
		Delivery       Delivery
		Cache          Cache
		CircuitBreaker CircuitBreaker
		RateLimiter    RateLimiter
	}

	DriverConfig struct {
		Redis  Redis
		Logger Logger
	}

	App struct {
		Env             string
		Port            string
		Version         string
		Address         string
		MaxRequests     int
		ShutdownTimeout int
	}

	Cors struct {
		AllowedOrigins   []string
		AllowCredentials bool
		MaxAgeSeconds    int
	}

	UpstreamService struct {
		BaseUrl        string
		TimeoutSeconds int
	}

	Delivery struct {
		MinimumDurationSeconds int
	}

	Cache struct {
		TTLSeconds int
	}

	CircuitBreaker struct {
		FailureThreshold    int
		ResetTimeoutSeconds int
		HalfOpenMaxCalls    int
	}

	RateLimiter struct {
		RequestsPerSecond int
		BlockSeconds      int
	}

	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
