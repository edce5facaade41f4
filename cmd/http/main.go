package main

import (
	"context"
	"delivery-hours-service/internal/app/config"
	"delivery-hours-service/internal/app/delivery/http/controllers"
	"delivery-hours-service/internal/app/delivery/http/middlewares"
	"delivery-hours-service/internal/app/delivery/http/routers"
	"delivery-hours-service/internal/app/drivers/database"
	"delivery-hours-service/internal/app/drivers/logger"
	"delivery-hours-service/internal/app/services/core/deliveryhours"
	"delivery-hours-service/internal/app/services/couriers"
	"delivery-hours-service/internal/app/services/shared/redis"
	"delivery-hours-service/internal/app/services/shared/resilience"
	"delivery-hours-service/internal/app/services/venues"
	"delivery-hours-service/internal/pkg/constvars"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	redisClient := database.NewRedisClient(driverConfig, log)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("server starting", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("waiting for pending requests already received by the server to be processed")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	internalConfig := bootstrap.InternalConfig

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, internalConfig)

	cacheTTL := time.Duration(internalConfig.Cache.TTLSeconds) * time.Second

	// Venue service
	venueCircuitBreaker := resilience.NewCircuitBreaker(resilience.Settings{
		Name:             constvars.ServiceVenue,
		FailureThreshold: internalConfig.CircuitBreaker.FailureThreshold,
		ResetTimeout:     time.Duration(internalConfig.CircuitBreaker.ResetTimeoutSeconds) * time.Second,
		HalfOpenMaxCalls: internalConfig.CircuitBreaker.HalfOpenMaxCalls,
	}, bootstrap.Logger)
	venueClient := venues.NewVenueServiceClient(
		internalConfig.VenueService.BaseUrl,
		&http.Client{Timeout: time.Duration(internalConfig.VenueService.TimeoutSeconds) * time.Second},
		redisRepository,
		venueCircuitBreaker,
		cacheTTL,
		bootstrap.Logger,
	)

	// Courier service
	courierCircuitBreaker := resilience.NewCircuitBreaker(resilience.Settings{
		Name:             constvars.ServiceCourier,
		FailureThreshold: internalConfig.CircuitBreaker.FailureThreshold,
		ResetTimeout:     time.Duration(internalConfig.CircuitBreaker.ResetTimeoutSeconds) * time.Second,
		HalfOpenMaxCalls: internalConfig.CircuitBreaker.HalfOpenMaxCalls,
	}, bootstrap.Logger)
	courierClient := couriers.NewCourierServiceClient(
		internalConfig.CourierService.BaseUrl,
		&http.Client{Timeout: time.Duration(internalConfig.CourierService.TimeoutSeconds) * time.Second},
		redisRepository,
		courierCircuitBreaker,
		cacheTTL,
		bootstrap.Logger,
	)

	// Delivery hours
	deliveryHoursUsecase := deliveryhours.NewDeliveryHoursUsecase(
		venueClient,
		courierClient,
		internalConfig.Delivery.MinimumDurationSeconds,
		bootstrap.Logger,
	)
	deliveryHoursController := controllers.NewDeliveryHoursController(bootstrap.Logger, deliveryHoursUsecase)

	// Health
	healthController := controllers.NewHealthController(bootstrap.Logger, internalConfig)

	routers.SetupRoutes(bootstrap.Router, internalConfig, appMiddlewares, deliveryHoursController, healthController)
}
