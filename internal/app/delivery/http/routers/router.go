package routers

import (
	"time"

	"delivery-hours-service/internal/app/config"
	"delivery-hours-service/internal/app/delivery/http/controllers"
	"delivery-hours-service/internal/app/delivery/http/middlewares"
	"delivery-hours-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	deliveryHoursController *controllers.DeliveryHoursController,
	healthController *controllers.HealthController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.Cors.AllowedOrigins,
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderContentType, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID, constvars.HeaderRetryAfter},
		AllowCredentials: internalConfig.Cors.AllowCredentials,
		MaxAge:           internalConfig.Cors.MaxAgeSeconds,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	router.Route("/delivery-hours", func(r chi.Router) {
		attachDeliveryHoursRoutes(r, middlewares, deliveryHoursController)
	})

	router.Route("/health", func(r chi.Router) {
		attachHealthRoutes(r, middlewares, healthController)
	})
}
