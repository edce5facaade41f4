package routers

import (
	"delivery-hours-service/internal/app/delivery/http/controllers"
	"delivery-hours-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDeliveryHoursRoutes(router chi.Router, middlewares *middlewares.Middlewares, deliveryHoursController *controllers.DeliveryHoursController) {
	router.With(middlewares.RateLimiter.Limit).Get("/", deliveryHoursController.GetDeliveryHours)
}
