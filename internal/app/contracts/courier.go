package contracts

import (
	"context"

	"delivery-hours-service/internal/app/models"
)

type CourierClient interface {
	GetDeliveryHours(ctx context.Context, citySlug string) (models.WeeklySchedule, error)
}
