package contracts

import (
	"context"

	"delivery-hours-service/internal/app/models"
)

type VenueClient interface {
	GetOpeningHours(ctx context.Context, venueID string) (models.WeeklySchedule, error)
}
