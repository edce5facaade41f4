package contracts

import (
	"context"

	"delivery-hours-service/internal/pkg/dto/requests"
	"delivery-hours-service/internal/pkg/dto/responses"
)

type DeliveryHoursUsecase interface {
	GetDeliveryHours(ctx context.Context, request *requests.GetDeliveryHoursRequest) (*responses.DeliveryHoursResponse, error)
}
