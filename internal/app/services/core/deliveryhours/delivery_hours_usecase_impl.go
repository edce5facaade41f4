package deliveryhours

import (
	"context"
	"sync"

	"delivery-hours-service/internal/app/contracts"
	"delivery-hours-service/internal/app/models"
	"delivery-hours-service/internal/pkg/constvars"
	"delivery-hours-service/internal/pkg/dto/requests"
	"delivery-hours-service/internal/pkg/dto/responses"
	"delivery-hours-service/internal/pkg/exceptions"
	"delivery-hours-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type deliveryHoursUsecase struct {
	VenueClient            contracts.VenueClient
	CourierClient          contracts.CourierClient
	MinimumDurationSeconds int
	Log                    *zap.Logger
}

var (
	deliveryHoursUsecaseInstance contracts.DeliveryHoursUsecase
	onceDeliveryHoursUsecase     sync.Once
)

func NewDeliveryHoursUsecase(
	venueClient contracts.VenueClient,
	courierClient contracts.CourierClient,
	minimumDurationSeconds int,
	logger *zap.Logger,
) contracts.DeliveryHoursUsecase {
	onceDeliveryHoursUsecase.Do(func() {
		deliveryHoursUsecaseInstance = &deliveryHoursUsecase{
			VenueClient:            venueClient,
			CourierClient:          courierClient,
			MinimumDurationSeconds: minimumDurationSeconds,
			Log:                    logger,
		}
	})
	return deliveryHoursUsecaseInstance
}

func (uc *deliveryHoursUsecase) GetDeliveryHours(ctx context.Context, request *requests.GetDeliveryHoursRequest) (*responses.DeliveryHoursResponse, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("deliveryHoursUsecase.GetDeliveryHours called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVenueIDKey, request.VenueID),
		zap.String(constvars.LoggingCitySlugKey, request.CitySlug),
	)

	var (
		venueSchedule   models.WeeklySchedule
		courierSchedule models.WeeklySchedule
		venueErr        error
		courierErr      error
	)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		venueSchedule, venueErr = uc.VenueClient.GetOpeningHours(ctx, request.VenueID)
	}()
	go func() {
		defer wg.Done()
		courierSchedule, courierErr = uc.CourierClient.GetDeliveryHours(ctx, request.CitySlug)
	}()
	wg.Wait()

	venueSchedule, err := uc.scheduleOrClosed(ctx, venueSchedule, venueErr, constvars.ServiceVenue)
	if err != nil {
		return nil, err
	}
	courierSchedule, err = uc.scheduleOrClosed(ctx, courierSchedule, courierErr, constvars.ServiceCourier)
	if err != nil {
		return nil, err
	}

	deliveryWindow := models.EmptyWeeklySchedule()
	if !venueSchedule.IsEntirelyClosed() && !courierSchedule.IsEntirelyClosed() {
		deliveryWindow, err = models.Intersect(venueSchedule, courierSchedule, uc.MinimumDurationSeconds)
		if err != nil {
			uc.Log.Error("deliveryHoursUsecase.GetDeliveryHours error computing delivery window",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrDeliveryWindowCompute(err)
		}
	}

	openDays := 0
	for day := models.Monday; day <= models.Sunday; day++ {
		if !deliveryWindow.Day(day).IsClosed() {
			openDays++
		}
	}
	uc.Log.Info("deliveryHoursUsecase.GetDeliveryHours succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVenueIDKey, request.VenueID),
		zap.String(constvars.LoggingCitySlugKey, request.CitySlug),
		zap.Int(constvars.LoggingDayCountKey, openDays),
	)
	return &responses.DeliveryHoursResponse{
		DeliveryHours: models.FormatWeeklySchedule(deliveryWindow),
	}, nil
}

// scheduleOrClosed applies the availability policy: an upstream that has
// no data for the requested resource means no delivery hours, not a
// failed request. Every other fetch error is passed through.
func (uc *deliveryHoursUsecase) scheduleOrClosed(ctx context.Context, schedule models.WeeklySchedule, fetchErr error, service string) (models.WeeklySchedule, error) {
	if fetchErr == nil {
		return schedule, nil
	}

	requestID := utils.GetRequestID(ctx)
	if exceptions.IsNotFound(fetchErr) {
		uc.Log.Info("deliveryHoursUsecase.GetDeliveryHours upstream has no schedule, treating the week as closed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingServiceKey, service),
		)
		return models.EmptyWeeklySchedule(), nil
	}

	uc.Log.Error("deliveryHoursUsecase.GetDeliveryHours error fetching upstream schedule",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceKey, service),
		zap.Error(fetchErr),
	)
	return models.WeeklySchedule{}, fetchErr
}
