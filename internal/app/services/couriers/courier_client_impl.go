package couriers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"delivery-hours-service/internal/app/contracts"
	"delivery-hours-service/internal/app/models"
	"delivery-hours-service/internal/app/services/shared/resilience"
	"delivery-hours-service/internal/app/services/shared/timewindows"
	"delivery-hours-service/internal/pkg/constvars"
	"delivery-hours-service/internal/pkg/dto/responses"
	"delivery-hours-service/internal/pkg/exceptions"
	"delivery-hours-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type courierServiceClient struct {
	BaseUrl         string
	HTTPClient      *http.Client
	RedisRepository contracts.RedisRepository
	CircuitBreaker  *resilience.CircuitBreaker
	CacheTTL        time.Duration
	Log             *zap.Logger
}

func NewCourierServiceClient(
	baseUrl string,
	httpClient *http.Client,
	redisRepository contracts.RedisRepository,
	circuitBreaker *resilience.CircuitBreaker,
	cacheTTL time.Duration,
	log *zap.Logger,
) contracts.CourierClient {
	return &courierServiceClient{
		BaseUrl:         baseUrl,
		HTTPClient:      httpClient,
		RedisRepository: redisRepository,
		CircuitBreaker:  circuitBreaker,
		CacheTTL:        cacheTTL,
		Log:             log,
	}
}

func (c *courierServiceClient) GetDeliveryHours(ctx context.Context, citySlug string) (models.WeeklySchedule, error) {
	endpoint := fmt.Sprintf(constvars.CourierDeliveryHoursEndpointFormat, c.BaseUrl, citySlug)
	cacheKey := utils.BuildUpstreamCacheKey(constvars.ServiceCourier, endpoint)

	if payload, ok := c.deliveryHoursFromCache(ctx, cacheKey, citySlug); ok {
		return c.toWeeklySchedule(payload)
	}

	var payload responses.CourierDeliveryHours
	var notFound bool
	err := c.CircuitBreaker.Execute(ctx, func(ctx context.Context) error {
		fetched, found, fetchErr := c.fetchDeliveryHours(ctx, endpoint)
		if fetchErr != nil {
			return fetchErr
		}
		if !found {
			notFound = true
			return nil
		}
		payload = fetched
		return nil
	})
	if err != nil {
		if errors.Is(err, resilience.ErrOpen) {
			return models.WeeklySchedule{}, exceptions.ErrCircuitBreakerOpen(constvars.ServiceCourier)
		}
		return models.WeeklySchedule{}, err
	}
	if notFound {
		return models.WeeklySchedule{}, exceptions.ErrUpstreamNotFound(
			fmt.Errorf("no delivery hours for city %s", citySlug),
			constvars.ServiceCourier,
		)
	}

	if cacheErr := c.RedisRepository.Set(ctx, cacheKey, payload, c.CacheTTL); cacheErr != nil {
		c.Log.Warn("courier delivery hours cache write failed",
			zap.String(constvars.LoggingCitySlugKey, citySlug),
			zap.String(constvars.LoggingCacheKeyKey, cacheKey),
			zap.Error(cacheErr),
		)
	}

	return c.toWeeklySchedule(payload)
}

// deliveryHoursFromCache reports a usable cached payload. Cache failures
// and unreadable entries degrade to a miss so the request can still be
// served from the courier service.
func (c *courierServiceClient) deliveryHoursFromCache(ctx context.Context, cacheKey, citySlug string) (responses.CourierDeliveryHours, bool) {
	data, err := c.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		c.Log.Warn("courier delivery hours cache read failed",
			zap.String(constvars.LoggingCitySlugKey, citySlug),
			zap.String(constvars.LoggingCacheKeyKey, cacheKey),
			zap.Error(err),
		)
		return responses.CourierDeliveryHours{}, false
	}
	if data == "" {
		return responses.CourierDeliveryHours{}, false
	}

	var payload responses.CourierDeliveryHours
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		c.Log.Warn("courier delivery hours cache entry is unreadable, evicting it",
			zap.String(constvars.LoggingCitySlugKey, citySlug),
			zap.String(constvars.LoggingCacheKeyKey, cacheKey),
			zap.Error(err),
		)
		if deleteErr := c.RedisRepository.Delete(ctx, cacheKey); deleteErr != nil {
			c.Log.Warn("courier delivery hours cache eviction failed",
				zap.String(constvars.LoggingCacheKeyKey, cacheKey),
				zap.Error(deleteErr),
			)
		}
		return responses.CourierDeliveryHours{}, false
	}
	return payload, true
}

func (c *courierServiceClient) fetchDeliveryHours(ctx context.Context, endpoint string) (responses.CourierDeliveryHours, bool, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return responses.CourierDeliveryHours{}, false, exceptions.ErrUpstreamBuildRequest(err, constvars.ServiceCourier)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return responses.CourierDeliveryHours{}, false, exceptions.ErrServerDeadlineExceeded(err)
		}
		return responses.CourierDeliveryHours{}, false, exceptions.ErrUpstreamUnavailable(err, constvars.ServiceCourier)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return responses.CourierDeliveryHours{}, false, nil
	}
	if resp.StatusCode != constvars.StatusOK {
		statusErr := fmt.Errorf("received status code %d", resp.StatusCode)
		return responses.CourierDeliveryHours{}, false, exceptions.ErrUpstreamBadStatus(statusErr, constvars.ServiceCourier)
	}

	var payload responses.CourierDeliveryHours
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return responses.CourierDeliveryHours{}, false, exceptions.ErrUpstreamDecodeResponse(err, constvars.ServiceCourier)
	}
	return payload, true, nil
}

func (c *courierServiceClient) toWeeklySchedule(payload responses.CourierDeliveryHours) (models.WeeklySchedule, error) {
	schedule, err := timewindows.ToWeeklySchedule(payload.DeliveryHours)
	if err != nil {
		return models.WeeklySchedule{}, exceptions.ErrUpstreamSchedulePayload(err, constvars.ServiceCourier)
	}
	return schedule, nil
}
