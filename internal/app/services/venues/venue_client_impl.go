package venues

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

type venueServiceClient struct {
	BaseUrl         string
	HTTPClient      *http.Client
	RedisRepository contracts.RedisRepository
	CircuitBreaker  *resilience.CircuitBreaker
	CacheTTL        time.Duration
	Log             *zap.Logger
}

func NewVenueServiceClient(
	baseUrl string,
	httpClient *http.Client,
	redisRepository contracts.RedisRepository,
	circuitBreaker *resilience.CircuitBreaker,
	cacheTTL time.Duration,
	log *zap.Logger,
) contracts.VenueClient {
	return &venueServiceClient{
		BaseUrl:         baseUrl,
		HTTPClient:      httpClient,
		RedisRepository: redisRepository,
		CircuitBreaker:  circuitBreaker,
		CacheTTL:        cacheTTL,
		Log:             log,
	}
}

func (c *venueServiceClient) GetOpeningHours(ctx context.Context, venueID string) (models.WeeklySchedule, error) {
	endpoint := fmt.Sprintf(constvars.VenueOpeningHoursEndpointFormat, c.BaseUrl, venueID)
	cacheKey := utils.BuildUpstreamCacheKey(constvars.ServiceVenue, endpoint)

	if payload, ok := c.openingHoursFromCache(ctx, cacheKey, venueID); ok {
		return c.toWeeklySchedule(payload)
	}

	var payload responses.VenueOpeningHours
	var notFound bool
	err := c.CircuitBreaker.Execute(ctx, func(ctx context.Context) error {
		fetched, found, fetchErr := c.fetchOpeningHours(ctx, endpoint)
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
			return models.WeeklySchedule{}, exceptions.ErrCircuitBreakerOpen(constvars.ServiceVenue)
		}
		return models.WeeklySchedule{}, err
	}
	if notFound {
		return models.WeeklySchedule{}, exceptions.ErrUpstreamNotFound(
			fmt.Errorf("no opening hours for venue %s", venueID),
			constvars.ServiceVenue,
		)
	}

	if cacheErr := c.RedisRepository.Set(ctx, cacheKey, payload, c.CacheTTL); cacheErr != nil {
		c.Log.Warn("venue opening hours cache write failed",
			zap.String(constvars.LoggingVenueIDKey, venueID),
			zap.String(constvars.LoggingCacheKeyKey, cacheKey),
			zap.Error(cacheErr),
		)
	}

	return c.toWeeklySchedule(payload)
}

// openingHoursFromCache reports a usable cached payload. Cache failures
// and unreadable entries degrade to a miss so the request can still be
// served from the venue service.
func (c *venueServiceClient) openingHoursFromCache(ctx context.Context, cacheKey, venueID string) (responses.VenueOpeningHours, bool) {
	data, err := c.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		c.Log.Warn("venue opening hours cache read failed",
			zap.String(constvars.LoggingVenueIDKey, venueID),
			zap.String(constvars.LoggingCacheKeyKey, cacheKey),
			zap.Error(err),
		)
		return responses.VenueOpeningHours{}, false
	}
	if data == "" {
		return responses.VenueOpeningHours{}, false
	}

	var payload responses.VenueOpeningHours
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		c.Log.Warn("venue opening hours cache entry is unreadable, evicting it",
			zap.String(constvars.LoggingVenueIDKey, venueID),
			zap.String(constvars.LoggingCacheKeyKey, cacheKey),
			zap.Error(err),
		)
		if deleteErr := c.RedisRepository.Delete(ctx, cacheKey); deleteErr != nil {
			c.Log.Warn("venue opening hours cache eviction failed",
				zap.String(constvars.LoggingCacheKeyKey, cacheKey),
				zap.Error(deleteErr),
			)
		}
		return responses.VenueOpeningHours{}, false
	}
	return payload, true
}

func (c *venueServiceClient) fetchOpeningHours(ctx context.Context, endpoint string) (responses.VenueOpeningHours, bool, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return responses.VenueOpeningHours{}, false, exceptions.ErrUpstreamBuildRequest(err, constvars.ServiceVenue)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return responses.VenueOpeningHours{}, false, exceptions.ErrServerDeadlineExceeded(err)
		}
		return responses.VenueOpeningHours{}, false, exceptions.ErrUpstreamUnavailable(err, constvars.ServiceVenue)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return responses.VenueOpeningHours{}, false, nil
	}
	if resp.StatusCode != constvars.StatusOK {
		statusErr := fmt.Errorf("received status code %d", resp.StatusCode)
		return responses.VenueOpeningHours{}, false, exceptions.ErrUpstreamBadStatus(statusErr, constvars.ServiceVenue)
	}

	var payload responses.VenueOpeningHours
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return responses.VenueOpeningHours{}, false, exceptions.ErrUpstreamDecodeResponse(err, constvars.ServiceVenue)
	}
	return payload, true, nil
}

func (c *venueServiceClient) toWeeklySchedule(payload responses.VenueOpeningHours) (models.WeeklySchedule, error) {
	schedule, err := timewindows.ToWeeklySchedule(payload.OpeningHours)
	if err != nil {
		return models.WeeklySchedule{}, exceptions.ErrUpstreamSchedulePayload(err, constvars.ServiceVenue)
	}
	return schedule, nil
}
