package couriers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"delivery-hours-service/internal/app/contracts"
	"delivery-hours-service/internal/app/models"
	"delivery-hours-service/internal/app/services/shared/resilience"
	"delivery-hours-service/internal/pkg/constvars"
	"delivery-hours-service/internal/pkg/exceptions"
	"delivery-hours-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubRedisRepository struct {
	entries  map[string]string
	setCalls int
}

func newStubRedisRepository() *stubRedisRepository {
	return &stubRedisRepository{entries: make(map[string]string)}
}

func (s *stubRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return s.entries[key], nil
}

func (s *stubRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.entries[key] = string(data)
	s.setCalls++
	return nil
}

func (s *stubRedisRepository) Delete(ctx context.Context, key string) error {
	delete(s.entries, key)
	return nil
}

func newCourierClient(serverURL string, redisRepository contracts.RedisRepository) contracts.CourierClient {
	breaker := resilience.NewCircuitBreaker(resilience.Settings{Name: constvars.ServiceCourier}, zap.NewNop())
	return NewCourierServiceClient(serverURL, &http.Client{}, redisRepository, breaker, time.Minute, zap.NewNop())
}

const courierPayload = `{"city_slug":"helsinki","delivery_hours":{"friday":[{"open":64800}],"saturday":[{"close":7200}]}}`

func TestCourierClientGetDeliveryHours(t *testing.T) {
	t.Run("fetches and converts the upstream payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/delivery-hours", r.URL.Path, "the courier endpoint should be called")
			assert.Equal(t, "helsinki", r.URL.Query().Get("city"), "the city slug should be passed as a query parameter")
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			fmt.Fprint(w, courierPayload)
		}))
		defer server.Close()
		redisStub := newStubRedisRepository()

		client := newCourierClient(server.URL, redisStub)
		schedule, err := client.GetDeliveryHours(context.Background(), "helsinki")

		assert.NoError(t, err, "the fetch should succeed")
		ranges := schedule.Day(models.Friday).Ranges()
		assert.Len(t, ranges, 1, "Friday should carry one window")
		assert.True(t, ranges[0].IsOvernight(), "the Friday window should cross midnight")
		assert.Equal(t, 1, redisStub.setCalls, "the payload should be cached")
	})

	t.Run("serves a cached payload without calling upstream", func(t *testing.T) {
		requests := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
		}))
		defer server.Close()
		redisStub := newStubRedisRepository()
		endpoint := fmt.Sprintf(constvars.CourierDeliveryHoursEndpointFormat, server.URL, "helsinki")
		redisStub.entries[utils.BuildUpstreamCacheKey(constvars.ServiceCourier, endpoint)] = courierPayload

		client := newCourierClient(server.URL, redisStub)
		schedule, err := client.GetDeliveryHours(context.Background(), "helsinki")

		assert.NoError(t, err, "the cached payload should be served")
		assert.False(t, schedule.Day(models.Friday).IsClosed(), "Friday should carry the cached window")
		assert.Equal(t, 0, requests, "the courier service should not be called")
	})

	t.Run("maps a 404 to a not-found error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(constvars.StatusNotFound)
		}))
		defer server.Close()

		client := newCourierClient(server.URL, newStubRedisRepository())
		_, err := client.GetDeliveryHours(context.Background(), "atlantis")

		assert.Error(t, err, "a 404 should surface an error")
		assert.True(t, exceptions.IsNotFound(err), "the error should be recognizable as not-found")
	})
}
