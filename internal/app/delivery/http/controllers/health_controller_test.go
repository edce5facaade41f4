package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"delivery-hours-service/internal/app/config"
	"delivery-hours-service/internal/pkg/constvars"
	"delivery-hours-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHealthController_Check(t *testing.T) {
	internalConfig := &config.InternalConfig{}
	internalConfig.App.Version = "1.2.3"
	controller := NewHealthController(zap.NewNop(), internalConfig)

	request := httptest.NewRequest(http.MethodGet, "/health", nil)
	recorder := httptest.NewRecorder()
	controller.Check(recorder, request)

	assert.Equal(t, constvars.StatusOK, recorder.Code, "health check should succeed")
	assert.Equal(t, constvars.MIMEApplicationJSON, recorder.Header().Get(constvars.HeaderContentType), "response should be JSON")

	var response responses.HealthResponse
	err := json.Unmarshal(recorder.Body.Bytes(), &response)
	assert.NoError(t, err, "response body should decode")
	assert.Equal(t, constvars.HealthStatusHealthy, response.Status, "service should report healthy")
	assert.Equal(t, constvars.ServiceName, response.Service, "service name should be reported")
	assert.Equal(t, "1.2.3", response.Version, "configured version should be reported")
}
