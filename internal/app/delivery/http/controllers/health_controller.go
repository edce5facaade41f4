package controllers

import (
	"delivery-hours-service/internal/app/config"
	"delivery-hours-service/internal/pkg/constvars"
	"delivery-hours-service/internal/pkg/dto/responses"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type HealthController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
}

func NewHealthController(logger *zap.Logger, internalConfig *config.InternalConfig) *HealthController {
	return &HealthController{
		Log:            logger,
		InternalConfig: internalConfig,
	}
}

// Check reports liveness. It is intentionally free of upstream and cache
// calls so that probes keep succeeding while dependencies are degraded.
func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	response := responses.HealthResponse{
		Status:  constvars.HealthStatusHealthy,
		Service: constvars.ServiceName,
		Version: ctrl.InternalConfig.App.Version,
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(constvars.StatusOK)
	json.NewEncoder(w).Encode(response)
}
