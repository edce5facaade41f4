package middlewares

import (
	"errors"
	"net/http"

	"delivery-hours-service/internal/pkg/constvars"
	"delivery-hours-service/internal/pkg/exceptions"
	"delivery-hours-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// ErrorHandler turns a panic anywhere below it into a clean 500 response
// instead of tearing down the connection.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = errors.New("unknown error")
				}

				requestID := utils.GetRequestID(r.Context())
				m.Log.Error("panic recovered while handling request",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
					zap.Error(err),
				)

				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerProcess(err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
