package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"delivery-hours-service/internal/pkg/constvars"
	"delivery-hours-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	t.Run("turns a panic into a 500 response", func(t *testing.T) {
		m := newTestMiddlewares()
		handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("something went sideways")
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(constvars.MethodGet, "/delivery-hours", nil))

		assert.Equal(t, constvars.StatusInternalServerError, recorder.Code, "a panic should produce a 500")
		var response exceptions.CustomError
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err, "the body should be a JSON error envelope")
		assert.False(t, response.Success, "the envelope should be marked unsuccessful")
		assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, response.ClientMessage, "the client message should not leak the panic")
	})

	t.Run("passes normal requests through untouched", func(t *testing.T) {
		m := newTestMiddlewares()
		handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(constvars.StatusNoContent)
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(constvars.MethodGet, "/delivery-hours", nil))

		assert.Equal(t, constvars.StatusNoContent, recorder.Code, "a healthy handler should not be affected")
	})
}
