package transport

import (
	"errors"
	"fmt"
	"net/http"

	"catalog-service/internal/domain"
	"catalog-service/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Guards holds the middleware placed in front of mutating routes
type Guards struct {
	Write  []func(http.Handler) http.Handler
	Delete []func(http.Handler) http.Handler
}

// respondError maps a use-case error onto the HTTP error envelope
func respondError(w http.ResponseWriter, logger *zap.Logger, err error, action string) {
	var invalid *domain.InvalidArgumentError
	var exists *domain.AlreadyExistsError

	switch {
	case errors.As(err, &invalid):
		message := invalid.Error()
		if invalid.Field == "id" {
			message = "invalid ID, must be a UUID"
		}
		middleware.RespondWithErrorDetails(w, http.StatusBadRequest, message,
			map[string]interface{}{"field": invalid.Field})
	case errors.As(err, &exists):
		message := fmt.Sprintf("a %s with the %s: %s already exists", exists.Entity, exists.Field, exists.Value)
		middleware.RespondWithErrorDetails(w, http.StatusConflict, message,
			map[string]interface{}{"field": exists.Field})
	case errors.Is(err, domain.ErrNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		logger.Error("Failed to "+action, zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to "+action)
	}
}

func respondNotFound(w http.ResponseWriter, entity string) {
	middleware.RespondWithError(w, http.StatusNotFound, entity+" not found")
}

// decodeRequest decodes and validates the body into v, writing the 400 response itself on failure
func decodeRequest(w http.ResponseWriter, r *http.Request, v interface{}, logger *zap.Logger) bool {
	if err := middleware.DecodeAndValidate(w, r, v); err != nil {
		logger.Debug("Request validation failed", zap.String("path", r.URL.Path), zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return false
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func idParam(r *http.Request) string {
	return chi.URLParam(r, "id")
}
