package api

import (
	"errors"
	"net/http"
	"time"

	"fittrack/workout-app/internal/service"

	"github.com/gin-gonic/gin"
)

// mapServiceError translates a domain error into its HTTP status and
// aborts the request. Unknown errors never leak details to the client.
func mapServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrExerciseNotFound),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrIndexOutOfRange):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrPlanNotFound),
		errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrLogNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAccessDenied):
		abortWithError(c, http.StatusForbidden, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}

// dateLayouts accepted in query strings and JSON bodies for plain dates.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// parseDate accepts either a full RFC 3339 timestamp or a bare date.
func parseDate(v string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, v)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
