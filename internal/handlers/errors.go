package handlers

import (
	"errors"
	"net/http"

	"covid_dashboard/internal/dashboard"
	"covid_dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errNotLoaded      = "dataset not loaded yet, try again shortly"
	errUnknownCountry = "unknown country"
	errInternal       = "internal error"
	errRefreshFailed  = "refresh failed; the previous dataset is still served"
)

func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		if httpCode >= http.StatusInternalServerError {
			h.log.Errorw(logKey, fields...)
		} else {
			h.log.Infow(logKey, fields...)
		}
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// writeServiceError maps dashboard/service errors to status codes.
func (h *Handler) writeServiceError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	switch {
	case errors.Is(err, service.ErrDatasetNotLoaded):
		c.Header("Retry-After", "5")
		h.logAndJSONError(c, http.StatusServiceUnavailable, errNotLoaded, logKey, err, kv...)
	case errors.Is(err, dashboard.ErrUnknownCountry):
		h.logAndJSONError(c, http.StatusNotFound, errUnknownCountry, logKey, err, kv...)
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, logKey, err, kv...)
	}
}
