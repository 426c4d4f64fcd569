package handler

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/travelhub/booking-backend-go/internal/service"
	"github.com/travelhub/booking-backend-go/pkg/response"
)

// respondError maps a service error onto its HTTP status
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, service.ErrValidation):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		response.Error(c, http.StatusGatewayTimeout, "request timed out")
	case errors.Is(err, service.ErrUpstreamUnavailable):
		response.Error(c, http.StatusServiceUnavailable, "service temporarily unavailable")
	default:
		log.Printf("unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		response.InternalError(c, "internal server error")
	}
}
