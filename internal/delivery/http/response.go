package http

import (
	"errors"
	"net/http"

	"ayz-shop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type errorResponse struct {
	Message string `json:"message"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	logrus.Error(message)
	c.AbortWithStatusJSON(statusCode, errorResponse{Message: message})
}

// respondServiceError maps the service error taxonomy onto HTTP codes.
// ErrDetailsMismatch deliberately reads like a not-found so the endpoint
// leaks nothing about which field was wrong.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrDecode):
		newErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUnauthorizedCart):
		newErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrForbidden):
		newErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrDetailsMismatch):
		newErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrConflict):
		newErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrRateLimited):
		newErrorResponse(c, http.StatusTooManyRequests, err.Error())
	default:
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
	}
}
