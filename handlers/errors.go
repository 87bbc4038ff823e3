package handlers

import (
	"errors"
	"net/http"

	"kino/services"
	"kino/services/scheduling"
	"kino/services/ticket"
	"kino/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors to a status and a client-facing message.
func respondError(c *gin.Context, err error) {
	var overlap *scheduling.OverlapError
	var seats *ticket.SeatsExceededError

	switch {
	case errors.As(err, &overlap):
		utils.JSONError(c, http.StatusConflict, "This time is taken!", overlap.Error())
	case errors.As(err, &seats):
		utils.JSONError(c, http.StatusConflict, seats.Error(), "")
	case errors.Is(err, scheduling.ErrInvalidRange):
		utils.JSONError(c, http.StatusBadRequest, "Session end must not precede its start", err.Error())
	case errors.Is(err, services.ErrInvalidInput):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", err.Error())
	case errors.Is(err, services.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, "Forbidden", err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	case errors.Is(err, services.ErrConflict):
		utils.JSONError(c, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, services.ErrNotAcceptable):
		utils.JSONError(c, http.StatusNotAcceptable, "Not acceptable", err.Error())
	case errors.Is(err, services.ErrUnavailable):
		utils.JSONError(c, http.StatusServiceUnavailable, "Service unavailable", err.Error())
	default:
		getLogger(c).Error("request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

func badRequest(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
}
