package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"nutritrack/services"
	"nutritrack/utils"
)

// statusFor maps a service error onto the HTTP status it is reported with.
func statusFor(err error) int {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidGoal),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInvalidMeal),
		errors.Is(err, services.ErrInvalidUser),
		errors.Is(err, services.ErrInvalidRange):
		return http.StatusBadRequest
	case errors.Is(err, utils.ErrMalformedRecord):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, log *zap.Logger, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusNotFound {
		msg = "not found"
	}
	if status >= http.StatusInternalServerError {
		log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		msg = "internal error"
	}
	c.JSON(status, gin.H{"error": msg})
}

func userID(c *gin.Context) uint {
	return c.GetUint("userID")
}
