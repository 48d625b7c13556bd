package controllers

import (
	"errors"
	"net/http"

	"bingo-rooms/services"
	"bingo-rooms/utils/logger"

	"github.com/gin-gonic/gin"
)

// HandleServiceError maps service errors onto HTTP statuses. Unknown
// errors are logged and reported as 500 without leaking detail.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrPlayerNotFound),
		errors.Is(err, services.ErrCardNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, services.ErrInvalidCode),
		errors.Is(err, services.ErrInvalidNumber),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrEmptyName),
		errors.Is(err, services.ErrMissingSession):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, services.ErrGameStarted),
		errors.Is(err, services.ErrRoomNotDrawing),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrNumberNotDrawn),
		errors.Is(err, services.ErrNoWinningPattern),
		errors.Is(err, services.ErrNumbersExhausted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, services.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

	default:
		logger.Errorf("unhandled service error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
