package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Nemoeiei/calories-guard/services"

	"github.com/gin-gonic/gin"
)

func currentUserID(c *gin.Context) uint {
	return c.GetUint("userID")
}

// dateParam reads a ?date=YYYY-MM-DD query value, defaulting to today.
// Dates are interpreted as UTC days, matching how the services key them.
func dateParam(c *gin.Context) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now().UTC(), nil
	}
	return time.ParseInLocation("2006-01-02", raw, time.UTC)
}

// fail maps service errors onto HTTP statuses.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
