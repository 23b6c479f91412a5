package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/MatthewLomelin/Pantry-Macronutrient-Tracker/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service failures onto status codes. Validation problems
// are the caller's fault, missing ids are 404, everything else is a 500.
func respondError(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// parseDateQuery reads the optional ?date=YYYY-MM-DD param, defaulting to
// today.
func parseDateQuery(c *gin.Context) (time.Time, bool) {
	dateStr := c.Query("date")
	if dateStr == "" {
		return time.Now(), true
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}
