// File: tutorly/handlers/calendar.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"tutorly/utils"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidYear  = errors.New("year must be a number")
	errInvalidMonth = errors.New("month must be a number between 1 and 12")
)

// MonthAvailabilityHandler returns the per-day slot summary for one calendar
// month. Query params: teacherId (required), year and month (1-12, both
// default to the current month). Summaries are served from Redis when fresh;
// slot writes invalidate the affected months.
func (h *AvailabilityHandler) MonthAvailabilityHandler(c *gin.Context) {
	teacherID := c.Query("teacherId")
	if teacherID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing teacherId query parameter"})
		return
	}

	year, month, err := yearMonthParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if cached := utils.GetCachedMonthAvailability(c.Request.Context(), teacherID, year, month); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	summary, err := h.Service.MonthAvailability(c.Request.Context(), teacherID, year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}
	utils.SetCachedMonthAvailability(c.Request.Context(), summary)

	c.JSON(http.StatusOK, summary)
}

func yearMonthParams(c *gin.Context) (int, int, error) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())

	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errInvalidYear
		}
		year = parsed
	}
	if raw := c.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errInvalidMonth
		}
		month = parsed
	}
	return year, month, nil
}
