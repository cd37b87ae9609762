// File: tutorly/handlers/timeslots.go
package handlers

import (
	"net/http"
	"time"

	"tutorly/models"
	"tutorly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateManualSlotHandler creates one ad-hoc slot for the authenticated teacher.
func (h *AvailabilityHandler) CreateManualSlotHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id, ok := teacherID(c)
	if !ok {
		return
	}

	var req models.ManualSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid manual slot request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	slot, err := h.Service.CreateManualSlot(c.Request.Context(), id, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	utils.InvalidateCalendarMonths(c.Request.Context(), id, slot.Date)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Time slot created successfully",
		"slot":    slot,
	})
}

// GetSlotsHandler lists slots. With a ?date= query it returns that day's
// slots (active or not); without one it returns all active slots.
func (h *AvailabilityHandler) GetSlotsHandler(c *gin.Context) {
	id, ok := teacherID(c)
	if !ok {
		return
	}

	var (
		slots []models.TimeSlotWithBookings
		err   error
	)
	if date := c.Query("date"); date != "" {
		slots, err = h.Service.SlotsForDate(c.Request.Context(), id, date)
	} else {
		slots, err = h.Service.ActiveSlots(c.Request.Context(), id)
	}
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// ToggleSlotHandler flips a slot's active flag.
func (h *AvailabilityHandler) ToggleSlotHandler(c *gin.Context) {
	id, ok := teacherID(c)
	if !ok {
		return
	}
	slotID := c.Param("slotID")
	if slotID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing slot ID in path"})
		return
	}

	slot, err := h.Service.ToggleSlotActive(c.Request.Context(), id, slotID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	utils.InvalidateCalendarMonths(c.Request.Context(), id, slot.Date)

	message := "Time slot deactivated"
	if slot.IsActive {
		message = "Time slot activated"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "slot": slot})
}

// UpdateSlotHandler reschedules an unbooked slot.
func (h *AvailabilityHandler) UpdateSlotHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id, ok := teacherID(c)
	if !ok {
		return
	}
	slotID := c.Param("slotID")
	if slotID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing slot ID in path"})
		return
	}

	var req models.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid slot update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	slot, previousDate, err := h.Service.UpdateSlot(c.Request.Context(), id, slotID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	utils.InvalidateCalendarMonths(c.Request.Context(), id, previousDate, slot.Date)

	c.JSON(http.StatusOK, gin.H{"message": "Time slot updated successfully", "slot": slot})
}

// DeleteSlotHandler removes one unbooked slot.
func (h *AvailabilityHandler) DeleteSlotHandler(c *gin.Context) {
	id, ok := teacherID(c)
	if !ok {
		return
	}
	slotID := c.Param("slotID")
	if slotID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing slot ID in path"})
		return
	}

	slot, err := h.Service.DeleteSlot(c.Request.Context(), id, slotID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	utils.InvalidateCalendarMonths(c.Request.Context(), id, slot.Date)

	c.JSON(http.StatusOK, gin.H{"message": "Time slot deleted successfully"})
}

// DeleteSlotsHandler removes a batch of unbooked slots, all or nothing.
func (h *AvailabilityHandler) DeleteSlotsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id, ok := teacherID(c)
	if !ok {
		return
	}

	var body struct {
		SlotIDs []string `json:"slotIds" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		logger.Error("Invalid bulk delete request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	slots, err := h.Service.DeleteSlots(c.Request.Context(), id, body.SlotIDs)
	if err != nil {
		respondWithError(c, err)
		return
	}
	utils.InvalidateCalendarMonths(c.Request.Context(), id, slotDates(slots)...)

	c.JSON(http.StatusOK, gin.H{
		"message":      "Time slots deleted successfully",
		"deletedCount": len(slots),
	})
}

// CreateTemplateHandler expands a weekly template into concrete slots.
func (h *AvailabilityHandler) CreateTemplateHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id, ok := teacherID(c)
	if !ok {
		return
	}

	var req models.TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid template request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	result, err := h.Service.CreateTemplate(c.Request.Context(), id, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	utils.InvalidateCalendarMonths(c.Request.Context(), id, monthStarts(req.StartDate, req.EndDate)...)

	c.JSON(http.StatusCreated, result)
}

// GetTemplatesHandler lists template-sourced slots grouped by template.
func (h *AvailabilityHandler) GetTemplatesHandler(c *gin.Context) {
	id, ok := teacherID(c)
	if !ok {
		return
	}

	groups, err := h.Service.TemplateGroups(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"templates": groups})
}

// DeleteTemplateHandler removes every slot of a template, all or nothing.
func (h *AvailabilityHandler) DeleteTemplateHandler(c *gin.Context) {
	id, ok := teacherID(c)
	if !ok {
		return
	}
	templateID := c.Param("templateID")
	if templateID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing template ID in path"})
		return
	}

	slots, err := h.Service.DeleteTemplate(c.Request.Context(), id, templateID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	utils.InvalidateCalendarMonths(c.Request.Context(), id, slotDates(slots)...)

	c.JSON(http.StatusOK, gin.H{
		"message":      "Template deleted successfully",
		"deletedCount": len(slots),
	})
}

func slotDates(slots []models.TimeSlot) []string {
	dates := make([]string, 0, len(slots))
	for _, slot := range slots {
		dates = append(dates, slot.Date)
	}
	return dates
}

// monthStarts returns the first day of every month in the inclusive date
// range, so a cross-month template invalidates each month it touches.
func monthStarts(from, to string) []string {
	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil
	}
	end, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil
	}

	var dates []string
	for cur := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC); !cur.After(end); cur = cur.AddDate(0, 1, 0) {
		dates = append(dates, cur.Format("2006-01-02"))
	}
	return dates
}
