// File: tutorly/handlers/bundle.go
package handlers

import (
	"errors"
	"net/http"

	"tutorly/services/availability"
	"tutorly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler wires the availability service to the HTTP surface.
// Month-availability caching lives here, not in the service: every write
// handler invalidates the months it touched.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// teacherID retrieves the authenticated teacher from the context (set by
// JWTAuthTeacherMiddleware) and writes the error response itself on failure.
func teacherID(c *gin.Context) (string, bool) {
	idValue, exists := c.Get("teacherID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Teacher not authenticated"})
		return "", false
	}
	id, ok := idValue.(string)
	if !ok || id == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid teacher ID in context"})
		return "", false
	}
	return id, true
}

// respondWithError translates the service's error taxonomy to HTTP statuses.
// Anything untyped is a storage or programming fault and stays opaque.
func respondWithError(c *gin.Context, err error) {
	var (
		validationErr availability.ValidationError
		notFoundErr   availability.NotFoundError
		conflictErr   availability.ConflictError
		noSlotsErr    availability.NoSlotsCreatedError
		bookingErr    availability.BookingConflictError
	)
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"error": conflictErr.Error()})
	case errors.As(err, &noSlotsErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":         noSlotsErr.Error(),
			"conflictCount": noSlotsErr.ConflictCount,
		})
	case errors.As(err, &bookingErr):
		c.JSON(http.StatusConflict, gin.H{"error": bookingErr.Error()})
	default:
		utils.GetLogger().Error("Availability operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
