package routes

import (
	"net/http"
	"time"

	"tutorly/handlers"
	"tutorly/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the teacher-facing slot management
// endpoints. Everything here mutates or reads the caller's own slots, so the
// whole group sits behind teacher authentication.
func RegisterAvailabilityRoutes(r *gin.Engine, h *handlers.AvailabilityHandler) {
	api := r.Group("/api/availability")
	{
		api.Use(middleware.JWTAuthTeacherMiddleware())
		api.GET("/slots", h.GetSlotsHandler)
		api.POST("/slots", h.CreateManualSlotHandler)
		api.PATCH("/slots/:slotID/toggle", h.ToggleSlotHandler)
		api.PUT("/slots/:slotID", h.UpdateSlotHandler)
		api.DELETE("/slots/:slotID", h.DeleteSlotHandler)
		api.DELETE("/slots", h.DeleteSlotsHandler)

		api.GET("/templates", h.GetTemplatesHandler)
		api.POST("/templates", h.CreateTemplateHandler)
		api.DELETE("/templates/:templateID", h.DeleteTemplateHandler)
	}
}

// RegisterCalendarRoutes registers the public month-availability endpoint
// students use to browse a teacher's calendar.
func RegisterCalendarRoutes(r *gin.Engine, h *handlers.AvailabilityHandler) {
	api := r.Group("/api/calendar")
	{
		api.GET("/slots", h.MonthAvailabilityHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Tutorly"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *handlers.AvailabilityHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAvailabilityRoutes(r, h)
	RegisterCalendarRoutes(r, h)
	RegisterHealthRoute(r)
}
