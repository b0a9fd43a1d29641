package routes

import (
	"net/http"
	"time"

	"dermacare/handlers"
	"dermacare/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterReminderRoutes registers reminder endpoints.
func RegisterReminderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reminders")
	{
		api.Use(middleware.AuthMiddleware())
		api.POST("", hb.CreateReminderHandler)
		api.GET("", hb.GetRemindersHandler)
		api.GET("/:id", hb.GetReminderByIDHandler)
		api.PUT("/:id", hb.UpdateReminderHandler)
		api.DELETE("/:id", hb.DeleteReminderHandler)
	}
}

// RegisterNotificationRoutes registers notification endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.AuthMiddleware())
		api.GET("", hb.GetNotificationsHandler)
		api.PUT("/read-all", hb.MarkAllNotificationsReadHandler)
		api.PUT("/:id/read", hb.MarkNotificationReadHandler)
	}
}

// RegisterSymptomRoutes registers symptom log endpoints.
func RegisterSymptomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/symptoms")
	{
		api.Use(middleware.AuthMiddleware())
		api.POST("", hb.CreateSymptomLogHandler)
		api.GET("", hb.GetSymptomLogsHandler)
		api.GET("/:id", hb.GetSymptomLogByIDHandler)
		api.PUT("/:id", hb.UpdateSymptomLogHandler)
		api.DELETE("/:id", hb.DeleteSymptomLogHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "DermaCare API is running"})
	})
}

// RegisterRoutes wires CORS and all route groups onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterReminderRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterSymptomRoutes(r, hb)
}
