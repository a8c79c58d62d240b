package api

import (
	"net/http"

	authDelivery "household-backend/internal/auth/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		api.GET("/clock", h.clockHandler.GetClock)

		// Daily schedule
		tasks := api.Group("/tasks")
		{
			tasks.GET("", h.taskHandler.GetTasks)
			tasks.PUT("/:id/completion", h.taskHandler.SetCompletion)
			tasks.POST("/:id/toggle", h.taskHandler.Toggle)
			tasks.GET("/history/:date", h.taskHandler.GetHistory)
		}

		// Special tasks (helper side)
		special := api.Group("/special-tasks")
		{
			special.GET("", h.specialTaskHandler.GetSpecialTasks)
			special.POST("/:id/complete", h.specialTaskHandler.Complete)
		}

		// Admin routes
		api.POST("/admin/unlock", h.authHandler.Unlock)
		admin := api.Group("/admin")
		admin.Use(authDelivery.AdminMiddleware(h.authUsecase))
		{
			admin.POST("/special-tasks", h.specialTaskHandler.Assign)
			admin.PUT("/tasks", h.taskHandler.SaveDefinitions)
		}

		// AI helpers
		chat := api.Group("/chat/sessions")
		{
			chat.POST("", h.chatHandler.StartSession)
			chat.GET("/:id/messages", h.chatHandler.GetMessages)
			chat.POST("/:id/messages", h.chatHandler.SendMessage)
		}

		images := api.Group("/images")
		{
			images.POST("", h.imageHandler.Generate)
			images.GET("/latest", h.imageHandler.Latest)
		}

		api.POST("/devices", h.deviceHandler.RegisterDevice)

		// Settings routes - Runtime configuration
		settings := api.Group("/settings")
		{
			settings.GET("/ollama", h.settings.GetOllamaSettings)
			settings.PUT("/ollama", h.settings.UpdateOllamaSettings)
			settings.POST("/ollama/test", h.settings.TestOllamaConnection)
		}
	}
}
