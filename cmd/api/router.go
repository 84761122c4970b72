package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authDelivery "recoverylink-backend/internal/auth/delivery"
	authUsecase "recoverylink-backend/internal/auth/usecase"
	contactDelivery "recoverylink-backend/internal/contact/delivery"
	notificationDelivery "recoverylink-backend/internal/notification/delivery"
	scheduleDelivery "recoverylink-backend/internal/schedule/delivery"
	tokenDelivery "recoverylink-backend/internal/token/delivery"
)

func SetupRoutes(
	r *gin.Engine,
	authUc authUsecase.AuthUsecase,
	contactHandler *contactDelivery.ContactHandler,
	notificationHandler *notificationDelivery.NotificationHandler,
	scheduleHandler *scheduleDelivery.ScheduleHandler,
	tokenHandler *tokenDelivery.TokenHandler,
) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Care-team contact routes (protected)
		contacts := api.Group("/contacts")
		contacts.Use(authDelivery.AuthMiddleware(authUc))
		{
			contacts.POST("", contactHandler.CreateContact)
			contacts.GET("", contactHandler.GetContacts)
			contacts.GET("/:id", contactHandler.GetContactByID)
			contacts.PUT("/:id", contactHandler.UpdateContact)
			contacts.DELETE("/:id", contactHandler.DeleteContact)
		}

		// Notification routes (protected)
		notifications := api.Group("/notifications")
		notifications.Use(authDelivery.AuthMiddleware(authUc))
		{
			notifications.GET("", notificationHandler.GetHistory)
			notifications.POST("/broadcast", notificationHandler.Broadcast)
		}

		// Exercise schedule routes (protected)
		schedules := api.Group("/schedules")
		schedules.Use(authDelivery.AuthMiddleware(authUc))
		{
			schedules.POST("", scheduleHandler.CreateSchedule)
		}

		// Calendar authorization routes (protected)
		calendar := api.Group("/calendar")
		calendar.Use(authDelivery.AuthMiddleware(authUc))
		{
			calendar.GET("/auth-url", tokenHandler.GetAuthURL)
			calendar.POST("/token", tokenHandler.StoreToken)
			calendar.GET("/token", tokenHandler.GetTokenStatus)
			calendar.DELETE("/token", tokenHandler.RevokeToken)
		}
	}
}
