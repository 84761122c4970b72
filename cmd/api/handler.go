package api

import (
	"github.com/gin-gonic/gin"

	authUsecase "recoverylink-backend/internal/auth/usecase"
	contactDelivery "recoverylink-backend/internal/contact/delivery"
	contactUsecase "recoverylink-backend/internal/contact/usecase"
	notificationDelivery "recoverylink-backend/internal/notification/delivery"
	notificationUsecase "recoverylink-backend/internal/notification/usecase"
	scheduleDelivery "recoverylink-backend/internal/schedule/delivery"
	scheduleUsecase "recoverylink-backend/internal/schedule/usecase"
	tokenDelivery "recoverylink-backend/internal/token/delivery"
	tokenUsecase "recoverylink-backend/internal/token/usecase"
)

type Handler struct {
	authUsecase         authUsecase.AuthUsecase
	contactHandler      *contactDelivery.ContactHandler
	notificationHandler *notificationDelivery.NotificationHandler
	scheduleHandler     *scheduleDelivery.ScheduleHandler
	tokenHandler        *tokenDelivery.TokenHandler
}

func NewHandler(
	authUc authUsecase.AuthUsecase,
	contactUc contactUsecase.ContactUsecase,
	notificationUc notificationUsecase.NotificationUsecase,
	scheduleUc scheduleUsecase.ScheduleUsecase,
	tokenUc tokenUsecase.TokenUsecase,
) *Handler {
	return &Handler{
		authUsecase:         authUc,
		contactHandler:      contactDelivery.NewContactHandler(contactUc),
		notificationHandler: notificationDelivery.NewNotificationHandler(notificationUc),
		scheduleHandler:     scheduleDelivery.NewScheduleHandler(scheduleUc),
		tokenHandler:        tokenDelivery.NewTokenHandler(tokenUc),
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.contactHandler, h.notificationHandler, h.scheduleHandler, h.tokenHandler)

	return r.Run(addr)
}
