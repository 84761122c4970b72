package main

import (
	"context"
	"log"

	api "recoverylink-backend/cmd/api"
	authUsecase "recoverylink-backend/internal/auth/usecase"
	contactdomain "recoverylink-backend/internal/contact/domain"
	contactRepo "recoverylink-backend/internal/contact/repository"
	contactUsecase "recoverylink-backend/internal/contact/usecase"
	"recoverylink-backend/internal/events"
	notificationdomain "recoverylink-backend/internal/notification/domain"
	"recoverylink-backend/internal/notification/dispatcher"
	notificationRepo "recoverylink-backend/internal/notification/repository"
	notificationUsecase "recoverylink-backend/internal/notification/usecase"
	scheduledomain "recoverylink-backend/internal/schedule/domain"
	scheduleRepo "recoverylink-backend/internal/schedule/repository"
	scheduleUsecase "recoverylink-backend/internal/schedule/usecase"
	tokendomain "recoverylink-backend/internal/token/domain"
	tokenRepo "recoverylink-backend/internal/token/repository"
	tokenUsecase "recoverylink-backend/internal/token/usecase"
	"recoverylink-backend/pkg/config"
	"recoverylink-backend/pkg/database"
	"recoverylink-backend/pkg/gcal"
	"recoverylink-backend/pkg/messaging"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&contactdomain.Contact{},
		&notificationdomain.Record{},
		&tokendomain.CalendarToken{},
		&scheduledomain.ScheduleGuard{},
	); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	// Initialize repositories (dependency injection)
	contactRepository := contactRepo.NewGormContactRepository(db)
	notificationRepository := notificationRepo.NewGormNotificationRepository(db)
	tokenRepository := tokenRepo.NewGormTokenRepository(db)
	guardRepository := scheduleRepo.NewGormGuardRepository(db)

	// Messaging providers. A missing provider disables its channel; sends on
	// that channel then fail into the ledger instead of crashing the engine.
	var smsSender notificationUsecase.SMSSender
	if twilioSender, err := messaging.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber); err != nil {
		log.Printf("[WARN] SMS disabled: %v", err)
	} else {
		smsSender = twilioSender
	}

	var emailSender notificationUsecase.EmailSender
	if sendgridSender, err := messaging.NewSendgridSender(cfg.SendgridAPIKey, cfg.SendgridFromEmail, cfg.SendgridFromName); err != nil {
		log.Printf("[WARN] Email disabled: %v", err)
	} else {
		emailSender = sendgridSender
	}

	// Calendar provider
	calendarService := gcal.NewService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURI)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(cfg)
	contactUsecaseInstance := contactUsecase.NewContactUsecase(contactRepository)
	notificationUsecaseInstance := notificationUsecase.NewNotificationUsecase(
		contactRepository, notificationRepository, smsSender, emailSender,
		cfg.BroadcastWorkers, cfg.SendTimeout,
	)
	tokenUsecaseInstance := tokenUsecase.NewTokenUsecase(tokenRepository, calendarService)

	// Background dispatcher for fire-and-forget broadcasts
	broadcastDispatcher := dispatcher.NewDispatcher(notificationUsecaseInstance, 2)
	broadcastDispatcher.Start()

	scheduleUsecaseInstance := scheduleUsecase.NewScheduleUsecase(
		guardRepository, tokenUsecaseInstance, calendarService, broadcastDispatcher,
	)

	// Domain-event subscriber (Pub/Sub), only when a project is configured
	if cfg.GoogleProjectID != "" {
		eventsService, err := events.NewService(cfg.GoogleProjectID, cfg.GooglePubSubTopic, cfg.GoogleCredentials, broadcastDispatcher)
		if err != nil {
			log.Printf("[ERROR] Failed to initialize events subscriber: %v", err)
		} else {
			go eventsService.Start(context.Background())
		}
	} else {
		log.Printf("[WARN] GOOGLE_PROJECT_ID not configured, events subscriber disabled")
	}

	// Initialize HTTP handler
	handler := api.NewHandler(
		authUsecaseInstance,
		contactUsecaseInstance,
		notificationUsecaseInstance,
		scheduleUsecaseInstance,
		tokenUsecaseInstance,
	)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
