package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dermacare/config"
	"dermacare/cron"
	"dermacare/database"
	notificationRepoPkg "dermacare/database/repository/notification"
	reminderRepoPkg "dermacare/database/repository/reminder"
	symptomRepoPkg "dermacare/database/repository/symptom"
	"dermacare/handlers"
	"dermacare/middleware"
	"dermacare/routes"
	"dermacare/services/notification"
	"dermacare/services/reminder"
	"dermacare/services/symptom"
	"dermacare/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	reminderRepo := reminderRepoPkg.NewMongoReminderRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	symptomRepo := symptomRepoPkg.NewMongoSymptomRepo()

	if err := reminderRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Warnf("main: failed to ensure reminder indexes: %v", err)
	}
	if err := notificationRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Warnf("main: failed to ensure notification indexes: %v", err)
	}

	// services.
	reminderService := &reminder.DefaultReminderService{
		Repo: reminderRepo,
	}
	notificationService := &notification.DefaultNotificationService{
		Repo: notificationRepo,
	}
	symptomService := &symptom.DefaultSymptomService{
		Repo: symptomRepo,
	}

	reminderHandler := handlers.NewReminderHandler(reminderService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	symptomHandler := handlers.NewSymptomHandler(symptomService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Reminder endpoints.
		CreateReminderHandler:  reminderHandler.CreateReminderHandler,
		GetRemindersHandler:    reminderHandler.GetRemindersHandler,
		GetReminderByIDHandler: reminderHandler.GetReminderByIDHandler,
		UpdateReminderHandler:  reminderHandler.UpdateReminderHandler,
		DeleteReminderHandler:  reminderHandler.DeleteReminderHandler,

		// Notification endpoints.
		GetNotificationsHandler:         notificationHandler.GetNotificationsHandler,
		MarkNotificationReadHandler:     notificationHandler.MarkNotificationReadHandler,
		MarkAllNotificationsReadHandler: notificationHandler.MarkAllNotificationsReadHandler,

		// Symptom log endpoints.
		CreateSymptomLogHandler:  symptomHandler.CreateSymptomLogHandler,
		GetSymptomLogsHandler:    symptomHandler.GetSymptomLogsHandler,
		GetSymptomLogByIDHandler: symptomHandler.GetSymptomLogByIDHandler,
		UpdateSymptomLogHandler:  symptomHandler.UpdateSymptomLogHandler,
		DeleteSymptomLogHandler:  symptomHandler.DeleteSymptomLogHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the reminder scheduler.
	interval := time.Duration(config.AppConfig.SchedulerIntervalSecs) * time.Second
	scheduler := cron.NewScheduler(reminderService, notificationService, interval)
	scheduler.Start()

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
