// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sessionplanner/config"
	"sessionplanner/cron"
	"sessionplanner/database"
	bookingRepo "sessionplanner/database/repository/booking"
	sessionRepo "sessionplanner/database/repository/session"
	"sessionplanner/handlers"
	"sessionplanner/middleware"
	"sessionplanner/routes"
	"sessionplanner/services/booking"
	ai "sessionplanner/services/intelligence"
	"sessionplanner/services/notification"
	"sessionplanner/services/recommendation"
	"sessionplanner/services/tasks"
	"sessionplanner/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	database.InitDB()
	cache := utils.GetCacheClient()
	utils.StartHealthMonitor(ctx, cache, database.MongoClient)

	// repositories.
	db := database.GetDatabase()
	sessions := sessionRepo.NewMongoSessionRepo(db)
	bookings := bookingRepo.NewMongoBookingRepo(db)
	for name, ensure := range map[string]func() error{
		"sessions": sessions.EnsureIndexes,
		"bookings": bookings.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Warn("main: failed to ensure indexes", zap.String("collection", name), zap.Error(err))
		}
	}

	// services.
	recService := &recommendation.DefaultRecommendationService{
		Sessions:    sessions,
		Snapshots:   recommendation.NewRedisSnapshotStore(cache, config.AppConfig.SnapshotTTL),
		Logger:      logger.Named("recommendation"),
		DefaultTopK: config.AppConfig.DefaultTopK,
	}
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		gemini, err := ai.NewGeminiClient(ctx, key, config.AppConfig.GeminiModel)
		if err != nil {
			logger.Warn("main: Gemini unavailable, AI reorder disabled", zap.Error(err))
		} else {
			defer gemini.Close()
			recService.Reorderer = ai.NewGeminiReorderer(gemini, config.AppConfig.AIReorderTimeout, logger.Named("ai"))
		}
	}

	bookService := &booking.DefaultBookingService{
		Sessions: sessions,
		Bookings: bookings,
		Logger:   logger.Named("booking"),
		BaseURL:  config.AppConfig.PublicBaseURL,
	}

	var worker *asynq.Server
	if config.AppConfig.RemindersEnabled {
		queueOpt := utils.ReminderQueueOpt()
		queue := asynq.NewClient(queueOpt)
		defer queue.Close()
		bookService.Reminders = tasks.NewAsynqReminderScheduler(queue, config.AppConfig.ReminderLeadTime)

		var notifier notification.Notifier = notification.LogNotifier{Logger: logger.Named("reminders")}
		if fcm, err := utils.NewFCMClient(ctx); err != nil {
			logger.Warn("main: FCM unavailable, reminders will only be logged", zap.Error(err))
		} else {
			notifier = notification.NewFCMNotifier(fcm, logger.Named("reminders"))
		}
		worker = cron.InitReminderWorker(ctx, queueOpt, notifier, logger.Named("worker"))
	}

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	handlerBundle := handlers.NewHandlerBundle(recService, bookService, sessions, logger)
	routes.RegisterRoutes(router, handlerBundle, routes.Options{EnableDebug: !config.IsProduction()})

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
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if worker != nil {
		worker.Shutdown()
	}
	if err := database.Disconnect(shutdownCtx); err != nil {
		logger.Sugar().Warnf("main: mongo disconnect: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
