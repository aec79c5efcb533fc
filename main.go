package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"mindloo/config"
	"mindloo/cron"
	"mindloo/database"
	appointmentRepo "mindloo/database/repository/appointment"
	scheduleRepo "mindloo/database/repository/schedule"
	"mindloo/handlers"
	"mindloo/middleware"
	"mindloo/routes"
	"mindloo/services/scheduling"
	"mindloo/services/tasks"
	"mindloo/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Unknown body fields are rejected at the binding layer.
	gin.EnableJsonDecoderDisallowUnknownFields()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// repositories.
	availRepo := scheduleRepo.NewMongoAvailabilityRepo()
	unavailRepo := scheduleRepo.NewMongoUnavailabilityRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()

	// services.
	schedulingService := scheduling.NewDefaultSchedulingService(availRepo, unavailRepo, apptRepo)
	if ttl := config.AppConfig.AvailabilityCacheTTL; ttl > 0 {
		schedulingService.WithCache(utils.GetCacheClient(), time.Duration(ttl)*time.Second)
	}

	// handlers.
	directoryHandlers := handlers.NewDirectoryHandlers()

	// Appointment reminders ride the asynq queue on a dedicated redis DB.
	if lead := config.AppConfig.ReminderLeadMinutes; lead > 0 {
		redisOpt := asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}
		schedulingService.WithReminders(tasks.NewReminderScheduler(redisOpt, time.Duration(lead)*time.Minute))
		cron.InitReminderWorker(redisOpt, directoryHandlers.MessageStore())
	}

	schedulingHandler := handlers.NewSchedulingHandler(schedulingService)

	routes.RegisterRoutes(router, schedulingHandler, directoryHandlers)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
