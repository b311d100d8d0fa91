package main

import (
	"time"

	"leetremind/internal/config"
	"leetremind/internal/database"
	"leetremind/internal/handlers"
	"leetremind/internal/services"
	"leetremind/internal/store"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is a local convenience; deployments configure via the environment.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	db, err := database.Init(cfg)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}

	reminderStore := store.NewGormStore(db)
	emailService := services.NewEmailService(cfg.SendGrid)
	sweeper := services.NewSweeper(reminderStore, emailService)

	if cfg.SweepSchedule != "" {
		if err := sweeper.Start(cfg.SweepSchedule); err != nil {
			logger.Fatal("failed to start background sweeper", zap.Error(err))
		}
		defer sweeper.Stop()
	}

	h := handlers.New(reminderStore, emailService, sweeper, cfg.CronSecret)

	router := gin.New()
	router.SetTrustedProxies([]string{"127.0.0.1"})
	router.Use(
		ginzap.Ginzap(logger, time.RFC3339, true),
		ginzap.RecoveryWithZap(logger, true),
		cors.New(cors.Config{
			AllowOrigins: cfg.CORSOrigins,
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "x-cron-secret"},
			MaxAge:       12 * time.Hour,
		}),
	)

	router.GET("/", h.Home)
	router.GET("/health", h.Health)

	api := router.Group("/api")
	{
		api.POST("/set-reminder", h.SetReminder)
		api.POST("/check-reminders", h.CheckReminders)
	}

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
