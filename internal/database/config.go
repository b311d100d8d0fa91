package database

import (
	"fmt"
	"leetremind/internal/config"
	"leetremind/internal/models"
	"leetremind/internal/utils"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// Init opens the reminder database, configures the pool and runs
// migrations. The returned handle is owned by the caller; nothing in
// this package keeps global state.
func Init(cfg *config.Config) (*gorm.DB, error) {
	baseLogger := logger.New(
		zap.NewStdLog(zap.L()),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	// The due-reminder sweep runs on a tight cadence; keep its query out
	// of the SQL log.
	filteredLogger := utils.NewFilteringGormLogger(baseLogger, "scheduled_for <=")

	gormConfig := &gorm.Config{
		Logger: filteredLogger,
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
		PrepareStmt: true,
	}

	var db *gorm.DB
	var err error
	maxRetries := 5
	retryDelay := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = gorm.Open(postgres.Open(cfg.Database.DSN()), gormConfig)
		if err == nil {
			break
		}
		zap.L().Warn("database connection attempt failed",
			zap.Int("attempt", i+1),
			zap.Error(err))
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&models.Reminder{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	zap.L().Info("database connection established and migrations completed")
	return db, nil
}
