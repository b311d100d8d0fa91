package utils

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm/logger"
)

// FilteringGormLogger wraps a GORM logger and drops trace output for
// statements matching any of the ignored patterns. Used to keep the
// high-frequency due-reminder sweep query out of the SQL log.
type FilteringGormLogger struct {
	logger.Interface
	ignoredPatterns []string
}

// NewFilteringGormLogger creates a filtering logger over l.
func NewFilteringGormLogger(l logger.Interface, ignoredPatterns ...string) *FilteringGormLogger {
	return &FilteringGormLogger{
		Interface:       l,
		ignoredPatterns: ignoredPatterns,
	}
}

// LogMode implements logger.Interface
func (l *FilteringGormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &FilteringGormLogger{
		Interface:       l.Interface.LogMode(level),
		ignoredPatterns: l.ignoredPatterns,
	}
}

// Trace implements logger.Interface
func (l *FilteringGormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	sql, _ := fc()
	for _, pattern := range l.ignoredPatterns {
		if strings.Contains(sql, pattern) {
			return
		}
	}
	l.Interface.Trace(ctx, begin, fc, err)
}
