// Package config loads runtime configuration from the environment once at
// startup. Components receive the pieces they need instead of reading
// os.Getenv at request time.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Config captures all runtime configuration for the service.
type Config struct {
	Port          string
	Database      DatabaseConfig
	SendGrid      SendGridConfig
	CronSecret    string
	SweepSchedule string
	CORSOrigins   []string
}

// DatabaseConfig holds the Postgres connection settings. A full
// DATABASE_URL wins over the discrete parameters when both are present.
type DatabaseConfig struct {
	URL      string
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

// DSN returns the connection string for the postgres driver.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC connect_timeout=10",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

// SendGridConfig holds the outbound email settings.
type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// Load builds configuration from environment variables. The sweep secret
// and SendGrid sender identity have no defaults and must be set.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getString("PORT", "8080"),
		Database: DatabaseConfig{
			URL:      os.Getenv("DATABASE_URL"),
			Host:     getString("DB_HOST", "localhost"),
			User:     getString("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getString("DB_NAME", "leetremind"),
			Port:     getString("DB_PORT", "5432"),
			SSLMode:  getString("DB_SSL_MODE", "disable"),
		},
		SendGrid: SendGridConfig{
			APIKey:    os.Getenv("SENDGRID_API_KEY"),
			FromEmail: os.Getenv("SENDGRID_FROM_EMAIL"),
			FromName:  getString("SENDGRID_FROM_NAME", "LeetRemind"),
		},
		CronSecret:    os.Getenv("CRON_SECRET"),
		SweepSchedule: os.Getenv("SWEEP_SCHEDULE"),
		CORSOrigins:   splitList(getString("CORS_ORIGINS", "*")),
	}

	if cfg.CronSecret == "" {
		return nil, errors.New("CRON_SECRET must be set")
	}
	if cfg.SendGrid.APIKey == "" {
		return nil, errors.New("SENDGRID_API_KEY must be set")
	}
	if cfg.SendGrid.FromEmail == "" {
		return nil, errors.New("SENDGRID_FROM_EMAIL must be set")
	}

	return cfg, nil
}

func getString(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitList(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
