package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Auth     AuthConfig
	S3       S3Config
	SMTP     SMTPConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// AuthConfig holds the bearer-token settings for the ingest API
type AuthConfig struct {
	Secret          string
	TokenExpiration string
}

// S3Config holds the bucket layout of the ingestion pipeline
type S3Config struct {
	Region        string
	RawBucket     string
	TrustedBucket string
	BackupBucket  string
	RawPrefix     string
	PollInterval  time.Duration
}

// SMTPConfig holds the report-mail settings
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	ReportTo string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, relying on environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "timesync"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.Auth = AuthConfig{
		Secret:          getEnv("AUTH_SECRET_KEY", ""),
		TokenExpiration: getEnv("AUTH_TOKEN_EXPIRATION", "24h"),
	}

	pollInterval, err := time.ParseDuration(getEnv("S3_POLL_INTERVAL", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid S3_POLL_INTERVAL: %w", err)
	}

	config.S3 = S3Config{
		Region:        getEnv("AWS_REGION", "us-east-1"),
		RawBucket:     getEnv("S3_RAW_BUCKET", ""),
		TrustedBucket: getEnv("S3_TRUSTED_BUCKET", ""),
		BackupBucket:  getEnv("S3_BACKUP_BUCKET", ""),
		RawPrefix:     getEnv("S3_RAW_PREFIX", "timesheets/"),
		PollInterval:  pollInterval,
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", "noreply@timesync.local"),
		FromName: getEnv("SMTP_FROM_NAME", "Timesync"),
		ReportTo: getEnv("SMTP_REPORT_TO", ""),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
