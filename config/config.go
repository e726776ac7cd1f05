package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// hostedResponsePath is the fixed endpoint the hosted (redirect) flow sends
// the payer back to. The same URL is used for both the success and failure
// redirect targets; the handler behind it belongs to the host application.
const hostedResponsePath = "payments/dps/response"

// Config holds all module configuration
type Config struct {
	Gateway  GatewayConfig
	Hosted   HostedConfig
	Receipt  ReceiptConfig
	Logger   LoggerConfig
	Database DatabaseConfig
	App      AppConfig
}

// GatewayConfig holds DPS credentials. PostUsername/PostPassword authenticate
// the server-to-server (PxPost) integration, PxPayUserID/PxPayKey the hosted
// (PxPay) integration. The gateway client implementation consumes these.
type GatewayConfig struct {
	PostUsername string
	PostPassword string
	PxPayUserID  string
	PxPayKey     string
}

// HostedConfig holds settings for the hosted redirect flow
type HostedConfig struct {
	CallbackBaseURL string
}

// ReceiptConfig holds receipt email settings. An empty From address disables
// receipt sending entirely.
type ReceiptConfig struct {
	From string
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	ConnMaxLifetime time.Duration
	MaxOpenConns    int
	MaxIdleConns    int
}

// AppConfig holds payment behaviour configuration
type AppConfig struct {
	// UseTransactionalWrites wraps each lifecycle operation's persist and
	// gateway call in a database transaction when the store supports it.
	UseTransactionalWrites bool
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level string // debug, info, warn, error
}

// Load loads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	cfg := &Config{
		Gateway: GatewayConfig{
			PostUsername: getEnv("DPS_POST_USERNAME", ""),
			PostPassword: getEnv("DPS_POST_PASSWORD", ""),
			PxPayUserID:  getEnv("DPS_PXPAY_USER_ID", ""),
			PxPayKey:     getEnv("DPS_PXPAY_KEY", ""),
		},
		Hosted: HostedConfig{
			CallbackBaseURL: getEnv("DPS_CALLBACK_BASE_URL", ""),
		},
		Receipt: ReceiptConfig{
			From: getEnv("DPS_RECEIPT_FROM", ""),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			DBName:          getEnv("DB_NAME", "dps_payments"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", "5m"),
		},
		App: AppConfig{
			UseTransactionalWrites: getEnvAsBool("DPS_TRANSACTIONAL_WRITES", true),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("database host cannot be empty")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database name cannot be empty")
	}

	if c.Hosted.CallbackBaseURL != "" {
		u, err := url.Parse(c.Hosted.CallbackBaseURL)
		if err != nil || !u.IsAbs() {
			return fmt.Errorf("callback base URL must be absolute, got %q", c.Hosted.CallbackBaseURL)
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	return nil
}

// HostedCallbackURL returns the absolute URL the gateway redirects the payer
// to after a hosted payment attempt, for both outcomes. Empty when no
// callback base URL is configured.
func (c *Config) HostedCallbackURL() string {
	if c.Hosted.CallbackBaseURL == "" {
		return ""
	}
	return strings.TrimSuffix(c.Hosted.CallbackBaseURL, "/") + "/" + hostedResponsePath
}

// DSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		// Fallback to parsing the default if provided value is invalid
		duration, err = time.ParseDuration(defaultValue)
		if err != nil {
			return 0
		}
	}
	return duration
}
