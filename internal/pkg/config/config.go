package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments and have no safe fallback
// - default: Values common across all environments (timeouts, provider endpoints, etc.)
// - optional: Secrets whose absence is reported at request time (payment API key)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Log     LogConfig
	Payment PaymentConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"5000"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

// PaymentConfig holds the GlomoPay integration settings.
// APIKey is optional here; a missing key is reported per request as 500.
type PaymentConfig struct {
	APIKey      string        `envconfig:"GLOMOPAY_API_KEY"`
	BaseURL     string        `envconfig:"GLOMOPAY_BASE_URL" default:"https://api.glomopay.com"`
	Timeout     time.Duration `envconfig:"GLOMOPAY_TIMEOUT" default:"15s"`
	LinkTTL     time.Duration `envconfig:"GLOMOPAY_LINK_TTL" default:"4320h"` // 180 days
	Currency    string        `envconfig:"GLOMOPAY_CURRENCY" default:"USD"`
	PurposeCode string        `envconfig:"GLOMOPAY_PURPOSE_CODE" default:"P1401"`
}

func (c PaymentConfig) Configured() bool {
	return c.APIKey != ""
}

func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ShutdownTimeout: time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		Payment: PaymentConfig{
			APIKey:      "test-api-key",
			BaseURL:     "http://127.0.0.1:0",
			Timeout:     2 * time.Second,
			LinkTTL:     180 * 24 * time.Hour,
			Currency:    "USD",
			PurposeCode: "P1401",
		},
	}
}
