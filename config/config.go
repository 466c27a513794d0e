package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"eventrsvp/internal/domain"
)

// Store drivers accepted in STORE_DRIVER.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	LogLevel    string

	StoreDriver       string
	MongoURI          string
	MongoDatabase     string
	MongoCollection   string
	DBUrl             string
	StoreTimeout      time.Duration
	PanelPassword     string
	PanelPasswordHash string

	AllowedOrigins []string

	EmailProvider    string
	EmailFromAddress string
	EmailFromName    string
	NotifyEmailTo    []string
	AWSRegion        string
	AWSAccessKeyID   string
	AWSSecretKey     string

	// SESInsecureSkipVerify disables TLS verification towards SES. Development only.
	SESInsecureSkipVerify bool
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production the environment is the only source.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:       env,
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		StoreDriver:       strings.ToLower(getEnv("STORE_DRIVER", DriverMongo)),
		MongoURI:          os.Getenv("MONGODB_URI"),
		MongoDatabase:     getEnv("MONGODB_DATABASE", "jantar"),
		MongoCollection:   getEnv("MONGODB_COLLECTION", "confirmacoes"),
		DBUrl:             os.Getenv("DATABASE_URL"),
		PanelPassword:     os.Getenv("PANEL_PASSWORD"),
		PanelPasswordHash: os.Getenv("PANEL_PASSWORD_BCRYPT"),
		AllowedOrigins:    splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:8081")),
		EmailProvider:     strings.ToLower(os.Getenv("EMAIL_PROVIDER")),
		EmailFromAddress:  os.Getenv("EMAIL_FROM_ADDRESS"),
		EmailFromName:     os.Getenv("EMAIL_FROM_NAME"),
		NotifyEmailTo:     splitList(os.Getenv("NOTIFY_EMAIL_TO")),
		AWSRegion:         os.Getenv("AWS_REGION"),
		AWSAccessKeyID:    os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretKey:      os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}

	timeout, err := time.ParseDuration(getEnv("STORE_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("%w: STORE_TIMEOUT: %v", domain.ErrConfiguration, err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("%w: STORE_TIMEOUT must be positive", domain.ErrConfiguration)
	}
	cfg.StoreTimeout = timeout

	if v := os.Getenv("AWS_SES_INSECURE_SKIP_VERIFY"); v != "" {
		skip, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: AWS_SES_INSECURE_SKIP_VERIFY: %v", domain.ErrConfiguration, err)
		}
		cfg.SESInsecureSkipVerify = skip
	}

	return cfg, nil
}

// Validate reports settings the server cannot start without.
// A missing panel password is not one of them: only /login is affected.
func (c *Config) Validate() error {
	var errs []error
	switch c.StoreDriver {
	case DriverMongo:
		if c.MongoURI == "" {
			errs = append(errs, errors.New("MONGODB_URI is required when STORE_DRIVER=mongo"))
		}
	case DriverPostgres:
		if c.DBUrl == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when STORE_DRIVER=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", DriverMongo, DriverPostgres, c.StoreDriver))
	}
	if c.Port == "" {
		errs = append(errs, errors.New("PORT must not be empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrConfiguration, errors.Join(errs...))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
