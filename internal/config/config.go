package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"church-treasury/internal/models"
)

type Config struct {
	Server   ServerConfig
	Security SecurityConfig
	Ledger   LedgerConfig
	Report   ReportConfig
	Seed     SeedConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	LogFormat        string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

// LedgerConfig controls the cash ledger list
type LedgerConfig struct {
	// DefaultYearScope applies when a list request names no year: "all" or "current"
	DefaultYearScope string
}

// ReportConfig controls the general report
type ReportConfig struct {
	DefaultYearScope string
	AvailableYears   int
}

// SeedConfig controls generated sample data on startup
type SeedConfig struct {
	Enabled bool
	Months  int
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			LogFormat:       getEnv("LOG_FORMAT", ""),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
		Ledger: LedgerConfig{
			DefaultYearScope: getEnv("LEDGER_DEFAULT_YEAR_SCOPE", models.YearScopeAll),
		},
		Report: ReportConfig{
			DefaultYearScope: getEnv("REPORT_DEFAULT_YEAR_SCOPE", models.YearScopeCurrent),
			AvailableYears:   getIntEnv("REPORT_AVAILABLE_YEARS", 5),
		},
		Seed: SeedConfig{
			Enabled: getBoolEnv("SEED_SAMPLE_DATA", false),
			Months:  getIntEnv("SEED_MONTHS", 12),
		},
	}

	if config.Server.LogFormat == "" {
		config.Server.LogFormat = "text"
		if config.IsProduction() {
			config.Server.LogFormat = "json"
		}
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

// Validate reports every setting that cannot be used
func (c *Config) Validate() error {
	var errs []error

	if !models.IsValidYearScope(c.Ledger.DefaultYearScope) {
		errs = append(errs, fmt.Errorf("LEDGER_DEFAULT_YEAR_SCOPE must be %q or %q, got %q",
			models.YearScopeAll, models.YearScopeCurrent, c.Ledger.DefaultYearScope))
	}
	if !models.IsValidYearScope(c.Report.DefaultYearScope) {
		errs = append(errs, fmt.Errorf("REPORT_DEFAULT_YEAR_SCOPE must be %q or %q, got %q",
			models.YearScopeAll, models.YearScopeCurrent, c.Report.DefaultYearScope))
	}
	if c.Report.AvailableYears < 1 {
		errs = append(errs, fmt.Errorf("REPORT_AVAILABLE_YEARS must be positive, got %d", c.Report.AvailableYears))
	}
	if c.Security.RateLimitPerSecond < 1 || c.Security.RateLimitBurst < 1 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_SECOND and RATE_LIMIT_BURST must be positive"))
	}
	if c.Seed.Enabled && c.Seed.Months < 1 {
		errs = append(errs, fmt.Errorf("SEED_MONTHS must be positive, got %d", c.Seed.Months))
	}
	if c.Server.LogFormat != "text" && c.Server.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.Server.LogFormat))
	}

	return errors.Join(errs...)
}

// Address is the listen address of the HTTP server
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins.")
		} else {
			log.Println("INFO: CORS_ALLOW_ORIGINS not set, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}
