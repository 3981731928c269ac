package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	App     AppConfig
	API     APIConfig
	Hooks   HooksConfig
	Session SessionConfig
	Notify  NotifyConfig
	Redis   RedisConfig
	OTEL    OTELConfig
}

// AppConfig holds process-level settings
type AppConfig struct {
	Env string
}

// APIConfig holds clinic backend configuration
type APIConfig struct {
	BaseURL         string
	Timeout         time.Duration
	FallbackEnabled bool
}

// HooksConfig holds list/consumption settings
type HooksConfig struct {
	SearchDebounce time.Duration
	PageSize       int
}

// SessionConfig selects where the bearer token and user info live
type SessionConfig struct {
	Backend   string
	FilePath  string
	Namespace string
}

// NotifyConfig selects the notification sink
type NotifyConfig struct {
	Backend string
	Channel string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

const (
	SessionBackendFile  = "file"
	SessionBackendRedis = "redis"

	NotifyBackendLog   = "log"
	NotifyBackendRedis = "redis"
)

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env: getEnv("APP_ENV", "development"),
		},
		API: APIConfig{
			BaseURL:         strings.TrimRight(getEnv("CLINIC_API_BASE_URL", "https://api.hivclinic.vn"), "/"),
			Timeout:         time.Duration(getEnvAsInt("CLINIC_API_TIMEOUT_SECONDS", 15)) * time.Second,
			FallbackEnabled: getEnvAsBool("CLINIC_FALLBACK_ENABLED", true),
		},
		Hooks: HooksConfig{
			SearchDebounce: time.Duration(getEnvAsInt("CLINIC_SEARCH_DEBOUNCE_MS", 500)) * time.Millisecond,
			PageSize:       getEnvAsInt("CLINIC_PAGE_SIZE", 10),
		},
		Session: SessionConfig{
			Backend:   getEnv("SESSION_BACKEND", SessionBackendFile),
			FilePath:  getEnv("SESSION_FILE", defaultSessionFile()),
			Namespace: getEnv("SESSION_NAMESPACE", "hivclinic"),
		},
		Notify: NotifyConfig{
			Backend: getEnv("NOTIFY_BACKEND", NotifyBackendLog),
			Channel: getEnv("NOTIFY_CHANNEL", "clinic:notifications"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "hivclinic-client"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late at first use
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("CLINIC_API_BASE_URL must not be empty")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("CLINIC_API_BASE_URL must be an http(s) URL, got %q", c.API.BaseURL)
	}
	switch c.Session.Backend {
	case SessionBackendFile, SessionBackendRedis:
	default:
		return fmt.Errorf("unknown SESSION_BACKEND %q", c.Session.Backend)
	}
	switch c.Notify.Backend {
	case NotifyBackendLog, NotifyBackendRedis:
	default:
		return fmt.Errorf("unknown NOTIFY_BACKEND %q", c.Notify.Backend)
	}
	if c.Hooks.PageSize <= 0 {
		c.Hooks.PageSize = 10
	}
	return nil
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), "hivclinic", "session.json")
	}
	return filepath.Join(home, ".hivclinic", "session.json")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
