package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the session manager
type Config struct {
	// Server
	Port     string `yaml:"port"`
	Host     string `yaml:"host"`
	LogLevel string `yaml:"log_level"`

	// Client origin, used to derive the password-reset completion target
	PublicOrigin string `yaml:"public_origin"`

	// Profile store
	DatabaseURL string `yaml:"database_url"`

	// Identity provider
	KratosPublicURL string `yaml:"kratos_public_url"`

	// Local credential cache
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`

	// Session behavior
	SessionTTL    time.Duration `yaml:"session_ttl"`
	WatchInterval time.Duration `yaml:"watch_interval"`

	// Presentation
	DefaultTheme string `yaml:"default_theme"`

	// HTTP
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Load reads configuration from an optional YAML file (CONFIG_FILE) with
// environment variables taking precedence.
func Load() (*Config, error) {
	config := &Config{
		Port:          "9600",
		Host:          "0.0.0.0",
		LogLevel:      "info",
		SessionTTL:    24 * time.Hour,
		WatchInterval: 30 * time.Second,
		DefaultTheme:  "auto",
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := config.loadFile(path); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", config.Port)
	config.Host = getEnvOrDefault("HOST", config.Host)
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", config.LogLevel)

	// Origin configuration
	config.PublicOrigin = getEnvOrDefault("PUBLIC_ORIGIN", config.PublicOrigin)
	if config.PublicOrigin == "" {
		return nil, fmt.Errorf("PUBLIC_ORIGIN is required")
	}

	// Profile store configuration
	config.DatabaseURL = getEnvOrDefault("DATABASE_URL", config.DatabaseURL)
	if config.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	// Identity provider configuration
	config.KratosPublicURL = getEnvOrDefault("KRATOS_PUBLIC_URL", config.KratosPublicURL)
	if config.KratosPublicURL == "" {
		return nil, fmt.Errorf("KRATOS_PUBLIC_URL is required")
	}

	// Credential cache configuration
	config.RedisAddr = getEnvOrDefault("REDIS_ADDR", config.RedisAddr)
	if config.RedisAddr == "" {
		return nil, fmt.Errorf("REDIS_ADDR is required")
	}
	config.RedisPassword = getEnvOrDefault("REDIS_PASSWORD", config.RedisPassword)

	var err error
	redisDBStr := getEnvOrDefault("REDIS_DB", strconv.Itoa(config.RedisDB))
	config.RedisDB, err = strconv.Atoi(redisDBStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	// Session behavior
	if v := os.Getenv("SESSION_TTL"); v != "" {
		config.SessionTTL, err = time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
		}
	}

	if v := os.Getenv("WATCH_INTERVAL"); v != "" {
		config.WatchInterval, err = time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid WATCH_INTERVAL: %w", err)
		}
	}

	// Presentation
	config.DefaultTheme = getEnvOrDefault("DEFAULT_THEME", config.DefaultTheme)

	// HTTP
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		config.AllowedOrigins = splitAndTrim(v)
	}
	if len(config.AllowedOrigins) == 0 {
		config.AllowedOrigins = []string{config.PublicOrigin}
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFile overlays values from a YAML configuration file
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("invalid YAML in %s: %w", path, err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate port
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	// Validate URLs
	if err := validateURL(c.PublicOrigin); err != nil {
		return fmt.Errorf("invalid PUBLIC_ORIGIN: %w", err)
	}
	if err := validateURL(c.KratosPublicURL); err != nil {
		return fmt.Errorf("invalid KRATOS_PUBLIC_URL: %w", err)
	}

	// Validate theme
	validThemes := []string{"light", "dark", "auto"}
	if !contains(validThemes, strings.ToLower(c.DefaultTheme)) {
		return fmt.Errorf("invalid default theme: %s (must be one of: %s)", c.DefaultTheme, strings.Join(validThemes, ", "))
	}

	// Validate session behavior
	if c.SessionTTL < time.Minute {
		return fmt.Errorf("session TTL must be at least 1 minute, got: %v", c.SessionTTL)
	}

	if c.WatchInterval < time.Second {
		return fmt.Errorf("watch interval must be at least 1 second, got: %v", c.WatchInterval)
	}

	return nil
}

// ResetRedirectURL returns the password-reset completion target derived from
// the configured client origin.
func (c *Config) ResetRedirectURL() string {
	return strings.TrimRight(c.PublicOrigin, "/") + "/reset-password"
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func validateURL(urlStr string) error {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return err
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("URL must include scheme and host: %s", urlStr)
	}
	return nil
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
