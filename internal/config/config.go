package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	APIPort          string
	ImagesDir        string
	ProductsPath     string
	ImageRoutePrefix string
	LogLevel         slog.Level
	LogFormat        string
	CacheMaxAge      int
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the result.
// If a .env file exists in the current directory or a parent, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		APIPort:          getEnv("API_PORT", "3000"),
		ImagesDir:        getEnv("IMAGES_DIR", "./public/images/products"),
		ProductsPath:     getEnv("PRODUCTS_PATH", "./data/products.json"),
		ImageRoutePrefix: getEnv("IMAGE_ROUTE_PREFIX", "/api/images/products"),
		LogFormat:        strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	maxAge, err := strconv.Atoi(getEnv("CACHE_MAX_AGE", "31536000"))
	if err != nil {
		return nil, fmt.Errorf("CACHE_MAX_AGE must be a valid integer: %w", err)
	}
	if maxAge <= 0 {
		return nil, fmt.Errorf("CACHE_MAX_AGE must be greater than 0")
	}
	cfg.CacheMaxAge = maxAge

	if !strings.HasPrefix(cfg.ImageRoutePrefix, "/") {
		return nil, fmt.Errorf("IMAGE_ROUTE_PREFIX must start with /, got %q", cfg.ImageRoutePrefix)
	}
	cfg.ImageRoutePrefix = strings.TrimSuffix(cfg.ImageRoutePrefix, "/")

	info, err := os.Stat(cfg.ImagesDir)
	if err != nil {
		return nil, fmt.Errorf("IMAGES_DIR %s: %w", cfg.ImagesDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("IMAGES_DIR %s is not a directory", cfg.ImagesDir)
	}

	if _, err := os.Stat(cfg.ProductsPath); err != nil {
		return nil, fmt.Errorf("PRODUCTS_PATH %s: %w", cfg.ProductsPath, err)
	}

	return cfg, nil
}

// parseLogLevel maps a LOG_LEVEL value to a slog level.
func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL must be debug, info, warn or error, got %q", s)
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
