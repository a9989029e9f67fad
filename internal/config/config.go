package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// It is the single source of truth for runtime parameters.
type Config struct {
	Port      string
	Env       string
	JWTSecret string

	DB    DatabaseConfig
	Redis RedisConfig
	Admin AdminConfig
	CORS  CORSConfig
	Cache CacheConfig
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// RedisConfig contains Redis connection parameters.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// AdminConfig holds the seed admin account created on first start when
// no admin users exist. Operators must override the defaults before any
// real deployment.
type AdminConfig struct {
	Email    string
	Password string
	FullName string
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	AllowedHosts []string
}

// CacheConfig controls the public content cache.
type CacheConfig struct {
	ContentTTL time.Duration
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that production
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.Port = getEnv("PORT", "8080")
	cfg.Env = getEnv("ENV", "development")
	cfg.JWTSecret = getEnv("JWT_SECRET", "")

	// Database
	cfg.DB = DatabaseConfig{
		Host:     getEnv("DB_HOST", ""),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", ""),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", ""),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Redis
	cfg.Redis = RedisConfig{
		Host:     getEnv("REDIS_HOST", "redis"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}

	// Seed admin account
	cfg.Admin = AdminConfig{
		Email:    getEnv("ADMIN_EMAIL", "admin@mis.com"),
		Password: getEnv("ADMIN_PASSWORD", "admin123"),
		FullName: getEnv("ADMIN_NAME", "Admin User"),
	}

	// CORS
	cfg.CORS = CORSConfig{
		AllowedHosts: splitHosts(getEnv("CORS_ALLOWED_HOSTS",
			"localhost:3000,localhost:5173,127.0.0.1:3000,mispadamapur.in,www.mispadamapur.in,admin.mispadamapur.in")),
	}

	// Content cache TTL
	var err error
	if cfg.Cache.ContentTTL, err = parseDurationEnv("CONTENT_CACHE_TTL", "5m"); err != nil {
		return nil, fmt.Errorf("invalid CONTENT_CACHE_TTL: %w", err)
	}

	// Basic validation for DB parameters — keeps messages concise and helpful.
	if cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.Name == "" {
		return nil, errors.New("database configuration incomplete: ensure DB_HOST, DB_USER, and DB_NAME are set")
	}

	// Validate JWT_SECRET
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set for authentication")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt returns the value of an environment variable as an integer or a default if empty/invalid.
func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// parseDurationEnv reads an environment variable and parses it as time.Duration.
// If the variable is empty, it falls back to the provided default value.
func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must be >= 0")
	}
	return d, nil
}

// splitHosts parses a comma-separated host list, trimming whitespace and
// dropping empty entries.
func splitHosts(raw string) []string {
	parts := strings.Split(raw, ",")
	hosts := make([]string, 0, len(parts))
	for _, p := range parts {
		if h := strings.TrimSpace(p); h != "" {
			hosts = append(hosts, strings.ToLower(h))
		}
	}
	return hosts
}
