package config

import (
	"os"
	"time"
)

// DefaultJWTSecret is insecure and only meant for local development.
// Operators must override JWT_SECRET in any real deployment.
const DefaultJWTSecret = "change-this-secret"

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret string
	JWTExpiry time.Duration

	// Seed user
	DefaultUserName     string
	DefaultUserEmail    string
	DefaultUserPassword string

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "stayfinder"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret: getEnv("JWT_SECRET", DefaultJWTSecret),
		JWTExpiry: parseDuration(getEnv("JWT_EXPIRY", "168h")),

		DefaultUserName:     getEnv("DEFAULT_USER_NAME", "Test User"),
		DefaultUserEmail:    getEnv("DEFAULT_USER_EMAIL", "test@stayfinder.app"),
		DefaultUserPassword: getEnv("DEFAULT_USER_PASSWORD", "test123"),

		Port:        getEnv("PORT", "5000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 168 * time.Hour
	}
	return d
}
