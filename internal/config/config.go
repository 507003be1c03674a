// Package config centralises configuration parsing for the enrollment service.
package config

import (
	"os"
	"strings"
)

// Config captures runtime configuration values for the enrollment service.
type Config struct {
	HTTPAddress     string
	KafkaBrokers    []string // Empty disables enrollment event publishing.
	EnrollmentTopic string
	CORSOrigin      string
}

// Load reads environment variables into Config, applying sensible defaults
// for local dev.
func Load() Config {
	cfg := Config{
		HTTPAddress:     getEnv("HTTP_ADDRESS", ":8080"),
		EnrollmentTopic: getEnv("ENROLLMENT_TOPIC", "enrollment_events"),
		CORSOrigin:      getEnv("CORS_ORIGIN", "http://localhost:5173"),
	}

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.KafkaBrokers = splitAndTrim(brokers)
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
