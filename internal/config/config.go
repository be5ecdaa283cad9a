package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort     int
	DatabasePath   string
	JWTSecret      string
	BackupPath     string
	BackupSchedule string // Standard cron expression, e.g. "@daily"
	BackupKeep     int    // Number of backup files to retain
}

// Load loads configuration from environment variables or sets defaults.
// JWT_SECRET has no default; refusing to start beats signing tokens with
// an empty key.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "3003")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	keepStr := getEnv("BACKUP_KEEP", "7")
	keep, err := strconv.Atoi(keepStr)
	if err != nil {
		return nil, err
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	return &Config{
		ServerPort:     port,
		DatabasePath:   getEnv("DATABASE_PATH", "./bloglist.db"),
		JWTSecret:      secret,
		BackupPath:     getEnv("BACKUP_PATH", "./backups"),
		BackupSchedule: getEnv("BACKUP_SCHEDULE", "@daily"),
		BackupKeep:     keep,
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
