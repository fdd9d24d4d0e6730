package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override the config file.
const (
	EnvDBPath   = "T2048_DB_PATH"
	EnvLogLevel = "T2048_LOG_LEVEL"
	EnvLogFile  = "T2048_LOG_FILE"
	EnvTickRate = "T2048_TICK_RATE"
)

// LoadDotEnv loads the first .env file found among paths into the process
// environment. Variables already set are left alone. It returns the loaded
// path, or "" when none exists.
func LoadDotEnv(paths ...string) string {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err == nil {
			return path
		}
	}
	return ""
}

// ApplyEnv overrides config fields from T2048_* environment variables.
// Values that do not parse are ignored.
func ApplyEnv(cfg *Config) {
	cfg.Storage.DBPath = getEnv(EnvDBPath, cfg.Storage.DBPath)
	cfg.Log.Level = getEnv(EnvLogLevel, cfg.Log.Level)
	cfg.Log.File = getEnv(EnvLogFile, cfg.Log.File)
	cfg.TickRate = getEnvInt(EnvTickRate, cfg.TickRate)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
