package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/deepgram/simplechat/pkg/logger"
)

// GetEnvOrDefault returns the value of an environment variable or a default value
func GetEnvOrDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

// LoadDotEnv loads the given .env files into the process environment. Values
// already present in the environment win. A missing file is not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Debug(logger.CONFIG, "No env file at %s", path)
				continue
			}
			return err
		}
		logger.Info(logger.CONFIG, "Loaded environment from %s", path)
	}
	return nil
}

func parseEnvInt(key string, defaultValue int) int {
	val := GetEnvOrDefault(key, "")
	if val == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		logger.Warn(logger.CONFIG, "Invalid value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return parsed
}

func parseEnvDuration(key string, defaultValue time.Duration) time.Duration {
	val := GetEnvOrDefault(key, "")
	if val == "" {
		return defaultValue
	}

	parsed, err := time.ParseDuration(val)
	if err != nil || parsed < 0 {
		logger.Warn(logger.CONFIG, "Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return parsed
}

func parseEnvList(key string, defaultValue []string) []string {
	val := GetEnvOrDefault(key, "")
	if val == "" {
		return defaultValue
	}
	return cleanEmptyStrings(strings.Split(val, ","))
}

// cleanEmptyStrings trims entries and drops the empty ones
func cleanEmptyStrings(slice []string) []string {
	result := make([]string, 0, len(slice))
	for _, s := range slice {
		if s = strings.TrimSpace(s); s != "" {
			result = append(result, s)
		}
	}
	return result
}
