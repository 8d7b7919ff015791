package config

import (
	"time"

	"github.com/deepgram/simplechat/pkg/logger"
)

func GetRedisURL() string {
	logger.Debug(logger.CONFIG, "Attempting to retrieve Redis URL from environment")
	value := GetEnvOrDefault("REDIS_URL", "")
	if value == "" {
		logger.Debug(logger.CONFIG, "REDIS_URL not set - reply cache stays in memory")
	} else {
		logger.Info(logger.CONFIG, "Redis URL successfully loaded")
	}
	return value
}

func GetRedisPassword() string {
	return GetEnvOrDefault("REDIS_PASSWORD", "")
}

// GetCacheTTL returns how long identical messages reuse a reply. Zero
// disables the reply cache.
func GetCacheTTL() time.Duration {
	return parseEnvDuration("CACHE_TTL", 0)
}
