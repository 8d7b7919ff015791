package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/deepgram/simplechat/internal/config"
	"github.com/deepgram/simplechat/internal/domain/chat/models"
	"github.com/deepgram/simplechat/internal/infrastructure/openai"
	"github.com/deepgram/simplechat/internal/infrastructure/redis"
	"github.com/deepgram/simplechat/internal/services/cache"
	"github.com/deepgram/simplechat/internal/services/chat"
)

var (
	// Mutex for thread-safe initialization
	servicesMu sync.RWMutex
)

type Services struct {
	cacheService  *cache.Service
	chatService   *chat.Implementation
	openAIService *openai.Service
	redisService  *redis.Service
}

// InitializeServices wires the backend services from configuration. Only the
// chat service is always present; Redis, the reply cache and OpenAI are
// optional.
func InitializeServices() *Services {
	servicesMu.Lock()
	defer servicesMu.Unlock()

	log.Info().Msg("Initializing core services")

	// Initialize Redis service (optional)
	redisService := redis.NewService(config.GetRedisURL(), config.GetRedisPassword())

	// Reply cache uses Redis when available, memory otherwise
	cacheService := cache.NewService(redisService, config.GetCacheTTL())

	// OpenAI is required to answer, but the server still starts without it
	openAIService := openai.NewService(config.GetOpenAIKey(), config.GetOpenAIBaseURL())
	var completer chat.Completer
	if openAIService != nil {
		completer = openAIService.GetClient()
	} else {
		log.Warn().Msg("OpenAI API key not configured - chat requests will fail")
	}

	prompt := models.NewSystemPrompt(config.DefaultAssistantPrompt)
	prompt.SetCustom(config.GetAssistantPrompt())

	chatService := chat.NewService(completer, chat.Config{
		Model:       config.GetOpenAIModel(),
		MaxTokens:   config.GetMaxTokens(),
		Temperature: 0.7,
	}, prompt, cacheService)
	log.Info().Str("model", config.GetOpenAIModel()).Msg("Initializing chat service")

	log.Info().Msg("All services initialized successfully")

	return &Services{
		cacheService:  cacheService,
		chatService:   chatService,
		openAIService: openAIService,
		redisService:  redisService,
	}
}

// GetChatService returns the chat service
func (s *Services) GetChatService() *chat.Implementation {
	return s.chatService
}

// Cache backends reported by CacheStatus
const (
	CacheDisabled    = "disabled"
	CacheMemory      = "memory"
	CacheRedis       = "redis"
	CacheUnavailable = "unavailable"
)

// CacheStatus reports where replies are cached. A Redis backend that stops
// answering a ping reports CacheUnavailable; lookups then count as misses.
func (s *Services) CacheStatus(ctx context.Context) string {
	servicesMu.RLock()
	defer servicesMu.RUnlock()

	switch {
	case s.cacheService == nil:
		return CacheDisabled
	case s.redisService == nil:
		return CacheMemory
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	if err := s.redisService.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("Redis ping failed")
		return CacheUnavailable
	}
	return CacheRedis
}

// Close releases connections held by the services
func (s *Services) Close() error {
	servicesMu.Lock()
	defer servicesMu.Unlock()

	if s.redisService != nil {
		return s.redisService.Close()
	}
	return nil
}
