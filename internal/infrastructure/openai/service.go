package openai

import (
	"sync"

	"github.com/sashabaranov/go-openai"

	"github.com/deepgram/simplechat/pkg/logger"
)

type Service struct {
	mu     sync.RWMutex
	client *openai.Client
}

// NewService returns nil when no key is configured; the chat service then
// answers every request with a configuration error.
func NewService(key, baseURL string) *Service {
	logger.Info(logger.SERVICE, "Initialising OpenAI service")

	if key == "" {
		logger.Warn(logger.SERVICE, "OpenAI service not configured - OPENAI_API_KEY missing")
		return nil
	}

	cfg := openai.DefaultConfig(key)
	if baseURL != "" {
		logger.Info(logger.SERVICE, "Using OpenAI base URL %s", baseURL)
		cfg.BaseURL = baseURL
	}

	return &Service{
		client: openai.NewClientWithConfig(cfg),
	}
}

func (s *Service) GetClient() *openai.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client
}
