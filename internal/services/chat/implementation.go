package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sashabaranov/go-openai"

	"github.com/deepgram/simplechat/internal/domain/chat/models"
	"github.com/deepgram/simplechat/internal/services/cache"
	"github.com/deepgram/simplechat/pkg/logger"
)

var (
	// ErrNotConfigured is returned when no OpenAI key was provided
	ErrNotConfigured = errors.New("OpenAI API key not configured. Please add OPENAI_API_KEY to .env file")
	// ErrNoChoices is returned when the completion has no choices
	ErrNoChoices = errors.New("no response choices returned")
)

// Completer is the part of the OpenAI client the service calls
type Completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Config struct {
	Model       string
	MaxTokens   int
	Temperature float32
}

type Implementation struct {
	mu           sync.RWMutex
	completer    Completer
	config       Config
	systemPrompt *models.SystemPrompt
	cache        *cache.Service
}

// NewService builds the chat service. A nil completer is allowed and makes
// every Reply fail with ErrNotConfigured.
func NewService(completer Completer, config Config, systemPrompt *models.SystemPrompt, replies *cache.Service) *Implementation {
	return &Implementation{
		completer:    completer,
		config:       config,
		systemPrompt: systemPrompt,
		cache:        replies,
	}
}

// Configured reports whether an OpenAI client is available
func (s *Implementation) Configured() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.completer != nil
}

func (s *Implementation) Reply(ctx context.Context, message string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.completer == nil {
		logger.Error(logger.CHAT, "OpenAI API key not configured")
		return "", ErrNotConfigured
	}

	key := cache.Key(s.config.Model, message)
	if reply, found := s.cache.Lookup(ctx, key); found {
		logger.Info(logger.CHAT, "Serving cached reply (%d characters)", len(reply))
		return reply, nil
	}

	logger.Info(logger.CHAT, "Sending request to ChatGPT")

	req := openai.ChatCompletionRequest{
		Model: s.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: s.systemPrompt.String(),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: message,
			},
		},
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.completer.CreateChatCompletion(ctx, req)
	if err != nil {
		logger.Error(logger.CHAT, "Failed to get chat completion: %v", err)
		return "", fmt.Errorf("failed to get chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}

	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	logger.Info(logger.CHAT, "ChatGPT response received: %d characters", len(reply))

	s.cache.Store(ctx, key, reply)
	return reply, nil
}
