package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deepgram/simplechat/internal/services/chat"
)

func TestInitializeServicesWithoutOpenAI(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("CACHE_TTL", "")

	svcs := InitializeServices()
	defer svcs.Close()

	chatService := svcs.GetChatService()
	assert.NotNil(t, chatService)
	assert.False(t, chatService.Configured())
	assert.Nil(t, svcs.cacheService)
	assert.Equal(t, CacheDisabled, svcs.CacheStatus(context.Background()))

	_, err := chatService.Reply(context.Background(), "hi")
	assert.ErrorIs(t, err, chat.ErrNotConfigured)
}

func TestInitializeServicesWithOpenAI(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("REDIS_URL", "")
	t.Setenv("CACHE_TTL", "5m")

	svcs := InitializeServices()
	defer svcs.Close()

	assert.True(t, svcs.GetChatService().Configured())
	assert.NotNil(t, svcs.cacheService, "memory cache is used without Redis")
	assert.Equal(t, CacheMemory, svcs.CacheStatus(context.Background()))
}
