package config

import (
	"github.com/deepgram/simplechat/pkg/logger"
)

const (
	DefaultOpenAIModel     = "gpt-4.1-nano"
	DefaultAssistantPrompt = "You are a helpful AI assistant. Provide clear, concise, and helpful responses."
)

// GetOpenAIKey returns the OpenAI API key. An empty key leaves the server
// running but every chat request fails with a configuration error.
func GetOpenAIKey() string {
	value := GetEnvOrDefault("OPENAI_API_KEY", "")
	if value == "" {
		logger.Warn(logger.CONFIG, "OPENAI_API_KEY environment variable not set")
	}
	return value
}

// GetOpenAIBaseURL lets the completion client target a compatible proxy
func GetOpenAIBaseURL() string {
	return GetEnvOrDefault("OPENAI_BASE_URL", "")
}

func GetOpenAIModel() string {
	return GetEnvOrDefault("OPENAI_MODEL", DefaultOpenAIModel)
}

// GetAssistantPrompt returns extra instructions appended to the core prompt
func GetAssistantPrompt() string {
	return GetEnvOrDefault("ASSISTANT_PROMPT", "")
}

func GetMaxTokens() int {
	return parseEnvInt("OPENAI_MAX_TOKENS", 500)
}
