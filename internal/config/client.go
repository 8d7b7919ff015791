package config

import "time"

// DefaultChatEndpoint is where the backend listens when started with defaults
const DefaultChatEndpoint = "http://localhost:8000/api/chat"

// GetChatEndpoint returns the URL the chat client posts to
func GetChatEndpoint() string {
	return GetEnvOrDefault("CHAT_ENDPOINT", DefaultChatEndpoint)
}

// GetChatTimeout bounds a single chat round trip. Zero, the default, waits
// for the backend indefinitely.
func GetChatTimeout() time.Duration {
	return parseEnvDuration("CHAT_TIMEOUT", 0)
}

// GetChatToken returns the bearer token sent with chat requests, if any
func GetChatToken() string {
	return GetEnvOrDefault("CHAT_TOKEN", "")
}
