package chat

import (
	"context"
)

// Service defines the interface for chat operations
type Service interface {
	// Reply sends one user message to the model and returns its answer
	Reply(ctx context.Context, message string) (string, error)
}
