package handlers

import (
	"net/http"

	"github.com/deepgram/simplechat/internal/domain/chat/models"
	"github.com/deepgram/simplechat/pkg/httpext"
)

const HealthMessage = "Simple ChatGPT API is running!"

// HandleHealth answers GET / so clients can check the backend is up.
// cacheStatus names the reply cache backend.
func HandleHealth(apiKeyConfigured bool, cacheStatus string, w http.ResponseWriter, r *http.Request) {
	httpext.JsonResponse(w, http.StatusOK, models.HealthResponse{
		Message:          HealthMessage,
		Status:           "healthy",
		APIKeyConfigured: apiKeyConfigured,
		Cache:            cacheStatus,
	})
}
