package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/deepgram/simplechat/internal/domain/chat/models"
	"github.com/deepgram/simplechat/internal/services/chat"
	"github.com/deepgram/simplechat/pkg/httpext"
	"github.com/deepgram/simplechat/pkg/logger"
)

// MaxRequestBytes caps the body of POST /api/chat
const MaxRequestBytes = 64 << 10

// HandleChat answers POST /api/chat with {"response": ...}
func HandleChat(chatService chat.Service, w http.ResponseWriter, r *http.Request) {
	logger.Debug(logger.HANDLER, "Starting chat handler")

	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBytes)

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.Warn(logger.HANDLER, "Chat request larger than %d bytes", tooLarge.Limit)
			httpext.JsonError(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		logger.Error(logger.HANDLER, "Failed to decode chat request: %v", err)
		httpext.JsonError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		logger.Warn(logger.HANDLER, "Rejected chat request: %v", err)
		httpext.JsonError(w, "Message cannot be empty", http.StatusBadRequest)
		return
	}

	reply, err := chatService.Reply(r.Context(), req.Message)
	if err != nil {
		if errors.Is(err, chat.ErrNotConfigured) {
			logger.Error(logger.HANDLER, "Chat requested without an OpenAI key")
			httpext.JsonError(w, chat.ErrNotConfigured.Error(), http.StatusInternalServerError)
			return
		}
		logger.Error(logger.HANDLER, "Failed to get reply: %v", err)
		httpext.JsonError(w, "ChatGPT service error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	httpext.JsonResponse(w, http.StatusOK, models.ChatResponse{Response: reply})
}
