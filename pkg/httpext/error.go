package httpext

import (
	"encoding/json"
	"net/http"

	"github.com/deepgram/simplechat/pkg/logger"
)

// ErrorResponse is the error body of the chat API. The field name matches the
// `detail` shape clients of /api/chat already expect.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// JsonError writes a JSON error response with the specified status code
func JsonError(w http.ResponseWriter, detail string, code int) {
	JsonResponse(w, code, ErrorResponse{Detail: detail})
}

// JsonResponse encodes v as the JSON body of a response with the given status
func JsonResponse(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		// headers are already sent, nothing left but to log
		logger.Error(logger.HANDLER, "Failed to encode response body: %v", err)
	}
}
