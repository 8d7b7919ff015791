package models

// ChatRequest is the body of POST /api/chat
type ChatRequest struct {
	Message string `json:"message" validate:"required,notblank"`
}

// ChatResponse is the success body of POST /api/chat
type ChatResponse struct {
	Response string `json:"response"`
}

// HealthResponse is the body of GET /
type HealthResponse struct {
	Message          string `json:"message"`
	Status           string `json:"status"`
	APIKeyConfigured bool   `json:"api_key_configured"`
	Cache            string `json:"cache"`
}
