package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/deepgram/simplechat/internal/api/middleware"
	"github.com/deepgram/simplechat/internal/services/chat"
)

// ChatBackend is the chat service as the routes see it
type ChatBackend interface {
	chat.Service
	Configured() bool
}

// CacheChecker reports the reply cache backend for the health endpoint
type CacheChecker interface {
	CacheStatus(ctx context.Context) string
}

// RegisterRoutes mounts the API on router. cache may be nil, the health
// endpoint then reports the cache as disabled.
func RegisterRoutes(router *mux.Router, chatService ChatBackend, cache CacheChecker) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RateLimit("global"))

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		cacheStatus := "disabled"
		if cache != nil {
			cacheStatus = cache.CacheStatus(r.Context())
		}
		HandleHealth(chatService.Configured(), cacheStatus, w, r)
	}).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.RequireAuth)
	api.Handle("/chat", middleware.RateLimit("chat")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		HandleChat(chatService, w, r)
	}))).Methods("POST")
}

// NewHandler builds the complete HTTP handler. CORS wraps the router so
// preflight requests are answered before route matching.
func NewHandler(chatService ChatBackend, cache CacheChecker, allowedOrigins []string) http.Handler {
	router := mux.NewRouter()
	RegisterRoutes(router, chatService, cache)
	return middleware.CORS(allowedOrigins)(router)
}
