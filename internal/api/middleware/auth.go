package middleware

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/deepgram/simplechat/internal/auth"
	"github.com/deepgram/simplechat/internal/config"
	"github.com/deepgram/simplechat/pkg/httpext"
)

// RequireAuth demands a valid bearer token when a JWT secret is configured
// and passes everything through otherwise.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !config.AuthEnabled() {
			next.ServeHTTP(w, r)
			return
		}

		tokenString := auth.ExtractToken(r)
		if tokenString == "" {
			log.Warn().Str("path", r.URL.Path).Msg("Missing authorization token")
			httpext.JsonError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		validation := auth.ValidateToken(config.GetJWTSecret(), tokenString)
		if !validation.Valid {
			log.Warn().Str("path", r.URL.Path).Msg("Invalid authorization token")
			httpext.JsonError(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), tokenValidationKey, &validation)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetTokenValidation retrieves the token validation result from the request context
func GetTokenValidation(r *http.Request) *auth.TokenValidationResult {
	if validation, ok := r.Context().Value(tokenValidationKey).(*auth.TokenValidationResult); ok {
		return validation
	}
	return nil
}
