package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Issuer is stamped into every token minted for the chat API
const Issuer = "simplechat"

// Claims are carried by bearer tokens for /api/chat
type Claims struct {
	jwt.RegisteredClaims
}

// TokenValidationResult is stored in the request context by RequireAuth
type TokenValidationResult struct {
	Valid   bool
	Subject string
}
