package config

import (
	"sync"
)

var (
	jwtSecretMu       sync.RWMutex
	jwtSecretOverride []byte
	jwtSecretSet      bool
)

// SetJWTSecret overrides JWT_SECRET and returns a function to restore it
func SetJWTSecret(secret []byte) func() {
	jwtSecretMu.Lock()
	previous, previousSet := jwtSecretOverride, jwtSecretSet
	jwtSecretOverride, jwtSecretSet = secret, true
	jwtSecretMu.Unlock()

	return func() {
		jwtSecretMu.Lock()
		jwtSecretOverride, jwtSecretSet = previous, previousSet
		jwtSecretMu.Unlock()
	}
}

// GetJWTSecret returns the secret that signs and verifies bearer tokens for
// /api/chat. It is read on every call so a .env loaded at startup applies.
func GetJWTSecret() []byte {
	jwtSecretMu.RLock()
	defer jwtSecretMu.RUnlock()
	if jwtSecretSet {
		return jwtSecretOverride
	}
	return []byte(GetEnvOrDefault("JWT_SECRET", ""))
}

// AuthEnabled reports whether /api/chat requires a bearer token
func AuthEnabled() bool {
	return len(GetJWTSecret()) > 0
}
