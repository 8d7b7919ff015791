package config

// DefaultAllowedOrigins are the local frontends allowed to call the API
var DefaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://[::1]:3000",
	"http://localhost:3001",
	"http://127.0.0.1:3001",
	"http://[::1]:3001",
}

// GetListenAddr returns the address the API server binds to
func GetListenAddr() string {
	return GetEnvOrDefault("LISTEN_ADDR", "localhost:8000")
}

// GetAllowedOrigins returns the CORS allow-list
func GetAllowedOrigins() []string {
	return parseEnvList("ALLOWED_ORIGINS", DefaultAllowedOrigins)
}

// GetTrustedProxies returns the proxy addresses or CIDR ranges whose
// X-Forwarded-For header is believed. Empty by default: the socket peer is the
// client.
func GetTrustedProxies() []string {
	return parseEnvList("TRUSTED_PROXIES", nil)
}
