package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestIssueAndValidateToken(t *testing.T) {
	token, err := IssueToken(secret, "cli", time.Hour)
	require.NoError(t, err)

	result := ValidateToken(secret, token)
	assert.True(t, result.Valid)
	assert.Equal(t, "cli", result.Subject)
}

func TestValidateTokenRejects(t *testing.T) {
	expired, err := IssueToken(secret, "cli", -time.Minute)
	require.NoError(t, err)

	otherSecret, err := IssueToken([]byte("other"), "cli", time.Hour)
	require.NoError(t, err)

	wrongIssuer, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(secret)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: Issuer},
	}).SignedString(secret)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"expired", expired},
		{"signed with another secret", otherSecret},
		{"wrong issuer", wrongIssuer},
		{"no expiry", noExpiry},
		{"garbage", "not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, ValidateToken(secret, tt.token).Valid)
		})
	}
}

func TestIssueTokenWithoutSecret(t *testing.T) {
	_, err := IssueToken(nil, "cli", time.Hour)
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"Bearer abc", "abc"},
		{"bearer abc", "abc"},
		{"Basic abc", ""},
		{"Bearer", ""},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/api/chat", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, ExtractToken(r))
		})
	}
}
