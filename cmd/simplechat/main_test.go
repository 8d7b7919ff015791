package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepgram/simplechat/internal/auth"
	"github.com/deepgram/simplechat/internal/chatclient"
	"github.com/deepgram/simplechat/internal/services"
	"github.com/deepgram/simplechat/internal/services/chat"
	"github.com/deepgram/simplechat/pkg/httpext"
	"github.com/deepgram/simplechat/pkg/logger"
)

// isolate keeps the developer's .env and services out of the test
func isolate(t *testing.T) string {
	t.Helper()
	for _, key := range []string{"OPENAI_API_KEY", "REDIS_URL", "JWT_SECRET", "CHAT_TOKEN", "CHAT_TIMEOUT", "CACHE_TTL", "RATELIMIT_ENABLED"} {
		t.Setenv(key, "")
	}
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestMainServer(t *testing.T) {
	isolate(t)

	svcs := services.InitializeServices()
	defer svcs.Close()

	server := httptest.NewServer(setupRouter(svcs))
	defer server.Close()

	t.Run("health endpoint", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/")
		if err != nil {
			t.Fatalf("Failed to make request: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected status code %d, got %d", http.StatusOK, resp.StatusCode)
		}

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, false, body["api_key_configured"])
		assert.Equal(t, services.CacheDisabled, body["cache"])
	})

	t.Run("chat without API key", func(t *testing.T) {
		resp, err := http.Post(server.URL+"/api/chat", "application/json", strings.NewReader(`{"message":"hello"}`))
		if err != nil {
			t.Fatalf("Failed to make request: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusInternalServerError {
			t.Errorf("Expected status code %d, got %d", http.StatusInternalServerError, resp.StatusCode)
		}

		var body httpext.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, chat.ErrNotConfigured.Error(), body.Detail)
	})

	t.Run("invalid endpoint", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/invalid")
		if err != nil {
			t.Fatalf("Failed to make request: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("Expected status code %d, got %d", http.StatusNotFound, resp.StatusCode)
		}
	})
}

func TestRunServerListenFailure(t *testing.T) {
	isolate(t)

	var logs bytes.Buffer
	defer logger.SetOutput(&logs)()

	err := runServer(context.Background(), "localhost:-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server failed")
	assert.Contains(t, logs.String(), `"level":"fatal"`)
	assert.Contains(t, logs.String(), "Server failed on localhost:-1")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// backend fakes /api/chat and returns a function listing the messages it got
func backend(t *testing.T, status int, reply string) (string, func() []string) {
	t.Helper()

	var (
		mu       sync.Mutex
		received []string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		mu.Lock()
		received = append(received, req.Message)
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]string{"response": reply})
	}))
	t.Cleanup(server.Close)
	return server.URL + "/api/chat", func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), received...)
	}
}

func TestAskCommand(t *testing.T) {
	envFile := isolate(t)

	t.Run("prints the reply", func(t *testing.T) {
		endpoint, received := backend(t, http.StatusOK, "Hello\nWorld")

		out, err := execute(t, "--env-file", envFile, "ask", "--endpoint", endpoint, "  what", "is AI?  ")
		require.NoError(t, err)
		assert.Equal(t, "Hello\nWorld\n", out)
		assert.Equal(t, []string{"what is AI?"}, received())
	})

	t.Run("prints the HTML fragment", func(t *testing.T) {
		endpoint, _ := backend(t, http.StatusOK, "Hello\nWorld")

		out, err := execute(t, "--env-file", envFile, "ask", "--html", "--endpoint", endpoint, "hi")
		require.NoError(t, err)
		assert.Equal(t, chatclient.RenderResponse("Hello\nWorld")+"\n", out)
	})

	t.Run("sends a preset example", func(t *testing.T) {
		endpoint, received := backend(t, http.StatusOK, "ok")

		_, err := execute(t, "--env-file", envFile, "ask", "--endpoint", endpoint, "--example", "2")
		require.NoError(t, err)
		assert.Equal(t, []string{chatclient.DefaultExamples[1]}, received())
	})

	t.Run("status failure exits with error", func(t *testing.T) {
		endpoint, _ := backend(t, http.StatusInternalServerError, "")

		_, err := execute(t, "--env-file", envFile, "ask", "--endpoint", endpoint, "hi")
		require.Error(t, err)

		var failure *chatclient.RequestFailure
		require.True(t, errors.As(err, &failure))
		assert.Equal(t, http.StatusInternalServerError, failure.StatusCode)
		assert.Contains(t, err.Error(), "Make sure the backend server is running on")
	})

	t.Run("blank input never reaches the backend", func(t *testing.T) {
		endpoint, received := backend(t, http.StatusOK, "ok")

		_, err := execute(t, "--env-file", envFile, "ask", "--endpoint", endpoint, "   ")
		assert.ErrorIs(t, err, chatclient.ErrEmptyInput)
		assert.Empty(t, received())
	})

	t.Run("example out of range", func(t *testing.T) {
		_, err := execute(t, "--env-file", envFile, "ask", "--example", "9")
		assert.Error(t, err)
	})
}

func TestTokenCommand(t *testing.T) {
	envFile := isolate(t)

	_, err := execute(t, "--env-file", envFile, "token")
	assert.ErrorIs(t, err, auth.ErrNoSecret)

	t.Setenv("JWT_SECRET", "cli-secret")
	out, err := execute(t, "--env-file", envFile, "token", "--subject", "tester")
	require.NoError(t, err)

	result := auth.ValidateToken([]byte("cli-secret"), strings.TrimSpace(out))
	assert.True(t, result.Valid)
	assert.Equal(t, "tester", result.Subject)
}
