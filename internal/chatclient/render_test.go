package chatclient

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderResponse(t *testing.T) {
	got := RenderResponse("Hello\nWorld")

	assert.Contains(t, got, "Hello<br>World")
	assert.NotContains(t, got, "\n")
}

func TestRenderResponseDoesNotEscape(t *testing.T) {
	assert.Contains(t, RenderResponse("<b>bold</b>"), "<b>bold</b>")
}

func TestRender(t *testing.T) {
	r := HTMLRenderer{BackendURL: "http://localhost:8000"}

	assert.Empty(t, Render(Model{State: Idle}, r))
	assert.Contains(t, Render(Model{State: Sending}, r), "ChatGPT is thinking")
	assert.Contains(t, Render(Model{State: Success, Reply: "a\nb"}, r), "a<br>b")

	failed := Render(Model{State: Error, Failure: &RequestFailure{Kind: FailureStatus, StatusCode: 500}}, r)
	assert.Contains(t, failed, `class="error"`)
	assert.Contains(t, failed, "HTTP error! status: 500")
	assert.Contains(t, failed, "Make sure the backend server is running on http://localhost:8000")
}

func TestRenderFailureWithoutError(t *testing.T) {
	r := HTMLRenderer{BackendURL: "http://localhost:8000"}
	assert.Contains(t, r.Failure(nil), "unknown error")
	assert.Contains(t, r.Failure(errors.New("dial tcp: refused")), "dial tcp: refused")
}

func TestBackendURL(t *testing.T) {
	tests := []struct {
		endpoint string
		want     string
	}{
		{"http://localhost:8000/api/chat", "http://localhost:8000"},
		{"https://chat.example.com:8443/v1/api/chat?x=1", "https://chat.example.com:8443"},
		{"not a url", "not a url"},
	}

	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			assert.Equal(t, tt.want, BackendURL(tt.endpoint))
		})
	}
}

func TestResolveKey(t *testing.T) {
	assert.Equal(t, KeySubmit, ResolveKey(Key{Name: "enter"}))
	assert.Equal(t, KeyDefault, ResolveKey(Key{Name: "enter", Shift: true}))
	assert.Equal(t, KeyDefault, ResolveKey(Key{Name: "enter", Alt: true}))
	assert.Equal(t, KeyDefault, ResolveKey(Key{Name: "a"}))
}
