package chatclient

import (
	"net/url"
	"strings"
)

// Renderer turns the output-area content of a Model into markup for one
// surface.
type Renderer interface {
	Loading() string
	Response(text string) string
	Failure(err error) string
}

// Render draws the output area for m. Idle has an empty output area.
func Render(m Model, r Renderer) string {
	switch m.State {
	case Sending:
		return r.Loading()
	case Success:
		return r.Response(m.Reply)
	case Error:
		return r.Failure(m.Failure)
	default:
		return ""
	}
}

// RenderResponse converts newlines to <br> line breaks. The text is not
// escaped: the backend is trusted.
func RenderResponse(text string) string {
	return `<div style="white-space: pre-line;">` + strings.ReplaceAll(text, "\n", "<br>") + `</div>`
}

// HTMLRenderer renders the output container of the browser page
type HTMLRenderer struct {
	// BackendURL is named in the failure hint
	BackendURL string
}

func (HTMLRenderer) Loading() string {
	return `<div class="loading">🤖 ChatGPT is thinking...</div>`
}

func (HTMLRenderer) Response(text string) string {
	return RenderResponse(text)
}

func (h HTMLRenderer) Failure(err error) string {
	return `<div class="error"><strong>Oops! Something went wrong:</strong><br>` +
		errorText(err) +
		`<br><br><em>` + BackendHint(h.BackendURL) + `</em></div>`
}

// BackendHint is the advice shown under every request failure
func BackendHint(backendURL string) string {
	return "Make sure the backend server is running on " + backendURL
}

// BackendURL reduces a chat endpoint to the scheme and host of the server
func BackendURL(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return endpoint
	}
	return u.Scheme + "://" + u.Host
}

func errorText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
