package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/deepgram/simplechat/internal/chatclient"
	"github.com/deepgram/simplechat/pkg/logger"
)

const loadingText = "🤖 ChatGPT is thinking..."

// TerminalRenderer draws the output area for a terminal. Replies keep their
// line breaks as they are; with Markdown set they are rendered by glamour.
type TerminalRenderer struct {
	Styles     Styles
	BackendURL string
	Markdown   *glamour.TermRenderer
}

// NewMarkdownRenderer returns a glamour renderer wrapping at width. style is a
// glamour standard style name; "auto" picks one from the terminal background.
func NewMarkdownRenderer(style string, width int) (*glamour.TermRenderer, error) {
	styleOpt := glamour.WithStandardStyle(style)
	if style == "" || style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	}
	return glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
}

func (r TerminalRenderer) Loading() string {
	return r.Styles.Loading.Render(loadingText)
}

func (r TerminalRenderer) Response(text string) string {
	if r.Markdown != nil {
		out, err := r.Markdown.Render(text)
		if err == nil {
			return strings.Trim(out, "\n")
		}
		logger.Warn(logger.UI, "Markdown rendering failed, showing plain text: %v", err)
	}
	return r.Styles.Reply.Render(text)
}

func (r TerminalRenderer) Failure(err error) string {
	message := "unknown error"
	if err != nil {
		message = err.Error()
	}
	return r.Styles.Error.Render("Oops! Something went wrong:\n"+message) +
		"\n\n" + r.Styles.Hint.Render(chatclient.BackendHint(r.BackendURL))
}
