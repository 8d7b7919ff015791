// Package ui is the terminal front end of the chat client, built on
// bubbletea. It drives chatclient.Transition from its update loop and runs
// the POST as a tea.Cmd.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/deepgram/simplechat/internal/chatclient"
	"github.com/deepgram/simplechat/pkg/logger"
)

const (
	title       = "🤖 Simple ChatGPT Chat"
	placeholder = "Ask me anything... (Enter to send, Alt+Enter for newline)"
	maxExamples = 12
)

type Options struct {
	Sender     chatclient.Sender
	BackendURL string
	Examples   []string
	// MarkdownStyle enables glamour rendering of replies when set
	MarkdownStyle string
}

// Model is the bubbletea model of the chat screen
type Model struct {
	chat     chatclient.Model
	sender   chatclient.Sender
	keys     *Keymap
	examples []string

	input    textarea.Model
	spinner  spinner.Model
	viewport viewport.Model
	styles   Styles
	renderer TerminalRenderer
	mdStyle  string

	cancel context.CancelFunc
	width  int
	height int
}

// Messages carrying the outcome of the POST back into Update
type (
	replyMsg   struct{ text string }
	failureMsg struct{ err error }
)

func New(opts Options) Model {
	styles := DefaultStyles()

	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = 4096
	ta.ShowLineNumbers = false
	ta.SetWidth(76)
	ta.SetHeight(4)
	// Enter is bound to submit; line breaks come from alt+enter
	ta.KeyMap.InsertNewline.SetEnabled(false)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Loading

	examples := opts.Examples
	if len(examples) > maxExamples {
		examples = examples[:maxExamples]
	}

	m := Model{
		chat:     chatclient.Model{Focused: true},
		sender:   opts.Sender,
		keys:     NewKeymap(),
		examples: examples,
		input:    ta,
		spinner:  sp,
		viewport: viewport.New(80, 12),
		styles:   styles,
		renderer: TerminalRenderer{Styles: styles, BackendURL: opts.BackendURL},
		mdStyle:  opts.MarkdownStyle,
	}
	if m.mdStyle != "" {
		m.setMarkdownWidth(76)
	}
	m.bindDefaults()
	return m
}

func (m *Model) bindDefaults() {
	m.keys.Bind("enter", handleEnter)
	m.keys.Bind("alt+enter", handleEnter)
	m.keys.Bind("esc", handleEscape)
	m.keys.Bind("ctrl+c", handleQuit)
	for i := range m.examples {
		text := m.examples[i]
		m.keys.Bind(fmt.Sprintf("f%d", i+1), func(m *Model, _ tea.KeyMsg) tea.Cmd {
			return m.apply(chatclient.FillExample{Text: text})
		})
	}
}

// Keys returns the keymap so callers can add or override bindings
func (m Model) Keys() *Keymap {
	return m.keys
}

// Chat returns the interaction state behind the screen
func (m Model) Chat() chatclient.Model {
	return m.chat
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handler, ok := m.keys.Lookup(msg.String()); ok {
			cmd := handler(&m, msg)
			return m, cmd
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != m.chat.Input {
			m.apply(chatclient.Edit{Input: m.input.Value()})
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if m.chat.State != chatclient.Sending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case replyMsg:
		m.cancel = nil
		return m, m.apply(chatclient.Replied{Text: msg.text})

	case failureMsg:
		m.cancel = nil
		return m, m.apply(chatclient.Failed{Err: msg.err})
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// apply runs ev through the state machine and turns its effects into commands
func (m *Model) apply(ev chatclient.Event) tea.Cmd {
	next, effects := chatclient.Transition(m.chat, ev)
	m.chat = next

	var cmds []tea.Cmd
	for _, effect := range effects {
		switch effect := effect.(type) {
		case chatclient.Post:
			cmds = append(cmds, m.post(effect.Message), m.spinner.Tick)
		case chatclient.Notify:
			logger.Warn(logger.UI, "Rejected input: %s", effect.Text)
		case chatclient.Focus:
			m.input.SetValue(m.chat.Input)
			cmds = append(cmds, m.input.Focus())
		}
	}

	m.viewport.SetContent(chatclient.Render(m.chat, m.renderer))
	m.viewport.GotoTop()
	return tea.Batch(cmds...)
}

// post returns the command performing the round trip. Its context is
// cancelled by Esc or Ctrl+C.
func (m *Model) post(message string) tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	sender := m.sender

	return func() (msg tea.Msg) {
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				logger.Error(logger.UI, "Chat request panicked: %v", r)
				msg = failureMsg{err: &chatclient.RequestFailure{Kind: chatclient.FailureTransport, Err: chatclient.ErrAborted}}
			}
		}()

		logger.Info(logger.UI, "Sending message to backend")
		reply, err := sender.Send(ctx, message)
		if err != nil {
			failure := chatclient.AsFailure(err)
			logger.Error(logger.UI, "Chat request failed (%s): %v", failure.Kind, failure)
			return failureMsg{err: failure}
		}
		return replyMsg{text: reply}
	}
}

func handleEnter(m *Model, msg tea.KeyMsg) tea.Cmd {
	key := chatclient.Key{Name: "enter", Alt: msg.Alt}
	if chatclient.ResolveKey(key) == chatclient.KeySubmit {
		return m.apply(chatclient.Submit{Input: m.input.Value()})
	}

	m.input.InsertString("\n")
	return m.apply(chatclient.Edit{Input: m.input.Value()})
}

func handleEscape(m *Model, _ tea.KeyMsg) tea.Cmd {
	if m.chat.State == chatclient.Sending {
		if m.cancel != nil {
			logger.Info(logger.UI, "Cancelling chat request")
			m.cancel()
		}
		return nil
	}
	return m.apply(chatclient.Reset{})
}

func handleQuit(m *Model, _ tea.KeyMsg) tea.Cmd {
	if m.cancel != nil {
		m.cancel()
	}
	return tea.Quit
}

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	m.width, m.height = width, height

	inner := max(width-4, 10)
	m.input.SetWidth(inner)
	m.viewport.Width = inner
	// title, input box, trigger row, examples and help
	chrome := 2 + m.input.Height() + 2 + 2 + len(m.examples) + 2
	m.viewport.Height = max(height-chrome, 3)

	if m.mdStyle != "" {
		m.setMarkdownWidth(inner)
	}
	m.viewport.SetContent(chatclient.Render(m.chat, m.renderer))
}

func (m *Model) setMarkdownWidth(width int) {
	md, err := NewMarkdownRenderer(m.mdStyle, width)
	if err != nil {
		logger.Warn(logger.UI, "Markdown disabled: %v", err)
		m.renderer.Markdown = nil
		return
	}
	m.renderer.Markdown = md
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(m.styles.Input.Render(m.input.View()))
	b.WriteString("\n")

	trigger := m.styles.Trigger
	if !m.chat.TriggerEnabled() {
		trigger = m.styles.TriggerDisabled
	}
	row := []string{trigger.Render(m.chat.TriggerLabel())}
	if m.chat.Notice != "" {
		row = append(row, "  ", m.styles.Notice.Render(m.chat.Notice))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, row...))
	b.WriteString("\n\n")

	for i, example := range m.examples {
		b.WriteString(m.styles.Example.Render(fmt.Sprintf("F%d  %s", i+1, example)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.chat.State == chatclient.Sending {
		b.WriteString(m.spinner.View() + " " + m.renderer.Loading())
	} else {
		b.WriteString(m.viewport.View())
	}

	b.WriteString(m.styles.Help.Render("enter send • alt+enter newline • f1-f" +
		fmt.Sprint(max(len(m.examples), 1)) + " examples • esc cancel/clear • ctrl+c quit"))
	return b.String()
}
