package chatclient

import (
	"fmt"
	"strings"
)

// UIState is the visible phase of one interaction
type UIState int

const (
	Idle UIState = iota
	Sending
	Success
	Error
)

func (s UIState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Sending:
		return "sending"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("UIState(%d)", int(s))
	}
}

const (
	// TriggerLabel is the resting label of the send control
	TriggerLabel = "Send to ChatGPT"
	// SendingLabel replaces TriggerLabel while a request is in flight
	SendingLabel = "Sending to ChatGPT..."
	// EmptyInputNotice is shown when the user submits blank input
	EmptyInputNotice = "Please enter a question first!"
)

// Model is everything the UI surface shows. Trigger state is derived from
// State so there is nothing to reset by hand after a request.
type Model struct {
	State   UIState
	Input   string
	Focused bool
	Notice  string
	Pending string
	Reply   string
	Failure error
}

// TriggerEnabled reports whether the send control accepts a press
func (m Model) TriggerEnabled() bool {
	return m.State != Sending
}

func (m Model) TriggerLabel() string {
	if m.State == Sending {
		return SendingLabel
	}
	return TriggerLabel
}

// Event is an input to Transition
type Event interface {
	isEvent()
}

// Submit asks to send Input, trimmed, to the backend
type Submit struct{ Input string }

// Edit replaces the input text as the user types
type Edit struct{ Input string }

// FillExample puts a preset prompt into the input and focuses it
type FillExample struct{ Text string }

// Replied carries the backend's response text
type Replied struct{ Text string }

// Failed carries the RequestFailure of the in-flight request
type Failed struct{ Err error }

// Reset clears a finished interaction back to Idle
type Reset struct{}

func (Submit) isEvent()      {}
func (Edit) isEvent()        {}
func (FillExample) isEvent() {}
func (Replied) isEvent()     {}
func (Failed) isEvent()      {}
func (Reset) isEvent()       {}

// Effect is work Transition asks the caller to perform
type Effect interface {
	isEffect()
}

// Post sends Message to the chat endpoint; its outcome comes back as
// Replied or Failed.
type Post struct{ Message string }

// Notify shows a blocking notice to the user
type Notify struct{ Text string }

// Focus moves input focus to the text field
type Focus struct{}

func (Post) isEffect()   {}
func (Notify) isEffect() {}
func (Focus) isEffect()  {}

// Transition is the whole interaction state machine:
// Idle -> Sending -> (Success | Error) -> Idle. Success and Error accept a new
// Submit the same way Idle does. It has no side effects.
func Transition(m Model, ev Event) (Model, []Effect) {
	switch ev := ev.(type) {
	case Submit:
		if m.State == Sending {
			// the trigger is disabled
			return m, nil
		}
		message := strings.TrimSpace(ev.Input)
		if message == "" {
			m.Notice = EmptyInputNotice
			return m, []Effect{Notify{Text: EmptyInputNotice}}
		}
		m.State = Sending
		m.Notice = ""
		m.Pending = message
		m.Reply = ""
		m.Failure = nil
		return m, []Effect{Post{Message: message}}

	case Edit:
		m.Input = ev.Input
		m.Notice = ""
		return m, nil

	case FillExample:
		m.Input = ev.Text
		m.Focused = true
		return m, []Effect{Focus{}}

	case Replied:
		if m.State != Sending {
			return m, nil
		}
		m.State = Success
		m.Pending = ""
		m.Reply = ev.Text
		return m, nil

	case Failed:
		if m.State != Sending {
			return m, nil
		}
		m.State = Error
		m.Pending = ""
		m.Failure = ev.Err
		return m, nil

	case Reset:
		if m.State == Sending {
			return m, nil
		}
		m.State = Idle
		m.Notice = ""
		m.Reply = ""
		m.Failure = nil
		return m, nil
	}

	return m, nil
}
