package chatclient

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	failure := &RequestFailure{Kind: FailureStatus, StatusCode: 500}

	tests := []struct {
		name        string
		from        Model
		event       Event
		wantState   UIState
		wantEffects []Effect
		check       func(t *testing.T, m Model)
	}{
		{
			name:        "blank submit only sets the notice",
			from:        Model{State: Idle},
			event:       Submit{Input: " \t\n "},
			wantState:   Idle,
			wantEffects: []Effect{Notify{Text: EmptyInputNotice}},
			check: func(t *testing.T, m Model) {
				assert.Equal(t, EmptyInputNotice, m.Notice)
				assert.Empty(t, m.Pending)
			},
		},
		{
			name:        "submit trims and posts",
			from:        Model{State: Idle, Notice: EmptyInputNotice},
			event:       Submit{Input: "  What is Go?\n"},
			wantState:   Sending,
			wantEffects: []Effect{Post{Message: "What is Go?"}},
			check: func(t *testing.T, m Model) {
				assert.Empty(t, m.Notice)
				assert.Equal(t, "What is Go?", m.Pending)
				assert.False(t, m.TriggerEnabled())
				assert.Equal(t, SendingLabel, m.TriggerLabel())
			},
		},
		{
			name:      "submit while sending is ignored",
			from:      Model{State: Sending, Pending: "first"},
			event:     Submit{Input: "second"},
			wantState: Sending,
			check: func(t *testing.T, m Model) {
				assert.Equal(t, "first", m.Pending)
			},
		},
		{
			name:        "submit from success starts a new request",
			from:        Model{State: Success, Reply: "old"},
			event:       Submit{Input: "again"},
			wantState:   Sending,
			wantEffects: []Effect{Post{Message: "again"}},
			check: func(t *testing.T, m Model) {
				assert.Empty(t, m.Reply)
			},
		},
		{
			name:        "submit from error clears the failure",
			from:        Model{State: Error, Failure: failure},
			event:       Submit{Input: "retry"},
			wantState:   Sending,
			wantEffects: []Effect{Post{Message: "retry"}},
			check: func(t *testing.T, m Model) {
				assert.Nil(t, m.Failure)
			},
		},
		{
			name:      "reply settles in success",
			from:      Model{State: Sending, Pending: "hi"},
			event:     Replied{Text: "Hello\nWorld"},
			wantState: Success,
			check: func(t *testing.T, m Model) {
				assert.Equal(t, "Hello\nWorld", m.Reply)
				assert.Empty(t, m.Pending)
				assert.True(t, m.TriggerEnabled())
				assert.Equal(t, TriggerLabel, m.TriggerLabel())
			},
		},
		{
			name:      "failure settles in error",
			from:      Model{State: Sending, Pending: "hi"},
			event:     Failed{Err: failure},
			wantState: Error,
			check: func(t *testing.T, m Model) {
				assert.Same(t, failure, m.Failure)
				assert.True(t, m.TriggerEnabled())
				assert.Equal(t, TriggerLabel, m.TriggerLabel())
			},
		},
		{
			name:      "stale reply outside sending is dropped",
			from:      Model{State: Idle},
			event:     Replied{Text: "late"},
			wantState: Idle,
			check: func(t *testing.T, m Model) {
				assert.Empty(t, m.Reply)
			},
		},
		{
			name:      "reset returns to idle",
			from:      Model{State: Error, Failure: failure, Input: "keep me"},
			event:     Reset{},
			wantState: Idle,
			check: func(t *testing.T, m Model) {
				assert.Nil(t, m.Failure)
				assert.Equal(t, "keep me", m.Input)
			},
		},
		{
			name:      "reset does not interrupt a request",
			from:      Model{State: Sending, Pending: "hi"},
			event:     Reset{},
			wantState: Sending,
		},
		{
			name:        "fill example sets input and focus",
			from:        Model{State: Idle, Input: "draft"},
			event:       FillExample{Text: DefaultExamples[0]},
			wantState:   Idle,
			wantEffects: []Effect{Focus{}},
			check: func(t *testing.T, m Model) {
				assert.Equal(t, DefaultExamples[0], m.Input)
				assert.True(t, m.Focused)
			},
		},
		{
			name:      "edit clears the notice",
			from:      Model{State: Idle, Notice: EmptyInputNotice},
			event:     Edit{Input: "h"},
			wantState: Idle,
			check: func(t *testing.T, m Model) {
				assert.Equal(t, "h", m.Input)
				assert.Empty(t, m.Notice)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, effects := Transition(tt.from, tt.event)

			assert.Equal(t, tt.wantState, got.State)
			if diff := cmp.Diff(tt.wantEffects, effects); diff != "" {
				t.Errorf("effects mismatch (-want +got):\n%s", diff)
			}
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestTransitionIsLinear(t *testing.T) {
	m := Model{}
	steps := []struct {
		event Event
		want  UIState
	}{
		{Submit{Input: "one"}, Sending},
		{Replied{Text: "ok"}, Success},
		{Reset{}, Idle},
		{Submit{Input: "two"}, Sending},
		{Failed{Err: errors.New("boom")}, Error},
		{Reset{}, Idle},
	}

	for i, step := range steps {
		m, _ = Transition(m, step.event)
		if m.State != step.want {
			t.Fatalf("step %d: state = %s, want %s", i, m.State, step.want)
		}
	}
}

func TestUIStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "sending", Sending.String())
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "error", Error.String())
	assert.Equal(t, "UIState(9)", UIState(9).String())
}
