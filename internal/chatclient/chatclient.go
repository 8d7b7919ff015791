// Package chatclient drives one chat interaction: read the input, flip the
// trigger, post to the backend and render the reply or the failure.
package chatclient

import (
	"context"
	"sort"
	"sync"

	"github.com/deepgram/simplechat/pkg/logger"
)

// ChatClient owns a Model and executes the effects Transition asks for. It is
// the headless surface used by the CLI; the terminal UI drives Transition
// itself from its update loop.
type ChatClient struct {
	mu        sync.Mutex
	model     Model
	sender    Sender
	listeners map[int]func(Model)
	nextID    int
}

func New(sender Sender) *ChatClient {
	return &ChatClient{
		sender:    sender,
		listeners: make(map[int]func(Model)),
	}
}

// Model returns a snapshot of the current view model
func (c *ChatClient) Model() Model {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.model
}

// Subscribe registers fn to receive the model after every dispatched event. Calling the returned
// function removes it again.
func (c *ChatClient) Subscribe(fn func(Model)) (dispose func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.listeners, id)
			c.mu.Unlock()
		})
	}
}

// Dispatch applies ev and returns the effects the caller has to run
func (c *ChatClient) Dispatch(ev Event) []Effect {
	c.mu.Lock()
	next, effects := Transition(c.model, ev)
	c.model = next
	listeners := c.snapshotListeners()
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
	return effects
}

// snapshotListeners returns listeners in registration order. Callers hold c.mu.
func (c *ChatClient) snapshotListeners() []func(Model) {
	ids := make([]int, 0, len(c.listeners))
	for id := range c.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	fns := make([]func(Model), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, c.listeners[id])
	}
	return fns
}

// FillExample sets the input to text and focuses it
func (c *ChatClient) FillExample(text string) {
	c.Dispatch(FillExample{Text: text})
}

// SendMessage runs one interaction for rawInput and returns the model it
// settled in. Blank input only sets the notice. Failures end in the Error
// state and are not returned; the model carries them.
func (c *ChatClient) SendMessage(ctx context.Context, rawInput string) Model {
	c.Dispatch(Edit{Input: rawInput})

	for _, effect := range c.Dispatch(Submit{Input: rawInput}) {
		switch effect := effect.(type) {
		case Notify:
			logger.Warn(logger.CLIENT, "Rejected input: %s", effect.Text)
		case Post:
			c.post(ctx, effect.Message)
		}
	}
	return c.Model()
}

func (c *ChatClient) post(ctx context.Context, message string) {
	settled := false
	defer func() {
		// always leave Sending so the trigger comes back, even on panic
		if !settled {
			c.Dispatch(Failed{Err: &RequestFailure{Kind: FailureTransport, Err: ErrAborted}})
		}
	}()

	logger.Info(logger.CLIENT, "Sending message to backend")
	reply, err := c.sender.Send(ctx, message)
	if err != nil {
		failure := AsFailure(err)
		logger.Error(logger.CLIENT, "Chat request failed (%s): %v", failure.Kind, failure)
		c.Dispatch(Failed{Err: failure})
		settled = true
		return
	}

	logger.Info(logger.CLIENT, "Received %d characters from backend", len(reply))
	c.Dispatch(Replied{Text: reply})
	settled = true
}
