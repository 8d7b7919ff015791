package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler reacts to a bound key. It may change m and returns the command
// to run next.
type KeyHandler func(m *Model, msg tea.KeyMsg) tea.Cmd

type binding struct {
	handler KeyHandler
}

// Keymap maps key names as reported by tea.KeyMsg.String() to handlers. The
// most recent binding of a key wins until it is disposed.
type Keymap struct {
	mu       sync.Mutex
	bindings map[string][]*binding
}

func NewKeymap() *Keymap {
	return &Keymap{bindings: make(map[string][]*binding)}
}

// Bind registers handler for key. Calling dispose removes exactly this
// binding and uncovers the one it shadowed, if any.
func (k *Keymap) Bind(key string, handler KeyHandler) (dispose func()) {
	b := &binding{handler: handler}

	k.mu.Lock()
	k.bindings[key] = append(k.bindings[key], b)
	k.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			k.mu.Lock()
			defer k.mu.Unlock()

			stack := k.bindings[key]
			for i := range stack {
				if stack[i] == b {
					stack = append(stack[:i], stack[i+1:]...)
					break
				}
			}
			if len(stack) == 0 {
				delete(k.bindings, key)
				return
			}
			k.bindings[key] = stack
		})
	}
}

// Lookup returns the active handler for key
func (k *Keymap) Lookup(key string) (KeyHandler, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	stack := k.bindings[key]
	if len(stack) == 0 {
		return nil, false
	}
	return stack[len(stack)-1].handler, true
}
