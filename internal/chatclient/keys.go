package chatclient

// Key is a key press on the input field
type Key struct {
	Name  string
	Shift bool
	Alt   bool
}

// KeyAction is what a key press on the input field does
type KeyAction int

const (
	// KeyDefault lets the field handle the key (Enter inserts a line break)
	KeyDefault KeyAction = iota
	// KeySubmit sends the message and suppresses the key's default effect
	KeySubmit
)

// ResolveKey maps a key press to its action: a bare Enter submits, Enter
// with a modifier held inserts a line break.
func ResolveKey(k Key) KeyAction {
	if k.Name == "enter" && !k.Shift && !k.Alt {
		return KeySubmit
	}
	return KeyDefault
}

// DefaultExamples are the preset prompts offered next to the input field
var DefaultExamples = []string{
	"Explain artificial intelligence in simple terms",
	"Write a short poem about the ocean",
	"What are three tips for learning a new language?",
	"Summarize the plot of Romeo and Juliet in two sentences",
}
