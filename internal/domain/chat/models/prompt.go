package models

import "strings"

// SystemPrompt is the system message sent ahead of every user message. The
// core instructions are fixed at startup; custom instructions are appended.
type SystemPrompt struct {
	core   string
	custom string
}

func NewSystemPrompt(core string) *SystemPrompt {
	return &SystemPrompt{core: strings.TrimSpace(core)}
}

// SetCustom sets custom instructions for the prompt
func (sp *SystemPrompt) SetCustom(custom string) {
	sp.custom = strings.TrimSpace(custom)
}

// String returns the formatted system prompt
func (sp *SystemPrompt) String() string {
	if sp.custom == "" {
		return sp.core
	}
	return sp.core + "\n\nADDITIONAL INSTRUCTIONS:\n" + sp.custom
}
