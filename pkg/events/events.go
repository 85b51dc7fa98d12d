package events

import (
	tea "github.com/charmbracelet/bubbletea"
)

// OutputMsg is a tea.Msg carrying what a menu command wrote, sent back to the
// TUI once the command has finished.
type OutputMsg struct {
	Input   string // Menu line that was executed
	Content string
	Done    bool  // The session has ended
	Err     error // Failure that stops the session
}

// PromptMsg is sent when a menu line needs an answer before it can run.
type PromptMsg struct {
	Input    string
	Question string
}

// Compile-time check to ensure our messages implement tea.Msg
var _ tea.Msg = OutputMsg{}
var _ tea.Msg = PromptMsg{}
