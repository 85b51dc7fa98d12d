package tui

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/rafabd1/courseplanner/pkg/events"
)

// Executor is the part of the menu session the TUI drives.
type Executor interface {
	Execute(ctx context.Context, line string, output io.Writer) (bool, error)
	PromptFor(line string) (string, bool)
	WriteMenu(output io.Writer)
}

// Model represents the state of the course planner TUI.
type Model struct {
	ctx      context.Context
	viewport viewport.Model
	textarea textarea.Model
	messages []string
	session  Executor
	menu     string

	pending string // Menu line waiting for the answer to a prompt
	busy    bool   // A command is running; the session is not safe for concurrent use
	err     error

	senderStyle lipgloss.Style
	outputStyle lipgloss.Style
	errorStyle  lipgloss.Style
	helpStyle   lipgloss.Style
	ready       bool

	statusMessage string
}

const inputPlaceholder = "Choose a menu option (e.g. 2, or 3 CS201)..."

// Init is the first function executed when the Bubble Tea program starts.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages (events) and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		vpCmd tea.Cmd
		taCmd tea.Cmd
	)

	m.viewport, vpCmd = m.viewport.Update(msg)
	m.textarea, taCmd = m.textarea.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.busy {
				return m, nil
			}
			input := strings.TrimSpace(m.textarea.Value())
			m.textarea.Reset()
			return m, m.submit(input)
		}

	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.headerView())
		footerHeight := lipgloss.Height(m.footerView())
		verticalMarginHeight := headerHeight + footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-verticalMarginHeight)
			m.viewport.YPosition = headerHeight
			m.viewport.SetContent(strings.Join(m.messages, "\n"))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - verticalMarginHeight
		}
		m.textarea.SetWidth(msg.Width)

	case events.PromptMsg:
		m.pending = msg.Input
		m.statusMessage = msg.Question
		m.textarea.Placeholder = strings.TrimSuffix(strings.TrimSpace(msg.Question), ":")
		m.appendMessage(m.helpStyle.Render(msg.Question))
		return m, nil

	case events.OutputMsg:
		m.busy = false
		m.statusMessage = "Ready."
		if content := strings.Trim(msg.Content, "\n"); content != "" {
			m.appendMessage(m.styleOutput(content))
		}
		if msg.Err != nil {
			m.err = msg.Err
			m.appendMessage(m.errorStyle.Render(fmt.Sprintf("Error: %v", msg.Err)))
			return m, tea.Quit
		}
		if msg.Done {
			return m, tea.Quit
		}
		return m, nil
	}

	return m, tea.Batch(vpCmd, taCmd)
}

// submit turns an input line into the command that runs it. A line that
// needs an answer first is parked until the next Enter.
func (m *Model) submit(input string) tea.Cmd {
	if m.pending != "" {
		line := strings.TrimSpace(m.pending + " " + input)
		m.pending = ""
		m.textarea.Placeholder = inputPlaceholder
		m.appendMessage(m.senderStyle.Render("> ") + input)
		return m.execute(line)
	}
	if input == "" {
		return nil
	}

	m.appendMessage(m.senderStyle.Render("> ") + input)
	if question, ok := m.session.PromptFor(input); ok {
		return func() tea.Msg {
			return events.PromptMsg{Input: input, Question: question}
		}
	}
	return m.execute(input)
}

func (m *Model) execute(line string) tea.Cmd {
	m.busy = true
	m.statusMessage = "Working..."
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		var out bytes.Buffer
		done, err := session.Execute(ctx, line, &out)
		return events.OutputMsg{Input: line, Content: out.String(), Done: done, Err: err}
	}
}

func (m *Model) appendMessage(s string) {
	m.messages = append(m.messages, s)
	m.viewport.SetContent(strings.Join(m.messages, "\n"))
	m.viewport.GotoBottom()
}

func (m *Model) styleOutput(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "Error:") || strings.HasPrefix(line, "Invalid choice") {
			lines[i] = m.errorStyle.Render(line)
		} else {
			lines[i] = m.outputStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// Err returns the error that stopped the session, if any.
func (m *Model) Err() error {
	return m.err
}

// View renders the current UI.
func (m *Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}
	return fmt.Sprintf(
		"%s\n%s\n%s",
		m.headerView(),
		m.viewport.View(),
		m.footerView(),
	)
}

func (m *Model) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render("Course Planner")
	menu := m.helpStyle.Render(m.menu)
	line := strings.Repeat("─", m.viewport.Width)
	return lipgloss.JoinVertical(lipgloss.Left, title, menu, line)
}

func (m *Model) footerView() string {
	status := m.helpStyle.Render(m.statusMessage)
	return lipgloss.JoinVertical(lipgloss.Left, status, m.textarea.View())
}

// New initializes a new TUI model driving session.
func New(ctx context.Context, session Executor) *Model {
	ta := textarea.New()
	ta.Placeholder = inputPlaceholder
	ta.Focus()

	ta.Prompt = "┃ "
	ta.CharLimit = 120

	ta.SetWidth(50) // Adjusted on the first WindowSizeMsg
	ta.SetHeight(1)

	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(false)

	var menu strings.Builder
	session.WriteMenu(&menu)

	return &Model{
		ctx:           ctx,
		textarea:      ta,
		messages:      []string{"Type a menu number and press Enter. Esc quits."},
		session:       session,
		menu:          strings.Trim(menu.String(), "\n"),
		senderStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		outputStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		errorStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		helpStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		statusMessage: "Ready.",
	}
}

// Start runs the Bubble Tea program until the session ends, the user quits
// or ctx is cancelled.
func Start(ctx context.Context, session Executor) error {
	p := tea.NewProgram(New(ctx, session), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return errors.Wrap(err, "run course planner tui")
	}
	if m, ok := final.(*Model); ok {
		return m.Err()
	}
	return nil
}
