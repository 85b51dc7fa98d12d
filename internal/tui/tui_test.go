package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafabd1/courseplanner/pkg/events"
)

type fakeSession struct {
	executed []string
	outputs  map[string]string
	prompts  map[string]string
	err      error
}

func (s *fakeSession) Execute(ctx context.Context, line string, output io.Writer) (bool, error) {
	s.executed = append(s.executed, line)
	fmt.Fprint(output, s.outputs[line])
	return line == "9", s.err
}

func (s *fakeSession) PromptFor(line string) (string, bool) {
	question, ok := s.prompts[line]
	return question, ok
}

func (s *fakeSession) WriteMenu(output io.Writer) {
	fmt.Fprintln(output)
	fmt.Fprintln(output, "Welcome to the Course Planner.")
	fmt.Fprintln(output, "2. Print Course List")
}

func newTestModel(t *testing.T, s *fakeSession) *Model {
	t.Helper()
	m := New(context.Background(), s)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	require.True(t, m.ready)
	return m
}

// enter types line into the input and presses Enter, returning the command
// Bubble Tea would run next.
func enter(m *Model, line string) tea.Cmd {
	m.textarea.SetValue(line)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func transcript(m *Model) string {
	return strings.Join(m.messages, "\n")
}

func TestModel_ExecutesMenuLine(t *testing.T) {
	s := &fakeSession{outputs: map[string]string{"2": "\nList of Courses:\nCS101  Intro to CS\n"}}
	m := newTestModel(t, s)

	cmd := enter(m, "2")
	require.NotNil(t, cmd)
	assert.True(t, m.busy)
	assert.Empty(t, m.textarea.Value())

	msg := cmd()
	out, ok := msg.(events.OutputMsg)
	require.True(t, ok)
	assert.Equal(t, "2", out.Input)

	_, next := m.Update(msg)
	assert.Nil(t, next)
	assert.False(t, m.busy)
	assert.Equal(t, []string{"2"}, s.executed)
	assert.Contains(t, transcript(m), "CS101  Intro to CS")
	assert.Contains(t, m.View(), "Welcome to the Course Planner.")
}

func TestModel_PromptsForArgument(t *testing.T) {
	s := &fakeSession{
		prompts: map[string]string{"3": "Enter the course ID: "},
		outputs: map[string]string{"3 CS201": "Title: Data Structures\n"},
	}
	m := newTestModel(t, s)

	cmd := enter(m, "3")
	require.NotNil(t, cmd)
	msg := cmd()
	prompt, ok := msg.(events.PromptMsg)
	require.True(t, ok)
	assert.Equal(t, "Enter the course ID: ", prompt.Question)

	m.Update(msg)
	assert.Equal(t, "3", m.pending)
	assert.Equal(t, "Enter the course ID: ", m.statusMessage)
	assert.Empty(t, s.executed)

	cmd = enter(m, "CS201")
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, []string{"3 CS201"}, s.executed)
	assert.Empty(t, m.pending)
	assert.Contains(t, transcript(m), "Title: Data Structures")
}

func TestModel_IgnoresEnterWhileBusy(t *testing.T) {
	s := &fakeSession{}
	m := newTestModel(t, s)

	require.NotNil(t, enter(m, "2"))
	assert.Nil(t, enter(m, "2"))
}

func TestModel_IgnoresEmptyInput(t *testing.T) {
	m := newTestModel(t, &fakeSession{})
	assert.Nil(t, enter(m, "   "))
}

func TestModel_QuitsWhenSessionEnds(t *testing.T) {
	s := &fakeSession{outputs: map[string]string{"9": "Goodbye.\n"}}
	m := newTestModel(t, s)

	cmd := enter(m, "9")
	_, next := m.Update(cmd())
	require.NotNil(t, next)
	assert.IsType(t, tea.QuitMsg{}, next())
	assert.Contains(t, transcript(m), "Goodbye.")
	assert.NoError(t, m.Err())
}

func TestModel_QuitsOnSessionError(t *testing.T) {
	s := &fakeSession{err: context.Canceled}
	m := newTestModel(t, s)

	cmd := enter(m, "1")
	_, next := m.Update(cmd())
	require.NotNil(t, next)
	assert.IsType(t, tea.QuitMsg{}, next())
	assert.ErrorIs(t, m.Err(), context.Canceled)
}

func TestModel_QuitKeys(t *testing.T) {
	m := newTestModel(t, &fakeSession{})

	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := m.Update(tea.KeyMsg{Type: key})
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestModel_ViewBeforeReady(t *testing.T) {
	m := New(context.Background(), &fakeSession{})
	assert.Contains(t, m.View(), "Initializing...")
}
