// Package tui provides the full-screen terminal front-end: a scrollback of
// responses above a single input line.
package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth  = 80
	defaultHeight = 20
	// title, blank line, input, help
	chromeHeight = 4
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	echoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

// Session is the request/response core the TUI drives.
type Session interface {
	Welcome() string
	Respond(line string) string
	IsExit() bool
}

// Model is the bubbletea model for the TUI.
type Model struct {
	sess       Session
	input      textinput.Model
	viewport   viewport.Model
	transcript []string
}

// New returns a model showing the session greeting with the input focused.
func New(sess Session) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "todo read book"
	ti.CharLimit = 1024
	ti.Width = defaultWidth - len(ti.Prompt)
	ti.Focus()

	m := Model{
		sess:       sess,
		input:      ti,
		viewport:   viewport.New(defaultWidth, defaultHeight),
		transcript: []string{sess.Welcome()},
	}
	m.refresh()
	return m
}

// Run starts the TUI on the given streams. out must be a terminal.
func Run(ctx context.Context, sess Session, in io.Reader, out io.Writer) error {
	if !IsTTY(out) {
		return fmt.Errorf("tui requires a TTY")
	}
	program := tea.NewProgram(New(sess),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// IsTTY reports whether w is a character device.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			return m.submit()
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 1)
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.SetValue("")

	m.transcript = append(m.transcript, echoStyle.Render(m.input.Prompt+line)+"\n", m.sess.Respond(line))
	m.refresh()

	if m.sess.IsExit() {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) refresh() {
	m.viewport.SetContent(strings.Join(m.transcript, ""))
	m.viewport.GotoBottom()
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Orion"))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: send • pgup/pgdown: scroll • esc: quit"))
	return b.String()
}

// Transcript returns everything shown so far, in order.
func (m Model) Transcript() string {
	return strings.Join(m.transcript, "")
}
