package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner is a one-line wait indicator for commands that do their work in a
// single call. Outside interactive mode the message prints once instead.
type Spinner struct {
	program *tea.Program
	done    chan struct{}
}

type spinnerModel struct {
	spin     spinner.Model
	message  string
	quitting bool
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spin.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case stopMsg:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.quitting {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spin.View(), m.message)
}

// StartSpinner shows an animated spinner with the message until Stop is
// called. Writes to the error stream so stdout stays reserved for results.
func (ui *UI) StartSpinner(message string) *Spinner {
	if ui.Mode != ModeInteractive {
		fmt.Fprintln(ui.ErrWriter, message)
		return nil
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	p := tea.NewProgram(spinnerModel{spin: sp, message: message}, tea.WithOutput(ui.ErrWriter))
	s := &Spinner{program: p, done: make(chan struct{})}
	go func() {
		_, _ = p.Run()
		close(s.done)
	}()
	return s
}

// Stop ends the spinner. Safe on nil.
func (s *Spinner) Stop() {
	if s != nil && s.program != nil {
		s.program.Send(stopMsg{})
		<-s.done
	}
}
