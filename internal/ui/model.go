package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Stage is one phase of a check run.
type Stage int

const (
	StageLoad Stage = iota
	StageClassify
	StageChecks
)

// stageLabel is what the progress line says while a stage runs.
var stageLabel = map[Stage]string{
	StageLoad:     "Loading document...",
	StageClassify: "Detecting page type...",
	StageChecks:   "Running checks...",
}

// Messages the controller sends into the running display.
type (
	stageMsg     Stage
	noteMsg      string
	totalMsg     int
	checkDoneMsg struct{}
	stopMsg      struct{ err error }
)

// checkModel renders a spinner line through load and classify, then a
// progress bar once the checklist size is known.
type checkModel struct {
	stage    Stage
	note     string
	total    int
	done     int
	spin     spinner.Model
	bar      progress.Model
	quitting bool
	err      error
}

func newCheckModel() checkModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return checkModel{
		spin: sp,
		bar:  progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

func (m checkModel) Init() tea.Cmd {
	return m.spin.Tick
}

func (m checkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	case stageMsg:
		m.stage = Stage(msg)
		m.note = ""

	case noteMsg:
		m.note = string(msg)

	case totalMsg:
		m.total = int(msg)

	case checkDoneMsg:
		m.done++

	case stopMsg:
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m checkModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	if m.stage == StageChecks && m.total > 0 {
		sb.WriteString(m.bar.ViewAs(float64(m.done) / float64(m.total)))
		sb.WriteString("\n")
	}
	sb.WriteString(m.spin.View())
	sb.WriteString(" ")
	sb.WriteString(stageLabel[m.stage])
	if m.note != "" {
		sb.WriteString(fmt.Sprintf(" (%s)", m.note))
	}
	return sb.String()
}
