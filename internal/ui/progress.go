package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Controller feeds progress updates from the command layer into the running
// display. A nil controller is valid and drops every update, which is how
// plain and JSON runs work.
type Controller struct {
	program *tea.Program
}

// StartProgress launches the staged progress display. Returns nil outside
// interactive mode.
func (ui *UI) StartProgress() *Controller {
	if ui.Mode != ModeInteractive {
		return nil
	}

	p := tea.NewProgram(newCheckModel(), tea.WithOutput(ui.ErrWriter))
	go func() {
		_, _ = p.Run()
	}()
	return &Controller{program: p}
}

func (c *Controller) send(msg tea.Msg) {
	if c != nil && c.program != nil {
		c.program.Send(msg)
	}
}

// Stage moves the display to the next phase and clears any note.
func (c *Controller) Stage(s Stage) {
	c.send(stageMsg(s))
}

// Note annotates the current stage line, e.g. a forced page type.
func (c *Controller) Note(note string) {
	c.send(noteMsg(note))
}

// Total sets the number of checks the progress bar counts toward.
func (c *Controller) Total(n int) {
	c.send(totalMsg(n))
}

// CheckStart names the check now running.
func (c *Controller) CheckStart(name string) {
	c.send(noteMsg(fmt.Sprintf("checking %s", name)))
}

// CheckDone advances the bar by one check.
func (c *Controller) CheckDone() {
	c.send(checkDoneMsg{})
}

// Stop tears the display down and waits for the terminal to be restored, so
// the report never interleaves with a live frame.
func (c *Controller) Stop(err error) {
	if c != nil && c.program != nil {
		c.program.Send(stopMsg{err: err})
		c.program.Wait()
	}
}
