// Package ui owns terminal presentation for the CLI: output mode detection,
// the style set the reporters render with, and live progress while a
// document is checked.
package ui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// OutputMode selects how much decoration output gets.
type OutputMode int

const (
	// ModeInteractive renders colors, icons, and live progress.
	ModeInteractive OutputMode = iota
	// ModePlain renders undecorated text, for pipes and files.
	ModePlain
	// ModeJSON keeps stdout machine-readable; no decoration anywhere.
	ModeJSON
)

// UI bundles the resolved output mode with the writers and styles the rest
// of the CLI renders through.
type UI struct {
	Mode      OutputMode
	Writer    io.Writer
	ErrWriter io.Writer
	Styles    *Styles
}

// New resolves the output mode from the format flag and the destination: a
// JSON format always wins, a TTY gets the interactive treatment, and
// anything else falls back to plain text.
func New(w, errW io.Writer, format string) *UI {
	mode := ModePlain
	switch {
	case format == "json":
		mode = ModeJSON
	case isTerminal(w):
		mode = ModeInteractive
	}
	return &UI{
		Mode:      mode,
		Writer:    w,
		ErrWriter: errW,
		Styles:    NewStyles(mode == ModeInteractive),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// IsInteractive reports whether live progress and colors are on.
func (ui *UI) IsInteractive() bool { return ui.Mode == ModeInteractive }

// IsJSON reports whether stdout is reserved for JSON.
func (ui *UI) IsJSON() bool { return ui.Mode == ModeJSON }
