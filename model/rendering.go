package model

import (
	"io"

	"github.com/pkg/errors"
)

// ANSI cursor home followed by erase display
const clearSequence = "\033[H\033[2J"

// TerminalRenderer writes plain-text grid dumps to a terminal or any other writer
type TerminalRenderer struct {
	out io.Writer
}

func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: out}
}

// Display writes the grid followed by a newline
func (r *TerminalRenderer) Display(g *Grid) error {
	if _, err := io.WriteString(r.out, g.String()+"\n"); err != nil {
		return errors.Wrap(err, "[Display] failed to write grid")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	if _, err := io.WriteString(r.out, clearSequence); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}
