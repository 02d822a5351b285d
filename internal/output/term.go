package output

import (
	"io"
	"os"

	"github.com/charmbracelet/x/term"
)

// Fallback terminal dimensions when no terminal is attached or the size
// cannot be determined.
const (
	DefaultWidth  = 120
	DefaultHeight = 24
)

// TerminalSize returns the column and row count of the terminal behind
// writer. Non-file writers, pipes, and failed lookups all fall back to
// DefaultWidth x DefaultHeight.
func TerminalSize(writer io.Writer) (width, height int) {
	file, ok := writer.(*os.File)
	if !ok {
		return DefaultWidth, DefaultHeight
	}
	w, h, err := term.GetSize(file.Fd())
	if err != nil || w <= 0 || h <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return w, h
}
