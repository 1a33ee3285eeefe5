package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetColorForcing overrides terminal detection. disable wins over force.
func SetColorForcing(force, disable bool) {
	switch {
	case disable:
		lipgloss.SetColorProfile(termenv.Ascii)
	case force:
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}

// SetOutput redirects OK/Fail/Panel output; nil restores the process streams.
func SetOutput(out, errOut io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	stdout, stderr = out, errOut
}

// Stdout is where OK, Panel and command output go.
func Stdout() io.Writer { return stdout }

// Stderr is where Fail, Hint and usage errors go.
func Stderr() io.Writer { return stderr }

func OK(msg string)   { fmt.Fprintln(stdout, current.Success.Render(current.SymDone+" "+msg)) }
func Fail(msg string) { fmt.Fprintln(stderr, current.Error.Render("✖ "+msg)) }

// Hint prints a muted follow-up line on stderr.
func Hint(msg string) { fmt.Fprintln(stderr, current.Muted.Render(msg)) }
