// Package output provides TTY-aware console styling and exit-code plumbing
// for the CLI commands.
package output

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used for human-readable output.
type Styles struct {
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Bold    lipgloss.Style
	Dim     lipgloss.Style
}

// NewStyles returns a style set. Without a TTY every style is a no-op so
// piped output stays plain.
func NewStyles(isTTY bool) *Styles {
	if !isTTY {
		return &Styles{}
	}
	return &Styles{
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Bold:    lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// StdoutStyles returns styles configured for the process stdout.
func StdoutStyles() *Styles {
	return NewStyles(IsTTY(os.Stdout))
}

// IsTTY reports whether a writer is a terminal. Only an *os.File backed by a
// character device qualifies.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// Warnf prints a styled warning line to w.
func (s *Styles) Warnf(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, s.Warning.Render(fmt.Sprintf(format, args...)))
}

// Successf prints a styled success line to w.
func (s *Styles) Successf(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, s.Success.Render(fmt.Sprintf(format, args...)))
}

// Errorf prints a styled error line to w.
func (s *Styles) Errorf(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, s.Error.Render(fmt.Sprintf(format, args...)))
}

// ExitError carries a process exit code alongside an error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// WithCode wraps an error with an explicit process exit code.
func WithCode(code int, err error) error {
	return &ExitError{Code: code, Err: err}
}

// GetExitCode maps an error returned from command execution to a process
// exit code: nil is 0, an ExitError keeps its code, anything else is 1.
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
