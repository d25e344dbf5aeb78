package editor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

const (
	// EnvVar names the environment variable consulted for the editor.
	EnvVar = "EDITOR"
	// Default is used when neither configuration nor EnvVar names an editor.
	Default = "vi"
)

// Editor lets the user modify a file in place.
type Editor interface {
	// Edit blocks until the user is done editing path.
	Edit(path string) error
}

// ExitError reports an editor that ran but did not exit successfully.
type ExitError struct {
	Editor string
	// Code is the exit status, or -1 when the process was terminated
	// without one (e.g. by a signal).
	Code int
}

func (e *ExitError) Error() string {
	if e.Code < 0 {
		return fmt.Sprintf("editor %q returned an error", e.Editor)
	}
	return fmt.Sprintf("editor %q returned error code %d", e.Editor, e.Code)
}

// Signaled reports whether the editor terminated without an exit code.
func (e *ExitError) Signaled() bool {
	return e.Code < 0
}

// ShellEditor implements Editor by running an external program.
type ShellEditor struct {
	command string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewShellEditor creates an editor that runs command with the file path as
// its only argument. The command is a single program name or path; it is
// not split on spaces.
func NewShellEditor(command string) *ShellEditor {
	return &ShellEditor{
		command: command,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Command returns the program this editor runs.
func (e *ShellEditor) Command() string {
	return e.command
}

// Edit runs the editor on path and waits for it to exit. There is no
// timeout: the user may take as long as they like.
func (e *ShellEditor) Edit(path string) error {
	cmd := exec.Command(e.command, path)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open editor %q: %w", e.command, err)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// ExitCode is -1 when the process was killed by a signal.
			return &ExitError{Editor: e.command, Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("failed waiting for editor %q: %w", e.command, err)
	}
	return nil
}

// Resolve picks the editor command: an explicit choice wins, then the
// EDITOR environment variable, then Default.
func Resolve(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvVar); env != "" {
		return env
	}
	return Default
}
