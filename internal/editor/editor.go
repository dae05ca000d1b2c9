// Package editor launches the user's preferred text editor.
package editor

import (
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/romshelf/internal/errors"
)

// Open launches the user's preferred editor for the given path and waits
// for it to exit. The editor is attached to the process's terminal.
func Open(path string) error {
	args := Command()
	args = append(args, path)

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", args[0])
	}

	return nil
}

// Command returns the editor command line, split into arguments, so values
// like EDITOR="code --wait" work.
// Fallback chain: $EDITOR → $VISUAL → nano → vi
func Command() []string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if fields := strings.Fields(os.Getenv(env)); len(fields) > 0 {
			return fields
		}
	}

	if _, err := exec.LookPath("nano"); err == nil {
		return []string{"nano"}
	}

	// POSIX fallback, available on all Unix systems
	return []string{"vi"}
}
