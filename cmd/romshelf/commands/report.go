package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/thoreinstein/romshelf/internal/errors"
)

// ReportError writes err to w and returns the process exit code.
// An *errors.ExitError decides the code and may add a suggestion line.
func ReportError(w io.Writer, err error) int {
	if err == nil {
		return errors.ExitSuccess
	}

	code := errors.ExitUser
	suggestion := ""

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.Code
		suggestion = exitErr.Suggestion
	}

	fmt.Fprintf(w, "%s %v\n", color.RedString("Error:"), err)
	if suggestion != "" {
		fmt.Fprintf(w, "%s %s\n", color.YellowString("Suggestion:"), suggestion)
	}

	return code
}
