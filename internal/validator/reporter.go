package validator

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-json"

	"github.com/thoreinstein/romshelf/internal/errors"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Reporter formats and writes validation results.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes the validation result to the output.
// In text format a failed load prints nothing; the caller reports the error.
func (r *Reporter) Report(result *Result) error {
	if result == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		return r.reportJSON(result)
	default:
		r.reportText(result)
		return nil
	}
}

func (r *Reporter) reportJSON(result *Result) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(result), "encoding JSON report")
}

func (r *Reporter) reportText(result *Result) {
	if result.HasErrors() {
		return
	}

	fmt.Fprintf(r.out, "%s %s is valid (%d systems)\n",
		color.GreenString("✓"), result.Config, result.Systems)

	for _, w := range result.Warnings() {
		r.printIssue(color.YellowString("warning:"), w)
	}
	for _, i := range result.Infos() {
		r.printIssue(color.New(color.FgHiBlack).Sprint("note:"), i)
	}
}

// printIssue writes "<prefix> message (k=v, ...)".
func (r *Reporter) printIssue(prefix string, i Issue) {
	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteString(" ")
	if i.System != "" && i.Severity == SeverityInfo {
		fmt.Fprintf(&sb, "%s: ", i.System)
	}
	sb.WriteString(i.Message)

	if len(i.Context) > 0 {
		parts := make([]string, 0, len(i.Context))
		for k, v := range i.Context {
			parts = append(parts, k+"="+v)
		}
		// Sort for deterministic output
		sort.Strings(parts)
		sb.WriteString(" ")
		sb.WriteString(color.New(color.FgHiBlack).Sprintf("(%s)", strings.Join(parts, ", ")))
	}

	fmt.Fprintln(r.out, sb.String())
}
