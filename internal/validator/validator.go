package validator

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/romshelf/internal/errors"
)

// Severity represents the impact of a validation issue.
type Severity int

const (
	// SeverityError indicates the archive cannot be loaded.
	SeverityError Severity = iota
	// SeverityWarning indicates a loadable but suspicious config.
	SeverityWarning
	// SeverityInfo indicates an informational note.
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name.
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	default:
		return errors.Newf("unknown severity %q", text)
	}
	return nil
}

// Issue represents a single problem found in an archive.
type Issue struct {
	Severity Severity `json:"severity"`

	// System is the label of the system the issue concerns, if any.
	System string `json:"system,omitempty"`

	// Message is a human-readable description of the problem.
	Message string `json:"message"`

	// Hint suggests how to fix the problem.
	Hint string `json:"hint,omitempty"`

	// Context holds details such as the error kind or line number.
	Context map[string]string `json:"context,omitempty"`
}

// Error implements the error interface.
func (i Issue) Error() string {
	var sb strings.Builder
	sb.WriteString(i.Severity.String())
	sb.WriteString(": ")
	if i.System != "" {
		fmt.Fprintf(&sb, "system %q: ", i.System)
	}
	sb.WriteString(i.Message)
	return sb.String()
}

// Result aggregates the issues found in one archive.
type Result struct {
	// Root is the archive root that was checked.
	Root string `json:"root"`

	// Config is the path of the archive's config.yaml.
	Config string `json:"config"`

	// Valid is true when the config loaded without errors.
	Valid bool `json:"valid"`

	// Systems is the number of systems declared.
	Systems int `json:"systems"`

	Issues []Issue `json:"issues"`

	// Err is the load error behind the error issue, if any.
	Err error `json:"-"`
}

// HasErrors returns true if any issue has SeverityError.
func (r *Result) HasErrors() bool {
	return len(r.filter(SeverityError)) > 0
}

// HasWarnings returns true if any issue has SeverityWarning.
func (r *Result) HasWarnings() bool {
	return len(r.filter(SeverityWarning)) > 0
}

// Add appends an issue to the result.
func (r *Result) Add(i Issue) {
	r.Issues = append(r.Issues, i)
}

// AddWarning adds a warning issue about a system.
func (r *Result) AddWarning(system, message string) {
	r.Add(Issue{Severity: SeverityWarning, System: system, Message: message})
}

// AddInfo adds an info issue about a system.
func (r *Result) AddInfo(system, message string) {
	r.Add(Issue{Severity: SeverityInfo, System: system, Message: message})
}

// Errors returns all issues with SeverityError.
func (r *Result) Errors() []Issue {
	return r.filter(SeverityError)
}

// Warnings returns all issues with SeverityWarning.
func (r *Result) Warnings() []Issue {
	return r.filter(SeverityWarning)
}

// Infos returns all issues with SeverityInfo.
func (r *Result) Infos() []Issue {
	return r.filter(SeverityInfo)
}

func (r *Result) filter(s Severity) []Issue {
	if r == nil {
		return nil
	}
	var res []Issue
	for _, i := range r.Issues {
		if i.Severity == s {
			res = append(res, i)
		}
	}
	return res
}
