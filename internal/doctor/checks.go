package doctor

import (
	"fmt"
	"os/exec"

	"github.com/spf13/afero"

	"github.com/thoreinstein/romshelf/internal/editor"
	"github.com/thoreinstein/romshelf/internal/validator"
)

// SettingsCheck reports whether romshelf's own settings loaded.
type SettingsCheck struct {
	// Path is the settings file location.
	Path string

	// Exists reports whether the settings file is present.
	Exists bool

	// Err is the error from loading settings, if any.
	Err error
}

func (c *SettingsCheck) Name() string     { return "settings" }
func (c *SettingsCheck) Category() string { return "settings" }

func (c *SettingsCheck) Run() *CheckResult {
	result := &CheckResult{Details: map[string]any{"path": c.Path}}
	switch {
	case c.Err != nil:
		result.Status = SeverityError
		result.Message = c.Err.Error()
		result.FixHint = "Fix or remove " + c.Path
	case !c.Exists:
		result.Status = SeverityInfo
		result.Message = "no settings file, using defaults"
	default:
		result.Status = SeverityPass
		result.Message = "settings loaded"
	}
	return result
}

// ArchiveCheck validates the archive at Root.
type ArchiveCheck struct {
	Fs   afero.Fs
	Root string
}

func (c *ArchiveCheck) Name() string     { return "config" }
func (c *ArchiveCheck) Category() string { return "archive" }

func (c *ArchiveCheck) Run() *CheckResult {
	v := validator.Check(c.Fs, c.Root)
	result := &CheckResult{
		Details: map[string]any{
			"root":    c.Root,
			"config":  v.Config,
			"systems": v.Systems,
		},
	}

	if errs := v.Errors(); len(errs) > 0 {
		result.Status = SeverityError
		result.Message = errs[0].Message
		result.FixHint = errs[0].Hint
		return result
	}

	if warnings := v.Warnings(); len(warnings) > 0 {
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("%d systems, %d warnings: %s", v.Systems, len(warnings), warnings[0].Message)
		result.FixHint = "Run: romshelf validate"
		return result
	}

	result.Status = SeverityPass
	result.Message = fmt.Sprintf("%d systems declared", v.Systems)
	return result
}

// SystemsCheck reports systems whose directories hold no games.
type SystemsCheck struct {
	Fs   afero.Fs
	Root string
}

func (c *SystemsCheck) Name() string     { return "games" }
func (c *SystemsCheck) Category() string { return "archive" }

func (c *SystemsCheck) Run() *CheckResult {
	v := validator.Check(c.Fs, c.Root)
	if !v.Valid {
		return &CheckResult{Status: SeverityInfo, Message: "skipped, config.yaml did not load"}
	}

	var empty []string
	for _, i := range v.Infos() {
		empty = append(empty, i.System)
	}
	if len(empty) > 0 {
		return &CheckResult{
			Status:  SeverityInfo,
			Message: fmt.Sprintf("%d of %d systems have no games", len(empty), v.Systems),
			Details: map[string]any{"empty": empty},
		}
	}
	return &CheckResult{Status: SeverityPass, Message: "every system has games"}
}

// EditorCheck reports whether the editor used by "romshelf edit" exists.
type EditorCheck struct {
	// LookPath defaults to exec.LookPath.
	LookPath func(string) (string, error)
}

func (c *EditorCheck) Name() string     { return "editor" }
func (c *EditorCheck) Category() string { return "environment" }

func (c *EditorCheck) Run() *CheckResult {
	lookPath := c.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	bin := editor.Command()[0]
	path, err := lookPath(bin)
	if err != nil {
		return &CheckResult{
			Status:  SeverityWarning,
			Message: fmt.Sprintf("editor %q not found", bin),
			FixHint: "Set $EDITOR to an installed editor",
		}
	}
	return &CheckResult{
		Status:  SeverityPass,
		Message: "using " + bin,
		Details: map[string]any{"path": path},
	}
}

