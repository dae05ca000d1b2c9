package commands

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/romshelf/internal/config"
	"github.com/thoreinstein/romshelf/internal/doctor"
	"github.com/thoreinstein/romshelf/internal/errors"
	"github.com/thoreinstein/romshelf/pkg/fileutil"
)

var (
	doctorJSON bool
	doctorAll  bool
)

// settingsFs is the filesystem the settings file is checked on.
var settingsFs afero.Fs = afero.NewOsFs()

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVarP(&doctorAll, "all", "a", false,
		"show every check, including passed ones")
	doctorCmd.MarkFlagsMutuallyExclusive("json", "all")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose settings and archive problems",
	Long: `Run diagnostic checks on romshelf's settings, the archive's config.yaml,
the game directories and the editor used by "romshelf edit".

Exit codes:
  0 - No errors or warnings
  1 - Warnings present, no errors
  2 - Errors present`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	runner := doctor.NewRunner(&doctor.SettingsCheck{
		Path:   config.Path(),
		Exists: fileutil.Exists(settingsFs, config.Path()),
		Err:    configLoadErr,
	})

	if root, err := archiveRoot(); err == nil {
		runner.AddCheck(&doctor.ArchiveCheck{Fs: archiveFs, Root: root})
		runner.AddCheck(&doctor.SystemsCheck{Fs: archiveFs, Root: root})
	}
	runner.AddCheck(&doctor.EditorCheck{})

	report := runner.Run()

	w := cmd.OutOrStdout()
	if doctorJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return errors.Wrap(err, "encoding JSON")
		}
	} else {
		writeDoctorText(w, report)
	}

	switch {
	case report.HasErrors():
		return errors.NewExitError(errors.Newf("%d checks failed", report.Summary.Errors), errors.ExitSystem)
	case report.HasWarnings():
		return errors.NewExitError(errors.Newf("%d checks have warnings", report.Summary.Warnings), errors.ExitUser)
	}
	return nil
}

func writeDoctorText(w io.Writer, report *doctor.Report) {
	shown := false
	for _, r := range report.Results {
		if !doctorAll && r.Status != doctor.SeverityError && r.Status != doctor.SeverityWarning {
			continue
		}
		shown = true
		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(r.Status), r.Category, r.Name, r.Message)
		if r.FixHint != "" && r.Status >= doctor.SeverityWarning {
			fmt.Fprintf(w, "  hint: %s\n", r.FixHint)
		}
	}
	if shown {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return "✓"
	case doctor.SeverityInfo:
		return "ℹ"
	case doctor.SeverityWarning:
		return "⚠"
	case doctor.SeverityError:
		return "✗"
	default:
		return "?"
	}
}
