package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/romshelf/internal/logging"
	"github.com/thoreinstein/romshelf/internal/validator"
)

var validateJSON bool

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false,
		"output results as JSON")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the archive's config.yaml",
	Long: `Load the archive's config.yaml and report the first problem found.

Every system must declare display_name, color, path and
games_are_directories, and its path must exist under the archive root.
Systems sharing the same path and game layout are reported as warnings,
systems without games as notes.

Exit codes:
  0 - config.yaml is valid (warnings OK)
  1 - config.yaml has a schema error
  2 - the archive root, config.yaml or a system path is missing`,
	Example: `  romshelf validate
  romshelf validate --root /mnt/roms --json`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, _ []string) error {
	root, err := archiveRoot()
	if err != nil {
		return err
	}

	logger := logging.FromContext(cmd.Context())
	logger.Debug("validating archive", "root", root)

	result := validator.Check(archiveFs, root)

	format := validator.FormatText
	if validateJSON {
		format = validator.FormatJSON
	}
	if err := validator.NewReporter(cmd.OutOrStdout(), format).Report(result); err != nil {
		return err
	}

	if result.Err != nil {
		return toExitError(result.Err)
	}
	logger.Info("archive is valid", "root", root, "systems", result.Systems,
		"warnings", len(result.Warnings()))
	return nil
}
