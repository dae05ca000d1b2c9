package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/romshelf/internal/archive"
	"github.com/thoreinstein/romshelf/internal/editor"
	"github.com/thoreinstein/romshelf/internal/errors"
	"github.com/thoreinstein/romshelf/pkg/fileutil"
)

var editNoValidate bool

func init() {
	editCmd.Flags().BoolVar(&editNoValidate, "no-validate", false,
		"skip validating config.yaml after the editor exits")
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the archive's config.yaml in your editor",
	Long: `Open the archive's config.yaml in $EDITOR (falling back to $VISUAL,
nano, then vi) and validate it once the editor exits.`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, _ []string) error {
	root, err := archiveRoot()
	if err != nil {
		return err
	}

	path := archive.ConfigPath(root)
	if !fileutil.Exists(archiveFs, path) {
		return errors.NewSystemError(
			errors.Wrapf(errors.ErrNotFound, "%s", path),
			"Create config.yaml in the archive root first")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Location: %s\n", path)
	if err := editor.Open(path); err != nil {
		return errors.NewSystemError(err, "Set $EDITOR to your preferred editor")
	}

	if editNoValidate {
		return nil
	}
	return runValidate(cmd, nil)
}
