package commands

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/romshelf/cmd"
	"github.com/thoreinstein/romshelf/internal/errors"
)

var versionJSON bool

func init() {
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "print build information as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long: `Print the version, commit, build date, and Go toolchain of romshelf.

Release builds carry values injected at link time. Other builds report the
module version and VCS revision recorded by the go command.`,
	RunE: func(c *cobra.Command, _ []string) error {
		info := cmd.BuildInfo()
		w := c.OutOrStdout()
		if versionJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return errors.Wrap(enc.Encode(info), "encoding JSON")
		}
		_, err := fmt.Fprint(w, info.String())
		return err
	},
}
