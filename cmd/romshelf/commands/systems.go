package commands

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/romshelf/internal/errors"
	"github.com/thoreinstein/romshelf/internal/logging"
	"github.com/thoreinstein/romshelf/internal/render"
	"github.com/thoreinstein/romshelf/internal/system"
	"github.com/thoreinstein/romshelf/pkg/fileutil"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
	formatTOML = "toml"
)

var (
	systemsFormat string
	systemsOutput string
	systemsDedupe bool
)

func init() {
	systemsCmd.Flags().StringVarP(&systemsFormat, "format", "f", formatText,
		"output format: text, json, yaml, toml")
	systemsCmd.Flags().StringVarP(&systemsOutput, "output", "o", "",
		"write to file instead of stdout")
	systemsCmd.Flags().BoolVar(&systemsDedupe, "dedupe", false,
		"list systems that share a location only once")
	rootCmd.AddCommand(systemsCmd)
}

var systemsCmd = &cobra.Command{
	Use:     "systems",
	Aliases: []string{"ls"},
	Short:   "List the systems declared by the archive",
	Long: `List the systems declared in the archive's config.yaml, in the order
they are declared.

Structured formats (json, yaml, toml) emit the validated systems under a
top-level "systems" key and are suitable for scripting. Files written with
--output never contain color codes.

With --dedupe, a system stored in the same location with the same game
layout as an earlier one is left out.`,
	Example: `  romshelf systems
  romshelf systems --format json
  romshelf systems --format toml -o systems.toml
  romshelf systems --dedupe`,
	Args: cobra.NoArgs,
	RunE: runSystems,
}

// systemView is the serialized form of a system.
type systemView struct {
	Label               string `json:"label" yaml:"label" toml:"label"`
	DisplayName         string `json:"display_name" yaml:"display_name" toml:"display_name"`
	Color               []int  `json:"color" yaml:"color,flow" toml:"color"`
	Path                string `json:"path" yaml:"path" toml:"path"`
	GamesAreDirectories bool   `json:"games_are_directories" yaml:"games_are_directories" toml:"games_are_directories"`
}

type systemsView struct {
	Systems []systemView `json:"systems" yaml:"systems" toml:"systems"`
}

func newSystemsView(systems []system.Descriptor) systemsView {
	v := systemsView{Systems: make([]systemView, 0, len(systems))}
	for _, s := range systems {
		c := s.Color()
		v.Systems = append(v.Systems, systemView{
			Label:               s.Label(),
			DisplayName:         s.DisplayName().Text,
			Color:               []int{int(c.R), int(c.G), int(c.B)},
			Path:                s.Directory(),
			GamesAreDirectories: s.GamesAreDirectories(),
		})
	}
	return v
}

func runSystems(cmd *cobra.Command, _ []string) error {
	_, systems, err := loadSystems(cmd)
	if err != nil {
		return err
	}

	if systemsDedupe {
		unique := system.Dedupe(systems)
		if dropped := len(systems) - len(unique); dropped > 0 {
			logging.FromContext(cmd.Context()).Info("skipping duplicate systems", "count", dropped)
		}
		systems = unique
	}

	// Color only ever goes to the terminal.
	colored := systemsOutput == ""

	var buf bytes.Buffer
	if err := writeSystems(&buf, systems, systemsFormat, colored); err != nil {
		return err
	}

	if systemsOutput != "" {
		if err := fileutil.AtomicWriteFile(archiveFs, systemsOutput, buf.Bytes(), 0o644); err != nil {
			return errors.NewSystemError(err, "Check that the output directory exists and is writable")
		}
		return nil
	}

	_, err = cmd.OutOrStdout().Write(buf.Bytes())
	return errors.Wrap(err, "writing output")
}

func writeSystems(w io.Writer, systems []system.Descriptor, format string, colored bool) error {
	switch format {
	case formatText:
		writeSystemsText(w, systems, colored)
		return nil
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(newSystemsView(systems)), "encoding JSON")
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newSystemsView(systems)); err != nil {
			return errors.Wrap(err, "encoding YAML")
		}
		return errors.Wrap(enc.Close(), "encoding YAML")
	case formatTOML:
		return errors.Wrap(toml.NewEncoder(w).Encode(newSystemsView(systems)), "encoding TOML")
	default:
		return errors.NewUserError(
			errors.Newf("unknown format %q", format),
			"Use one of: text, json, yaml, toml")
	}
}

// writeSystemsText prints one aligned row per system. Padding is computed on
// the plain display name since color codes have no width.
func writeSystemsText(w io.Writer, systems []system.Descriptor, colored bool) {
	if len(systems) == 0 {
		fmt.Fprintln(w, "No systems declared.")
		return
	}

	labelWidth, nameWidth := len("LABEL"), len("NAME")
	for _, s := range systems {
		labelWidth = max(labelWidth, len(s.Label()))
		nameWidth = max(nameWidth, len(s.DisplayName().Text))
	}

	fmt.Fprintf(w, "%-*s  %-*s  %-5s  %s\n", labelWidth, "LABEL", nameWidth, "NAME", "GAMES", "PATH")
	for _, s := range systems {
		name := s.DisplayName().Text
		pad := strings.Repeat(" ", nameWidth-len(name))
		if colored {
			name = render.Name(s)
		}
		fmt.Fprintf(w, "%-*s  %s%s  %-5s  %s\n",
			labelWidth, s.Label(), name, pad, gameKind(s), s.Directory())
	}
}

func gameKind(s system.Descriptor) string {
	if s.GamesAreDirectories() {
		return "dirs"
	}
	return "files"
}
