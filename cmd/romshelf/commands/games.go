package commands

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/romshelf/internal/errors"
	"github.com/thoreinstein/romshelf/internal/library"
	"github.com/thoreinstein/romshelf/internal/render"
	"github.com/thoreinstein/romshelf/internal/system"
)

var (
	gamesSearch      string
	gamesInteractive bool
	gamesJSON        bool
)

func init() {
	gamesCmd.Flags().StringVarP(&gamesSearch, "search", "s", "",
		"only list games whose name contains this text")
	gamesCmd.Flags().BoolVarP(&gamesInteractive, "interactive", "i", false,
		"pick a game with a fuzzy finder and print its path")
	gamesCmd.Flags().BoolVar(&gamesJSON, "json", false,
		"output as JSON")
	gamesCmd.MarkFlagsMutuallyExclusive("interactive", "json")
	rootCmd.AddCommand(gamesCmd)
}

var gamesCmd = &cobra.Command{
	Use:   "games <system>",
	Short: "List the games of a system",
	Long: `List the games stored in a system's directory.

For systems with games_are_directories: true each subdirectory is a game,
otherwise each regular file is. Hidden entries are skipped.`,
	Example: `  romshelf games wii
  romshelf games ds --search mario
  romshelf games ds --interactive`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeSystemLabels,
	RunE:              runGames,
}

func runGames(cmd *cobra.Command, args []string) error {
	root, systems, err := loadSystems(cmd)
	if err != nil {
		return err
	}

	sys, err := library.Lookup(systems, args[0])
	if err != nil {
		return errors.NewUserError(err, "Run 'romshelf systems' to see declared systems")
	}

	games, err := library.List(archiveFs, root, sys)
	if err != nil {
		return errors.NewSystemError(err, "Check that the system directory is readable")
	}
	games = library.Find(games, gamesSearch)

	w := cmd.OutOrStdout()
	switch {
	case gamesInteractive:
		return pickGame(w, sys, games)
	case gamesJSON:
		if games == nil {
			games = []library.Game{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(games), "encoding JSON")
	default:
		writeGamesText(w, sys, games)
		return nil
	}
}

func writeGamesText(w io.Writer, sys system.Descriptor, games []library.Game) {
	fmt.Fprintf(w, "%s (%d games)\n", render.Name(sys), len(games))
	for _, g := range games {
		fmt.Fprintf(w, "  %s\n", g.Name)
	}
}

func pickGame(w io.Writer, sys system.Descriptor, games []library.Game) error {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games found.")
		return nil
	}

	idx, err := fuzzyfinder.Find(
		games,
		func(i int) string {
			return games[i].Name
		},
		fuzzyfinder.WithPromptString(sys.DisplayName().Text+" > "),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			g := games[i]
			if g.IsDir {
				return fmt.Sprintf("Name: %s\nPath: %s\nType: directory", g.Name, g.Path)
			}
			return fmt.Sprintf("Name: %s\nPath: %s\nSize: %d bytes", g.Name, g.Path, g.Size)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive selection failed")
	}

	fmt.Fprintln(w, games[idx].Path)
	return nil
}

// completeSystemLabels completes the labels declared by the archive.
func completeSystemLabels(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	_, systems, err := loadSystems(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	labels := make([]string, 0, len(systems))
	for _, s := range systems {
		labels = append(labels, s.Label()+"\t"+s.DisplayName().Text)
	}
	return labels, cobra.ShellCompDirectiveNoFileComp
}
