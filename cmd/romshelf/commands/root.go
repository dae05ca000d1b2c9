// Package commands implements the CLI commands for romshelf.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/romshelf/cmd"
	"github.com/thoreinstein/romshelf/internal/archive"
	"github.com/thoreinstein/romshelf/internal/config"
	"github.com/thoreinstein/romshelf/internal/errors"
	"github.com/thoreinstein/romshelf/internal/logging"
	"github.com/thoreinstein/romshelf/internal/paths"
	"github.com/thoreinstein/romshelf/internal/render"
	"github.com/thoreinstein/romshelf/internal/system"
)

// archiveFs is the filesystem archives are read from. Tests swap in an
// in-memory filesystem.
var archiveFs afero.Fs = afero.NewOsFs()

// rootFlag holds the value of the --root flag.
var rootFlag string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// noColor holds the value of the --no-color flag.
var noColor bool

// appConfig holds the loaded settings.
var appConfig *config.Config

// configLoadErr holds any error that occurred during settings loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&rootFlag, "root", "r", "",
		"archive root directory (default: archive_root setting, then current directory)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"log format: text, json (default: log_format setting)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"disable colored output")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("romshelf version {{.Version}}\n")

	// Errors are reported by main via ReportError
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	appConfig, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "romshelf",
	Short: "Browse the systems and games of a ROM archive",
	Long: `romshelf reads the config.yaml at the root of a game-ROM archive and
lists the systems (platforms) it declares and the games stored for each.

config.yaml declares one entry per system:

  systems:
    wii:
      display_name: WII
      color: [0, 215, 255]
      path: wbfs
      games_are_directories: true

The archive root is taken from --root, then the archive_root setting
(ROMSHELF_ARCHIVE_ROOT), then the current directory.`,
	Example: `  # List the systems of the archive in the current directory
  romshelf systems

  # Check an archive's config.yaml
  romshelf validate --root /mnt/roms

  # List Wii games matching "mario"
  romshelf games wii --search mario`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		applyColor(cmd)
		return checkConfig(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"),
			"Pass either --quiet or --verbose")
	}

	procEnv, err := config.ReadEnv()
	if err != nil {
		return errors.NewUserError(err, "Check the ROMSHELF_ environment variables")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			v = procEnv.Verbosity()
		}
		level = logging.LevelFromVerbosity(v)
	}

	format := logging.Format(logFormat)
	if format == "" && appConfig != nil {
		format = logging.Format(appConfig.LogFormat)
	}

	opts := &slog.HandlerOptions{Level: level}

	var primaryHandler slog.Handler
	switch format {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	path := logFile
	if path == "" {
		path = procEnv.LogFile
	}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	}

	logger := slog.New(logging.Fanout(handlers...))
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// applyColor decides whether output is colored. --no-color wins over the
// color setting; "auto" colors only when stdout supports it.
func applyColor(cmd *cobra.Command) {
	mode := render.ModeAuto
	if appConfig != nil && appConfig.Color != "" {
		mode = render.Mode(appConfig.Color)
	}
	if noColor {
		mode = render.ModeNever
	}

	if mode == render.ModeAuto {
		color.NoColor = !logging.SupportsColor(cmd.OutOrStdout())
		return
	}
	render.SetMode(mode)
}

// checkConfig surfaces settings load errors for every command but help,
// version and doctor, which reports them itself.
func checkConfig(cmd *cobra.Command) error {
	switch cmd.Name() {
	case "help", "version", "doctor":
		return nil
	}
	if configLoadErr != nil {
		return errors.NewUserError(configLoadErr, "Fix "+config.Path())
	}
	return nil
}

// archiveRoot resolves the archive root for the current invocation.
func archiveRoot() (string, error) {
	configured := ""
	if appConfig != nil {
		configured = appConfig.ArchiveRoot
	}
	root, err := paths.ResolveArchiveRoot(rootFlag, configured)
	if err != nil {
		return "", errors.NewUserError(err, "Pass a valid directory with --root")
	}
	return root, nil
}

// loadSystems loads the systems of the current archive. Errors are
// returned as *errors.ExitError carrying the config error's hint.
func loadSystems(cmd *cobra.Command) (string, []system.Descriptor, error) {
	root, err := archiveRoot()
	if err != nil {
		return "", nil, err
	}

	ctx := cmd.Context()
	logger := logging.FromContext(ctx)
	logger.Debug("loading archive", "root", root)

	systems, err := archive.NewLoader(archive.WithFS(archiveFs)).Load(root)
	if err != nil {
		logger.Debug("archive load failed", "root", root, "error", err)
		return root, nil, toExitError(err)
	}

	for _, s := range systems {
		logger.Log(ctx, logging.LevelTrace, "system loaded",
			"label", s.Label(), "path", s.Directory(), "games_are_directories", s.GamesAreDirectories())
	}
	logger.Info("loaded archive", "root", root, "systems", len(systems))

	return root, systems, nil
}

// toExitError maps a config error to an exit code: filesystem problems are
// system errors, everything about config.yaml's contents is a user error.
func toExitError(err error) error {
	suggestion := ""
	if hints := errors.GetAllHints(err); len(hints) > 0 {
		suggestion = hints[0]
	}
	if archive.IsSystemError(err) {
		return errors.NewSystemError(err, suggestion)
	}
	return errors.NewConfigError(err)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
