// Package logging sets up the slog loggers used by the romshelf commands.
//
// Verbosity comes from the count of -v flags and maps onto four levels,
// see [LevelFromVerbosity]. The extra [LevelTrace] level carries one line
// per loaded system and is rendered as TRACE.
//
// Terminal output goes through [Handler], a compact key=value renderer that
// colors levels and keys when stderr is a color-capable terminal. When a log
// file is configured the command layer combines the terminal handler with a
// JSON handler through [Fanout]:
//
//	logger := slog.New(logging.Fanout(
//		logging.NewHandler(os.Stderr, opts),
//		slog.NewJSONHandler(file, opts),
//	))
//
// Commands retrieve their logger from the command context with
// [FromContext]; [NewContext] stores it there. Tests use [ForTest] to route
// log lines through t.Log.
package logging
