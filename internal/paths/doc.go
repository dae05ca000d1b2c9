// Package paths provides path resolution utilities for romshelf.
//
// It wraps github.com/adrg/xdg for XDG Base Directory compliance when locating
// romshelf's own settings, and decides which archive root a command runs
// against:
//
//	root, err := paths.ResolveArchiveRoot(flagValue, cfg.ArchiveRoot)
//
// The --root flag wins over the configured archive_root, which wins over the
// current working directory. A leading "~" is expanded to the home directory.
package paths
