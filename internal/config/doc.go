// Package config provides configuration management for the romshelf CLI.
//
// This package handles romshelf's own settings. It is distinct from an
// archive's config.yaml, which declares the systems of one archive and is
// loaded by the archive package.
//
// # Settings File
//
// Settings live in <XDG config home>/romshelf/settings.yaml (override the
// directory with ROMSHELF_CONFIG_DIR):
//
//	archive_root: ~/roms   # used when --root is not given
//	color: auto            # auto, always, never
//	log_format: text       # text, json
//
// Every key can also be set through the environment with a ROMSHELF_ prefix,
// e.g. ROMSHELF_ARCHIVE_ROOT.
//
// # Loading Configuration
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
package config
