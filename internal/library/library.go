// Package library lists the games stored under a system's directory.
package library

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/thoreinstein/romshelf/internal/errors"
	"github.com/thoreinstein/romshelf/internal/system"
)

// Game is one entry in a system directory.
type Game struct {
	// Name is the file or directory name.
	Name string `json:"name" yaml:"name" toml:"name"`

	// Path is the full path of the entry.
	Path string `json:"path" yaml:"path" toml:"path"`

	// IsDir is true when the game is stored as a directory.
	IsDir bool `json:"is_dir" yaml:"is_dir" toml:"is_dir"`

	// Size is the file size in bytes. It is 0 for directory games.
	Size int64 `json:"size" yaml:"size" toml:"size"`
}

// List returns the games of d in the archive at root, sorted by name.
// Directory games only count directories and file games only count regular
// files; hidden entries are skipped. Symbolic links are classified by their
// target and dangling links are skipped.
func List(fs afero.Fs, root string, d system.Descriptor) ([]Game, error) {
	dir := filepath.Join(root, d.Directory())
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading games of system %q", d.Label())
	}

	games := make([]Game, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, e.Name())

		info := e
		if e.Mode()&os.ModeSymlink != 0 {
			if info, err = fs.Stat(path); err != nil {
				continue
			}
		}

		if info.IsDir() != d.GamesAreDirectories() {
			continue
		}
		if !info.IsDir() && !info.Mode().IsRegular() {
			continue
		}

		g := Game{
			Name:  e.Name(),
			Path:  path,
			IsDir: info.IsDir(),
		}
		if !info.IsDir() {
			g.Size = info.Size()
		}
		games = append(games, g)
	}

	sort.Slice(games, func(i, j int) bool {
		return games[i].Name < games[j].Name
	})

	return games, nil
}

// Find returns the games whose name contains query, ignoring case.
// An empty query matches every game.
func Find(games []Game, query string) []Game {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return games
	}

	var matches []Game
	for _, g := range games {
		if strings.Contains(strings.ToLower(g.Name), q) {
			matches = append(matches, g)
		}
	}
	return matches
}

// Lookup returns the descriptor declared under label.
func Lookup(systems []system.Descriptor, label string) (system.Descriptor, error) {
	for _, s := range systems {
		if s.Label() == label {
			return s, nil
		}
	}
	return system.Descriptor{}, errors.Wrapf(errors.ErrUnknownSystem, "%q", label)
}
