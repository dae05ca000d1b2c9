package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/romshelf/internal/errors"
)

// AppName is the application name used for config directory naming.
const AppName = "romshelf"

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrInvalidPath indicates the provided path is malformed or invalid.
	ErrInvalidPath = errors.New("invalid path")
)

// Home returns the user's home directory.
// It returns an empty string on error; use ResolveHome for proper error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the directory holding romshelf's own settings.
// ROMSHELF_CONFIG_DIR overrides the XDG location.
func ConfigDir() string {
	if dir := os.Getenv("ROMSHELF_CONFIG_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := ResolveHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// ResolveArchiveRoot picks the archive root: the flag value wins over the
// configured value, and the current directory is used when both are empty.
func ResolveArchiveRoot(flagValue, configured string) (string, error) {
	root := flagValue
	if root == "" {
		root = configured
	}
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "determining current directory")
		}
		return wd, nil
	}

	if strings.ContainsRune(root, '\x00') {
		return "", errors.Wrapf(ErrInvalidPath, "%q", root)
	}
	return ExpandHome(root)
}
