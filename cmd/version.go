// Package cmd holds the romshelf build identity. The variables are set with
// -ldflags "-X github.com/thoreinstein/romshelf/cmd.Version=..." by release
// builds; plain go install builds fall back to the module build info.
package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// Version is the release version, or "dev".
	Version = "dev"
	// Commit is the git revision the binary was built from.
	Commit = "none"
	// Date is the build or commit time in RFC 3339 form.
	Date = "unknown"
)

// Info describes the running romshelf binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	Modified  bool   `json:"modified,omitempty"`
}

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// BuildInfo returns the identity of the running binary. Values injected at
// link time take precedence; anything left at its default is filled from the
// module version and VCS stamps recorded by the go command.
func BuildInfo() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	if bi.GoVersion != "" {
		info.GoVersion = bi.GoVersion
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "none" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "unknown" {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// ShortCommit returns the first twelve characters of the commit, with a
// "-dirty" suffix when the working tree had local changes.
func (i Info) ShortCommit() string {
	c := i.Commit
	if len(c) > 12 {
		c = c[:12]
	}
	if i.Modified {
		c += "-dirty"
	}
	return c
}

// String renders the multi-line form printed by "romshelf version".
func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "romshelf version %s\n", i.Version)
	fmt.Fprintf(&b, "  commit: %s\n", i.ShortCommit())
	fmt.Fprintf(&b, "  built:  %s\n", i.Date)
	fmt.Fprintf(&b, "  go:     %s %s\n", i.GoVersion, i.Platform)
	return b.String()
}
