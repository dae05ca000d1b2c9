package validator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/thoreinstein/romshelf/internal/archive"
	"github.com/thoreinstein/romshelf/internal/errors"
	"github.com/thoreinstein/romshelf/internal/library"
	"github.com/thoreinstein/romshelf/internal/system"
)

// Check loads the archive at root from fs and collects its issues.
// A load failure yields exactly one error issue since loading stops at the
// first problem. Otherwise systems sharing a directory and game layout are
// warnings, and systems without games are info notes.
func Check(fs afero.Fs, root string) *Result {
	result := &Result{
		Root:   root,
		Config: archive.ConfigPath(root),
		Issues: []Issue{},
	}

	systems, err := archive.NewLoader(archive.WithFS(fs)).Load(root)
	if err != nil {
		result.Err = err
		result.Add(loadIssue(err))
		return result
	}

	result.Valid = true
	result.Systems = len(systems)

	for _, group := range system.Duplicates(systems) {
		labels := make([]string, 0, len(group))
		for _, s := range group {
			labels = append(labels, s.Label())
		}
		result.AddWarning(group[0].Label(), fmt.Sprintf("systems %s share path %q",
			strings.Join(labels, ", "), group[0].Directory()))
	}

	for _, s := range systems {
		games, err := library.List(fs, root, s)
		if err != nil {
			result.AddWarning(s.Label(), err.Error())
			continue
		}
		if len(games) == 0 {
			result.AddInfo(s.Label(), "no games found in "+s.Directory())
		}
	}

	return result
}

// loadIssue converts a load error into an error issue.
func loadIssue(err error) Issue {
	issue := Issue{
		Severity: SeverityError,
		Message:  err.Error(),
	}
	if hints := errors.GetAllHints(err); len(hints) > 0 {
		issue.Hint = hints[0]
	}

	var cfgErr *archive.ConfigError
	if errors.As(err, &cfgErr) {
		issue.System = cfgErr.Label
		issue.Context = map[string]string{"kind": string(cfgErr.Kind)}
		if cfgErr.Property != "" {
			issue.Context["property"] = cfgErr.Property
		}
		if cfgErr.Line > 0 {
			issue.Context["line"] = strconv.Itoa(cfgErr.Line)
		}
		if cfgErr.Path != "" {
			issue.Context["path"] = cfgErr.Path
		}
	}
	return issue
}
