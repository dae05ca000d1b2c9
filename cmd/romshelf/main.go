// Package main is the entry point for the romshelf CLI.
package main

import (
	"os"

	"github.com/thoreinstein/romshelf/cmd/romshelf/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(commands.ReportError(os.Stderr, err))
	}
}
