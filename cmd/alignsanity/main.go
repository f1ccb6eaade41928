// Package main is the entry point for the alignsanity CLI.
package main

import (
	"errors"
	"os"

	"github.com/zaydek/alignment-sanity/internal/cli"
	"github.com/zaydek/alignment-sanity/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, cli.ErrChangesFound) {
		// ErrChangesFound only signals the exit code; everything else
		// gets logged.
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
	}

	return cli.ExitCode(err)
}
