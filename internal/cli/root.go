// Package cli provides the Cobra command structure for alignsanity.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zaydek/alignment-sanity/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root alignsanity command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "alignsanity",
		Short: "Vertical alignment formatter for structured source files",
		Long: `alignsanity keeps columns of colons, assignments, and other anchors
vertically aligned across consecutive lines of YAML, JSON, TOML, INI,
JavaScript, TypeScript, Python, and CSS files.

It tokenizes each file, groups alignable anchors on consecutive lines at
the same indentation and nesting depth, and pads them to a shared column.
Writes are safe: content is canonicalized first, rewrites are atomic, and
files that change mid-run are skipped instead of clobbered.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newFmtCommand())
	rootCmd.AddCommand(newPreviewCommand())
	rootCmd.AddCommand(newLangsCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
