// Package runner orchestrates alignment across many files: discovery,
// a bounded worker pool, and aggregate statistics.
package runner

import (
	"github.com/zaydek/alignment-sanity/pkg/config"
	"github.com/zaydek/alignment-sanity/pkg/engine"
	"github.com/zaydek/alignment-sanity/pkg/langdetect"
)

// Options controls a multi-file run.
type Options struct {
	// Paths are the files or directories to process. Empty defaults to
	// the working directory.
	Paths []string

	// WorkingDir resolves relative Paths and glob patterns. Empty uses
	// the process working directory.
	WorkingDir string

	// Extensions limits discovery to these extensions (lowercase, with
	// leading dot). Empty derives the set from the configured languages.
	Extensions []string

	// IncludeGlobs, when set, restricts discovery to matching paths.
	IncludeGlobs []string

	// ExcludeGlobs skips matching files and directories. The CLI merges
	// config ignore patterns and --ignore flags into this.
	ExcludeGlobs []string

	// FollowSymlinks traverses directory symlinks during discovery.
	FollowSymlinks bool

	// Jobs caps concurrent workers; 0 or negative means NumCPU.
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) > 0 {
		return o.Extensions
	}
	cfg := o.Config
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return langdetect.Extensions(cfg.LanguageIDs())
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

// pipelineOptions derives per-file options from the run configuration.
func (o Options) pipelineOptions() engine.Options {
	cfg := o.Config
	if cfg == nil {
		return engine.Options{}
	}
	return engine.Options{
		Write:         cfg.Write,
		ShowDiff:      cfg.ShowDiff || cfg.Format == config.FormatDiff,
		Backups:       cfg.BackupsEnabled(),
		ForceLanguage: cfg.ForceLanguage,
	}
}
