// Package config defines the configuration types for alignsanity.
// These are pure data structures; file discovery and precedence live in
// internal/configloader.
package config

import (
	"sort"

	"github.com/zaydek/alignment-sanity/pkg/align"
)

// AnchorConfig describes one anchor rule inside a language block. A
// nil PadAfter falls back to the kind's conventional side: colons and
// commas pad after, operators pad before.
type AnchorConfig struct {
	Kind       string   `mapstructure:"kind" yaml:"kind"`
	Separators []string `mapstructure:"separators" yaml:"separators"`
	Spacing    string   `mapstructure:"spacing" yaml:"spacing"`
	PadAfter   *bool    `mapstructure:"pad_after" yaml:"pad_after,omitempty"`
}

// LanguageConfig holds per-language configuration. A language with
// Anchors set replaces the built-in table's rules wholesale rather
// than merging rule by rule.
type LanguageConfig struct {
	Enabled *bool          `mapstructure:"enabled" yaml:"enabled,omitempty"`
	Anchors []AnchorConfig `mapstructure:"anchors" yaml:"anchors,omitempty"`
}

// BackupsConfig controls sidecar backups before rewriting files.
type BackupsConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// OutputFormat selects how run results are reported.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatDiff OutputFormat = "diff"
)

// Config is the root configuration for alignsanity.
type Config struct {
	// Languages holds per-language overrides keyed by language id
	// (e.g. "yaml", "javascript").
	Languages map[string]LanguageConfig `mapstructure:"languages" yaml:"languages,omitempty"`

	// Ignore contains glob patterns for files to skip during discovery.
	Ignore []string `mapstructure:"ignore" yaml:"ignore,omitempty"`

	// Backups configures sidecar backups before rewriting.
	Backups BackupsConfig `mapstructure:"backups" yaml:"backups"`

	// CLI-level options, never persisted to config files.

	// Write rewrites files in place. Without it a run only reports.
	Write bool `mapstructure:"-" yaml:"-"`

	// Check exits non-zero when any file would change.
	Check bool `mapstructure:"-" yaml:"-"`

	// ShowDiff prints a unified diff of pending changes.
	ShowDiff bool `mapstructure:"-" yaml:"-"`

	// Format specifies the output format.
	Format OutputFormat `mapstructure:"-" yaml:"-"`

	// Jobs is the worker count; 0 means GOMAXPROCS.
	Jobs int `mapstructure:"-" yaml:"-"`

	// ForceLanguage bypasses detection and applies one language's
	// table to every file.
	ForceLanguage string `mapstructure:"-" yaml:"-"`

	// NoBackups disables backup creation for this run.
	NoBackups bool `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		Languages: make(map[string]LanguageConfig),
		Backups:   BackupsConfig{Enabled: true},
		Format:    FormatText,
	}
}

// BackupsEnabled folds the CLI kill switch into the persisted setting.
func (c *Config) BackupsEnabled() bool {
	return c.Backups.Enabled && !c.NoBackups
}

// Tables resolves the effective anchor tables: built-ins, minus
// disabled languages, with configured anchor lists replacing the
// built-in rules for their language.
func (c *Config) Tables() map[string]*align.AnchorTable {
	tables := align.BuiltinTables()
	if c == nil {
		return tables
	}

	for id, lc := range c.Languages {
		if lc.Enabled != nil && !*lc.Enabled {
			delete(tables, id)
			continue
		}
		if len(lc.Anchors) == 0 {
			continue
		}

		rules := make([]align.AnchorRule, 0, len(lc.Anchors))
		for _, ac := range lc.Anchors {
			kind := align.TokenKind(ac.Kind)
			rules = append(rules, align.AnchorRule{
				Kind:       kind,
				Separators: ac.Separators,
				Spacing:    ac.Spacing,
				PadAfter:   padAfterFor(kind, ac.PadAfter),
			})
		}

		if base, ok := tables[id]; ok {
			tables[id] = align.NewAnchorTable(id, rules,
				align.WithLineComments(base.LineComments...),
				align.WithBlockComment(base.BlockComment[0], base.BlockComment[1]))
		} else {
			tables[id] = align.NewAnchorTable(id, rules)
		}
	}
	return tables
}

// LanguageIDs returns the sorted ids of all effective languages.
func (c *Config) LanguageIDs() []string {
	tables := c.Tables()
	ids := make([]string, 0, len(tables))
	for id := range tables {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func padAfterFor(kind align.TokenKind, explicit *bool) bool {
	if explicit != nil {
		return *explicit
	}
	switch kind {
	case align.KindColon, align.KindComma:
		return true
	default:
		return false
	}
}
