package configloader

import "github.com/zaydek/alignment-sanity/pkg/config"

// applyCLI layers flag-level settings on top of the file-derived config.
// Only fields the CLI actually set (non-zero) override; persisted sections
// from files are left alone except where a flag explicitly targets them.
func applyCLI(cfg, cli *config.Config) {
	if cli == nil {
		return
	}

	if cli.Write {
		cfg.Write = true
	}
	if cli.Check {
		cfg.Check = true
	}
	if cli.ShowDiff {
		cfg.ShowDiff = true
	}
	if cli.Format != "" {
		cfg.Format = cli.Format
	}
	if cli.Jobs != 0 {
		cfg.Jobs = cli.Jobs
	}
	if cli.ForceLanguage != "" {
		cfg.ForceLanguage = cli.ForceLanguage
	}
	if cli.NoBackups {
		cfg.NoBackups = true
	}

	// --ignore patterns extend the persisted list rather than replacing
	// it; a flag should never silently discard project config.
	if len(cli.Ignore) > 0 {
		cfg.Ignore = append(cfg.Ignore, cli.Ignore...)
	}
}
