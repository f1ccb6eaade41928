package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/zaydek/alignment-sanity/internal/configloader"
	"github.com/zaydek/alignment-sanity/internal/logging"
	"github.com/zaydek/alignment-sanity/pkg/config"
	"github.com/zaydek/alignment-sanity/pkg/engine"
	"github.com/zaydek/alignment-sanity/pkg/reporter"
	"github.com/zaydek/alignment-sanity/pkg/runner"
)

type fmtFlags struct {
	format  string
	ignore  []string
	lang    string
	verbose bool
}

func newFmtCommand() *cobra.Command {
	var cfg config.Config
	flags := &fmtFlags{}

	cmd := &cobra.Command{
		Use:   "fmt [paths...]",
		Short: "Align anchor columns in source files",
		Long:  fmtLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, &cfg, flags)
		},
	}

	addFmtFlags(cmd, &cfg, flags)

	return cmd
}

const fmtLongDescription = `Align anchor columns (colons, assignments, arrows, and friends) in
supported source files.

By default, checks all supported files under the current directory and
reports the ones that need alignment. Pass --write to rewrite them in
place, or "-" as the only path to format stdin to stdout.

Examples:
  alignsanity fmt                      # Report misaligned files
  alignsanity fmt --write              # Align files in place
  alignsanity fmt --check              # CI mode: exit 1 on drift
  alignsanity fmt --diff config/       # Show pending changes as diffs
  alignsanity fmt --format json        # Machine-readable output
  alignsanity fmt --lang yaml - <f.txt # Format stdin as YAML`

func runFmt(cmd *cobra.Command, args []string, cfg *config.Config, flags *fmtFlags) error {
	logger := logging.Default()

	cfg.Format = config.OutputFormat(flags.format)
	cfg.Ignore = flags.ignore
	cfg.ForceLanguage = flags.lang

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	finalCfg, workDir, err := loadConfig(ctx, cmd, cfg, logger)
	if err != nil {
		return err
	}

	// "-" as the only path reads stdin and writes the aligned form to
	// stdout, bypassing discovery and the reporter.
	if len(args) == 1 && args[0] == "-" {
		return runFmtStdin(ctx, cmd, finalCfg)
	}

	eng := engine.New(finalCfg.Tables())
	fmtRunner := runner.New(engine.NewPipeline(eng))

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		ExcludeGlobs: finalCfg.Ignore,
		Jobs:         finalCfg.Jobs,
		Config:       finalCfg,
	}

	logger.Debug("starting fmt run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldWrite, finalCfg.Write,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := fmtRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("fmt run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := config.ParseOutputFormat(flags.format)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowSummary: true,
		Verbose:     flags.verbose,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if result.HasErrors() {
		return errors.New("some files failed to process")
	}
	if finalCfg.Check && result.HasChanges() {
		return ErrChangesFound
	}

	return nil
}

// runFmtStdin formats stdin to stdout. Language detection has no file
// name to work with, so --lang is effectively required for anything the
// content classifier cannot identify on its own.
func runFmtStdin(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	content, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	pipeline := engine.NewPipeline(engine.New(cfg.Tables()))
	opts := engine.Options{ForceLanguage: cfg.ForceLanguage}

	result, formatted, err := pipeline.ProcessContent(ctx, "<stdin>", content, opts)
	if err != nil {
		return err
	}
	if result.Skipped {
		return fmt.Errorf("%w: cannot detect stdin language, pass --lang", ErrInvalidUsage)
	}

	if _, err := cmd.OutOrStdout().Write(formatted); err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}

	if cfg.Check && result.Changed {
		return ErrChangesFound
	}
	return nil
}

// loadConfig resolves the effective configuration for a command run.
func loadConfig(ctx context.Context, cmd *cobra.Command, cliCfg *config.Config, logger *log.Logger) (*config.Config, string, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrConfig, err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldConfigPath, loadResult.LoadedFrom)
	}

	return loadResult.Config, workDir, nil
}

func addFmtFlags(cmd *cobra.Command, cfg *config.Config, flags *fmtFlags) {
	cmd.Flags().BoolVarP(&cfg.Write, "write", "w", false, "rewrite files in place")
	cmd.Flags().BoolVar(&cfg.Check, "check", false, "exit non-zero when any file needs alignment")
	cmd.Flags().BoolVarP(&cfg.ShowDiff, "diff", "d", false, "show pending changes as unified diffs")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, diff")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringVar(&flags.lang, "lang", "", "force a language instead of detecting per file")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "disable backup creation when writing")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "also report clean and skipped files")
}
