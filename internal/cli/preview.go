package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zaydek/alignment-sanity/internal/logging"
	"github.com/zaydek/alignment-sanity/internal/ui/pretty"
	"github.com/zaydek/alignment-sanity/pkg/config"
	"github.com/zaydek/alignment-sanity/pkg/engine"
	"github.com/zaydek/alignment-sanity/pkg/fsutil"
	"github.com/zaydek/alignment-sanity/pkg/langdetect"
	"github.com/zaydek/alignment-sanity/pkg/session"
)

type previewFlags struct {
	lang     string
	follow   bool
	interval time.Duration
	debounce time.Duration
}

func newPreviewCommand() *cobra.Command {
	flags := &previewFlags{}

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Show alignment padding without touching the file",
		Long: `Render a file with pending alignment padding overlaid as middots.
The file itself is never modified; padding exists only in the output.

With --follow, the file is polled for changes and the preview re-renders
whenever the content settles.

Examples:
  alignsanity preview config.yml
  alignsanity preview --follow --interval 250ms config.yml
  alignsanity preview --lang yaml notes.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.lang, "lang", "", "force a language instead of detecting")
	cmd.Flags().BoolVarP(&flags.follow, "follow", "f", false, "re-render when the file changes")
	cmd.Flags().DurationVar(&flags.interval, "interval", 500*time.Millisecond, "poll interval for --follow")
	cmd.Flags().DurationVar(&flags.debounce, "debounce", session.DefaultDebounce, "settle time before re-rendering")

	return cmd
}

func runPreview(cmd *cobra.Command, path string, flags *previewFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cliCfg := &config.Config{ForceLanguage: flags.lang}
	finalCfg, _, err := loadConfig(ctx, cmd, cliCfg, logging.Default())
	if err != nil {
		return err
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

	eng := engine.New(finalCfg.Tables())

	if !flags.follow {
		return previewOnce(ctx, cmd, eng, finalCfg, path, styles)
	}
	return previewFollow(ctx, cmd, eng, finalCfg, path, flags, styles)
}

// previewOnce renders the preview a single time.
func previewOnce(ctx context.Context, cmd *cobra.Command, eng *engine.Engine, cfg *config.Config, path string, styles *pretty.Styles) error {
	content, _, err := fsutil.Read(ctx, path)
	if err != nil {
		return engine.CategorizeError(err)
	}

	language := previewLanguage(cfg, path, content)
	if language == "" || eng.TableFor(language) == nil {
		return fmt.Errorf("%w: unsupported language for %s, pass --lang", ErrInvalidUsage, path)
	}

	instructions, err := eng.PreviewContent(ctx, language, content)
	if err != nil {
		return err
	}

	lines := strings.Split(string(content), "\n")
	fmt.Fprint(cmd.OutOrStdout(), fitToTerminal(pretty.RenderPreview(lines, instructions, styles)))
	return nil
}

// previewFollow polls the file and re-renders through a debounced
// session scheduler until interrupted.
func previewFollow(ctx context.Context, cmd *cobra.Command, eng *engine.Engine, cfg *config.Config, path string, flags *previewFlags, styles *pretty.Styles) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.Default()

	// The handler needs the unpadded content a result was computed from;
	// stale results are matched by version and dropped.
	var mu sync.Mutex
	var latestVersion uint64
	var latestContent []byte

	scheduler := session.NewScheduler(eng, flags.debounce, func(result session.Result) {
		mu.Lock()
		content := latestContent
		current := latestVersion
		mu.Unlock()
		if result.Version != current {
			return
		}

		lines := strings.Split(string(content), "\n")
		out := fitToTerminal(pretty.RenderPreview(lines, result.Instructions, styles))

		// Clear and home before each frame.
		fmt.Fprint(cmd.OutOrStdout(), "\x1b[2J\x1b[H")
		fmt.Fprint(cmd.OutOrStdout(), out)
		fmt.Fprintln(cmd.OutOrStdout(), styles.Dim.Render(fmt.Sprintf("watching %s (^C to quit)", path)))
	})
	defer scheduler.Close()

	var lastSum [32]byte
	ticker := time.NewTicker(flags.interval)
	defer ticker.Stop()

	push := func() error {
		content, snap, err := fsutil.Read(ctx, path)
		if err != nil {
			if errors.Is(err, fsutil.ErrNotFound) {
				logger.Warn("file deleted, waiting", logging.FieldPath, path)
				return nil
			}
			return engine.CategorizeError(err)
		}
		if snap.Sum == lastSum {
			return nil
		}
		lastSum = snap.Sum

		language := previewLanguage(cfg, path, content)
		if language == "" || eng.TableFor(language) == nil {
			return fmt.Errorf("%w: unsupported language for %s, pass --lang", ErrInvalidUsage, path)
		}

		version := scheduler.Update(path, language, content)
		mu.Lock()
		latestVersion = version
		latestContent = content
		mu.Unlock()
		return nil
	}

	if err := push(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		case <-ticker.C:
			if err := push(); err != nil {
				return err
			}
		}
	}
}

func previewLanguage(cfg *config.Config, path string, content []byte) string {
	if cfg.ForceLanguage != "" {
		return cfg.ForceLanguage
	}
	return langdetect.Detect(path, content)
}

// fitToTerminal truncates rendered lines to the terminal width so the
// annotation column never wraps. Non-terminal output passes through.
func fitToTerminal(rendered string) string {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return rendered
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return rendered
	}

	lines := strings.Split(rendered, "\n")
	for i, line := range lines {
		lines[i] = runewidth.Truncate(line, width, "…")
	}
	return strings.Join(lines, "\n")
}
