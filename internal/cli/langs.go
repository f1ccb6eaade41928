package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zaydek/alignment-sanity/internal/logging"
	"github.com/zaydek/alignment-sanity/internal/ui/pretty"
	"github.com/zaydek/alignment-sanity/pkg/config"
	"github.com/zaydek/alignment-sanity/pkg/langdetect"
)

func newLangsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "langs",
		Short: "List supported languages and their anchors",
		Long: `List the languages alignsanity can align, the file extensions each
covers, and the anchor separators that drive alignment. Languages
disabled in configuration are omitted.`,
		Args: cobra.NoArgs,
		RunE: runLangs,
	}

	return cmd
}

func runLangs(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	finalCfg, _, err := loadConfig(ctx, cmd, &config.Config{}, logging.Default())
	if err != nil {
		return err
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

	out := cmd.OutOrStdout()
	tables := finalCfg.Tables()

	for _, id := range finalCfg.LanguageIDs() {
		table := tables[id]

		extensions := langdetect.Extensions([]string{id})
		fmt.Fprintf(out, "%s  %s\n",
			styles.Bold.Render(id),
			styles.Dim.Render(strings.Join(extensions, " ")),
		)

		for _, rule := range table.Rules {
			side := "pads before"
			if rule.PadAfter {
				side = "pads after"
			}
			fmt.Fprintf(out, "  %-8s %-12s %s\n",
				rule.Kind,
				strings.Join(rule.Separators, " "),
				styles.Dim.Render(side),
			)
		}
		fmt.Fprintln(out)
	}

	return nil
}
