// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains the styled renderers for CLI output.
type Styles struct {
	// File status
	Path    lipgloss.Style
	Changed lipgloss.Style
	Skipped lipgloss.Style
	Error   lipgloss.Style

	// Diff styles
	DiffHeader  lipgloss.Style
	DiffHunk    lipgloss.Style
	DiffAdd     lipgloss.Style
	DiffRemove  lipgloss.Style
	DiffContext lipgloss.Style

	// Preview styles
	Filler     lipgloss.Style
	Annotation lipgloss.Style
	LineNumber lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a Styles set for the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			Path:         plain,
			Changed:      plain,
			Skipped:      plain,
			Error:        plain,
			DiffHeader:   plain,
			DiffHunk:     plain,
			DiffAdd:      plain,
			DiffRemove:   plain,
			DiffContext:  plain,
			Filler:       plain,
			Annotation:   plain,
			LineNumber:   plain,
			SummaryTitle: plain,
			Success:      plain,
			Failure:      plain,
			Dim:          plain,
			Bold:         plain,
		}
	}

	return &Styles{
		Path:    lipgloss.NewStyle().Bold(true),
		Changed: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Skipped: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		DiffHeader:  lipgloss.NewStyle().Bold(true),
		DiffHunk:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		DiffAdd:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		DiffRemove:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		DiffContext: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Filler:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true),
		Annotation: lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		LineNumber: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// IsColorEnabled decides whether to colorize output for a writer.
// Mode values: "auto" (default), "always", "never". In auto mode,
// color is enabled only for a TTY with NO_COLOR unset.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
