package configloader

import (
	"fmt"
	"sort"

	"github.com/zaydek/alignment-sanity/pkg/align"
	"github.com/zaydek/alignment-sanity/pkg/config"
)

// ValidationError describes a single configuration problem.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationResult holds errors and warnings from validation.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// Valid reports whether the configuration has no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownKinds = map[align.TokenKind]bool{
	align.KindColon:   true,
	align.KindAssign:  true,
	align.KindLogical: true,
	align.KindComma:   true,
	align.KindArrow:   true,
}

// Validate checks a resolved configuration for problems. Unknown language
// ids produce warnings rather than errors so a shared config can mention
// languages a given build does not support.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	switch cfg.Format {
	case "", config.FormatText, config.FormatJSON, config.FormatDiff:
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Message: fmt.Sprintf("unsupported output format %q (expected text, json, or diff)", cfg.Format),
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Message: fmt.Sprintf("must be >= 0, got %d", cfg.Jobs),
		})
	}

	builtin := align.BuiltinTables()

	if cfg.ForceLanguage != "" {
		if _, ok := cfg.Tables()[cfg.ForceLanguage]; !ok {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "lang",
				Message: fmt.Sprintf("unknown or disabled language %q", cfg.ForceLanguage),
			})
		}
	}

	// Iterate languages in sorted order so repeated runs report the same
	// first error.
	ids := make([]string, 0, len(cfg.Languages))
	for id := range cfg.Languages {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if _, ok := builtin[id]; !ok {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "languages." + id,
				Message: "unknown language, section ignored",
			})
		}
		validateAnchors(id, cfg.Languages[id].Anchors, result)
	}

	return result
}

func validateAnchors(language string, anchors []config.AnchorConfig, result *ValidationResult) {
	for i, anchor := range anchors {
		field := fmt.Sprintf("languages.%s.anchors[%d]", language, i)

		if !knownKinds[align.TokenKind(anchor.Kind)] {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field + ".kind",
				Message: fmt.Sprintf("unknown anchor kind %q (expected colon, assign, logical, comma, or arrow)", anchor.Kind),
			})
		}

		if len(anchor.Separators) == 0 {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field + ".separators",
				Message: "at least one separator is required",
			})
			continue
		}
		for j, sep := range anchor.Separators {
			if sep == "" {
				result.Errors = append(result.Errors, ValidationError{
					Field:   fmt.Sprintf("%s.separators[%d]", field, j),
					Message: "separator must not be empty",
				})
			}
		}
	}
}
