package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/zaydek/alignment-sanity/pkg/config"
)

// envVarPrefix is the prefix for all alignsanity environment variables.
const envVarPrefix = "ALIGNSANITY_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"WRITE":           {field: "write", typ: envTypeBool},
	"CHECK":           {field: "check", typ: envTypeBool},
	"DIFF":            {field: "show_diff", typ: envTypeBool},
	"FORMAT":          {field: "format", typ: envTypeString},
	"JOBS":            {field: "jobs", typ: envTypeInt},
	"LANG":            {field: "force_language", typ: envTypeString},
	"IGNORE":          {field: "ignore", typ: envTypeSlice},
	"BACKUPS_ENABLED": {field: "backups.enabled", typ: envTypeBool},
	"NO_BACKUPS":      {field: "no_backups", typ: envTypeBool},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with ALIGNSANITY_ (e.g., ALIGNSANITY_WRITE).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "force_language":
		cfg.ForceLanguage = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "write":
		cfg.Write = value
	case "check":
		cfg.Check = value
	case "show_diff":
		cfg.ShowDiff = value
	case "backups.enabled":
		cfg.Backups.Enabled = value
	case "no_backups":
		cfg.NoBackups = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// ListEnvVars returns all supported environment variables with descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"ALIGNSANITY_WRITE":           "Rewrite files in place: true or false",
		"ALIGNSANITY_CHECK":           "Check mode, exit non-zero on drift: true or false",
		"ALIGNSANITY_DIFF":            "Show unified diffs: true or false",
		"ALIGNSANITY_FORMAT":          "Output format: text, json, or diff",
		"ALIGNSANITY_JOBS":            "Number of parallel workers (0 = auto)",
		"ALIGNSANITY_LANG":            "Force a language for all files (e.g. yaml)",
		"ALIGNSANITY_IGNORE":          "Comma-separated list of ignore patterns",
		"ALIGNSANITY_BACKUPS_ENABLED": "Enable backups when writing: true or false",
		"ALIGNSANITY_NO_BACKUPS":      "Disable backups: true or false",
	}
}
