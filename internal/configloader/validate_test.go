package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zaydek/alignment-sanity/pkg/config"
)

func TestValidateCleanConfig(t *testing.T) {
	t.Parallel()

	result := Validate(config.NewConfig())
	assert.True(t, result.Valid())
	assert.Empty(t, result.Warnings)
}

func TestValidateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutate   func(*config.Config)
		expected string
	}{
		{
			name:     "bad format",
			mutate:   func(c *config.Config) { c.Format = config.OutputFormat("xml") },
			expected: "unsupported output format",
		},
		{
			name:     "negative jobs",
			mutate:   func(c *config.Config) { c.Jobs = -1 },
			expected: "must be >= 0",
		},
		{
			name:     "unknown forced language",
			mutate:   func(c *config.Config) { c.ForceLanguage = "cobol" },
			expected: "unknown or disabled language",
		},
		{
			name: "unknown anchor kind",
			mutate: func(c *config.Config) {
				c.Languages["yaml"] = config.LanguageConfig{
					Anchors: []config.AnchorConfig{{Kind: "semicolon", Separators: []string{";"}}},
				}
			},
			expected: "unknown anchor kind",
		},
		{
			name: "missing separators",
			mutate: func(c *config.Config) {
				c.Languages["yaml"] = config.LanguageConfig{
					Anchors: []config.AnchorConfig{{Kind: "colon"}},
				}
			},
			expected: "at least one separator",
		},
		{
			name: "empty separator",
			mutate: func(c *config.Config) {
				c.Languages["yaml"] = config.LanguageConfig{
					Anchors: []config.AnchorConfig{{Kind: "colon", Separators: []string{""}}},
				}
			},
			expected: "must not be empty",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			testCase.mutate(cfg)

			result := Validate(cfg)
			assert.False(t, result.Valid())
			assert.Contains(t, result.Errors[0].Error(), testCase.expected)
		})
	}
}

func TestValidateUnknownLanguageWarns(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Languages["cobol"] = config.LanguageConfig{}

	result := Validate(cfg)
	assert.True(t, result.Valid())
	assert.Contains(t, result.Warnings[0].Error(), "unknown language")
}

func TestValidateDisabledForcedLanguage(t *testing.T) {
	t.Parallel()

	disabled := false
	cfg := config.NewConfig()
	cfg.ForceLanguage = "yaml"
	cfg.Languages["yaml"] = config.LanguageConfig{Enabled: &disabled}

	result := Validate(cfg)
	assert.False(t, result.Valid())
}
