package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaydek/alignment-sanity/pkg/config"
	"gopkg.in/yaml.v3"
)

func TestFromYAML(t *testing.T) {
	t.Parallel()

	data := []byte(`
backups:
  enabled: false
ignore:
  - "vendor/**"
languages:
  json:
    enabled: false
  yaml:
    anchors:
      - kind: colon
        separators: [":"]
        spacing: " "
        pad_after: true
`)

	cfg, err := config.FromYAML(data)
	require.NoError(t, err)

	assert.False(t, cfg.Backups.Enabled)
	assert.Equal(t, []string{"vendor/**"}, cfg.Ignore)

	jsonCfg := cfg.Languages["json"]
	require.NotNil(t, jsonCfg.Enabled)
	assert.False(t, *jsonCfg.Enabled)

	yamlCfg := cfg.Languages["yaml"]
	require.Len(t, yamlCfg.Anchors, 1)
	anchor := yamlCfg.Anchors[0]
	assert.Equal(t, "colon", anchor.Kind)
	assert.Equal(t, []string{":"}, anchor.Separators)
	require.NotNil(t, anchor.PadAfter)
	assert.True(t, *anchor.PadAfter)
}

func TestFromYAMLInvalid(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("languages: [not, a, map]"))
	assert.Error(t, err)
}

func TestFromYAMLEmpty(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML(nil)
	require.NoError(t, err)
	assert.NotNil(t, cfg.Languages)
	assert.True(t, cfg.Backups.Enabled, "empty file keeps defaults")
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Backups.Enabled = false
	cfg.Ignore = []string{"dist/**"}
	cfg.Languages["toml"] = config.LanguageConfig{Enabled: boolPtr(false)}
	// CLI-only fields must not survive serialization.
	cfg.Write = true
	cfg.Jobs = 8

	data, err := cfg.ToYAML()
	require.NoError(t, err)

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, cfg.Backups, parsed.Backups)
	assert.Equal(t, cfg.Ignore, parsed.Ignore)
	assert.Equal(t, cfg.Languages, parsed.Languages)
	assert.False(t, parsed.Write)
	assert.Zero(t, parsed.Jobs)
}

func TestTemplateIsValidYAML(t *testing.T) {
	t.Parallel()

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(config.Template), &doc))

	cfg, err := config.FromYAML([]byte(config.Template))
	require.NoError(t, err)
	assert.True(t, cfg.Backups.Enabled)
}
