package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the persisted parts of the configuration.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}
	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if cfg.Languages == nil {
		cfg.Languages = make(map[string]LanguageConfig)
	}
	return cfg, nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := &Config{
		Backups:       c.Backups,
		Write:         c.Write,
		Check:         c.Check,
		ShowDiff:      c.ShowDiff,
		Format:        c.Format,
		Jobs:          c.Jobs,
		ForceLanguage: c.ForceLanguage,
		NoBackups:     c.NoBackups,
	}

	if c.Ignore != nil {
		clone.Ignore = append([]string(nil), c.Ignore...)
	}

	clone.Languages = make(map[string]LanguageConfig, len(c.Languages))
	for id, lc := range c.Languages {
		clone.Languages[id] = lc.clone()
	}
	return clone
}

func (lc LanguageConfig) clone() LanguageConfig {
	out := LanguageConfig{}
	if lc.Enabled != nil {
		enabled := *lc.Enabled
		out.Enabled = &enabled
	}
	if lc.Anchors != nil {
		out.Anchors = make([]AnchorConfig, len(lc.Anchors))
		for i, ac := range lc.Anchors {
			out.Anchors[i] = ac.clone()
		}
	}
	return out
}

func (ac AnchorConfig) clone() AnchorConfig {
	out := AnchorConfig{
		Kind:    ac.Kind,
		Spacing: ac.Spacing,
	}
	if ac.Separators != nil {
		out.Separators = append([]string(nil), ac.Separators...)
	}
	if ac.PadAfter != nil {
		padAfter := *ac.PadAfter
		out.PadAfter = &padAfter
	}
	return out
}
