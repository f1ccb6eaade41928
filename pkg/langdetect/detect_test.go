package langdetect_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zaydek/alignment-sanity/pkg/langdetect"
)

func TestDetectByExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"config.yml", langdetect.LangYAML},
		{"config.yaml", langdetect.LangYAML},
		{"package.json", langdetect.LangJSON},
		{"Cargo.toml", langdetect.LangTOML},
		{"setup.ini", langdetect.LangINI},
		{"app.js", langdetect.LangJavaScript},
		{"app.mjs", langdetect.LangJavaScript},
		{"app.tsx", langdetect.LangTypeScript},
		{"main.py", langdetect.LangPython},
		{"style.css", langdetect.LangCSS},
		{"main.go", langdetect.LangGo},
		{"UPPER.YML", langdetect.LangYAML},
		{"nested/dir/deploy.yaml", langdetect.LangYAML},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, langdetect.Detect(tt.path, nil))
		})
	}
}

func TestDetectUnsupported(t *testing.T) {
	t.Parallel()

	// No anchor table covers these; they must come back empty so the
	// pipeline skips them instead of guessing.
	assert.Empty(t, langdetect.Detect("README.md", nil))
	assert.Empty(t, langdetect.Detect("photo.png", nil))
	assert.Empty(t, langdetect.Detect("archive.tar.gz", nil))
}

func TestDetectExtensionlessByContent(t *testing.T) {
	t.Parallel()

	content := []byte("name: app\nversion: 1\nitems:\n  - one\n  - two\n")
	got := langdetect.Detect("pipeline", content)

	// Enry may or may not commit on short content; it must never
	// return an identifier outside the supported set.
	if got != "" {
		assert.Equal(t, langdetect.LangYAML, got)
	}
}

func TestDetectByContentEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, langdetect.DetectByContent(nil))
}

func TestExtensions(t *testing.T) {
	t.Parallel()

	got := langdetect.Extensions([]string{langdetect.LangYAML, langdetect.LangTOML})
	sort.Strings(got)
	assert.Equal(t, []string{".toml", ".yaml", ".yml"}, got)
}

func TestExtensionsEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, langdetect.Extensions(nil))
}
