package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaydek/alignment-sanity/internal/configloader"
	"github.com/zaydek/alignment-sanity/pkg/engine"
)

// execute runs the root command with args inside a fresh project dir and
// returns its combined output.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".xdg"))
	t.Setenv("NO_COLOR", "1")

	cmd := NewRootCommand(BuildInfo{Version: "test"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// projectDir creates a temp dir with a VCS marker so config discovery
// never escapes it.
func projectDir(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestFmtReportsMisalignedFiles(t *testing.T) {
	dir := projectDir(t, map[string]string{
		"app.yml": "name: \"app\"\nversion: \"1.0\"\n",
	})

	out, err := execute(t, dir, "fmt")
	require.NoError(t, err)
	assert.Contains(t, out, "app.yml: needs alignment")
	assert.Contains(t, out, "1 need alignment")
}

func TestFmtCheckModeExitsNonZero(t *testing.T) {
	dir := projectDir(t, map[string]string{
		"app.yml": "name: \"app\"\nversion: \"1.0\"\n",
	})

	_, err := execute(t, dir, "fmt", "--check")
	assert.ErrorIs(t, err, ErrChangesFound)
}

func TestFmtWriteRewritesFile(t *testing.T) {
	dir := projectDir(t, map[string]string{
		"app.yml": "name: \"app\"\nversion: \"1.0\"\n",
	})

	_, err := execute(t, dir, "fmt", "--write", "--no-backups")
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "app.yml"))
	require.NoError(t, err)
	assert.Equal(t, "name:    \"app\"\nversion: \"1.0\"\n", string(content))
}

func TestFmtStdin(t *testing.T) {
	dir := projectDir(t, nil)

	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".xdg"))

	cmd := NewRootCommand(BuildInfo{})
	var out bytes.Buffer
	cmd.SetIn(bytes.NewBufferString("a = 1\nlonger = 2\n"))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"fmt", "--lang", "ini", "-"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "a      = 1\nlonger = 2\n", out.String())
}

func TestFmtStdinUnknownLanguage(t *testing.T) {
	dir := projectDir(t, nil)

	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".xdg"))

	cmd := NewRootCommand(BuildInfo{})
	cmd.SetIn(bytes.NewBufferString("just some prose\n"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"fmt", "-"})

	err := cmd.Execute()
	assert.ErrorIs(t, err, ErrInvalidUsage)
}

func TestFmtJSONFormat(t *testing.T) {
	dir := projectDir(t, map[string]string{
		"app.yml": "name: \"app\"\nversion: \"1.0\"\n",
	})

	out, err := execute(t, dir, "fmt", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"filesChanged": 1`)
}

func TestFmtRespectsConfigIgnore(t *testing.T) {
	dir := projectDir(t, map[string]string{
		".alignsanity.yml": "ignore:\n  - vendor/**\n",
		"app.yml":          "a: 1\n",
	})
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "vendor"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "vendor", "dep.yml"),
		[]byte("name: \"x\"\nversion: \"1\"\n"), 0o644))

	_, err := execute(t, dir, "fmt", "--check")
	assert.NoError(t, err)
}

func TestPreviewRendersFillers(t *testing.T) {
	dir := projectDir(t, map[string]string{
		"app.yml": "name: \"app\"\nversion: \"1.0\"\n",
	})

	out, err := execute(t, dir, "preview", "app.yml")
	require.NoError(t, err)
	assert.Contains(t, out, "name:··· \"app\"")
}

func TestInitCreatesConfig(t *testing.T) {
	dir := projectDir(t, nil)

	_, err := execute(t, dir, "init")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, ".alignsanity.yml"))

	// Second run without --force refuses.
	_, err = execute(t, dir, "init")
	assert.ErrorIs(t, err, ErrInvalidUsage)

	_, err = execute(t, dir, "init", "--force")
	assert.NoError(t, err)
}

func TestLangsListsLanguages(t *testing.T) {
	dir := projectDir(t, nil)

	out, err := execute(t, dir, "langs")
	require.NoError(t, err)
	assert.Contains(t, out, "yaml")
	assert.Contains(t, out, ".yml")
	assert.Contains(t, out, "colon")
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, ExitSuccess},
		{"changes found", ErrChangesFound, ExitChangesFound},
		{"wrapped changes found", fmt.Errorf("wrap: %w", ErrChangesFound), ExitChangesFound},
		{"invalid usage", ErrInvalidUsage, ExitInvalidUsage},
		{"config error", fmt.Errorf("%w: bad yaml", ErrConfig), ExitConfigError},
		{"validation error", &configloader.ValidationError{Field: "jobs", Message: "bad"}, ExitConfigError},
		{"file not found", fmt.Errorf("%w: app.yml", engine.ErrFileNotFound), ExitIOError},
		{"write failure", engine.ErrWriteFailure, ExitIOError},
		{"anything else", errors.New("boom"), ExitInternalError},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, ExitCode(testCase.err))
		})
	}
}
