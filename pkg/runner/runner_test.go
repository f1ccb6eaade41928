package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaydek/alignment-sanity/pkg/align"
	"github.com/zaydek/alignment-sanity/pkg/config"
	"github.com/zaydek/alignment-sanity/pkg/engine"
	"github.com/zaydek/alignment-sanity/pkg/runner"
)

func newRunner() *runner.Runner {
	return runner.New(engine.NewPipeline(engine.New(align.BuiltinTables())))
}

func TestRunCheckMode(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"needs.yml": "name: \"app\"\nversion: \"1.0\"\n",
		"clean.yml": "a: 1\n",
	})

	result, err := newRunner().Run(context.Background(), runner.Options{
		WorkingDir: root,
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stats.FilesDiscovered)
	assert.Equal(t, 2, result.Stats.FilesProcessed)
	assert.Equal(t, 1, result.Stats.FilesChanged)
	assert.Zero(t, result.Stats.FilesWritten)
	assert.True(t, result.HasChanges())
	assert.False(t, result.HasErrors())

	// Check mode leaves files alone.
	content, err := os.ReadFile(filepath.Join(root, "needs.yml"))
	require.NoError(t, err)
	assert.Equal(t, "name: \"app\"\nversion: \"1.0\"\n", string(content))
}

func TestRunWriteMode(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"needs.yml": "name: \"app\"\nversion: \"1.0\"\n",
	})

	cfg := config.NewConfig()
	cfg.Write = true
	cfg.NoBackups = true

	result, err := newRunner().Run(context.Background(), runner.Options{
		WorkingDir: root,
		Config:     cfg,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.FilesWritten)
	assert.Positive(t, result.Stats.LinesPadded)

	content, err := os.ReadFile(filepath.Join(root, "needs.yml"))
	require.NoError(t, err)
	assert.Equal(t, "name:    \"app\"\nversion: \"1.0\"\n", string(content))
}

func TestRunOutcomesOrderedByPath(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"c.yml": "a: 1\n",
		"a.yml": "a: 1\n",
		"b.yml": "a: 1\n",
	})

	result, err := newRunner().Run(context.Background(), runner.Options{
		WorkingDir: root,
		Config:     config.NewConfig(),
		Jobs:       3,
	})
	require.NoError(t, err)

	got := make([]string, len(result.Files))
	for i, f := range result.Files {
		got[i] = filepath.Base(f.Path)
	}
	assert.Equal(t, []string{"a.yml", "b.yml", "c.yml"}, got)
}

func TestRunEmptyDirectory(t *testing.T) {
	t.Parallel()

	result, err := newRunner().Run(context.Background(), runner.Options{
		WorkingDir: t.TempDir(),
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)
	assert.Zero(t, result.Stats.FilesDiscovered)
	assert.False(t, result.HasChanges())
}

func TestRunRespectsIgnoreFromConfig(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"keep.yml":       "name: \"app\"\nversion: \"1.0\"\n",
		"vendor/dep.yml": "name: \"app\"\nversion: \"1.0\"\n",
	})

	result, err := newRunner().Run(context.Background(), runner.Options{
		WorkingDir:   root,
		Config:       config.NewConfig(),
		ExcludeGlobs: []string{"vendor/**"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.FilesDiscovered)
}

func TestRunCancelledContext(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{"a.yml": "a: 1\n"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newRunner().Run(ctx, runner.Options{
		WorkingDir: root,
		Config:     config.NewConfig(),
	})
	assert.Error(t, err)
}
