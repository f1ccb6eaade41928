package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaydek/alignment-sanity/pkg/fsutil"
)

func TestBackupPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "cfg.yml.alignsanity.bak", fsutil.BackupPath("cfg.yml"))
}

func TestCreateBackup(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "cfg.yml", "original\n")

	created, err := fsutil.CreateBackup(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, fsutil.HasBackup(path))

	content, err := os.ReadFile(fsutil.BackupPath(path))
	require.NoError(t, err)
	assert.Equal(t, "original\n", string(content))
}

func TestCreateBackupNeverOverwrites(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "cfg.yml", "first\n")

	created, err := fsutil.CreateBackup(context.Background(), path)
	require.NoError(t, err)
	require.True(t, created)

	// A second run after the file changed must keep the first backup.
	require.NoError(t, os.WriteFile(path, []byte("second\n"), 0o644))
	created, err = fsutil.CreateBackup(context.Background(), path)
	require.NoError(t, err)
	assert.False(t, created)

	content, err := os.ReadFile(fsutil.BackupPath(path))
	require.NoError(t, err)
	assert.Equal(t, "first\n", string(content))
}

func TestCreateBackupMissingOriginal(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gone")
	created, err := fsutil.CreateBackup(context.Background(), path)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestRestoreBackup(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "cfg.yml", "original\n")
	_, err := fsutil.CreateBackup(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("mangled\n"), 0o644))

	restored, err := fsutil.RestoreBackup(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, restored)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original\n", string(content))
}

func TestRestoreBackupMissing(t *testing.T) {
	t.Parallel()

	restored, err := fsutil.RestoreBackup(context.Background(), filepath.Join(t.TempDir(), "none"))
	require.NoError(t, err)
	assert.False(t, restored)
}

func TestRemoveBackup(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "cfg.yml", "x\n")
	_, err := fsutil.CreateBackup(context.Background(), path)
	require.NoError(t, err)

	removed, err := fsutil.RemoveBackup(path)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, fsutil.HasBackup(path))

	removed, err = fsutil.RemoveBackup(path)
	require.NoError(t, err)
	assert.False(t, removed)
}
