package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaydek/alignment-sanity/pkg/fsutil"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadReturnsContentAndSnapshot(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "a.yml", "name: app\n")

	content, snap, err := fsutil.Read(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "name: app\n", string(content))
	require.NotNil(t, snap)
	assert.Equal(t, path, snap.Path)
	assert.Equal(t, int64(len(content)), snap.Size)
}

func TestReadMissingFile(t *testing.T) {
	t.Parallel()

	_, _, err := fsutil.Read(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, fsutil.ErrNotFound)
}

func TestReadDirectory(t *testing.T) {
	t.Parallel()

	_, _, err := fsutil.Read(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, fsutil.ErrIsDirectory)
}

func TestModified(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "a.yml", "name: app\n")
	_, snap, err := fsutil.Read(context.Background(), path)
	require.NoError(t, err)

	changed, err := fsutil.Modified(context.Background(), snap)
	require.NoError(t, err)
	assert.False(t, changed)

	require.NoError(t, os.WriteFile(path, []byte("name: other\n"), 0o644))
	changed, err = fsutil.Modified(context.Background(), snap)
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestModifiedDetectsSameSizeRewrite(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "a.yml", "name: app\n")
	_, snap, err := fsutil.Read(context.Background(), path)
	require.NoError(t, err)

	// Same length, same forced mtime: only the hash tier can catch it.
	require.NoError(t, os.WriteFile(path, []byte("name: bpp\n"), 0o644))
	require.NoError(t, os.Chtimes(path, snap.ModTime, snap.ModTime))

	changed, err := fsutil.Modified(context.Background(), snap)
	require.NoError(t, err)
	assert.True(t, changed)

	quick, err := fsutil.ModifiedQuick(context.Background(), snap)
	require.NoError(t, err)
	assert.False(t, quick, "the quick tier cannot see a same-size in-place rewrite")
}

func TestModifiedDeletedFile(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "a.yml", "x\n")
	_, snap, err := fsutil.Read(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, os.Remove(path))

	changed, err := fsutil.Modified(context.Background(), snap)
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestModifiedNilSnapshot(t *testing.T) {
	t.Parallel()

	_, err := fsutil.Modified(context.Background(), nil)
	assert.ErrorIs(t, err, fsutil.ErrNilSnapshot)
}

func TestSnapshotSumChangesWithContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	p1 := filepath.Join(dir, "a")
	p2 := filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(p1, []byte("one"), 0o644))
	require.NoError(t, os.WriteFile(p2, []byte("two"), 0o644))

	_, s1, err := fsutil.Read(context.Background(), p1)
	require.NoError(t, err)
	_, s2, err := fsutil.Read(context.Background(), p2)
	require.NoError(t, err)

	assert.NotEqual(t, s1.Sum, s2.Sum)
}

func TestReadCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	_, _, err := fsutil.Read(ctx, "irrelevant")
	assert.Error(t, err)
}
