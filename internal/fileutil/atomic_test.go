package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/gobmo/internal/fileutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "script.sh")
	dst := src + ".bmo"

	require.NoError(t, os.WriteFile(src, []byte("echo hi"), 0o700))

	old := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, old, old))

	size, err := fileutil.WriteAtomic(src, dst, []byte("BMOxEND"), true)
	require.NoError(t, err)
	assert.Equal(t, int64(7), size)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "BMOxEND", string(data))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())
	assert.True(t, info.ModTime().Equal(old))

	leftovers, err := filepath.Glob(filepath.Join(dir, ".tmp-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestWriteAtomicMissingSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := fileutil.WriteAtomic(filepath.Join(dir, "missing"), filepath.Join(dir, "out"), nil, false)
	require.Error(t, err)

	_, err = os.Stat(filepath.Join(dir, "out"))
	assert.True(t, os.IsNotExist(err))
}
