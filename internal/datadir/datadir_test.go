package datadir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirPrefersXDGDataHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, App), got)

	f, err := File("feedrank.log")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, App, "feedrank.log"), f)
}

func TestDirFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", home)

	got, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local", "share", App), got)
}

func TestEnsureParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "x.db")
	require.NoError(t, EnsureParent(path))

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
