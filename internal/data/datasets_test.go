package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDatasets(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"msft.csv", "aapl.csv", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("Date,Close\n"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.csv"), 0o755))

	sets, err := ListDatasets(dir)
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, "aapl", sets[0].Name)
	assert.Equal(t, "msft", sets[1].Name)
	assert.Equal(t, int64(len("Date,Close\n")), sets[0].Size)
}

func TestListDatasets_MissingDir(t *testing.T) {
	sets, err := ListDatasets(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, sets)
}

func TestResolveDataset(t *testing.T) {
	p, err := ResolveDataset("data", "aapl")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("data", "aapl.csv"), p)

	for _, bad := range []string{"", "../etc/passwd", "a/b", ".."} {
		_, err := ResolveDataset("data", bad)
		assert.Error(t, err, bad)
	}
}

func TestSplitPaths(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.csv")
	require.NoError(t, os.WriteFile(a, []byte("Date,Close\n"), 0o644))
	sub := filepath.Join(dir, "more")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "b.csv"), []byte("Date,Close\n"), 0o644))

	paths, err := SplitPaths(a + ", " + sub)
	require.NoError(t, err)
	assert.Equal(t, []string{a, filepath.Join(sub, "b.csv")}, paths)

	_, err = SplitPaths(filepath.Join(dir, "gone.csv"))
	assert.ErrorIs(t, err, ErrMissingSource)
}
