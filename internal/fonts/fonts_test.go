package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Inter", "Inter-Regular.ttf"))
	touch(t, filepath.Join(dir, "Inter", "OFL.txt"))
	touch(t, filepath.Join(dir, "Lora.OTF"))

	got, err := ScanDir(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Inter/Inter-Regular.ttf", "Lora.OTF"}, got)

	got, err = ScanDir(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Open_Sans", "OpenSans-Bold.ttf"))
	touch(t, filepath.Join(dir, "Open_Sans", "OpenSans-Regular.ttf"))

	got, err := Find("Open Sans", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Open_Sans", "OpenSans-Regular.ttf"), got)

	got, err = Find("opensans-bold.ttf", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Open_Sans", "OpenSans-Bold.ttf"), got)

	_, err = Find("Inter", dir)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = Find("  ", dir)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolve(t *testing.T) {
	got, err := Resolve("")
	require.NoError(t, err)
	assert.Empty(t, got)

	path := filepath.Join(t.TempDir(), "Custom.ttf")
	touch(t, path)
	got, err = Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
}
