package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverlaysDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
window:
  title: Test Shop
checkout:
  redirect_delay: 500ms
debug:
  show_fps: true
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Test Shop", cfg.Window.Title)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 500*time.Millisecond, cfg.Checkout.RedirectDelay)
	assert.True(t, cfg.Debug.ShowFPS)
	assert.Equal(t, Default().Preview, cfg.Preview)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  width: -1\n"), 0644))
	_, err := Load(path)
	assert.ErrorContains(t, err, "window size")

	require.NoError(t, os.WriteFile(path, []byte("window: [\n"), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "storefront.yaml")
	want := Default()
	want.UI.Watch = true
	want.Checkout.RedirectDelay = 2 * time.Second
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{EnvLogLevel: "debug", EnvStylesheet: ""}
	cfg := Default()
	cfg.ApplyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, Default().UI.Stylesheet, cfg.UI.Stylesheet)
}
