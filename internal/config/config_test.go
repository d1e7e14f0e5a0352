package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, AnchorCorner, cfg.DefaultAnchor)
	assert.False(t, cfg.Debug())
}

func TestGet(t *testing.T) {
	t.Setenv("GEOFRAME_TEST_KEY", "  value  ")
	assert.Equal(t, "value", Get("GEOFRAME_TEST_KEY", "fallback"))

	t.Setenv("GEOFRAME_TEST_KEY", "   ")
	assert.Equal(t, "fallback", Get("GEOFRAME_TEST_KEY", "fallback"))

	assert.Equal(t, "fallback", Get("GEOFRAME_TEST_KEY_UNSET", "fallback"))
}

func TestLoad_FromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GEOFRAME_LOG_LEVEL", "DEBUG")
	t.Setenv("GEOFRAME_DEFAULT_ANCHOR", "Center")

	cfg := Load()
	assert.True(t, cfg.Debug())
	assert.Equal(t, AnchorCenter, cfg.DefaultAnchor)
}

func TestLoad_UnknownAnchorFallsBack(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GEOFRAME_LOG_LEVEL", "")
	t.Setenv("GEOFRAME_DEFAULT_ANCHOR", "middle")

	cfg := Load()
	assert.Equal(t, AnchorCorner, cfg.DefaultAnchor)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	// Empty values let godotenv fill them; t.Setenv restores them afterwards.
	t.Setenv("GEOFRAME_LOG_LEVEL", "")
	t.Setenv("GEOFRAME_DEFAULT_ANCHOR", "")
	os.Unsetenv("GEOFRAME_LOG_LEVEL")
	os.Unsetenv("GEOFRAME_DEFAULT_ANCHOR")

	env := "GEOFRAME_LOG_LEVEL=debug\nGEOFRAME_DEFAULT_ANCHOR=center\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))

	cfg := Load()
	assert.True(t, cfg.Debug())
	assert.Equal(t, AnchorCenter, cfg.DefaultAnchor)
}

// chdir changes the working directory for the duration of the test
// (equivalent to testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
