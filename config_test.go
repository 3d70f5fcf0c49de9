package aperture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), DefaultConfigFile))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, []string{v010, v009, v008}, cfg.Apps.Candidates)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	data := `
[library]
path = "/opt/steam/libsteam_api.so"

[apps]
candidates = ["SteamAPI_SteamApps_v008", "SteamAPI_SteamApps_v010"]

[log]
level = "debug"
development = true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/opt/steam/libsteam_api.so", cfg.Library.Path)
	assert.Equal(t, []string{v008, v010}, cfg.Apps.Candidates, "order is kept as written")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("[library]\npath = \"from-file.so\"\n"), 0o644))
	t.Setenv(EnvLibraryPath, "/env/libsteam_api.so")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/env/libsteam_api.so", cfg.Library.Path)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("[library\npath = "), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)

	want := DefaultConfig()
	want.Library.Path = "steam_api64.dll"
	require.NoError(t, SaveConfig(path, want))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLogConfigBuild(t *testing.T) {
	l, err := LogConfig{Level: "warn"}.Build()
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	_, err = LogConfig{Level: "loud"}.Build()
	assert.Error(t, err)
}
