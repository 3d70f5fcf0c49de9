package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/aperture"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func tempConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), aperture.DefaultConfigFile)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version", "--config", tempConfig(t))
	require.NoError(t, err)
	assert.Equal(t, "aperture version "+aperture.Version+"\n", out)
}

func TestLibName(t *testing.T) {
	tests := []struct {
		platform string
		want     string
	}{
		{platform: "windows", want: "steam_api64.dll"},
		{platform: "linux", want: "libsteam_api.so"},
		{platform: "darwin", want: "libsteam_api.dylib"},
	}

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			out, err := execute(t, "libname", "--platform", tt.platform, "--config", tempConfig(t))
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestLibNameUnsupported(t *testing.T) {
	_, err := execute(t, "libname", "--platform", "js", "--config", tempConfig(t))
	assert.ErrorIs(t, err, aperture.ErrLoad)
}

func TestConfigInit(t *testing.T) {
	path := tempConfig(t)

	out, err := execute(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	cfg, err := aperture.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, aperture.DefaultConfig().Apps.Candidates, cfg.Apps.Candidates)

	_, err = execute(t, "config", "init", "--config", path)
	assert.ErrorContains(t, err, "already exists")

	_, err = execute(t, "config", "init", "--config", path, "--force")
	assert.NoError(t, err)
}

func TestConfigShowPrecedence(t *testing.T) {
	path := tempConfig(t)
	require.NoError(t, os.WriteFile(path, []byte("[library]\npath = \"from-file.so\"\n[log]\nlevel = \"warn\"\n"), 0o644))

	out, err := execute(t, "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "from-file.so")
	assert.Contains(t, out, "warn")

	t.Setenv("APERTURE_LIBRARY_PATH", "from-env.so")
	out, err = execute(t, "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "from-env.so")

	out, err = execute(t, "config", "show", "--config", path, "--lib", "from-flag.so", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "from-flag.so")
	assert.Contains(t, out, "log level:  error")
}

func TestProbeMissingLibrary(t *testing.T) {
	_, err := execute(t, "probe", "--config", tempConfig(t), "--lib", filepath.Join(t.TempDir(), "libsteam_api.so"))
	require.Error(t, err)
	assert.ErrorIs(t, err, aperture.ErrLoad)
	assert.Contains(t, err.Error(), "failed to load steamworks runtime")
}

func TestToAppIDs(t *testing.T) {
	ids, err := toAppIDs([]uint{440, 570})
	require.NoError(t, err)
	assert.Equal(t, []uint32{440, 570}, ids)
}

func TestRenderReportPlain(t *testing.T) {
	r := report{
		Diagnostics: aperture.Diagnostics{
			LibraryPath: "libsteam_api.so",
			Platform:    aperture.PlatformLinux,
			AppsSymbol:  "SteamAPI_SteamApps_v009",
			AppsMisses:  []string{"SteamAPI_SteamApps_v010"},
		},
		SteamRunning: true,
		Subscribed:   true,
		DLCCount:     2,
		Apps:         []appStatus{{ID: 440, Subscribed: true}},
	}

	out := renderReport(r, false)

	assert.True(t, strings.HasPrefix(out, "Steamworks runtime\n\n"))
	line := func(label, value string) string {
		return fmt.Sprintf("%-34s%s\n", label, value)
	}
	assert.Contains(t, out, line("apps accessor", "SteamAPI_SteamApps_v009"))
	assert.Contains(t, out, line("apps accessor misses", "SteamAPI_SteamApps_v010"))
	assert.Contains(t, out, line("subscribed", "yes"))
	assert.Contains(t, out, line("vac banned", "no"))
	assert.Contains(t, out, line("dlc count", "2"))
	assert.Contains(t, out, line("app 440 subscribed", "yes"))
	assert.Contains(t, out, line("app 440 dlc installed", "no"))
}

type fakePump struct {
	pumps   int
	running bool
}

func (p *fakePump) RunCallbacks()        { p.pumps++ }
func (p *fakePump) IsSteamRunning() bool { return p.running }

func TestWatchModelPumpsPerTick(t *testing.T) {
	p := &fakePump{running: true}
	var m tea.Model = newWatchModel(p, 16*time.Millisecond, false)

	for i := 0; i < 3; i++ {
		var cmd tea.Cmd
		m, cmd = m.Update(tickMsg(time.Now()))
		assert.NotNil(t, cmd, "each tick schedules the next frame")
	}

	assert.Equal(t, 3, p.pumps)
	view := m.View()
	assert.Contains(t, view, "frames pumped   3")
	assert.Contains(t, view, "steam running   yes")
}

func TestWatchModelQuit(t *testing.T) {
	p := &fakePump{}
	m := newWatchModel(p, time.Second, false)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Zero(t, p.pumps)
}
