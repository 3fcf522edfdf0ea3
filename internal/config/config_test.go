package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chmouel/lazydiff/internal/theme"
)

// disableGitConfig keeps host git config out of LoadConfig results.
func disableGitConfig(t *testing.T) {
	t.Helper()
	gitConfigMock = func([]string, string) (string, error) { return "", nil }
	t.Cleanup(func() { gitConfigMock = nil })
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	configDir := filepath.Join(dir, "lazydiff")
	require.NoError(t, os.MkdirAll(configDir, 0o750))
	path := filepath.Join(configDir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Empty(t, cfg.Theme)
	assert.Empty(t, cfg.ViewMode)
	assert.True(t, cfg.ShowIcons)
	assert.True(t, cfg.AutoRefresh)
	assert.Equal(t, 4, cfg.TabWidth)
	assert.Empty(t, cfg.DebugLog)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	disableGitConfig(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("COLORFGBG", "")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.True(t, cfg.ShowIcons)
	assert.Equal(t, theme.DefaultDark(), cfg.Theme, "theme falls back to dark when detection fails")
}

func TestLoadConfigReadsYAML(t *testing.T) {
	disableGitConfig(t)
	writeConfigFile(t, `
theme: nord
view: split
show_icons: false
auto_refresh: false
tab_width: 8
debug_log: /tmp/lazydiff.log
`)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, theme.NordName, cfg.Theme)
	assert.Equal(t, ViewSplit, cfg.ViewMode)
	assert.False(t, cfg.ShowIcons)
	assert.False(t, cfg.AutoRefresh)
	assert.Equal(t, 8, cfg.TabWidth)
	assert.Equal(t, "/tmp/lazydiff.log", cfg.DebugLog)
}

func TestLoadConfigIgnoresUnknownValues(t *testing.T) {
	disableGitConfig(t)
	writeConfigFile(t, `
theme: no-such-theme
view: diagonal
tab_width: 400
`)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.NotEqual(t, "no-such-theme", cfg.Theme)
	assert.Empty(t, cfg.ViewMode)
	assert.Equal(t, 4, cfg.TabWidth, "out-of-range tab width keeps default")
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	disableGitConfig(t)
	writeConfigFile(t, "theme: [unclosed")

	_, err := LoadConfig("", nil)
	assert.Error(t, err)
}

func TestLoadConfigRejectsPathOutsideConfigDir(t *testing.T) {
	disableGitConfig(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := LoadConfig("/etc/passwd", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must reside inside")
}

func TestLoadConfigExplicitPath(t *testing.T) {
	disableGitConfig(t)
	path := writeConfigFile(t, "theme: gruvbox-dark\n")

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, theme.GruvboxDarkName, cfg.Theme)
}

func TestLoadConfigGitConfigOverridesYAML(t *testing.T) {
	writeConfigFile(t, "theme: nord\nview: unified\n")
	gitConfigMock = func(args []string, _ string) (string, error) {
		assert.Contains(t, args, "--get-regexp")
		return "lazydiff.theme dracula\n", nil
	}
	t.Cleanup(func() { gitConfigMock = nil })

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, theme.DraculaName, cfg.Theme)
	assert.Equal(t, ViewUnified, cfg.ViewMode, "keys absent from git config survive")
}

func TestLoadConfigCLIOverridesWinLast(t *testing.T) {
	writeConfigFile(t, "theme: nord\n")
	gitConfigMock = func([]string, string) (string, error) {
		return "lazydiff.theme dracula\n", nil
	}
	t.Cleanup(func() { gitConfigMock = nil })

	cfg, err := LoadConfig("", []string{"lazydiff.theme=gruvbox-dark", "lazydiff.show_icons=false"})
	require.NoError(t, err)
	assert.Equal(t, theme.GruvboxDarkName, cfg.Theme)
	assert.False(t, cfg.ShowIcons)
}

func TestLoadConfigBadOverride(t *testing.T) {
	disableGitConfig(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := LoadConfig("", []string{"lazydiff.theme nord"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected format")

	_, err = LoadConfig("", []string{"other.theme=nord"})
	require.Error(t, err)

	_, err = LoadConfig("", []string{"lazydiff.=x"})
	require.Error(t, err)
}

func TestCoerceBool(t *testing.T) {
	assert.True(t, coerceBool(true, false))
	assert.False(t, coerceBool(false, true))
	assert.True(t, coerceBool("yes", false))
	assert.True(t, coerceBool("1", false))
	assert.False(t, coerceBool("off", true))
	assert.True(t, coerceBool(nil, true))
	assert.False(t, coerceBool("maybe", false), "unparseable keeps default")
}

func TestCoerceInt(t *testing.T) {
	assert.Equal(t, 3, coerceInt(3, 0))
	assert.Equal(t, 3, coerceInt(3.0, 0))
	assert.Equal(t, 3, coerceInt("3", 0))
	assert.Equal(t, 7, coerceInt(nil, 7))
	assert.Equal(t, 7, coerceInt("x", 7))
}

func TestNormalizeViewMode(t *testing.T) {
	assert.Equal(t, ViewUnified, NormalizeViewMode(" Unified "))
	assert.Equal(t, ViewSplit, NormalizeViewMode("split"))
	assert.Equal(t, ViewSplit, NormalizeViewMode("side-by-side"))
	assert.Empty(t, NormalizeViewMode("diagonal"))
}

func TestNormalizeThemeName(t *testing.T) {
	assert.Equal(t, theme.NordName, NormalizeThemeName("  NORD "))
	assert.Empty(t, NormalizeThemeName("no-such"))
}
