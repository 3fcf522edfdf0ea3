// Package config loads application configuration from YAML, git config
// and command-line overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/chmouel/lazydiff/internal/theme"
)

// View modes for the diff pane.
const (
	ViewUnified = "unified"
	ViewSplit   = "split"
)

// AppConfig defines the global lazydiff configuration options.
type AppConfig struct {
	Theme       string // Theme name: see AvailableThemes in internal/theme
	ViewMode    string // "unified" or "split"; empty means pick from terminal width
	ShowIcons   bool   // Render Nerd Font icons in the file tree (default: true)
	AutoRefresh bool   // Watch the working tree and refresh on changes (default: true)
	TabWidth    int    // Spaces a tab expands to in diff lines (default: 4)
	DebugLog    string // Path for the debug log file; empty disables logging
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Theme:       "",
		ViewMode:    "",
		ShowIcons:   true,
		AutoRefresh: true,
		TabWidth:    4,
	}
}

func coerceBool(value any, defaultVal bool) bool {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "on", "1":
			return true
		case "false", "no", "off", "0":
			return false
		}
	}
	return defaultVal
}

func coerceInt(value any, defaultVal int) int {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case int:
		return v
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return defaultVal
}

// parseConfig applies a key/value map on top of cfg. Keys it does not
// know are ignored.
func parseConfig(cfg *AppConfig, data map[string]any) {
	if themeName, ok := data["theme"].(string); ok {
		if normalized := NormalizeThemeName(themeName); normalized != "" {
			cfg.Theme = normalized
		}
	}

	if viewMode, ok := data["view"].(string); ok {
		if normalized := NormalizeViewMode(viewMode); normalized != "" {
			cfg.ViewMode = normalized
		}
	}

	cfg.ShowIcons = coerceBool(data["show_icons"], cfg.ShowIcons)
	cfg.AutoRefresh = coerceBool(data["auto_refresh"], cfg.AutoRefresh)

	if width := coerceInt(data["tab_width"], cfg.TabWidth); width > 0 && width <= 16 {
		cfg.TabWidth = width
	}

	if debugLog, ok := data["debug_log"].(string); ok {
		debugLog = strings.TrimSpace(debugLog)
		if debugLog != "" {
			cfg.DebugLog = debugLog
		}
	}
}

func getConfigDir() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// LoadConfig builds the effective configuration. Sources apply in
// order: defaults, then the YAML file, then git config lazydiff.* keys,
// then the --config command-line overrides.
func LoadConfig(configPath string, overrides []string) (*AppConfig, error) {
	cfg := DefaultConfig()

	yamlData, err := loadYAMLConfig(configPath)
	if err != nil {
		return cfg, err
	}
	if yamlData != nil {
		parseConfig(cfg, yamlData)
	}

	if gitData, err := loadGitConfig(determineRepoPath()); err == nil {
		parseConfig(cfg, gitData)
	}

	if len(overrides) > 0 {
		overrideData, err := parseCLIConfigOverrides(overrides)
		if err != nil {
			return cfg, err
		}
		parseConfig(cfg, overrideData)
	}

	if cfg.Theme == "" {
		detected, err := theme.DetectBackground(500 * time.Millisecond)
		if err == nil {
			cfg.Theme = detected
		} else {
			cfg.Theme = theme.DefaultDark()
		}
	}

	return cfg, nil
}

func loadYAMLConfig(configPath string) (map[string]any, error) {
	configBase := filepath.Clean(filepath.Join(getConfigDir(), "lazydiff"))

	var paths []string

	if configPath != "" {
		expanded, err := expandPath(configPath)
		if err != nil {
			return nil, err
		}
		absPath, err := filepath.Abs(expanded)
		if err != nil {
			return nil, err
		}
		if !isPathWithin(configBase, absPath) {
			return nil, fmt.Errorf("config path must reside inside %s", configBase)
		}
		paths = []string{absPath}
	} else {
		paths = []string{
			filepath.Join(configBase, "config.yaml"),
			filepath.Join(configBase, "config.yml"),
		}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		// #nosec G304 -- path is constrained to the config directory after validation
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var yamlData map[string]any
		if err := yaml.Unmarshal(data, &yamlData); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return yamlData, nil
	}

	return nil, nil
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	return os.ExpandEnv(path), nil
}

func isPathWithin(base, target string) bool {
	base = filepath.Clean(base)
	target = filepath.Clean(target)

	rel, err := filepath.Rel(base, target)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return false
	}
	return true
}

// NormalizeThemeName returns the canonical theme name if it is supported.
func NormalizeThemeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, known := range theme.AvailableThemes() {
		if name == known {
			return name
		}
	}
	return ""
}

// NormalizeViewMode returns the canonical view mode if it is supported.
func NormalizeViewMode(mode string) string {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ViewUnified:
		return ViewUnified
	case ViewSplit, "side-by-side":
		return ViewSplit
	}
	return ""
}
