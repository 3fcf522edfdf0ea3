package config

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const gitConfigPrefix = "lazydiff."

// gitConfigMock allows tests to mock git config output.
var gitConfigMock func(args []string, repoPath string) (string, error)

// runGitConfig executes git config and returns raw output.
func runGitConfig(args []string, repoPath string) (string, error) {
	if gitConfigMock != nil {
		return gitConfigMock(args, repoPath)
	}

	cmd := exec.Command("git", args...)
	if repoPath != "" {
		cmd.Dir = repoPath
	}

	output, err := cmd.Output()
	if err != nil {
		// git config exits 1 when no key matches, which is not an error
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return "", nil
		}
		return "", err
	}
	return string(output), nil
}

// parseGitConfigOutput parses --get-regexp output into a key/value map.
// Input format: "lazydiff.theme nord\nlazydiff.view split\n".
func parseGitConfigOutput(output string) map[string]any {
	configMap := make(map[string]any)
	if output == "" {
		return configMap
	}

	for line := range strings.SplitSeq(strings.TrimSpace(output), "\n") {
		if line == "" {
			continue
		}

		// SplitN keeps values containing spaces intact.
		parts := strings.SplitN(line, " ", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimPrefix(parts[0], gitConfigPrefix)
		// A key repeated in git config keeps its last value.
		configMap[key] = parts[1]
	}

	return configMap
}

// loadGitConfig reads lazydiff.* git config values for parseConfig.
func loadGitConfig(repoPath string) (map[string]any, error) {
	args := []string{"config", "--get-regexp", "^lazydiff\\."}

	output, err := runGitConfig(args, repoPath)
	if err != nil {
		return nil, err
	}

	return parseGitConfigOutput(output), nil
}

// isInGitRepo checks if path is in a git repository.
func isInGitRepo(path string) bool {
	if path == "" {
		return false
	}
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Dir = path
	return cmd.Run() == nil
}

// determineRepoPath returns the directory for local git config lookup.
func determineRepoPath() string {
	if wd, err := os.Getwd(); err == nil && isInGitRepo(wd) {
		return wd
	}
	return ""
}

// parseCLIConfigOverrides parses --config=lazydiff.key=value flags into a
// map suitable for parseConfig. A key given twice keeps its last value.
func parseCLIConfigOverrides(overrides []string) (map[string]any, error) {
	result := make(map[string]any)

	for _, override := range overrides {
		parts := strings.SplitN(override, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid config override: %q, expected format: lazydiff.key=value (note: use = not space)", override)
		}

		fullKey := parts[0]
		value := parts[1]

		if !strings.HasPrefix(fullKey, gitConfigPrefix) {
			return nil, fmt.Errorf("config override key must start with %q: %q", gitConfigPrefix, fullKey)
		}

		key := strings.TrimPrefix(fullKey, gitConfigPrefix)
		if key == "" {
			return nil, fmt.Errorf("empty config key in override: %q", override)
		}

		result[key] = value
	}

	return result, nil
}
