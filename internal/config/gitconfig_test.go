package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGitConfigOutput(t *testing.T) {
	out := "lazydiff.theme nord\nlazydiff.debug_log /tmp/with space.log\nlazydiff.theme dracula\n"
	got := parseGitConfigOutput(out)

	assert.Equal(t, "dracula", got["theme"], "repeated key keeps the last value")
	assert.Equal(t, "/tmp/with space.log", got["debug_log"])
}

func TestParseGitConfigOutputEmpty(t *testing.T) {
	assert.Empty(t, parseGitConfigOutput(""))
	assert.Empty(t, parseGitConfigOutput("\n\n"))
}

func TestParseGitConfigOutputSkipsMalformedLines(t *testing.T) {
	got := parseGitConfigOutput("lazydiff.bare\nlazydiff.view split\n")
	assert.Len(t, got, 1)
	assert.Equal(t, "split", got["view"])
}

func TestLoadGitConfigKeyNotFound(t *testing.T) {
	gitConfigMock = func([]string, string) (string, error) { return "", nil }
	t.Cleanup(func() { gitConfigMock = nil })

	got, err := loadGitConfig("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseCLIConfigOverrides(t *testing.T) {
	got, err := parseCLIConfigOverrides([]string{
		"lazydiff.theme=nord",
		"lazydiff.view=split",
		"lazydiff.theme=dracula",
	})
	require.NoError(t, err)
	assert.Equal(t, "dracula", got["theme"])
	assert.Equal(t, "split", got["view"])
}

func TestParseCLIConfigOverridesErrors(t *testing.T) {
	_, err := parseCLIConfigOverrides([]string{"lazydiff.theme nord"})
	assert.Error(t, err)

	_, err = parseCLIConfigOverrides([]string{"wrong.theme=nord"})
	assert.Error(t, err)

	_, err = parseCLIConfigOverrides([]string{"lazydiff.=v"})
	assert.Error(t, err)
}
