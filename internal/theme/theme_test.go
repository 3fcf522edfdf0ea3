package theme

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetThemeKnownNames(t *testing.T) {
	for _, name := range AvailableThemes() {
		t.Run(name, func(t *testing.T) {
			th := GetTheme(name)
			require.NotNil(t, th)
			assert.NotEmpty(t, th.AddedFg)
			assert.NotEmpty(t, th.RemovedFg)
			assert.NotEmpty(t, th.GutterFg)
		})
	}
}

func TestGetThemeUnknownFallsBackToDracula(t *testing.T) {
	assert.Equal(t, Dracula(), GetTheme("nope"))
	assert.Equal(t, Dracula(), GetTheme(""))
}

func TestIsLight(t *testing.T) {
	assert.True(t, IsLight(DraculaLightName))
	assert.True(t, IsLight(SolarizedLightName))
	assert.False(t, IsLight(DraculaName))
	assert.False(t, IsLight(NordName))
}

func TestDetectBackground(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		t.Setenv("COLORFGBG", "")
		_, err := DetectBackground(time.Millisecond)
		assert.ErrorIs(t, err, ErrUnknownBackground)
	})

	t.Run("dark", func(t *testing.T) {
		t.Setenv("COLORFGBG", "15;0")
		name, err := DetectBackground(time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, DefaultDark(), name)
	})

	t.Run("light", func(t *testing.T) {
		t.Setenv("COLORFGBG", "0;15")
		name, err := DetectBackground(time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, DefaultLight(), name)
	})
}
