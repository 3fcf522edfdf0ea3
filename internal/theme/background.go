package theme

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrUnknownBackground reports that the terminal background could not be
// determined from the environment.
var ErrUnknownBackground = errors.New("terminal background unknown")

// DetectBackground guesses whether the terminal is light or dark and
// returns the matching default theme name. It relies on the COLORFGBG
// convention exported by several terminal emulators; the timeout is kept
// for callers that want to bound an escape-sequence probe later.
func DetectBackground(_ time.Duration) (string, error) {
	raw := os.Getenv("COLORFGBG")
	if raw == "" {
		return "", ErrUnknownBackground
	}
	parts := strings.Split(raw, ";")
	bg := parts[len(parts)-1]
	n, err := strconv.Atoi(bg)
	if err != nil {
		return "", ErrUnknownBackground
	}
	// Conventionally 0..6 and 8 are dark backgrounds, 7 and 9..15 light.
	if n == 7 || (n >= 9 && n <= 15) {
		return DefaultLight(), nil
	}
	return DefaultDark(), nil
}
