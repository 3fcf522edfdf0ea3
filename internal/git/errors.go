package git

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chmouel/lazydiff/internal/models"
)

// ErrNotARepository reports that repository-root resolution failed, which
// makes any repository-backed discovery request impossible.
var ErrNotARepository = errors.New("not a git repository")

// CommandError reports a git query that exited non-zero. It is fatal for
// the discovery request it occurred in; discovery never retries.
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("git %s failed (exit %d)", strings.Join(e.Args, " "), e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// NoChangesError reports that discovery succeeded but found nothing to
// compare. It is distinct from an empty comparison result so callers can
// tell "nothing to show" apart from zero-line files.
type NoChangesError struct {
	Mode models.DiffMode
}

func (e *NoChangesError) Error() string {
	if e.Mode == models.ModePairs {
		return "no file pairs to compare"
	}
	return fmt.Sprintf("no %s changes found", e.Mode)
}

// IsNoChanges reports whether err is a NoChangesError.
func IsNoChanges(err error) bool {
	var noChanges *NoChangesError
	return errors.As(err, &noChanges)
}
