// Package git wraps the read-only git queries lazydiff uses to discover
// what changed in a working tree.
package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/chmouel/lazydiff/internal/log"
)

// LookupPath is used to find the git executable in PATH. It's exposed as a
// package variable so tests can mock it and avoid depending on system
// binaries being installed.
var LookupPath = exec.LookPath

// Service runs git queries for change discovery. It only ever issues
// read-only commands and never mutates the repository or the working tree.
type Service struct {
	workDir string
}

// NewService constructs a Service that runs its queries from workDir.
// An empty workDir means the current directory.
func NewService(workDir string) *Service {
	return &Service{workDir: workDir}
}

// run executes a git query and returns its stdout. A non-zero exit
// surfaces as *CommandError carrying the captured stderr.
func (s *Service) run(ctx context.Context, cwd string, args ...string) (string, error) {
	command := strings.Join(args, " ")
	log.Printf("run: git %s (cwd=%s)", command, cwd)

	// #nosec G204 -- arguments for git come from internal discovery logic and are not shell interpolated
	cmd := exec.CommandContext(ctx, "git", args...)
	if cwd != "" {
		cmd.Dir = cwd
	}

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cmdErr := &CommandError{
				Args:     args,
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(string(exitErr.Stderr)),
			}
			log.Printf("error: %v", cmdErr)
			return "", cmdErr
		}
		log.Printf("error: git %s: %v", command, err)
		return "", fmt.Errorf("run git %s: %w", command, err)
	}

	log.Printf("ok: git %s", command)
	return string(output), nil
}

// Toplevel resolves the repository root for the service's working
// directory. Resolution failure reports ErrNotARepository.
func (s *Service) Toplevel(ctx context.Context) (string, error) {
	out, err := s.run(ctx, s.workDir, "rev-parse", "--show-toplevel")
	if err != nil {
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) {
			return "", ErrNotARepository
		}
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// splitList splits newline-separated command output, dropping empty
// entries.
func splitList(out string) []string {
	var items []string
	for line := range strings.SplitSeq(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			items = append(items, line)
		}
	}
	return items
}
