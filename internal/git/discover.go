package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chmouel/lazydiff/internal/models"
)

// DiscoverRequest names what Discover should compare.
type DiscoverRequest struct {
	Mode models.DiffMode
	// Pairs is consulted by ModePairs only.
	Pairs []models.PathPair
}

// Discover gathers the file texts to diff for the requested mode. An empty
// gather is reported as *NoChangesError rather than an empty success.
func (s *Service) Discover(ctx context.Context, req DiscoverRequest) (models.ChangeSet, error) {
	var (
		set models.ChangeSet
		err error
	)

	switch req.Mode {
	case models.ModePairs:
		set = readPairs(req.Pairs)
	case models.ModeUnstaged:
		set, err = s.discoverUnstaged(ctx)
	case models.ModeStaged:
		set, err = s.discoverStaged(ctx)
	default:
		return nil, fmt.Errorf("unknown diff mode %d", req.Mode)
	}
	if err != nil {
		return nil, err
	}
	if len(set) == 0 {
		return nil, &NoChangesError{Mode: req.Mode}
	}
	return set, nil
}

// readPairs reads both sides of each explicit pair. A read failure never
// aborts the request: the failing side degrades to placeholder text so
// one bad path cannot prevent viewing the rest.
func readPairs(pairs []models.PathPair) models.ChangeSet {
	set := make(models.ChangeSet, 0, len(pairs))
	for _, pair := range pairs {
		set = append(set, models.ChangePair{
			OldPath: pair.OldPath,
			NewPath: pair.NewPath,
			OldText: readFileOrPlaceholder(pair.OldPath),
			NewText: readFileOrPlaceholder(pair.NewPath),
		})
	}
	return set
}

func readFileOrPlaceholder(path string) string {
	data, err := os.ReadFile(path) // #nosec G304 -- paths are supplied by the user on the command line
	if err != nil {
		return fmt.Sprintf("Error reading file: %v", err)
	}
	return string(data)
}

// discoverUnstaged lists tracked files that differ between the index and
// the working tree, then appends untracked non-ignored files. Tracked
// changes come first, each group in the order git reports it.
func (s *Service) discoverUnstaged(ctx context.Context) (models.ChangeSet, error) {
	toplevel, err := s.Toplevel(ctx)
	if err != nil {
		return nil, err
	}

	out, err := s.run(ctx, toplevel, "diff", "--name-only")
	if err != nil {
		return nil, err
	}

	var set models.ChangeSet
	for _, path := range splitList(out) {
		set = append(set, models.ChangePair{
			OldPath: path,
			NewPath: path,
			OldText: s.showIndexed(ctx, toplevel, path),
			NewText: readWorkingTree(toplevel, path),
		})
	}

	untracked, err := s.run(ctx, toplevel, "ls-files", "--others", "--exclude-standard")
	if err != nil {
		return nil, err
	}
	for _, path := range splitList(untracked) {
		set = append(set, models.ChangePair{
			OldPath: path,
			NewPath: path,
			NewText: readWorkingTree(toplevel, path),
		})
	}

	return set, nil
}

// discoverStaged lists files that differ between the last commit and the
// index. The old side is the last-commit content so that staged review
// compares commit against index, not the index against itself. Untracked
// files have no staged concept and are deliberately absent here.
func (s *Service) discoverStaged(ctx context.Context) (models.ChangeSet, error) {
	toplevel, err := s.Toplevel(ctx)
	if err != nil {
		return nil, err
	}

	out, err := s.run(ctx, toplevel, "diff", "--name-only", "--cached")
	if err != nil {
		return nil, err
	}

	var set models.ChangeSet
	for _, path := range splitList(out) {
		set = append(set, models.ChangePair{
			OldPath: path,
			NewPath: path,
			OldText: s.showCommitted(ctx, toplevel, path),
			NewText: s.showIndexed(ctx, toplevel, path),
		})
	}

	return set, nil
}

// showIndexed fetches the index content for a path. Paths with no indexed
// version (newly untracked-then-staged files) yield an empty string.
func (s *Service) showIndexed(ctx context.Context, toplevel, path string) string {
	out, err := s.run(ctx, toplevel, "show", ":"+path)
	if err != nil {
		return ""
	}
	return out
}

// showCommitted fetches the last-commit content for a path. Paths new in
// the index, or repositories without a commit yet, yield an empty string.
func (s *Service) showCommitted(ctx context.Context, toplevel, path string) string {
	out, err := s.run(ctx, toplevel, "show", "HEAD:"+path)
	if err != nil {
		return ""
	}
	return out
}

// readWorkingTree reads a path's current on-disk content. Deleted or
// unreadable files yield an empty string, so the diff shows the file as
// fully removed rather than aborting discovery.
func readWorkingTree(toplevel, path string) string {
	data, err := os.ReadFile(filepath.Join(toplevel, path)) // #nosec G304 -- path comes from git's own file listing
	if err != nil {
		return ""
	}
	return string(data)
}
