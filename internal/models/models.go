// Package models defines the data objects shared across lazydiff packages.
package models

// ChangeKind classifies one line of a diff.
type ChangeKind int

const (
	// Unchanged lines appear in both texts.
	Unchanged ChangeKind = iota
	// Removed lines appear only in the old text.
	Removed
	// Added lines appear only in the new text.
	Added
)

// String returns the lowercase name of the kind.
func (k ChangeKind) String() string {
	switch k {
	case Removed:
		return "removed"
	case Added:
		return "added"
	default:
		return "unchanged"
	}
}

// DiffLine is one line of a normalized diff. Line numbers are 1-based;
// zero means the side is absent. Removed lines carry only OldLine, Added
// lines only NewLine, Unchanged lines both.
type DiffLine struct {
	Kind    ChangeKind
	OldLine int
	NewLine int
	Text    string // line content, trailing newline stripped
}

// HasOld reports whether the line exists in the old text.
func (l DiffLine) HasOld() bool { return l.OldLine > 0 }

// HasNew reports whether the line exists in the new text.
func (l DiffLine) HasNew() bool { return l.NewLine > 0 }

// FileDiff is the comparison result for one file pair. Lines are ordered
// exactly as the comparison produced them and are never mutated after
// construction.
type FileDiff struct {
	OldPath string
	NewPath string
	Lines   []DiffLine
}

// DisplayName returns the path label for the file list. Renamed pairs show
// both paths.
func (d *FileDiff) DisplayName() string {
	if d.OldPath == d.NewPath {
		return d.OldPath
	}
	return d.OldPath + " → " + d.NewPath
}

// SideBySideRow is one row of the dual-pane view. At least one side is
// always set; for unchanged lines both sides reference the same DiffLine.
type SideBySideRow struct {
	Left  *DiffLine
	Right *DiffLine
}

// PathPair names the two files of an explicit comparison request.
type PathPair struct {
	OldPath string
	NewPath string
}

// ChangePair is one discovered file change, carrying both texts ready for
// diffing.
type ChangePair struct {
	OldPath string
	NewPath string
	OldText string
	NewText string
}

// ChangeSet is the ordered result of change discovery, one entry per
// changed or untracked file.
type ChangeSet []ChangePair

// DiffMode selects what change discovery compares.
type DiffMode int

const (
	// ModePairs compares an explicit list of file pairs.
	ModePairs DiffMode = iota
	// ModeUnstaged compares the index against the working tree, plus
	// untracked files.
	ModeUnstaged
	// ModeStaged compares the last commit against the index.
	ModeStaged
)

// String returns the human-readable mode name used in messages.
func (m DiffMode) String() string {
	switch m {
	case ModeUnstaged:
		return "unstaged"
	case ModeStaged:
		return "staged"
	default:
		return "file pairs"
	}
}
