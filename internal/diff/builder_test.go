package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/chmouel/lazydiff/internal/models"
)

func lineTexts(lines []models.DiffLine) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.Text)
	}
	return out
}

// splitLines mirrors the line partitioning the builder stores: content
// between newline boundaries, boundary excluded.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func TestBuildIdenticalTexts(t *testing.T) {
	text := "alpha\nbeta\ngamma\n"
	fd := Build("a.txt", "a.txt", text, text)

	require.Len(t, fd.Lines, 3)
	for i, line := range fd.Lines {
		assert.Equal(t, models.Unchanged, line.Kind)
		assert.Equal(t, i+1, line.OldLine)
		assert.Equal(t, i+1, line.NewLine)
	}
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, lineTexts(fd.Lines))
}

func TestBuildSingleLineReplace(t *testing.T) {
	fd := Build("f", "f", "a\nb\nc\n", "a\nx\nc\n")

	require.Len(t, fd.Lines, 4)

	assert.Equal(t, models.DiffLine{Kind: models.Unchanged, OldLine: 1, NewLine: 1, Text: "a"}, fd.Lines[0])
	assert.Equal(t, models.DiffLine{Kind: models.Removed, OldLine: 2, Text: "b"}, fd.Lines[1])
	assert.Equal(t, models.DiffLine{Kind: models.Added, NewLine: 2, Text: "x"}, fd.Lines[2])
	assert.Equal(t, models.DiffLine{Kind: models.Unchanged, OldLine: 3, NewLine: 3, Text: "c"}, fd.Lines[3])
}

func TestBuildUnevenReplace(t *testing.T) {
	fd := Build("f", "f", "p\nq\n", "x\n")

	require.Len(t, fd.Lines, 3)
	assert.Equal(t, models.DiffLine{Kind: models.Removed, OldLine: 1, Text: "p"}, fd.Lines[0])
	assert.Equal(t, models.DiffLine{Kind: models.Removed, OldLine: 2, Text: "q"}, fd.Lines[1])
	assert.Equal(t, models.DiffLine{Kind: models.Added, NewLine: 1, Text: "x"}, fd.Lines[2])
}

func TestBuildEmptyTexts(t *testing.T) {
	fd := Build("old", "new", "", "")

	assert.Equal(t, "old", fd.OldPath)
	assert.Equal(t, "new", fd.NewPath)
	assert.Empty(t, fd.Lines)
}

func TestBuildAdditionsOnly(t *testing.T) {
	fd := Build("f", "f", "", "one\ntwo\n")

	require.Len(t, fd.Lines, 2)
	for i, line := range fd.Lines {
		assert.Equal(t, models.Added, line.Kind)
		assert.Zero(t, line.OldLine)
		assert.Equal(t, i+1, line.NewLine)
	}
}

func TestBuildRemovalsOnly(t *testing.T) {
	fd := Build("f", "f", "one\ntwo\n", "")

	require.Len(t, fd.Lines, 2)
	for i, line := range fd.Lines {
		assert.Equal(t, models.Removed, line.Kind)
		assert.Equal(t, i+1, line.OldLine)
		assert.Zero(t, line.NewLine)
	}
}

func TestBuildNoTrailingNewline(t *testing.T) {
	fd := Build("f", "f", "a", "b")

	require.Len(t, fd.Lines, 2)
	assert.Equal(t, models.DiffLine{Kind: models.Removed, OldLine: 1, Text: "a"}, fd.Lines[0])
	assert.Equal(t, models.DiffLine{Kind: models.Added, NewLine: 1, Text: "b"}, fd.Lines[1])
}

func TestBuildKeepsDistinctPaths(t *testing.T) {
	fd := Build("before/name.go", "after/name.go", "x\n", "x\n")

	assert.Equal(t, "before/name.go", fd.OldPath)
	assert.Equal(t, "after/name.go", fd.NewPath)
	assert.Equal(t, "before/name.go → after/name.go", fd.DisplayName())
}

func TestBuildIdempotent(t *testing.T) {
	oldText := "a\nb\nc\nd\n"
	newText := "a\nc\nd\ne\n"

	first := Build("f", "f", oldText, newText)
	second := Build("f", "f", oldText, newText)

	require.Equal(t, first, second)
}

// TestBuildProperties checks the structural invariants of Build over
// arbitrary small texts: each side's line numbers form the consecutive
// sequence 1..n, each kind carries exactly the right sides, and the
// per-side subsequences reconstruct the input texts.
func TestBuildProperties(t *testing.T) {
	genText := rapid.Custom(func(t *rapid.T) string {
		lines := rapid.SliceOfN(
			rapid.SampledFrom([]string{"a", "b", "c", "x", "y", "", "a b"}),
			0, 12,
		).Draw(t, "lines")
		if len(lines) == 0 {
			return ""
		}
		text := strings.Join(lines, "\n")
		if rapid.Bool().Draw(t, "trailing_newline") {
			text += "\n"
		}
		return text
	})

	rapid.Check(t, func(t *rapid.T) {
		oldText := genText.Draw(t, "old_text")
		newText := genText.Draw(t, "new_text")

		fd := Build("old", "new", oldText, newText)

		var oldNums, newNums []int
		var oldSide, newSide []string
		for _, line := range fd.Lines {
			switch line.Kind {
			case models.Unchanged:
				require.True(t, line.HasOld())
				require.True(t, line.HasNew())
			case models.Removed:
				require.True(t, line.HasOld())
				require.False(t, line.HasNew())
			case models.Added:
				require.False(t, line.HasOld())
				require.True(t, line.HasNew())
			}
			if line.HasOld() {
				oldNums = append(oldNums, line.OldLine)
				oldSide = append(oldSide, line.Text)
			}
			if line.HasNew() {
				newNums = append(newNums, line.NewLine)
				newSide = append(newSide, line.Text)
			}
		}

		for i, n := range oldNums {
			require.Equal(t, i+1, n, "old line numbers must be consecutive from 1")
		}
		for i, n := range newNums {
			require.Equal(t, i+1, n, "new line numbers must be consecutive from 1")
		}

		require.Equal(t, splitLines(oldText), oldSide, "old-side lines must reconstruct the old text")
		require.Equal(t, splitLines(newText), newSide, "new-side lines must reconstruct the new text")
	})
}
