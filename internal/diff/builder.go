// Package diff turns raw text pairs into normalized, line-numbered diffs
// and aligns them into rows for side-by-side display.
package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/chmouel/lazydiff/internal/models"
)

// Build compares two texts line by line and returns the normalized diff.
// It is total: any two strings, including empty ones, produce a result.
// Line numbering is assigned here in a single pass and is the canonical
// numbering used everywhere downstream.
func Build(oldPath, newPath, oldText, newText string) models.FileDiff {
	dmp := diffmatchpatch.New()

	// Map whole lines to runes so the edit script never splits a line.
	rOld, rNew, lineArray := dmp.DiffLinesToRunes(oldText, newText)
	runs := dmp.DiffCleanupMerge(dmp.DiffMainRunes(rOld, rNew, false))

	var lines []models.DiffLine
	oldLine := 0
	newLine := 0
	for _, run := range runs {
		for _, r := range run.Text {
			idx := int(r)
			if idx < 0 || idx >= len(lineArray) {
				continue
			}
			text := strings.TrimSuffix(lineArray[idx], "\n")
			switch run.Type {
			case diffmatchpatch.DiffEqual:
				oldLine++
				newLine++
				lines = append(lines, models.DiffLine{
					Kind:    models.Unchanged,
					OldLine: oldLine,
					NewLine: newLine,
					Text:    text,
				})
			case diffmatchpatch.DiffDelete:
				oldLine++
				lines = append(lines, models.DiffLine{
					Kind:    models.Removed,
					OldLine: oldLine,
					Text:    text,
				})
			case diffmatchpatch.DiffInsert:
				newLine++
				lines = append(lines, models.DiffLine{
					Kind:    models.Added,
					NewLine: newLine,
					Text:    text,
				})
			}
		}
	}

	return models.FileDiff{OldPath: oldPath, NewPath: newPath, Lines: lines}
}
