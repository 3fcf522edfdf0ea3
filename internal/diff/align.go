package diff

import "github.com/chmouel/lazydiff/internal/models"

// SideBySide pairs removed and added lines into dual-pane rows. Removed
// lines buffer until an added line arrives and pairing is FIFO, so a block
// of k removals followed by m additions aligns positionally: removal 1
// with addition 1, and so on. The excess of the longer side renders as
// single-sided rows directly after the paired block, in original order.
// An unchanged line first flushes the buffer as left-only rows, then
// occupies both sides of its own row.
func SideBySide(lines []models.DiffLine) []models.SideBySideRow {
	var rows []models.SideBySideRow
	var pending []*models.DiffLine

	flush := func() {
		for _, left := range pending {
			rows = append(rows, models.SideBySideRow{Left: left})
		}
		pending = nil
	}

	for i := range lines {
		line := &lines[i]
		switch line.Kind {
		case models.Removed:
			pending = append(pending, line)
		case models.Added:
			if len(pending) > 0 {
				rows = append(rows, models.SideBySideRow{Left: pending[0], Right: line})
				pending = pending[1:]
			} else {
				rows = append(rows, models.SideBySideRow{Right: line})
			}
		case models.Unchanged:
			flush()
			rows = append(rows, models.SideBySideRow{Left: line, Right: line})
		}
	}
	flush()

	return rows
}
