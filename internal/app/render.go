package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/chmouel/lazydiff/internal/config"
	"github.com/chmouel/lazydiff/internal/models"
)

const (
	minTreeWidth = 24
	maxTreeWidth = 48
)

// layoutDims holds computed layout dimensions for the UI.
type layoutDims struct {
	width           int
	height          int
	bodyHeight      int
	treeWidth       int
	diffWidth       int
	treeInnerWidth  int
	diffInnerWidth  int
	bodyInnerHeight int
}

func (m *Model) computeLayout() layoutDims {
	width := m.width
	height := m.height
	if width <= 0 {
		width = 120
	}
	if height <= 0 {
		height = 40
	}

	bodyHeight := max(height-2, 6) // header and footer take a line each

	treeWidth := width / 3
	if treeWidth < minTreeWidth {
		treeWidth = min(minTreeWidth, width/2)
	}
	if treeWidth > maxTreeWidth {
		treeWidth = maxTreeWidth
	}
	diffWidth := width - treeWidth

	frameX := m.paneStyle(false).GetHorizontalFrameSize()
	frameY := m.paneStyle(false).GetVerticalFrameSize()

	return layoutDims{
		width:           width,
		height:          height,
		bodyHeight:      bodyHeight,
		treeWidth:       treeWidth,
		diffWidth:       diffWidth,
		treeInnerWidth:  max(1, treeWidth-frameX),
		diffInnerWidth:  max(1, diffWidth-frameX),
		bodyInnerHeight: max(1, bodyHeight-frameY),
	}
}

func (m *Model) setWindowSize(width, height int) {
	m.width = width
	m.height = height
	m.refreshViewport()
}

// refreshViewport resizes the diff viewport and re-renders its content.
func (m *Model) refreshViewport() {
	layout := m.computeLayout()
	m.viewport.Width = layout.diffInnerWidth
	m.viewport.Height = layout.bodyInnerHeight
	m.viewport.SetContent(m.renderDiffContent(layout.diffInnerWidth))
}

// View renders the full screen.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	layout := m.computeLayout()

	header := m.renderHeader(layout)
	footer := m.renderFooter(layout)
	tree := m.paneStyle(m.focusedPane == paneTree).
		Width(layout.treeInnerWidth).
		Height(layout.bodyInnerHeight).
		Render(m.renderTree(layout))
	diffPane := m.paneStyle(m.focusedPane == paneDiff).
		Width(layout.diffInnerWidth).
		Height(layout.bodyInnerHeight).
		Render(m.viewport.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, tree, diffPane)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *Model) paneStyle(focused bool) lipgloss.Style {
	borderColor := m.theme.BorderDim
	if focused {
		borderColor = m.theme.Accent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Padding(0, 1)
}

func (m *Model) renderHeader(layout layoutDims) string {
	title := fmt.Sprintf(" lazydiff · %s", m.request.Mode)
	if n := len(m.diffs); n == 1 {
		title += " · 1 file"
	} else if n > 1 {
		title += fmt.Sprintf(" · %d files", n)
	}
	if m.loading {
		title += " · refreshing"
	}
	style := lipgloss.NewStyle().
		Foreground(m.theme.AccentFg).
		Background(m.theme.Accent).
		Bold(true).
		Width(layout.width)
	return style.Render(truncate.StringWithTail(title, uint(layout.width), "…")) //nolint:gosec
}

func (m *Model) renderFooter(layout layoutDims) string {
	text := " tab: focus · j/k: move · n/p: file · v: view · r: refresh · q: quit"
	style := lipgloss.NewStyle().Foreground(m.theme.MutedFg).Width(layout.width)
	switch {
	case m.errText != "":
		text = " " + m.errText
		style = style.Foreground(m.theme.ErrorFg)
	case m.statusText != "":
		text = " " + m.statusText
	}
	return style.Render(truncate.StringWithTail(text, uint(layout.width), "…")) //nolint:gosec
}

func (m *Model) renderTree(layout layoutDims) string {
	if len(m.tree.TreeFlat) == 0 {
		msg := m.statusText
		if msg == "" {
			msg = "No files to display"
		}
		return lipgloss.NewStyle().Foreground(m.theme.MutedFg).Render(msg)
	}

	dirStyle := lipgloss.NewStyle().Foreground(m.theme.MutedFg)
	fileStyle := lipgloss.NewStyle().Foreground(m.theme.TextFg)
	selectedStyle := lipgloss.NewStyle().
		Foreground(m.theme.AccentFg).
		Background(m.theme.Accent).
		Bold(true)

	showIcons := m.config.ShowIcons
	width := layout.treeInnerWidth

	lines := make([]string, 0, len(m.tree.TreeFlat))
	for i, node := range m.tree.TreeFlat {
		indent := strings.Repeat("  ", node.Depth)

		var lineContent string
		if node.IsDir() {
			expand := disclosureIndicator(m.tree.CollapsedDirs[node.Path], showIcons)
			icon := ""
			if showIcons {
				icon = iconWithSpace(deviconForName(node.Name(), true))
			}
			lineContent = fmt.Sprintf("%s%s %s%s", indent, expand, icon, node.Name())
		} else {
			icon := ""
			if showIcons {
				icon = iconWithSpace(deviconForName(node.Name(), false))
			}
			lineContent = fmt.Sprintf("%s  %s%s", indent, icon, node.Name())
		}
		lineContent = truncate.StringWithTail(lineContent, uint(width), "…") //nolint:gosec

		switch {
		case m.focusedPane == paneTree && i == m.tree.Index:
			if pad := width - lipgloss.Width(lineContent); pad > 0 {
				lineContent += strings.Repeat(" ", pad)
			}
			lines = append(lines, selectedStyle.Render(lineContent))
		case node.IsDir():
			lines = append(lines, dirStyle.Render(lineContent))
		default:
			lines = append(lines, fileStyle.Render(lineContent))
		}
	}
	return strings.Join(lines, "\n")
}

// renderDiffContent renders the current diff for the viewport at the
// given inner width.
func (m *Model) renderDiffContent(width int) string {
	if m.current < 0 || m.current >= len(m.diffs) {
		msg := m.statusText
		if msg == "" {
			msg = "Select a file to view its diff"
		}
		return lipgloss.NewStyle().Foreground(m.theme.MutedFg).Render(msg)
	}

	fd := m.diffs[m.current]
	title := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true).Render(fd.DisplayName())

	var body string
	if m.effectiveViewMode() == config.ViewSplit {
		body = m.renderSplit(fd, width)
	} else {
		body = m.renderUnified(fd, width)
	}
	return title + "\n" + body
}

func (m *Model) renderUnified(fd models.FileDiff, width int) string {
	addedStyle := lipgloss.NewStyle().Foreground(m.theme.AddedFg).Background(m.theme.AddedBg)
	removedStyle := lipgloss.NewStyle().Foreground(m.theme.RemovedFg).Background(m.theme.RemovedBg)
	textStyle := lipgloss.NewStyle().Foreground(m.theme.TextFg)
	gutterStyle := lipgloss.NewStyle().Foreground(m.theme.GutterFg)

	lines := make([]string, 0, len(fd.Lines))
	for i := range fd.Lines {
		line := &fd.Lines[i]
		gutter := gutterStyle.Render(fmt.Sprintf("%s %s ", sideNumber(line.OldLine), sideNumber(line.NewLine)))

		var marker string
		var style lipgloss.Style
		switch line.Kind {
		case models.Added:
			marker, style = "+", addedStyle
		case models.Removed:
			marker, style = "-", removedStyle
		default:
			marker, style = " ", textStyle
		}

		text := m.expandTabs(line.Text)
		text = truncate.StringWithTail(marker+" "+text, uint(max(1, width-10)), "…") //nolint:gosec
		lines = append(lines, gutter+style.Render(text))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderSplit(fd models.FileDiff, width int) string {
	rows := m.splitRows(m.current)

	divider := lipgloss.NewStyle().Foreground(m.theme.BorderDim).Render("│")
	half := max(1, (width-1)/2)

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		left := m.renderCell(row.Left, models.Removed, half)
		right := m.renderCell(row.Right, models.Added, half)
		lines = append(lines, left+divider+right)
	}
	return strings.Join(lines, "\n")
}

// renderCell renders one half of a side-by-side row. changedKind is the
// kind highlighted on that side.
func (m *Model) renderCell(line *models.DiffLine, changedKind models.ChangeKind, width int) string {
	gutterStyle := lipgloss.NewStyle().Foreground(m.theme.GutterFg)
	if line == nil {
		return gutterStyle.Render(fmt.Sprintf("%s ", sideNumber(0))) + strings.Repeat(" ", max(0, width-5))
	}

	style := lipgloss.NewStyle().Foreground(m.theme.TextFg)
	if line.Kind == changedKind {
		if changedKind == models.Added {
			style = style.Foreground(m.theme.AddedFg).Background(m.theme.AddedBg)
		} else {
			style = style.Foreground(m.theme.RemovedFg).Background(m.theme.RemovedBg)
		}
	}

	number := line.NewLine
	if changedKind == models.Removed {
		number = line.OldLine
	}

	text := truncate.StringWithTail(m.expandTabs(line.Text), uint(max(1, width-5)), "…") //nolint:gosec
	if pad := (width - 5) - lipgloss.Width(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return gutterStyle.Render(fmt.Sprintf("%s ", sideNumber(number))) + style.Render(text)
}

// sideNumber formats a gutter line number, blank when the side is
// absent.
func sideNumber(n int) string {
	if n <= 0 {
		return "    "
	}
	return fmt.Sprintf("%4d", n)
}

func (m *Model) expandTabs(text string) string {
	tab := m.config.TabWidth
	if tab <= 0 {
		tab = 4
	}
	return strings.ReplaceAll(text, "\t", strings.Repeat(" ", tab))
}
