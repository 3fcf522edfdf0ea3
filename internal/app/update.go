package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update routes messages to the relevant handler.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setWindowSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case changesLoadedMsg:
		return m.handleChangesLoaded(msg)
	case treeChangedMsg:
		return m.handleTreeChanged()
	case errMsg:
		m.errText = msg.err.Error()
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		m.Close()
		return m, tea.Quit
	case "tab":
		if m.focusedPane == paneTree {
			m.focusedPane = paneDiff
		} else {
			m.focusedPane = paneTree
		}
		return m, nil
	case "v":
		m.toggleViewMode()
		return m, nil
	case "r":
		return m, m.reloadChanges()
	case "n":
		if node := m.tree.NextFile(); node != nil {
			m.showDiff(node.DiffIndex)
		}
		return m, nil
	case "N", "p":
		if node := m.tree.PrevFile(); node != nil {
			m.showDiff(node.DiffIndex)
		}
		return m, nil
	}

	if m.focusedPane == paneTree {
		return m.handleTreeKey(msg)
	}
	return m.handleDiffKey(msg)
}

func (m *Model) handleTreeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.tree.Index++
		m.tree.ClampIndex()
	case "k", "up":
		m.tree.Index--
		m.tree.ClampIndex()
	case "g", "home":
		m.tree.Index = 0
	case "G", "end":
		m.tree.Index = len(m.tree.TreeFlat) - 1
		m.tree.ClampIndex()
	case "enter", "l", "right", " ":
		node := m.tree.Selected()
		if node == nil {
			break
		}
		if node.IsDir() {
			m.tree.ToggleCollapse(node.Path)
			break
		}
		m.showDiff(node.DiffIndex)
		if msg.String() == "enter" {
			m.focusedPane = paneDiff
		}
	case "h", "left":
		node := m.tree.Selected()
		if node != nil && node.IsDir() && !m.tree.CollapsedDirs[node.Path] {
			m.tree.ToggleCollapse(node.Path)
		}
	}
	m.syncSelection()
	return m, nil
}

// syncSelection follows the tree cursor with the diff pane.
func (m *Model) syncSelection() {
	if node := m.tree.Selected(); node != nil && !node.IsDir() && node.DiffIndex != m.current {
		m.showDiff(node.DiffIndex)
	}
}

func (m *Model) handleDiffKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h", "left", "esc":
		m.focusedPane = paneTree
		return m, nil
	case "g", "home":
		m.viewport.GotoTop()
		return m, nil
	case "G", "end":
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// showDiff points the right pane at a diff index.
func (m *Model) showDiff(idx int) {
	if idx < 0 || idx >= len(m.diffs) {
		return
	}
	m.current = idx
	m.refreshViewport()
	m.viewport.GotoTop()
}
