// Package app implements the lazydiff terminal UI: a file tree on the
// left and the selected file's diff on the right.
package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chmouel/lazydiff/internal/app/services"
	"github.com/chmouel/lazydiff/internal/config"
	"github.com/chmouel/lazydiff/internal/diff"
	"github.com/chmouel/lazydiff/internal/git"
	"github.com/chmouel/lazydiff/internal/log"
	"github.com/chmouel/lazydiff/internal/models"
	"github.com/chmouel/lazydiff/internal/theme"
)

// Panes that can hold focus.
const (
	paneTree = iota
	paneDiff
)

// Model is the top-level Bubble Tea model.
type Model struct {
	ctx     context.Context
	config  *config.AppConfig
	theme   *theme.Theme
	git     *git.Service
	request git.DiscoverRequest

	tree     *services.TreeService
	watch    *services.WatchService
	viewport viewport.Model

	changes  models.ChangeSet
	diffs    []models.FileDiff
	splitMem map[int][]models.SideBySideRow
	current  int // index into diffs shown in the right pane

	width       int
	height      int
	focusedPane int
	viewMode    string
	loading     bool
	quitting    bool
	statusText  string
	errText     string
}

// NewModel creates the application model from an already discovered
// change set.
func NewModel(ctx context.Context, cfg *config.AppConfig, gitSvc *git.Service, req git.DiscoverRequest, changes models.ChangeSet) *Model {
	m := &Model{
		ctx:      ctx,
		config:   cfg,
		theme:    theme.GetTheme(cfg.Theme),
		git:      gitSvc,
		request:  req,
		tree:     services.NewTreeService(),
		viewport: viewport.New(0, 0),
		viewMode: cfg.ViewMode,
		current:  -1,
	}
	m.setChanges(changes)
	return m
}

// Init starts the repository watcher when auto refresh applies.
func (m *Model) Init() tea.Cmd {
	if m.request.Mode == models.ModePairs || !m.config.AutoRefresh {
		return nil
	}
	return m.startWatcher()
}

// Close releases resources held outside the Bubble Tea loop.
func (m *Model) Close() {
	if m.watch != nil {
		m.watch.Stop()
	}
}

// setChanges replaces the change set, rebuilds per-file diffs and the
// file tree, and keeps the selection on the same path when possible.
func (m *Model) setChanges(changes models.ChangeSet) {
	prevPath := ""
	if node := m.tree.Selected(); node != nil {
		prevPath = node.Path
	}

	m.changes = changes
	m.diffs = make([]models.FileDiff, len(changes))
	m.splitMem = make(map[int][]models.SideBySideRow)
	entries := make([]services.PathEntry, len(changes))
	for i, pair := range changes {
		m.diffs[i] = diff.Build(pair.OldPath, pair.NewPath, pair.OldText, pair.NewText)
		entries[i] = services.PathEntry{Path: pair.NewPath, DiffIndex: i}
	}

	m.tree.Rebuild(entries)
	m.tree.RestoreSelection(prevPath)
	m.tree.ClampIndex()

	m.current = -1
	if node := m.tree.Selected(); node != nil && !node.IsDir() {
		m.current = node.DiffIndex
	} else if len(m.diffs) > 0 {
		if node := m.tree.NextFile(); node != nil {
			m.current = node.DiffIndex
		}
	}
	m.refreshViewport()
}

// splitRows returns the side-by-side rows for a diff, aligning lazily
// on first use.
func (m *Model) splitRows(idx int) []models.SideBySideRow {
	if rows, ok := m.splitMem[idx]; ok {
		return rows
	}
	rows := diff.SideBySide(m.diffs[idx].Lines)
	m.splitMem[idx] = rows
	return rows
}

// effectiveViewMode resolves the configured view mode, falling back to
// the terminal width when unset.
func (m *Model) effectiveViewMode() string {
	if m.viewMode != "" {
		return m.viewMode
	}
	if m.width >= wideTerminalCols {
		return config.ViewSplit
	}
	return config.ViewUnified
}

// wideTerminalCols is the width at which the split view becomes the
// default.
const wideTerminalCols = 160

func (m *Model) toggleViewMode() {
	if m.effectiveViewMode() == config.ViewSplit {
		m.viewMode = config.ViewUnified
	} else {
		m.viewMode = config.ViewSplit
	}
	m.refreshViewport()
}

func (m *Model) startWatcher() tea.Cmd {
	if m.watch != nil && m.watch.Started {
		return nil
	}
	if m.watch == nil {
		m.watch = services.NewWatchService(m.git, log.Printf)
	}
	started, err := m.watch.Start(m.ctx)
	if err != nil {
		return func() tea.Msg { return errMsg{err: err} }
	}
	if !started {
		return nil
	}
	return m.waitForWatchEvent()
}

func (m *Model) waitForWatchEvent() tea.Cmd {
	if m.watch == nil {
		return nil
	}
	events := m.watch.NextEvent()
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return nil
		}
		return treeChangedMsg{}
	}
}

// reloadChanges re-runs discovery in the background.
func (m *Model) reloadChanges() tea.Cmd {
	m.loading = true
	ctx, svc, req := m.ctx, m.git, m.request
	return func() tea.Msg {
		changes, err := svc.Discover(ctx, req)
		return changesLoadedMsg{changes: changes, err: err}
	}
}

func (m *Model) handleTreeChanged() (tea.Model, tea.Cmd) {
	m.watch.ResetWaiting()
	cmds := []tea.Cmd{m.waitForWatchEvent()}
	if m.watch.ShouldRefresh(time.Now()) {
		cmds = append(cmds, m.reloadChanges())
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleChangesLoaded(msg changesLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	switch {
	case msg.err == nil:
		m.errText = ""
		m.statusText = ""
		m.setChanges(msg.changes)
	case git.IsNoChanges(msg.err):
		m.errText = ""
		m.statusText = msg.err.Error()
		m.setChanges(nil)
	default:
		m.errText = msg.err.Error()
	}
	return m, nil
}
