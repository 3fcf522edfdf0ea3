package services

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchDebounce is the minimum gap between refreshes triggered by
// filesystem events.
const WatchDebounce = 600 * time.Millisecond

// RepoRootResolver resolves the repository toplevel for the watched
// directory.
type RepoRootResolver interface {
	Toplevel(ctx context.Context) (string, error)
}

// WatchService watches the working tree and the index so the view can
// refresh when the compared files change underneath it.
type WatchService struct {
	Started     bool
	Waiting     bool
	Root        string
	Events      chan struct{}
	Done        chan struct{}
	Paths       map[string]struct{}
	Mu          sync.Mutex
	Watcher     *fsnotify.Watcher
	LastRefresh time.Time
	git         RepoRootResolver
	logf        func(string, ...any)
}

// NewWatchService creates a new WatchService.
func NewWatchService(git RepoRootResolver, logf func(string, ...any)) *WatchService {
	return &WatchService{
		git:  git,
		logf: logf,
	}
}

// Start resolves the repository root, registers its directory tree with
// fsnotify and starts the event goroutine. It reports whether the
// watcher actually started.
func (w *WatchService) Start(ctx context.Context) (bool, error) {
	if w.Started || w.git == nil {
		return false, nil
	}
	root, err := w.git.Toplevel(ctx)
	if err != nil || root == "" {
		w.debugf("auto refresh: unable to resolve repository root: %v", err)
		return false, nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return false, err
	}

	w.Started = true
	w.Watcher = watcher
	w.Root = root
	w.Events = make(chan struct{}, 1)
	w.Done = make(chan struct{})
	w.Paths = make(map[string]struct{})

	w.addWatchTree(root)
	// The index file changes on stage and unstage; its parent dir is
	// enough since fsnotify reports writes to direct children.
	w.addWatchDir(filepath.Join(root, ".git"))

	go w.run()
	return true, nil
}

// Stop stops the watcher and closes channels.
func (w *WatchService) Stop() {
	if !w.Started {
		return
	}
	close(w.Done)
	w.Started = false
	if w.Watcher != nil {
		_ = w.Watcher.Close()
	}
}

// NextEvent returns the event channel once per outstanding event, so a
// bubbletea command can block on it without doubling up.
func (w *WatchService) NextEvent() <-chan struct{} {
	if w.Events == nil || w.Waiting {
		return nil
	}
	w.Waiting = true
	return w.Events
}

// ResetWaiting clears the waiting flag after an event is processed.
func (w *WatchService) ResetWaiting() {
	w.Waiting = false
}

// ShouldRefresh checks debounce timing for watcher events.
func (w *WatchService) ShouldRefresh(now time.Time) bool {
	if !w.LastRefresh.IsZero() && now.Sub(w.LastRefresh) < WatchDebounce {
		return false
	}
	w.LastRefresh = now
	return true
}

// Signal notifies listeners of watcher activity.
func (w *WatchService) Signal() {
	select {
	case <-w.Done:
		return
	default:
	}
	select {
	case w.Events <- struct{}{}:
	default:
	}
}

func (w *WatchService) run() {
	for {
		select {
		case <-w.Done:
			return
		case event, ok := <-w.Watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				w.maybeWatchNewDir(event.Name)
			}
			w.Signal()
		case err, ok := <-w.Watcher.Errors:
			if !ok {
				return
			}
			w.debugf("watcher error: %v", err)
		}
	}
}

// maybeWatchNewDir registers directories created after startup so new
// subtrees keep triggering refreshes.
func (w *WatchService) maybeWatchNewDir(path string) {
	if !w.isUnderRoot(path) || w.isGitInternal(path) {
		return
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	w.addWatchDir(path)
}

func (w *WatchService) isUnderRoot(path string) bool {
	if path == "" || w.Root == "" {
		return false
	}
	return path == w.Root || strings.HasPrefix(path, w.Root+string(filepath.Separator))
}

// isGitInternal reports whether the path lives below .git. Those
// subtrees churn constantly and only the index matters to us.
func (w *WatchService) isGitInternal(path string) bool {
	gitDir := filepath.Join(w.Root, ".git")
	return strings.HasPrefix(path, gitDir+string(filepath.Separator))
}

func (w *WatchService) addWatchDir(path string) {
	if path == "" {
		return
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}

	w.Mu.Lock()
	defer w.Mu.Unlock()

	if _, ok := w.Paths[path]; ok {
		return
	}
	if err := w.Watcher.Add(path); err != nil {
		w.debugf("watcher add failed for %s: %v", path, err)
		return
	}
	w.Paths[path] = struct{}{}
}

func (w *WatchService) addWatchTree(root string) {
	if root == "" {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if d.Name() == ".git" {
			return filepath.SkipDir
		}
		w.addWatchDir(path)
		return nil
	})
}

func (w *WatchService) debugf(format string, args ...any) {
	if w.logf == nil {
		return
	}
	w.logf(format, args...)
}
