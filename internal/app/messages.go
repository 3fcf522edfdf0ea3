package app

import "github.com/chmouel/lazydiff/internal/models"

// changesLoadedMsg carries the result of a background discovery run.
type changesLoadedMsg struct {
	changes models.ChangeSet
	err     error
}

// treeChangedMsg signals filesystem activity under the repository.
type treeChangedMsg struct{}

// errMsg carries a background error into the update loop.
type errMsg struct {
	err error
}
