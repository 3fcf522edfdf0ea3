package app

import (
	"bytes"
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"

	"github.com/chmouel/lazydiff/internal/config"
	"github.com/chmouel/lazydiff/internal/git"
	"github.com/chmouel/lazydiff/internal/models"
)

// TestFullSession drives the program end to end: render, navigate and
// quit.
func TestFullSession(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Theme = "dracula"
	cfg.ShowIcons = false
	cfg.AutoRefresh = false
	cfg.ViewMode = config.ViewUnified

	changes := models.ChangeSet{
		{OldPath: "main.go", NewPath: "main.go", OldText: "package main\n", NewText: "package main\n\nfunc main() {}\n"},
	}
	m := NewModel(context.Background(), cfg, nil, git.DiscoverRequest{Mode: models.ModePairs}, changes)

	tm := teatest.NewTestModel(
		t,
		m,
		teatest.WithInitialTermSize(120, 40),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("main.go"))
	}, teatest.WithDuration(2*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	fm, ok := tm.FinalModel(t).(*Model)
	if !ok {
		t.Fatal("final model is not *Model")
	}
	if !fm.quitting {
		t.Error("model should be quitting after 'q'")
	}
}
