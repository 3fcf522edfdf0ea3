// Package main is the entry point for the lazydiff application.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	urfavecli "github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/chmouel/lazydiff/internal/app"
	"github.com/chmouel/lazydiff/internal/config"
	"github.com/chmouel/lazydiff/internal/git"
	"github.com/chmouel/lazydiff/internal/log"
	"github.com/chmouel/lazydiff/internal/models"
	"github.com/chmouel/lazydiff/internal/theme"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cliApp := &urfavecli.App{
		Name:                 "lazydiff",
		Usage:                "A TUI side-by-side viewer for git changes",
		ArgsUsage:            "[old new]...",
		Version:              fmt.Sprintf("%s (%s, built %s)", version, commit, date),
		EnableBashCompletion: true,
		Flags:                globalFlags(),
		Action:               runTUI,
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// runTUI launches the viewer with the change source picked from the
// command line.
func runTUI(c *urfavecli.Context) error {
	if c.Bool("list-themes") {
		for _, name := range theme.AvailableThemes() {
			fmt.Println(name)
		}
		return nil
	}

	// Debug logging starts before config so config loading is traced.
	if debugLog := c.String("debug-log"); debugLog != "" {
		if err := log.SetFile(debugLog); err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", debugLog, err)
		}
	}

	cfg, err := config.LoadConfig(c.String("config-file"), c.StringSlice("config"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	if err := applyFlagOverrides(cfg, c); err != nil {
		_ = log.Close()
		return err
	}

	if c.String("debug-log") == "" {
		if cfg.DebugLog != "" {
			if err := log.SetFile(cfg.DebugLog); err != nil {
				fmt.Fprintf(os.Stderr, "Error opening debug log file from config %q: %v\n", cfg.DebugLog, err)
			}
		} else {
			_ = log.SetFile("")
		}
	}

	req, err := buildRequest(c)
	if err != nil {
		_ = log.Close()
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		_ = log.Close()
		return errors.New("lazydiff requires an interactive terminal")
	}

	ctx := context.Background()
	cwd, err := os.Getwd()
	if err != nil {
		_ = log.Close()
		return err
	}
	svc := git.NewService(cwd)

	changes, err := svc.Discover(ctx, req)
	if err != nil {
		_ = log.Close()
		if git.IsNoChanges(err) {
			fmt.Println(err.Error())
			return nil
		}
		if errors.Is(err, git.ErrNotARepository) {
			return fmt.Errorf("%s is not inside a git repository", cwd)
		}
		return err
	}

	model := app.NewModel(ctx, cfg, svc, req, changes)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	_, err = p.Run()
	model.Close()
	_ = log.Close()
	if err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}

// applyFlagOverrides folds command-line flags into the loaded config.
func applyFlagOverrides(cfg *config.AppConfig, c *urfavecli.Context) error {
	if themeName := c.String("theme"); themeName != "" {
		normalized := config.NormalizeThemeName(themeName)
		if normalized == "" {
			return fmt.Errorf("unknown theme %q, see --list-themes", themeName)
		}
		cfg.Theme = normalized
	}

	if viewMode := c.String("view"); viewMode != "" {
		normalized := config.NormalizeViewMode(viewMode)
		if normalized == "" {
			return fmt.Errorf("unknown view mode %q, expected %q or %q", viewMode, config.ViewUnified, config.ViewSplit)
		}
		cfg.ViewMode = normalized
	}

	if c.Bool("no-icons") {
		cfg.ShowIcons = false
	}
	if c.Bool("no-auto-refresh") {
		cfg.AutoRefresh = false
	}
	if debugLog := c.String("debug-log"); debugLog != "" {
		cfg.DebugLog = debugLog
	}
	return nil
}

// buildRequest decides what to compare from flags and positional
// arguments.
func buildRequest(c *urfavecli.Context) (git.DiscoverRequest, error) {
	if c.NArg() > 0 {
		pairs, err := parsePairs(c.Args().Slice())
		if err != nil {
			return git.DiscoverRequest{}, err
		}
		if c.Bool("staged") {
			return git.DiscoverRequest{}, errors.New("--staged cannot be combined with explicit file pairs")
		}
		return git.DiscoverRequest{Mode: models.ModePairs, Pairs: pairs}, nil
	}
	if c.Bool("staged") {
		return git.DiscoverRequest{Mode: models.ModeStaged}, nil
	}
	return git.DiscoverRequest{Mode: models.ModeUnstaged}, nil
}
