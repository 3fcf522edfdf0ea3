// Package main provides CLI flag definitions for lazydiff.
package main

import (
	urfavecli "github.com/urfave/cli/v2"
)

// globalFlags returns all global flags for the application.
// Note: --version is provided automatically by urfave/cli via App.Version
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.BoolFlag{
			Name:    "staged",
			Aliases: []string{"s"},
			Usage:   "Review staged changes instead of unstaged ones",
		},
		&urfavecli.StringFlag{
			Name:  "view",
			Usage: "Diff layout: \"unified\" or \"split\"",
		},
		&urfavecli.StringFlag{
			Name:    "theme",
			Aliases: []string{"t"},
			Usage:   "Override the UI theme",
		},
		&urfavecli.BoolFlag{
			Name:  "list-themes",
			Usage: "List available theme names",
		},
		&urfavecli.BoolFlag{
			Name:  "no-icons",
			Usage: "Disable Nerd Font icons in the file tree",
		},
		&urfavecli.BoolFlag{
			Name:  "no-auto-refresh",
			Usage: "Do not refresh when the working tree changes",
		},
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
		&urfavecli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
		&urfavecli.StringSliceFlag{
			Name:    "config",
			Aliases: []string{"C"},
			Usage:   "Override config values (repeatable): --config=lazydiff.key=value",
		},
	}
}
