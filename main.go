// tasklist - a terminal task list with a connectivity probe and its backend.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/tasklist-tui/internal/cli"
	"github.com/jeranaias/tasklist-tui/internal/config"
	"github.com/jeranaias/tasklist-tui/internal/export"
	"github.com/jeranaias/tasklist-tui/internal/ui/app"
	"github.com/jeranaias/tasklist-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()
	cli.ApplyColorMode(args)

	var err error
	switch cmd {
	case cli.CmdTUI:
		err = runTUI(args)
	case cli.CmdREPL:
		err = cli.HandleREPL(args)
	case cli.CmdServe:
		err = cli.HandleServe(args)
	case cli.CmdProbe:
		err = cli.HandleProbe(args)
	case cli.CmdConfig:
		err = cli.HandleConfig(args)
	case cli.CmdVersion:
		err = cli.HandleVersion(args)
	case cli.CmdHelp:
		cli.HandleHelp()
	default:
		err = cli.HandleUnknown(args)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runTUI starts the interactive task list. Log output goes to the log file
// so it never lands on the alternate screen.
func runTUI(args cli.Args) error {
	if err := cli.RequiresTTY("run the task list"); err != nil {
		return fmt.Errorf("%w (try 'tasklist repl')", err)
	}

	cfg := config.Global()

	if err := config.EnsureConfigDir(); err != nil && cfg.Log.File == "" {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	logFile, err := tea.LogToFile(cfg.LogFilePath(), "")
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	log.SetFlags(log.LstdFlags)

	apiURL := config.APIURL()
	log.Printf("API_URL | url=%s mode=%s", apiURL, config.BuildMode)

	theme := styles.NewThemeNamed(cfg.UI.Theme)
	theme.SetCompact(cfg.UI.CompactMode)

	exportOpts := export.DefaultOptions()
	exportOpts.OutputDir = cfg.Export.Dir

	m := app.New(app.Options{
		Theme:         theme,
		APIURL:        apiURL,
		ExportFormat:  cfg.Export.Format,
		ExportOptions: exportOpts,
		ShowHelpBar:   cfg.UI.ShowHelp && !args.Quiet,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running tasklist: %w", err)
	}
	return nil
}
