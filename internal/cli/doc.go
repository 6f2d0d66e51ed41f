// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the non-TUI commands of tasklist.
//
// # Usage
//
//	cmd, args := cli.Parse()
//	switch cmd {
//	case cli.CmdServe:
//	    err = cli.HandleServe(args)
//	case cli.CmdREPL:
//	    err = cli.HandleREPL(args)
//	}
//
// # Commands
//
//   - tui: interactive task list (run from main)
//   - repl: line-oriented shell over the same store and components
//   - serve: the backend listener
//   - probe: one GET against the build-time API URL
//   - config: show the configuration or its path
//   - version, help
//
// Every handler honors --json where it makes sense, printing a JSONResponse
// envelope to stdout.
package cli
