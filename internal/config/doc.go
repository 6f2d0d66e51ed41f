// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for tasklist.
//
// Runtime settings come from a TOML file, sensible defaults, and environment
// variable overrides. The probe base URL is not one of them: it is fixed when
// the binary is built (see APIURL).
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - ServerConfig: Backend listener settings
//   - UIConfig: Terminal UI settings
//   - ExportConfig: Snapshot export settings
//   - LogConfig: Log file location
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (TASKLIST_*)
//   - ~/.tasklist/config.toml
//   - Built-in defaults
//
// # Build-Time API URL
//
// Development builds always probe http://localhost:3001. Production builds
// bake in the API_URL environment value present at build time:
//
//	go build -ldflags "\
//	  -X github.com/jeranaias/tasklist-tui/internal/config.BuildMode=production \
//	  -X github.com/jeranaias/tasklist-tui/internal/config.BuildAPIURL=$API_URL"
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	port := cfg.Server.Port
package config
