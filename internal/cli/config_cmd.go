// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - The "config" command.

package cli

import (
	"fmt"
	"os"

	"github.com/jeranaias/tasklist-tui/internal/config"
)

// ConfigData is the JSON payload of "config show --json".
type ConfigData struct {
	Path   string         `json:"path"`
	APIURL string         `json:"api_url"`
	Config *config.Config `json:"config"`
}

// HandleConfig handles "config show", "config path" and "config init".
func HandleConfig(args Args) error {
	switch args.Subcommand {
	case "show", "":
		return handleConfigShow(args)
	case "path":
		return handleConfigPath(args)
	case "init":
		return handleConfigInit(args)
	default:
		return fmt.Errorf("unknown config subcommand %q (expected show, path or init)", args.Subcommand)
	}
}

func handleConfigShow(args Args) error {
	return OutputJSON(args.JSON, "config show", func() (interface{}, error) {
		cfg := config.Default()
		if !args.Defaults {
			loaded, err := config.Load()
			if err != nil {
				return nil, fmt.Errorf("failed to load config: %w", err)
			}
			cfg = loaded
		}
		path, _ := config.ConfigPathTOML()

		if !args.JSON {
			if !args.Quiet {
				fmt.Fprintf(stdout, "# %s\n", path)
				fmt.Fprintf(stdout, "# api_url (build-time) = %q\n\n", config.APIURL())
			}
			fmt.Fprint(stdout, cfg.String())
		}
		return ConfigData{Path: path, APIURL: config.APIURL(), Config: cfg}, nil
	})
}

func handleConfigPath(args Args) error {
	return OutputJSON(args.JSON, "config path", func() (interface{}, error) {
		path, err := config.ConfigPathTOML()
		if err != nil {
			return nil, err
		}
		if !args.JSON {
			fmt.Fprintln(stdout, path)
		}
		return map[string]string{"path": path}, nil
	})
}

// handleConfigInit writes the defaults to the config file unless one exists.
func handleConfigInit(args Args) error {
	return OutputJSON(args.JSON, "config init", func() (interface{}, error) {
		path, err := config.ConfigPathTOML()
		if err != nil {
			return nil, err
		}
		if _, err := os.Stat(path); err == nil {
			return nil, fmt.Errorf("config file already exists: %s", path)
		}
		cfg := config.Default()
		if err := config.Save(cfg); err != nil {
			return nil, fmt.Errorf("failed to write config: %w", err)
		}
		config.SetGlobal(cfg)
		if !args.JSON && !args.Quiet {
			fmt.Fprintf(stdout, "wrote %s\n", path)
		}
		return map[string]string{"path": path}, nil
	})
}
