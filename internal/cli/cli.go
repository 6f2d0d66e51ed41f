// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/jeranaias/tasklist-tui/internal/config"
)

// =============================================================================
// VERSION INFORMATION
// =============================================================================

var (
	// Version is the current version of tasklist.
	Version = "0.1.0"
	// GitCommit is the git commit hash (set at build time).
	GitCommit = "unknown"
	// BuildDate is the build date (set at build time).
	BuildDate = "unknown"
)

// stdout and stderr are swapped out by tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// =============================================================================
// COMMAND TYPES
// =============================================================================

// Command represents a CLI command.
type Command int

const (
	// CmdTUI launches the interactive task list (default).
	CmdTUI Command = iota
	// CmdREPL runs the line-oriented task shell.
	CmdREPL
	// CmdServe runs the backend HTTP listener.
	CmdServe
	// CmdProbe sends one connectivity probe and prints the result.
	CmdProbe
	// CmdConfig shows configuration.
	CmdConfig
	// CmdVersion shows version information.
	CmdVersion
	// CmdHelp shows help information.
	CmdHelp
	// CmdUnknown is an unrecognized command.
	CmdUnknown
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CmdTUI:
		return "tui"
	case CmdREPL:
		return "repl"
	case CmdServe:
		return "serve"
	case CmdProbe:
		return "probe"
	case CmdConfig:
		return "config"
	case CmdVersion:
		return "version"
	case CmdHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Args holds parsed command-line arguments.
type Args struct {
	// Global flags
	Quiet   bool
	Verbose bool
	JSON    bool
	NoColor bool

	// Serve: listener port override (0 keeps the configured port)
	Port int

	// Config: "show", "path" or "init"
	Subcommand string

	// Config: show the built-in defaults instead of the loaded file
	Defaults bool

	// Raw holds the arguments after the command name
	Raw []string

	// Options holds --key=value pairs that no command claimed
	Options map[string]string

	// Unknown is the unrecognized command word, if any
	Unknown string
}

// =============================================================================
// USAGE
// =============================================================================

const usageText = `tasklist - a terminal task list

Usage:
  tasklist [command] [flags]

Commands:
  tui                  Interactive task list (default)
  repl                 Line-oriented task shell
  serve [--port N]     Run the backend (GET / answers "Express on Vercel")
  probe                Send one GET to the backend and print the response
  config [show|path|init] [--defaults]
                       Show the configuration, its path, or write defaults
  version              Show version information
  help                 Show this help

Global Flags:
  -q, --quiet          Minimal output
  -v, --verbose        Verbose output
      --json           JSON output (version, probe, config)
      --no-color       Disable colored output

The probe target is fixed when the binary is built. Production builds use
the API_URL value given at build time; all other builds use
http://localhost:3001.
`

// PrintUsage prints the usage information.
func PrintUsage() {
	fmt.Fprint(stdout, usageText)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Fprintf(stdout, "tasklist version %s\n", Version)
	fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
	fmt.Fprintf(stdout, "  Build date: %s\n", BuildDate)
}

// =============================================================================
// PARSING
// =============================================================================

// Parse parses os.Args and returns the command and args.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses the given arguments (without the program name).
func ParseArgs(args []string) (Command, Args) {
	remaining, parsedArgs := parseGlobalFlags(args)

	if len(remaining) == 0 {
		return CmdTUI, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsedArgs.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, parsedArgs

	case "repl", "shell":
		return CmdREPL, parsedArgs

	case "serve", "server":
		parseServeArgs(&parsedArgs, remaining)
		return CmdServe, parsedArgs

	case "probe", "ping":
		return CmdProbe, parsedArgs

	case "config":
		parseConfigArgs(&parsedArgs, remaining)
		return CmdConfig, parsedArgs

	case "version", "--version", "-V":
		return CmdVersion, parsedArgs

	case "help", "--help", "-h":
		return CmdHelp, parsedArgs

	default:
		parsedArgs.Unknown = cmd
		return CmdUnknown, parsedArgs
	}
}

// parseGlobalFlags extracts flags that apply to every command.
// Flags may appear before or after the command name.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	parsedArgs := Args{
		Options: make(map[string]string),
	}

	for _, arg := range args {
		switch arg {
		case "-q", "--quiet":
			parsedArgs.Quiet = true
		case "-v", "--verbose":
			parsedArgs.Verbose = true
		case "--json":
			parsedArgs.JSON = true
		case "--no-color":
			parsedArgs.NoColor = true
		default:
			remaining = append(remaining, arg)
		}
	}

	return remaining, parsedArgs
}

// parseServeArgs handles --port N and --port=N.
func parseServeArgs(args *Args, remaining []string) {
	p := NewArgParser(remaining)
	v := p.Flag("port")
	if v == "" {
		return
	}
	if args.Port = p.FlagIntOrDefault("port", -1); args.Port < 0 {
		args.Port = 0
		args.Options["port"] = v
	}
}

// parseConfigArgs reads the config subcommand, defaulting to "show".
func parseConfigArgs(args *Args, remaining []string) {
	p := NewArgParser(remaining)
	args.Subcommand = strings.ToLower(p.Subcommand())
	if args.Subcommand == "" {
		args.Subcommand = "show"
	}
	args.Defaults = p.BoolFlag("defaults")
}

// =============================================================================
// VERSION / HELP HANDLERS
// =============================================================================

// VersionData is the JSON payload of "version --json".
type VersionData struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Mode      string `json:"build_mode"`
	APIURL    string `json:"api_url"`
}

// HandleVersion handles the "version" command with JSON output support.
func HandleVersion(args Args) error {
	if args.JSON {
		return NewJSONResponse("version", versionData()).Print()
	}
	if args.Quiet {
		fmt.Fprintln(stdout, Version)
		return nil
	}
	PrintVersion()
	if args.Verbose {
		d := versionData()
		fmt.Fprintf(stdout, "  Go version: %s\n", d.GoVersion)
		fmt.Fprintf(stdout, "  Build mode: %s\n", d.Mode)
		fmt.Fprintf(stdout, "  API URL:    %s\n", d.APIURL)
	}
	return nil
}

// HandleHelp handles the "help" command.
func HandleHelp() {
	PrintUsage()
}

// HandleUnknown reports an unrecognized command.
func HandleUnknown(args Args) error {
	return fmt.Errorf("unknown command %q (run 'tasklist help')", args.Unknown)
}

func versionData() VersionData {
	return VersionData{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Mode:      buildMode(),
		APIURL:    config.APIURL(),
	}
}

// buildMode names the build: "production" or "development".
func buildMode() string {
	if config.IsProduction() {
		return config.ModeProduction
	}
	return "development"
}
