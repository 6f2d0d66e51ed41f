// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// repl.go - The "repl" command: a line-oriented task shell.
//
// The shell drives the same store, entry form and list view as the TUI,
// one command line at a time.

package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/muesli/termenv"
	"github.com/peterh/liner"

	"github.com/jeranaias/tasklist-tui/internal/config"
	"github.com/jeranaias/tasklist-tui/internal/export"
	"github.com/jeranaias/tasklist-tui/internal/model"
	"github.com/jeranaias/tasklist-tui/internal/probe"
	"github.com/jeranaias/tasklist-tui/internal/store"
	"github.com/jeranaias/tasklist-tui/internal/ui/components"
	"github.com/jeranaias/tasklist-tui/internal/ui/styles"
)

// ErrQuit is returned by Shell.Execute when the user asks to leave.
var ErrQuit = errors.New("quit")

const replPrompt = "tasks> "

const replHelpMarkdown = `# Commands

| Command | Action |
|---|---|
| ` + "`add <label>`" + ` | Append a task (the label may be empty) |
| ` + "`done <n>`" + ` | Toggle completion of task n |
| ` + "`rm <n>`" + ` | Remove task n |
| ` + "`list`" + ` | Show all tasks |
| ` + "`probe`" + ` | GET the backend root; the response is logged |
| ` + "`export [md\\|json\\|pdf]`" + ` | Write the current tasks to a file |
| ` + "`yank <n>`" + ` | Copy the label of task n to the clipboard |
| ` + "`help`" + ` | Show this table |
| ` + "`quit`" + ` | Leave the shell |

Tasks are numbered from 1 and live only until the shell exits.
`

// =============================================================================
// SHELL
// =============================================================================

// ShellOptions configures a Shell.
type ShellOptions struct {
	// Out receives command output (default: stdout)
	Out io.Writer

	// Probe is fired by the probe command
	Probe *probe.Probe

	// ExportFormat is used when export is given no argument
	ExportFormat string

	// ExportOptions configures export (default: export.DefaultOptions)
	ExportOptions *export.Options

	// CopyFunc writes to the clipboard (default: clipboard.WriteAll)
	CopyFunc func(string) error

	// Plain disables markdown rendering of help
	Plain bool

	// Width is the output width (default: terminal width)
	Width int
}

// Shell executes task commands against one in-memory collection.
type Shell struct {
	store *store.Store
	form  *components.TaskEntryForm
	list  *components.TaskListView

	out          io.Writer
	probe        *probe.Probe
	exportFormat string
	exportOpts   *export.Options
	copy         func(string) error
	plain        bool
	width        int
}

// NewShell creates a shell with an empty collection.
func NewShell(opts ShellOptions) *Shell {
	out := opts.Out
	if out == nil {
		out = stdout
	}
	p := opts.Probe
	if p == nil {
		p = probe.New(config.APIURL())
	}
	exportOpts := opts.ExportOptions
	if exportOpts == nil {
		exportOpts = export.DefaultOptions()
	}
	copyFn := opts.CopyFunc
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	width := opts.Width
	if width <= 0 {
		width = GetTerminalWidth()
	}

	theme := styles.NewTheme()
	s := store.New(model.NewCollection())
	sh := &Shell{
		store:        s,
		form:         components.NewTaskEntryForm(theme, s.Current(), s.Replace),
		list:         components.NewTaskListView(theme, s.Current(), s.Replace),
		out:          out,
		probe:        p,
		exportFormat: opts.ExportFormat,
		exportOpts:   exportOpts,
		copy:         copyFn,
		plain:        opts.Plain,
		width:        width,
	}
	s.Subscribe(sh.form.Observe)
	s.Subscribe(sh.list.Observe)
	return sh
}

// Store returns the shell's task store.
func (sh *Shell) Store() *store.Store {
	return sh.store
}

// Counter returns the entry form's derived task count.
func (sh *Shell) Counter() int {
	return sh.form.Counter()
}

// Execute runs one command line. It returns ErrQuit when the shell should exit.
func (sh *Shell) Execute(line string) error {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	if trimmed == "" {
		return nil
	}

	word, rest := splitCommand(trimmed)
	args := NewArgParser(strings.Fields(rest))

	switch strings.ToLower(word) {
	case "add", "a":
		return sh.add(rest)
	case "done", "toggle", "x":
		return sh.toggle(word, args)
	case "rm", "del", "delete":
		return sh.remove(word, args)
	case "list", "ls", "l":
		sh.printList()
		return nil
	case "probe", "p":
		sh.fireProbe()
		return nil
	case "export", "e":
		return sh.export(args.Positional(0))
	case "yank", "y":
		return sh.yank(word, args)
	case "help", "h", "?":
		sh.printHelp()
		return nil
	case "quit", "exit", "q":
		return ErrQuit
	default:
		return fmt.Errorf("unknown command %q (type help)", word)
	}
}

// splitCommand splits at the first whitespace rune. rest keeps everything
// after that single separator so labels stay exactly as typed.
func splitCommand(line string) (word, rest string) {
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	_, size := utf8.DecodeRuneInString(line[i:])
	return line[:i], line[i+size:]
}

// add sends the label through the entry form exactly as typed.
func (sh *Shell) add(label string) error {
	sh.form.OnInputChange(label)
	sh.form.OnSubmit()
	fmt.Fprintf(sh.out, "%s (%d)\n", styles.RenderSuccess("added"), sh.form.Counter())
	return nil
}

func (sh *Shell) toggle(word string, args *ArgParser) error {
	i, err := sh.index(word, args)
	if err != nil {
		return err
	}
	sh.list.CompleteItemAtIndex(i)
	fmt.Fprintln(sh.out, components.RenderRow(i, sh.store.Current().At(i)))
	return nil
}

func (sh *Shell) remove(word string, args *ArgParser) error {
	i, err := sh.index(word, args)
	if err != nil {
		return err
	}
	sh.list.DeleteItemAtIndex(i)
	fmt.Fprintf(sh.out, "%s (%d)\n", styles.RenderSuccess("removed"), sh.form.Counter())
	return nil
}

// index converts the single 1-based task number argument into an index
// into the current collection.
func (sh *Shell) index(word string, args *ArgParser) (int, error) {
	if count := args.PositionalCount(); count > 1 {
		return 0, fmt.Errorf("%s takes one task number, got %d arguments", word, count)
	}
	n, err := ParseIntWithValidation(args.Positional(0), "task number")
	if err != nil {
		return 0, err
	}
	if count := sh.list.Snapshot().Len(); n > count {
		return 0, fmt.Errorf("no task %d (have %d)", n, count)
	}
	return n - 1, nil
}

func (sh *Shell) printList() {
	c := sh.list.Snapshot()
	if c.Len() == 0 {
		fmt.Fprintln(sh.out, "No tasks yet")
		return
	}
	for i, item := range c.Items() {
		fmt.Fprintln(sh.out, components.RenderRow(i, item))
	}
	fmt.Fprintf(sh.out, "%d tasks, %d done\n", c.Len(), c.CompletedCount())
}

// fireProbe starts a probe and returns at once. The outcome reaches the
// probe's logger only; task state is never touched.
func (sh *Shell) fireProbe() {
	sh.probe.Fire(nil)
	fmt.Fprintln(sh.out, styles.RenderInfo("probe sent: GET "+sh.probe.URL()))
}

func (sh *Shell) export(format string) error {
	if format == "" {
		format = sh.exportFormat
	}
	exp, err := export.ForFormat(format, sh.exportOpts)
	if err != nil {
		return err
	}
	path, err := export.ExportToFile(sh.store.Current(), exp, sh.exportOpts)
	if err != nil {
		return err
	}
	fmt.Fprintln(sh.out, styles.RenderSuccess("exported "+path))
	return nil
}

func (sh *Shell) yank(word string, args *ArgParser) error {
	i, err := sh.index(word, args)
	if err != nil {
		return err
	}
	if err := sh.copy(sh.store.Current().At(i).Label); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	fmt.Fprintln(sh.out, styles.RenderSuccess("copied"))
	return nil
}

func (sh *Shell) printHelp() {
	if sh.plain {
		fmt.Fprint(sh.out, replHelpMarkdown)
		return
	}
	fmt.Fprint(sh.out, components.RenderMarkdown(replHelpMarkdown, sh.width, termenv.HasDarkBackground()))
}

// =============================================================================
// LINE EDITING
// =============================================================================

// lineReader provides input history and line editing for the shell.
type lineReader struct {
	line        *liner.State
	historyFile string
}

func newLineReader() *lineReader {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}

	r := &lineReader{
		line:        line,
		historyFile: filepath.Join(configDir, "repl_history"),
	}
	r.loadHistory()
	return r
}

func (r *lineReader) loadHistory() {
	if f, err := os.Open(r.historyFile); err == nil {
		r.line.ReadHistory(f)
		f.Close()
	}
}

// readInput reads a line. Non-empty lines are added to history.
func (r *lineReader) readInput(prompt string) (string, error) {
	input, err := r.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}
	return input, nil
}

// saveHistory writes history owner-readable only.
func (r *lineReader) saveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(r.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	r.line.WriteHistory(f)
}

func (r *lineReader) close() {
	r.saveHistory()
	r.line.Close()
}

// =============================================================================
// HANDLER
// =============================================================================

// HandleREPL handles the "repl" command.
func HandleREPL(args Args) error {
	cfg := config.Global()

	logger := log.New(stderr, "", log.LstdFlags)
	if args.Quiet {
		logger.SetOutput(io.Discard)
	}
	logger.Printf("API_URL | url=%s", config.APIURL())

	opts := export.DefaultOptions()
	opts.OutputDir = cfg.Export.Dir

	sh := NewShell(ShellOptions{
		Probe:         probe.NewWithConfig(&probe.Config{BaseURL: config.APIURL(), Logger: logger}),
		ExportFormat:  cfg.Export.Format,
		ExportOptions: opts,
		Plain:         GetColorProfile() == termenv.Ascii,
	})

	reader := newLineReader()
	defer reader.close()

	if !args.Quiet {
		fmt.Fprintln(stdout, "tasklist shell. Type help for commands, quit to leave.")
	}

	for {
		input, err := reader.readInput(replPrompt)
		if err != nil {
			// ctrl+c (liner.ErrPromptAborted) and ctrl+d both leave quietly
			fmt.Fprintln(stdout)
			return nil
		}

		if err := sh.Execute(input); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			fmt.Fprintln(stdout, styles.RenderError(err.Error()))
		}
	}
}
