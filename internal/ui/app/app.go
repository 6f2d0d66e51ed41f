// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app provides the root Bubble Tea model of the tasklist TUI.
//
// The model owns the task store and hands each component a snapshot plus the
// store's Replace as its update function. Bubble Tea delivers one message at
// a time to Update, which is what makes the unsynchronized store safe: every
// mutation finishes inside one Update call. Probes and exports run as
// commands and report back with messages.
package app

import (
	"context"
	"fmt"
	"log"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/tasklist-tui/internal/export"
	"github.com/jeranaias/tasklist-tui/internal/model"
	"github.com/jeranaias/tasklist-tui/internal/probe"
	"github.com/jeranaias/tasklist-tui/internal/store"
	"github.com/jeranaias/tasklist-tui/internal/ui/components"
	"github.com/jeranaias/tasklist-tui/internal/ui/styles"
	"github.com/jeranaias/tasklist-tui/internal/util"
)

// =============================================================================
// FOCUS
// =============================================================================

// Focus identifies the pane receiving keystrokes.
type Focus int

const (
	FocusForm Focus = iota
	FocusList
)

// String returns the pane name.
func (f Focus) String() string {
	if f == FocusList {
		return "list"
	}
	return "form"
}

// =============================================================================
// OPTIONS
// =============================================================================

// Options configures a Model.
type Options struct {
	// Theme (default: auto-detected)
	Theme *styles.Theme

	// APIURL is the backend base URL probed by ctrl+p
	APIURL string

	// Probe overrides the probe built from APIURL
	Probe *probe.Probe

	// Initial is the starting collection (default: empty)
	Initial model.Collection

	// ExportFormat is "markdown", "json" or "pdf"
	ExportFormat string

	// ExportOptions configures ctrl+e (default: export.DefaultOptions)
	ExportOptions *export.Options

	// ShowHelpBar shows the key hints line
	ShowHelpBar bool

	// CopyFunc writes to the clipboard (default: clipboard.WriteAll)
	CopyFunc func(string) error
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the root tea.Model.
type Model struct {
	store *store.Store
	theme *styles.Theme
	keys  KeyMap

	header      *components.Header
	form        *components.TaskEntryForm
	list        *components.TaskListView
	probeStatus *components.ProbeStatus
	status      *components.StatusBar
	helpOverlay *components.HelpOverlay
	help        help.Model

	focus       Focus
	showHelp    bool
	showHelpBar bool
	width       int
	height      int

	probe        *probe.Probe
	exportFormat string
	exportOpts   *export.Options
	copy         func(string) error
}

// New creates the root model and subscribes its components to the store.
func New(opts Options) *Model {
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme()
	}
	p := opts.Probe
	if p == nil {
		p = probe.New(opts.APIURL)
	}
	exportOpts := opts.ExportOptions
	if exportOpts == nil {
		exportOpts = export.DefaultOptions()
	}
	copyFn := opts.CopyFunc
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	s := store.New(opts.Initial)
	probeStatus := components.NewProbeStatus(theme)

	m := &Model{
		store:        s,
		theme:        theme,
		keys:         DefaultKeyMap(),
		header:       components.NewHeader(theme, opts.APIURL),
		form:         components.NewTaskEntryForm(theme, s.Current(), s.Replace),
		list:         components.NewTaskListView(theme, s.Current(), s.Replace),
		probeStatus:  probeStatus,
		status:       components.NewStatusBar(theme, probeStatus),
		helpOverlay:  components.NewHelpOverlay(theme),
		help:         help.New(),
		showHelpBar:  opts.ShowHelpBar,
		width:        80,
		height:       24,
		probe:        p,
		exportFormat: opts.ExportFormat,
		exportOpts:   exportOpts,
		copy:         copyFn,
	}

	m.header.Observe(s.Current())
	s.Subscribe(m.header.Observe)
	s.Subscribe(m.form.Observe)
	s.Subscribe(m.list.Observe)

	m.form.Focus()
	m.layout()
	return m
}

// Store returns the task store.
func (m *Model) Store() *store.Store {
	return m.store
}

// Form returns the entry form.
func (m *Model) Form() *components.TaskEntryForm {
	return m.form
}

// List returns the list view.
func (m *Model) List() *components.TaskListView {
	return m.list
}

// Focus returns the focused pane.
func (m *Model) Focus() Focus {
	return m.focus
}

// HelpVisible reports whether the help overlay is open.
func (m *Model) HelpVisible() bool {
	return m.showHelp
}

// Status returns the status bar message.
func (m *Model) Status() (components.StatusKind, string) {
	return m.status.Message()
}

// ProbeStatus returns the probe status component.
func (m *Model) ProbeStatus() *components.ProbeStatus {
	return m.probeStatus
}

// =============================================================================
// BUBBLE TEA
// =============================================================================

// Init starts the cursor blink of the focused form.
func (m *Model) Init() tea.Cmd {
	return m.form.Focus()
}

// Update handles one message.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case ProbeResultMsg:
		m.probeStatus.Finish(msg.Result)
		return m, nil

	case ExportDoneMsg:
		if msg.Err != nil {
			m.status.SetMessage(components.StatusError, fmt.Sprintf("export failed: %v", msg.Err))
		} else {
			m.status.SetMessage(components.StatusSuccess, "exported "+msg.Path)
		}
		return m, nil

	case spinner.TickMsg:
		_, cmd := m.probeStatus.Update(msg)
		return m, cmd
	}

	// Cursor blink and anything else the text input cares about.
	if m.focus == FocusForm {
		_, cmd := m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.ListHelp),
			key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Probe):
		return m, m.startProbe()
	case key.Matches(msg, m.keys.Export):
		return m, m.startExport()
	case key.Matches(msg, m.keys.NextPane):
		return m, m.switchFocus()
	}

	if m.focus == FocusForm {
		return m.handleFormKey(msg)
	}
	return m.handleListKey(msg)
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Submit) {
		m.form.OnSubmit()
		m.status.Clear()
		return m, nil
	}
	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.ListHelp):
		m.showHelp = true
	case key.Matches(msg, m.keys.Back):
		return m, m.setFocus(FocusForm)
	case key.Matches(msg, m.keys.Up):
		m.list.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.list.MoveDown()
	case key.Matches(msg, m.keys.Home):
		m.list.Top()
	case key.Matches(msg, m.keys.End):
		m.list.Bottom()
	case key.Matches(msg, m.keys.Toggle):
		if i := m.list.Selected(); i >= 0 {
			m.list.CompleteItemAtIndex(i)
		}
	case key.Matches(msg, m.keys.Delete):
		if i := m.list.Selected(); i >= 0 {
			m.list.DeleteItemAtIndex(i)
		}
	case key.Matches(msg, m.keys.Yank):
		m.yank()
	}
	return m, nil
}

// =============================================================================
// ACTIONS
// =============================================================================

func (m *Model) switchFocus() tea.Cmd {
	if m.focus == FocusForm {
		return m.setFocus(FocusList)
	}
	return m.setFocus(FocusForm)
}

func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	if f == FocusList {
		m.form.Blur()
		m.list.Focus()
		return nil
	}
	m.list.Blur()
	return m.form.Focus()
}

// startProbe returns a command that runs one probe. Each call is a separate
// command with its own goroutine; nothing waits on or cancels earlier probes.
func (m *Model) startProbe() tea.Cmd {
	p := m.probe
	run := func() tea.Msg {
		return ProbeResultMsg{Result: p.Do(context.Background())}
	}
	return tea.Batch(m.probeStatus.Start(), run)
}

// startExport writes the current snapshot. The collection is immutable, so
// later edits cannot change what the command writes.
func (m *Model) startExport() tea.Cmd {
	snapshot := m.store.Current()
	format := m.exportFormat
	opts := m.exportOpts

	m.status.SetMessage(components.StatusInfo, "exporting...")
	return func() tea.Msg {
		exp, err := export.ForFormat(format, opts)
		if err != nil {
			return ExportDoneMsg{Err: err}
		}
		path, err := export.ExportToFile(snapshot, exp, opts)
		return ExportDoneMsg{Path: path, Err: err}
	}
}

func (m *Model) yank() {
	item, ok := m.list.SelectedItem()
	if !ok {
		return
	}
	if err := m.copy(item.Label); err != nil {
		log.Printf("CLIPBOARD_FAILED | error=%v", err)
		m.status.SetMessage(components.StatusError, fmt.Sprintf("copy failed: %v", err))
		return
	}
	m.status.SetMessage(components.StatusSuccess, "copied "+util.TruncateRunes(fmt.Sprintf("%q", item.Label), 40))
}

// =============================================================================
// LAYOUT AND VIEW
// =============================================================================

// formHeight is the counter line plus the bordered input.
const formHeight = 4

func (m *Model) layout() {
	m.theme.SetSize(m.width, m.height)
	m.header.SetWidth(m.width)
	m.form.SetWidth(m.width)
	m.status.SetWidth(m.width)
	m.helpOverlay.SetWidth(m.width)
	m.help.Width = m.width

	listHeight := m.height - 1 - formHeight - 1
	if m.showHelpBar {
		listHeight--
	}
	if listHeight < 3 {
		listHeight = 3
	}
	m.list.SetSize(m.width, listHeight)
}

// View renders the screen.
func (m *Model) View() string {
	if m.showHelp {
		return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), m.helpOverlay.View())
	}

	parts := []string{
		m.header.View(),
		m.form.View(),
		m.list.View(),
		m.status.View(),
	}
	if m.showHelpBar {
		bindings := m.keys.FormHelp()
		if m.focus == FocusList {
			bindings = m.keys.ListShortHelp()
		}
		parts = append(parts, m.help.ShortHelpView(bindings))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
