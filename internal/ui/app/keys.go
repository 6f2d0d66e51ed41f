// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the task list.
// Bindings that are printable characters only apply while the list has
// focus, so they never steal keystrokes from the entry form.
type KeyMap struct {
	// Global
	Probe     key.Binding
	Export    key.Binding
	Help      key.Binding
	ForceQuit key.Binding
	NextPane  key.Binding

	// Entry form
	Submit key.Binding

	// List
	Up       key.Binding
	Down     key.Binding
	Home     key.Binding
	End      key.Binding
	Toggle   key.Binding
	Delete   key.Binding
	Yank     key.Binding
	Back     key.Binding
	ListHelp key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Probe: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("C-p", "probe"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("C-e", "export"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "help"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
		NextPane: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("Tab", "switch pane"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "add task"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x", "enter"),
			key.WithHelp("space/x", "toggle"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete", "backspace"),
			key.WithHelp("d", "remove"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "entry form"),
		),
		ListHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// FormHelp returns the bindings shown while the entry form has focus.
func (k KeyMap) FormHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NextPane, k.Probe, k.Export, k.Help, k.ForceQuit}
}

// ListShortHelp returns the bindings shown while the list has focus.
func (k KeyMap) ListShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Delete, k.Yank, k.NextPane, k.Probe, k.Export, k.ListHelp, k.Quit}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return k.FormHelp()
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.NextPane},
		{k.Up, k.Down, k.Home, k.End},
		{k.Toggle, k.Delete, k.Yank, k.Back},
		{k.Probe, k.Export, k.Help, k.ForceQuit},
	}
}
