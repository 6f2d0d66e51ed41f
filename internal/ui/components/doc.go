// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the UI components of the tasklist TUI.

# Task Components

TaskEntryForm (entry_form.go) - Draft input with the live item counter.
TaskListView (task_list.go) - Rows with checkbox, label and completion flag;
delete and toggle by index.

Both receive a snapshot of the collection and an update function at
construction, and both are subscribed to the store through Observe:

	s := store.New(model.NewCollection())
	form := components.NewTaskEntryForm(theme, s.Current(), s.Replace)
	list := components.NewTaskListView(theme, s.Current(), s.Replace)
	s.Subscribe(form.Observe)
	s.Subscribe(list.Observe)

	form.OnInputChange("Buy milk")
	form.OnSubmit() // form.Counter() == 1, list shows one row

# Chrome

Header (header.go) - Title, backend URL, open/done tallies.
StatusBar (statusbar.go) - Last message and probe status.
ProbeStatus (probe_status.go) - Spinner while probes are in flight.
HelpOverlay (help.go) - Key reference rendered from markdown with glamour.
*/
package components
