// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the task data structures for tasklist.
//
// # Key Types
//
//   - TaskItem: a label and a completion flag
//   - Collection: an immutable, ordered sequence of TaskItems
//
// Every Collection operation returns a new value backed by its own array, so a
// snapshot handed to a view can never change underneath it.
//
// # Usage
//
//	c := model.NewCollection()
//	c = c.Append(model.NewTaskItem("Buy milk"))
//	c = c.ToggleAt(0)
//	fmt.Println(c.Len(), c.At(0).Completed) // 1 true
//
// Items have no identity beyond their current index. Two items with the same
// label and flag are indistinguishable, and an index captured before another
// mutation may point at a different item afterwards.
package model
