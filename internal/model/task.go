// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the task data structures for tasklist.
package model

import "encoding/json"

// =============================================================================
// TASK ITEM
// =============================================================================

// TaskItem is one task: its label text and whether it has been completed.
type TaskItem struct {
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}

// NewTaskItem creates an uncompleted item. The label is taken verbatim; empty
// and whitespace-only labels are valid.
func NewTaskItem(label string) TaskItem {
	return TaskItem{Label: label, Completed: false}
}

// Toggled returns a copy of the item with Completed flipped.
func (t TaskItem) Toggled() TaskItem {
	return TaskItem{Label: t.Label, Completed: !t.Completed}
}

// =============================================================================
// COLLECTION
// =============================================================================

// Collection is an ordered list of TaskItems, addressed by index 0..Len()-1.
// The zero value is an empty collection.
type Collection struct {
	items []TaskItem
}

// NewCollection creates a collection holding a copy of items.
func NewCollection(items ...TaskItem) Collection {
	if len(items) == 0 {
		return Collection{}
	}
	cp := make([]TaskItem, len(items))
	copy(cp, items)
	return Collection{items: cp}
}

// Len returns the number of items.
func (c Collection) Len() int {
	return len(c.items)
}

// At returns the item at index i. It panics if i is out of range.
func (c Collection) At(i int) TaskItem {
	return c.items[i]
}

// Items returns a copy of the items in display order.
func (c Collection) Items() []TaskItem {
	cp := make([]TaskItem, len(c.items))
	copy(cp, c.items)
	return cp
}

// Append returns a new collection with item added at the end.
func (c Collection) Append(item TaskItem) Collection {
	next := make([]TaskItem, len(c.items), len(c.items)+1)
	copy(next, c.items)
	return Collection{items: append(next, item)}
}

// RemoveAt returns a new collection without the item at index i. Items after i
// shift down by one and keep their relative order. It panics if i is out of
// range.
func (c Collection) RemoveAt(i int) Collection {
	_ = c.items[i]
	next := make([]TaskItem, 0, len(c.items)-1)
	next = append(next, c.items[:i]...)
	next = append(next, c.items[i+1:]...)
	return Collection{items: next}
}

// ToggleAt returns a new collection in which only the item at index i has its
// Completed flag flipped. It panics if i is out of range.
func (c Collection) ToggleAt(i int) Collection {
	next := c.Items()
	next[i] = next[i].Toggled()
	return Collection{items: next}
}

// CompletedCount returns how many items are completed.
func (c Collection) CompletedCount() int {
	n := 0
	for _, item := range c.items {
		if item.Completed {
			n++
		}
	}
	return n
}

// Equal reports whether both collections hold equal items in the same order.
func (c Collection) Equal(other Collection) bool {
	if len(c.items) != len(other.items) {
		return false
	}
	for i := range c.items {
		if c.items[i] != other.items[i] {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the collection as a JSON array of items.
func (c Collection) MarshalJSON() ([]byte, error) {
	if len(c.items) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(c.items)
}
