// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store holds the single task collection owned by a front-end.
//
// A Store keeps one model.Collection value. Writers compute a complete new
// collection from a snapshot they were handed and pass it to Replace; there is
// no merge or patch path. After every Replace the store calls each subscribed
// Observer synchronously, in subscription order, before Replace returns, so a
// derived value such as the item counter never lags the collection.
//
// Store has no internal locking. It relies on the host event loop (the Bubble
// Tea Update loop or the REPL read loop) running one mutation to completion
// before the next begins. Do not call Replace from background goroutines.
package store

import "github.com/jeranaias/tasklist-tui/internal/model"

// Observer receives every collection installed by Replace.
type Observer func(model.Collection)

// UpdateFunc is the write capability handed to components that derive new
// collections. Store.Replace satisfies it.
type UpdateFunc func(next model.Collection)

type subscription struct {
	id int
	fn Observer
}

// Store owns the current task collection.
type Store struct {
	current   model.Collection
	observers []subscription
	nextID    int
}

// New creates a store holding initial.
func New(initial model.Collection) *Store {
	return &Store{current: initial}
}

// Current returns the collection most recently installed.
func (s *Store) Current() model.Collection {
	return s.current
}

// Replace installs next as the current collection and notifies observers.
// The previous value is discarded; nothing is merged.
func (s *Store) Replace(next model.Collection) {
	s.current = next

	// Observers may unsubscribe while being notified; iterate over a copy.
	subs := make([]subscription, len(s.observers))
	copy(subs, s.observers)
	for _, sub := range subs {
		sub.fn(next)
	}
}

// Subscribe registers fn and returns a function that removes it. fn is not
// called with the current value; callers that need it read Current first.
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.observers = append(s.observers, subscription{id: id, fn: fn})

	return func() {
		for i, sub := range s.observers {
			if sub.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// ObserverCount returns the number of registered observers.
func (s *Store) ObserverCount() int {
	return len(s.observers)
}
