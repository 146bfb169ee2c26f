// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package selection tracks the set of studies chosen for a report.
package selection

import "sort"

// Observer is notified after every selection change.
type Observer func(ids []string)

// Selection is a toggle-set of study IDs. It is not safe for concurrent
// use; callers validate IDs against the catalogue before toggling.
type Selection struct {
	ids       map[string]bool
	observers []Observer
}

// New returns an empty selection.
func New() *Selection {
	return &Selection{ids: make(map[string]bool)}
}

// Toggle adds the ID when absent and removes it when present, so
// toggling twice restores the prior state. Reports whether the ID is
// selected afterwards.
func (s *Selection) Toggle(id string) bool {
	if s.ids[id] {
		delete(s.ids, id)
	} else {
		s.ids[id] = true
	}
	s.notify()
	return s.ids[id]
}

// Contains reports whether the ID is selected.
func (s *Selection) Contains(id string) bool {
	return s.ids[id]
}

// Size returns the number of selected IDs.
func (s *Selection) Size() int {
	return len(s.ids)
}

// List returns the selected IDs sorted lexically. The set itself keeps
// no order.
func (s *Selection) List() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Clear empties the selection.
func (s *Selection) Clear() {
	if len(s.ids) == 0 {
		return
	}
	s.ids = make(map[string]bool)
	s.notify()
}

// Subscribe registers an observer for subsequent changes.
func (s *Selection) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}

func (s *Selection) notify() {
	if len(s.observers) == 0 {
		return
	}
	ids := s.List()
	for _, o := range s.observers {
		o(ids)
	}
}
