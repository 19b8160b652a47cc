// Package session holds the UI-adjacent ambient state of one viewing
// session: the selected row set, hidden columns, and the open modal. It is
// an explicit object owned by the top-level controller and passed by
// reference to presentation layers; the schema, query and viewport
// components never see it.
package session

import (
	"sort"
	"sync"
)

// Session is the mutable per-session state. The zero value is not usable;
// call New.
type Session struct {
	mu       sync.Mutex
	selected map[int]struct{}
	hidden   map[string]struct{}
	modal    string
}

// New creates an empty session.
func New() *Session {
	return &Session{
		selected: make(map[int]struct{}),
		hidden:   make(map[string]struct{}),
	}
}

// ToggleSelect flips the selection state of the given visible-row index
// and reports whether the row is now selected.
func (s *Session) ToggleSelect(row int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.selected[row]; ok {
		delete(s.selected, row)
		return false
	}
	s.selected[row] = struct{}{}
	return true
}

// Selected returns the selected visible-row indexes in ascending order.
func (s *Session) Selected() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]int, 0, len(s.selected))
	for row := range s.selected {
		rows = append(rows, row)
	}
	sort.Ints(rows)
	return rows
}

// ClearSelection empties the selected row set. Row indexes are relative
// to the visible order, so any change to that order invalidates them.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = make(map[int]struct{})
}

// SetColumnHidden hides or shows a column.
func (s *Session) SetColumnHidden(column string, hidden bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if hidden {
		s.hidden[column] = struct{}{}
	} else {
		delete(s.hidden, column)
	}
}

// ResetColumns shows every column again.
func (s *Session) ResetColumns() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hidden = make(map[string]struct{})
}

// SetVisibleColumns replaces the hidden set so that exactly the given
// columns of schema remain visible. Used to apply a persisted
// visible-column set on startup.
func (s *Session) SetVisibleColumns(schema, visible []string) {
	keep := make(map[string]struct{}, len(visible))
	for _, column := range visible {
		keep[column] = struct{}{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hidden = make(map[string]struct{})
	for _, column := range schema {
		if _, ok := keep[column]; !ok {
			s.hidden[column] = struct{}{}
		}
	}
}

// VisibleColumns filters a schema through the hidden set, preserving
// schema order.
func (s *Session) VisibleColumns(schema []string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	visible := make([]string, 0, len(schema))
	for _, column := range schema {
		if _, ok := s.hidden[column]; !ok {
			visible = append(visible, column)
		}
	}
	return visible
}

// OpenModal records the currently open modal by name; an empty name means
// none.
func (s *Session) OpenModal(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = name
}

// Modal returns the open modal's name, or "".
func (s *Session) Modal() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modal
}
