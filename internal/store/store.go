// Package store owns the ordered sequence of items shown on screen.
//
// The store is the single owner of the backing slice. Readers get a
// RowSource (count + index accessor) and never a reference to the slice,
// so a Reset can never leave a renderer bound to stale storage.
package store

import "github.com/idilsaglam/sports/internal/model"

// Listener receives precise change notifications.
type Listener interface {
	ItemMoved(from, to int)
	ItemRemoved(at int)
	FullReload()
}

// RowSource is the read side of a store.
type RowSource interface {
	Len() int
	At(i int) model.Item
}

// Store is an ordered, mutable sequence of items. Not safe for concurrent use.
type Store struct {
	items    []model.Item
	listener Listener
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// SetListener installs the change listener. Pass nil to detach.
func (s *Store) SetListener(l Listener) {
	s.listener = l
}

// Load replaces all contents with a copy of initial.
func (s *Store) Load(initial []model.Item) {
	s.items = append(s.items[:0:0], initial...)
	s.notifyReload()
}

// Reset clears the store and reloads initial.
func (s *Store) Reset(initial []model.Item) {
	s.items = nil
	s.Load(initial)
}

// Move removes the item at from and reinserts it at to; items in between
// shift one slot toward from. It reports whether anything changed.
func (s *Store) Move(from, to int) bool {
	if !s.inBounds(from) || !s.inBounds(to) || from == to {
		return false
	}
	it := s.items[from]
	if from < to {
		copy(s.items[from:to], s.items[from+1:to+1])
	} else {
		copy(s.items[to+1:from+1], s.items[to:from])
	}
	s.items[to] = it
	if s.listener != nil {
		s.listener.ItemMoved(from, to)
	}
	return true
}

// Remove deletes the item at index at.
func (s *Store) Remove(at int) bool {
	if !s.inBounds(at) {
		return false
	}
	s.items = append(s.items[:at], s.items[at+1:]...)
	if s.listener != nil {
		s.listener.ItemRemoved(at)
	}
	return true
}

// Len returns the number of items.
func (s *Store) Len() int { return len(s.items) }

// At returns the item at i. It panics when i is out of range.
func (s *Store) At(i int) model.Item { return s.items[i] }

// Items returns a copy of the contents in display order.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) inBounds(i int) bool {
	return i >= 0 && i < len(s.items)
}

func (s *Store) notifyReload() {
	if s.listener != nil {
		s.listener.FullReload()
	}
}
