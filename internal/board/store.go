// Package board is the ordering and bulk-mutation engine behind the task board.
//
// Every command is a Transform: a pure function from one snapshot to the next.
// Store.Apply installs the result and notifies observers (persistence is one of them).
package board

import (
	"reflect"
	"sync"

	"taskboard/internal/model"
)

// Transform maps the current snapshot to the next one. It receives a private clone
// and may modify it in place before returning it.
type Transform func(s model.Snapshot) model.Snapshot

// Observer is notified after every Apply with the snapshot that just became current.
// It is called outside the store's lock.
type Observer interface {
	Observe(s model.Snapshot)
}

type ObserverFunc func(s model.Snapshot)

func (f ObserverFunc) Observe(s model.Snapshot) { f(s) }

// Store holds the current snapshot. The zero value is not usable; call New.
type Store struct {
	mu        sync.Mutex
	cur       model.Snapshot
	observers []*observerSlot
}

type observerSlot struct {
	o Observer
}

func New(initial model.Snapshot, observers ...Observer) *Store {
	s := &Store{cur: initial.Clone()}
	for _, o := range observers {
		if o != nil {
			s.observers = append(s.observers, &observerSlot{o: o})
		}
	}
	return s
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur.Clone()
}

// Apply runs fn against a clone of the current snapshot, makes the result current,
// and notifies observers before returning. Transforms are serialized; observers run
// after the store is unlocked, so they may call Snapshot or Apply themselves.
// With several goroutines applying at once, notifications may interleave.
func (s *Store) Apply(fn Transform) model.Snapshot {
	next, _ := s.apply(fn, false)
	return next
}

// apply installs fn's result. With skipUnchanged, a result equal to the current
// snapshot is dropped and observers are not notified.
func (s *Store) apply(fn Transform, skipUnchanged bool) (model.Snapshot, bool) {
	s.mu.Lock()
	next := s.cur.Clone()
	if fn != nil {
		next = fn(next).Clone()
	}
	if skipUnchanged && reflect.DeepEqual(s.cur, next) {
		s.mu.Unlock()
		return next, false
	}
	s.cur = next.Clone()
	observers := append([]*observerSlot(nil), s.observers...)
	s.mu.Unlock()

	for _, slot := range observers {
		slot.o.Observe(next.Clone())
	}
	return next, true
}

// Subscribe registers o and returns a function that removes it.
func (s *Store) Subscribe(o Observer) (cancel func()) {
	if o == nil {
		return func() {}
	}
	slot := &observerSlot{o: o}
	s.mu.Lock()
	s.observers = append(s.observers, slot)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, x := range s.observers {
			if x == slot {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// Compose chains transforms left to right into one atomic step.
func Compose(fns ...Transform) Transform {
	return func(s model.Snapshot) model.Snapshot {
		for _, fn := range fns {
			if fn != nil {
				s = fn(s)
			}
		}
		return s
	}
}
