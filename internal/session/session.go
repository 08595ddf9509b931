// Package session holds the observable authentication state of the client.
//
// A [Store] owns two fields, the authenticated flag and the current user,
// and changes them together. Subscribers receive the latest state on
// subscription and every subsequent transition in order.
package session

import (
	"sync"

	"github.com/MKhiriev/career-dashboard/models"
)

// State is a snapshot of the session. User is nil whenever Authenticated is
// false.
type State struct {
	Authenticated bool
	User          *models.User
}

// Listener receives session states. Listeners run synchronously and must
// not call back into the Store that invoked them.
type Listener func(State)

// Store is the single source of truth for "who is logged in". The zero value
// is not usable; use [NewStore].
type Store struct {
	mu        sync.RWMutex
	state     State
	listeners map[uint64]Listener
	nextID    uint64

	// deliver serializes notifications so listeners observe transitions in
	// the order they were applied.
	deliver sync.Mutex
}

// NewStore returns a Store in the unauthenticated state.
func NewStore() *Store {
	return &Store{listeners: make(map[uint64]Listener)}
}

// SetAuthenticated marks the session as authenticated for user.
func (s *Store) SetAuthenticated(user models.User) {
	s.transition(State{Authenticated: true, User: &user})
}

// SetUnauthenticated resets the session to the logged-out state.
func (s *Store) SetUnauthenticated() {
	s.transition(State{})
}

// Reset drops every subscriber and returns the store to the unauthenticated
// state without notifying anyone.
func (s *Store) Reset() {
	s.mu.Lock()
	s.state = State{}
	s.listeners = make(map[uint64]Listener)
	s.mu.Unlock()
}

// Current returns a copy of the latest state.
func (s *Store) Current() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyState(s.state)
}

// IsAuthenticated is shorthand for Current().Authenticated.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Authenticated
}

// User returns the current user or nil.
func (s *Store) User() *models.User {
	return s.Current().User
}

// Subscribe registers l and immediately delivers the current state to it.
// The returned function removes the subscription; calling it more than once
// is harmless.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.deliver.Lock()
	defer s.deliver.Unlock()

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	current := copyState(s.state)
	s.mu.Unlock()

	l(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

func (s *Store) transition(next State) {
	s.deliver.Lock()
	defer s.deliver.Unlock()

	s.mu.Lock()
	s.state = next
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(copyState(next))
	}
}

func copyState(st State) State {
	if st.User == nil {
		return st
	}
	u := *st.User
	return State{Authenticated: st.Authenticated, User: &u}
}
