package lingo

import (
	"sync"

	"github.com/rs/xid"
)

// Subscriber receives the newly selected language code after a successful
// switch through a Store.
type Subscriber func(code string)

// Store is a shared observable handle around a single Registry. One owner
// switches languages through it while any number of consumers read
// translations and subscribe to switch notifications. A dependency-injection
// or rendering layer wraps the store to re-evaluate its consumers on change;
// the store itself carries no rendering dependency.
type Store struct {
	registry *Registry

	mu          sync.RWMutex
	subscribers map[string]Subscriber
}

// NewStore wraps registry in an observable store.
func NewStore(registry *Registry) *Store {
	return &Store{
		registry:    registry,
		subscribers: map[string]Subscriber{},
	}
}

// Registry exposes the wrapped registry for read operations.
func (s *Store) Registry() *Registry {
	return s.registry
}

// SetLanguage switches the wrapped registry's language and, on success,
// notifies every subscriber synchronously with the new code. A rejected
// switch notifies nobody.
func (s *Store) SetLanguage(code string) error {
	err := s.registry.SetLanguage(code)
	if err != nil {
		return err
	}

	// Notify outside the lock so a subscriber may subscribe or unsubscribe
	// without deadlocking.
	s.mu.RLock()
	subscribers := make([]Subscriber, 0, len(s.subscribers))
	for _, subscriber := range s.subscribers {
		subscribers = append(subscribers, subscriber)
	}
	s.mu.RUnlock()

	for _, subscriber := range subscribers {
		subscriber(code)
	}

	return nil
}

// Subscribe registers fn for language switch notifications and returns a
// function that removes the subscription again.
func (s *Store) Subscribe(fn Subscriber) func() {
	id := xid.New().String()

	s.mu.Lock()
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}
