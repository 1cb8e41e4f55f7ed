package preferences

import (
	"sync"

	"crashbreak/internal/core/model"
	"crashbreak/internal/logger"
)

// PersistFunc writes settings durably.
type PersistFunc func(model.Settings) error

// ChangeFunc observes a settings mutation.
type ChangeFunc func(previous, current model.Settings)

// Store owns the live settings record. Every mutation is persisted immediately.
type Store struct {
	// updateMu serializes whole updates so observers see changes in apply order.
	updateMu  sync.Mutex
	mu        sync.Mutex
	settings  model.Settings
	persist   PersistFunc
	observers []ChangeFunc
}

// NewStore creates a store seeded with initial settings.
func NewStore(initial model.Settings, persist PersistFunc) *Store {
	initial = initial.Clone()
	initial.Normalize()
	return &Store{settings: initial, persist: persist}
}

// Settings returns a copy of the current settings.
func (store *Store) Settings() model.Settings {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.settings.Clone()
}

// OnChange registers an observer called after every mutation.
func (store *Store) OnChange(observer ChangeFunc) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.observers = append(store.observers, observer)
}

// Update applies mutate, normalizes, persists and notifies observers.
// A persist error is returned but the in-memory change is kept. Concurrent
// updates are serialized; observers must not call Update.
func (store *Store) Update(mutate func(*model.Settings)) error {
	store.updateMu.Lock()
	defer store.updateMu.Unlock()

	store.mu.Lock()
	previous := store.settings.Clone()
	current := store.settings.Clone()
	mutate(&current)
	current.Normalize()
	store.settings = current
	persist := store.persist
	observers := append([]ChangeFunc(nil), store.observers...)
	store.mu.Unlock()

	var persistErr error
	if persist != nil {
		if persistErr = persist(current.Clone()); persistErr != nil {
			logger.Error("persist settings", "err", persistErr)
		}
	}

	for _, observer := range observers {
		observer(previous, current.Clone())
	}
	return persistErr
}
