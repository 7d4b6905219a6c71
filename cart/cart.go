// Package cart holds the customer's selected plans on the device,
// mirroring what the storefront keeps in local storage. The store is
// process-wide, not per-user, and persists through the injected Storage
// on every mutation.
package cart

import "sync"

// Item is one selected plan. ID encodes plan, unit count and the add-on
// flag, so a changed configuration is a different item.
type Item struct {
	ID           string   `json:"id"`
	Type         string   `json:"type"` // "fixed" or "custom"
	Name         string   `json:"name"`
	Price        float64  `json:"price"` // major units
	BillingCycle string   `json:"billingCycle"`
	Features     []string `json:"features,omitempty"`
}

// Store is the cart. All mutations write back through the storage port.
type Store struct {
	mu      sync.Mutex
	items   []Item
	storage Storage
}

// NewStore loads whatever the storage already holds. A load failure
// starts the cart empty rather than failing the app.
func NewStore(storage Storage) *Store {
	s := &Store{storage: storage}
	if items, err := storage.Load(); err == nil {
		s.items = items
	}
	return s
}

// Add inserts the item unless one with the same id is already present.
// Adding an existing id is a no-op, never a duplicate.
func (s *Store) Add(item Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.items {
		if existing.ID == item.ID {
			return
		}
	}
	s.items = append(s.items, item)
	s.persist()
}

// Remove deletes the item with the given id. No-op if absent.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}
}

// Clear empties the cart. Called after a successful checkout.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist()
}

// Total sums item prices in major units.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, item := range s.items {
		total += item.Price
	}
	return total
}

// Items returns a copy of the current selections.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Contains reports whether an item with the given id is selected.
func (s *Store) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Len returns the number of selected items.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Replace swaps the item stored under oldID for replacement. Toggling a
// plan's add-on changes the composite id, so it is a remove followed by
// an add rather than an in-place update; a stale id must never linger in
// storage.
func (s *Store) Replace(oldID string, replacement Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.items {
		if item.ID == oldID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	for _, existing := range s.items {
		if existing.ID == replacement.ID {
			s.persist()
			return
		}
	}
	s.items = append(s.items, replacement)
	s.persist()
}

// persist is called with the lock held.
func (s *Store) persist() {
	items := make([]Item, len(s.items))
	copy(items, s.items)
	// Best effort: the in-memory cart stays authoritative even if the
	// write fails, same as the storefront's local storage behaviour.
	_ = s.storage.Save(items)
}
