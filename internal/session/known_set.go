package session

import (
	"slices"
	"sync"
)

// KnownSet is a concurrency-safe set of strings used as an in-memory mirror
// of identifiers persisted in storage.
//
// Members may be pinned, meaning storage holds rows under them, and held by
// the sessions that have them active. [KnownSet.Evict] never drops a pinned
// member or one held by another session.
type KnownSet struct {
	mu     sync.RWMutex
	items  map[string]struct{}
	pinned map[string]struct{}
	holds  map[string]int
}

// NewKnownSet returns a set holding items.
func NewKnownSet(items ...string) *KnownSet {
	s := &KnownSet{
		items:  make(map[string]struct{}, len(items)),
		pinned: make(map[string]struct{}),
		holds:  make(map[string]int),
	}
	for _, item := range items {
		s.items[item] = struct{}{}
	}
	return s
}

// Add inserts item and reports whether it was absent. The check and the
// insert happen under one lock.
func (s *KnownSet) Add(item string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[item]; ok {
		return false
	}
	s.items[item] = struct{}{}
	return true
}

// Remove deletes item, pinned or not, and reports whether it was present.
func (s *KnownSet) Remove(item string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[item]; !ok {
		return false
	}
	delete(s.items, item)
	delete(s.pinned, item)
	return true
}

// Pin adds items and marks them as backed by storage.
func (s *KnownSet) Pin(items ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range items {
		s.items[item] = struct{}{}
		s.pinned[item] = struct{}{}
	}
}

func (s *KnownSet) IsPinned(item string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.pinned[item]
	return ok
}

// Hold records one more holder of item. Holding does not add item.
func (s *KnownSet) Hold(item string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.holds[item]++
}

// Release drops one holder of item.
func (s *KnownSet) Release(item string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.holds[item] <= 1 {
		delete(s.holds, item)
		return
	}
	s.holds[item]--
}

// Evict removes item unless it is pinned or held by anyone besides the
// caller, and reports whether it was removed. The caller may hold item
// itself.
func (s *KnownSet) Evict(item string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[item]; !ok {
		return false
	}
	if _, ok := s.pinned[item]; ok || s.holds[item] > 1 {
		return false
	}
	delete(s.items, item)
	return true
}

func (s *KnownSet) Contains(item string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.items[item]
	return ok
}

// Replace makes the set hold exactly items, none of them pinned. Holds are
// kept.
func (s *KnownSet) Replace(items []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pinned = make(map[string]struct{})
	s.items = make(map[string]struct{}, len(items))
	for _, item := range items {
		s.items[item] = struct{}{}
	}
}

func (s *KnownSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// Items returns the members in sorted order.
func (s *KnownSet) Items() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]string, 0, len(s.items))
	for item := range s.items {
		items = append(items, item)
	}
	slices.Sort(items)
	return items
}
