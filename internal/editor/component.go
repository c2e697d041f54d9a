package editor

import (
	"sync"

	"selectorhub/internal/selectors"
)

// Component is a node of the edited page
type Component struct {
	ID   string
	Name string
	Tag  string
	set  *selectors.Set
}

// Selectors returns the component's own selector set
func (c *Component) Selectors() *selectors.Set {
	return c.set
}

// String returns the display name
func (c *Component) String() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Tag
}

// ComponentStore is an ordered in-memory component store
type ComponentStore struct {
	mu    sync.RWMutex
	items map[string]*Component
	order []string
}

// NewComponentStore creates an empty store
func NewComponentStore() *ComponentStore {
	return &ComponentStore{
		items: make(map[string]*Component),
	}
}

// Get returns the component with id, or nil
func (s *ComponentStore) Get(id string) *Component {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items[id]
}

// All returns the components in insertion order
func (s *ComponentStore) All() []*Component {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Component, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.items[id])
	}
	return result
}

// Add stores c, replacing a component with the same id in place
func (s *ComponentStore) Add(c *Component) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[c.ID]; !ok {
		s.order = append(s.order, c.ID)
	}
	s.items[c.ID] = c
}

// Remove deletes the component with id
func (s *ComponentStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of components
func (s *ComponentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
