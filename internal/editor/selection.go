package editor

import (
	"selectorhub/internal/domain"
	"selectorhub/internal/eventbus"
)

// Selection tracks the selected components in selection order
type Selection struct {
	bus   eventbus.EventBus
	ids   []string
	index map[string]bool
}

// NewSelection creates an empty selection publishing toggles on bus
func NewSelection(bus eventbus.EventBus) *Selection {
	return &Selection{
		bus:   bus,
		index: make(map[string]bool),
	}
}

// Toggle flips the selection of id
func (s *Selection) Toggle(id string) {
	if s.index[id] {
		s.remove(id)
		return
	}
	s.add(id)
}

// Select adds ids to the selection
func (s *Selection) Select(ids ...string) {
	for _, id := range ids {
		if !s.index[id] {
			s.add(id)
		}
	}
}

// Only replaces the selection with ids
func (s *Selection) Only(ids ...string) {
	keep := make(map[string]bool, len(ids))
	for _, id := range ids {
		keep[id] = true
	}
	for _, id := range s.Selected() {
		if !keep[id] {
			s.remove(id)
		}
	}
	s.Select(ids...)
}

// Deselect removes ids from the selection
func (s *Selection) Deselect(ids ...string) {
	for _, id := range ids {
		if s.index[id] {
			s.remove(id)
		}
	}
}

// Clear deselects everything
func (s *Selection) Clear() {
	s.Deselect(s.Selected()...)
}

// IsSelected checks if a component is selected
func (s *Selection) IsSelected(id string) bool {
	return s.index[id]
}

// Selected returns the selected ids in selection order
func (s *Selection) Selected() []string {
	return append([]string(nil), s.ids...)
}

// Count returns the number of selected components
func (s *Selection) Count() int {
	return len(s.ids)
}

func (s *Selection) add(id string) {
	s.ids = append(s.ids, id)
	s.index[id] = true
	s.bus.Publish(domain.ComponentToggledEvent{ComponentID: id, Selected: true})
}

func (s *Selection) remove(id string) {
	delete(s.index, id)
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i:i], s.ids[i+1:]...)
			break
		}
	}
	s.bus.Publish(domain.ComponentToggledEvent{ComponentID: id, Selected: false})
}
