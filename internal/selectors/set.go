package selectors

import (
	"strings"

	"selectorhub/internal/domain"
)

// ValidOptions filters the valid view of a set
type ValidOptions struct {
	NoDisabled bool // also drop inactive selectors
}

// Set is the ordered selector set owned by a single component. It holds
// references to registry entities; membership is by identity.
type Set struct {
	items    []*domain.Selector
	onChange func()
}

// NewSet creates a set holding the given selectors, skipping duplicates
func NewSet(items ...*domain.Selector) *Set {
	s := &Set{}
	for _, sel := range items {
		s.add(sel)
	}
	return s
}

// OnChange installs a hook called after every effective mutation
func (s *Set) OnChange(fn func()) {
	s.onChange = fn
}

// Add appends selectors not yet present. Returns how many were added.
func (s *Set) Add(items ...*domain.Selector) int {
	n := 0
	for _, sel := range items {
		if s.add(sel) {
			n++
		}
	}
	if n > 0 {
		s.changed()
	}
	return n
}

// Remove drops the given selectors. Returns how many were removed.
func (s *Set) Remove(items ...*domain.Selector) int {
	n := 0
	for _, sel := range items {
		if i := s.indexOf(sel); i >= 0 {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			n++
		}
	}
	if n > 0 {
		s.changed()
	}
	return n
}

// Reset replaces the content wholesale
func (s *Set) Reset(items ...*domain.Selector) {
	s.items = nil
	for _, sel := range items {
		s.add(sel)
	}
	s.changed()
}

// Has reports identity membership
func (s *Set) Has(sel *domain.Selector) bool {
	return s.indexOf(sel) >= 0
}

// Len returns the number of selectors
func (s *Set) Len() int {
	return len(s.items)
}

// Items returns the selectors in order
func (s *Set) Items() []*domain.Selector {
	return append([]*domain.Selector(nil), s.items...)
}

// Valid returns the selectors eligible for style targeting: private ones are
// always dropped, inactive ones when NoDisabled is set.
func (s *Set) Valid(opts ValidOptions) []*domain.Selector {
	out := make([]*domain.Selector, 0, len(s.items))
	for _, sel := range s.items {
		if sel.Private {
			continue
		}
		if opts.NoDisabled && !sel.Active {
			continue
		}
		out = append(out, sel)
	}
	return out
}

// FullString flattens the active selectors into a compound CSS selector,
// e.g. ".btn.primary#main"
func (s *Set) FullString() string {
	var b strings.Builder
	for _, sel := range s.Valid(ValidOptions{NoDisabled: true}) {
		b.WriteString(sel.FullName())
	}
	return b.String()
}

// Names returns the selectors' full names in order
func (s *Set) Names() []string {
	names := make([]string, len(s.items))
	for i, sel := range s.items {
		names[i] = sel.FullName()
	}
	return names
}

func (s *Set) add(sel *domain.Selector) bool {
	if sel == nil || s.indexOf(sel) >= 0 {
		return false
	}
	s.items = append(s.items, sel)
	return true
}

func (s *Set) indexOf(sel *domain.Selector) int {
	for i, item := range s.items {
		if item == sel {
			return i
		}
	}
	return -1
}

func (s *Set) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}
