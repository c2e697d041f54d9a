package editor

import (
	"selectorhub/internal/domain"
	"selectorhub/internal/eventbus"
	"selectorhub/internal/manager"
	"selectorhub/internal/selectors"
)

// StyleManager holds the current style targets and the rules created for
// them
type StyleManager struct {
	bus     eventbus.EventBus
	targets []manager.Target
	rules   []*manager.Rule
	byKey   map[string]*manager.Rule
}

// NewStyleManager creates a style manager publishing updates on bus
func NewStyleManager(bus eventbus.EventBus) *StyleManager {
	return &StyleManager{
		bus:   bus,
		byKey: make(map[string]*manager.Rule),
	}
}

// SetTarget replaces (or with Append extends) the targets. Raw selector
// strings become rules keyed by their text. Unknown values are dropped.
func (sm *StyleManager) SetTarget(targets []manager.Target, opts manager.SelectOptions) []manager.Target {
	if !opts.Append {
		sm.targets = nil
	}
	for _, t := range targets {
		switch v := t.(type) {
		case string:
			if v == "" {
				continue
			}
			sm.targets = appendUnique(sm.targets, sm.RawRule(v, opts.State))
		case *manager.Rule:
			if v != nil {
				sm.targets = appendUnique(sm.targets, v)
			}
		case manager.Component:
			sm.targets = appendUnique(sm.targets, v)
		}
	}
	sm.bus.Publish(domain.StyleManagerUpdateEvent{Targets: len(sm.targets)})
	return sm.Targets()
}

// Targets returns the current targets
func (sm *StyleManager) Targets() []manager.Target {
	return append([]manager.Target(nil), sm.targets...)
}

// Rule returns the rule addressed by sels in state, creating it on first use
func (sm *StyleManager) Rule(sels []*domain.Selector, state string) *manager.Rule {
	set := selectors.NewSet(sels...)
	key := set.FullString() + "|" + state
	if r, ok := sm.byKey[key]; ok {
		return r
	}
	r := &manager.Rule{Selectors: set, State: state}
	sm.store(key, r)
	return r
}

// RawRule returns the rule addressed by raw selector text
func (sm *StyleManager) RawRule(text, state string) *manager.Rule {
	key := "raw:" + text + "|" + state
	if r, ok := sm.byKey[key]; ok {
		return r
	}
	r := &manager.Rule{Selectors: selectors.NewSet(), SelectorsAdd: text, State: state}
	sm.store(key, r)
	return r
}

// Rules returns every rule in creation order
func (sm *StyleManager) Rules() []*manager.Rule {
	return append([]*manager.Rule(nil), sm.rules...)
}

func (sm *StyleManager) store(key string, r *manager.Rule) {
	sm.byKey[key] = r
	sm.rules = append(sm.rules, r)
}

func appendUnique(targets []manager.Target, t manager.Target) []manager.Target {
	for _, existing := range targets {
		if existing == t {
			return targets
		}
	}
	return append(targets, t)
}
