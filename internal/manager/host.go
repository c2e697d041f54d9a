package manager

import (
	"selectorhub/internal/domain"
	"selectorhub/internal/eventbus"
	"selectorhub/internal/selectors"
)

// Host is the slice of the editor the manager depends on
type Host interface {
	StyleManager() StyleManager
	SelectedAll() []Component
	SetState(value string)
	State() string
	On(eventType domain.EventType, handler eventbus.EventHandler) func()
	Trigger(event domain.DomainEvent)
}

// StyleManager resolves what style edits apply to
type StyleManager interface {
	SetTarget(targets []Target, opts SelectOptions) []Target
	Targets() []Target
}

// Component is anything owning a selector set
type Component interface {
	Selectors() *selectors.Set
}

// Validator is implemented by components that decide for themselves which of
// their selectors can be targeted by styles. Other components fall back to
// Set.Valid.
type Validator interface {
	ValidSelectors(opts selectors.ValidOptions) []*domain.Selector
}

// validSelectors returns the targetable selectors of c. ok is false when c
// has no selector set and takes no part in the intersection.
func validSelectors(c Component) (valid []*domain.Selector, ok bool) {
	if c == nil {
		return nil, false
	}
	if v, ok := c.(Validator); ok {
		return v.ValidSelectors(selectors.ValidOptions{}), true
	}
	set := c.Selectors()
	if set == nil {
		return nil, false
	}
	return set.Valid(selectors.ValidOptions{}), true
}

// Target is a style target: a Component, a *Rule or a raw selector string
type Target = any

// SelectOptions are forwarded to the style manager
type SelectOptions struct {
	State  string // pseudo-state qualifying rule targets
	Append bool   // keep the current targets
}

// Rule is a style rule addressed by a selector set
type Rule struct {
	Selectors    *selectors.Set
	SelectorsAdd string // raw selector text appended to the set
	State        string
}

// SelectorString flattens the rule's selectors, e.g. ".btn.primary:hover"
func (r *Rule) SelectorString() string {
	var out string
	if r.Selectors != nil {
		out = r.Selectors.FullString()
	}
	if r.SelectorsAdd != "" {
		if out != "" {
			out += ", "
		}
		out += r.SelectorsAdd
	}
	if r.State != "" && out != "" {
		out += ":" + r.State
	}
	return out
}

// ResolvedTarget is one entry of the resolved selection. Exactly one field
// is set.
type ResolvedTarget struct {
	Component Component
	Rule      *Rule
	Selector  string
}

// String returns a short description for logs and views
func (t ResolvedTarget) String() string {
	switch {
	case t.Component != nil:
		if s, ok := t.Component.(interface{ String() string }); ok {
			return s.String()
		}
		return t.Component.Selectors().FullString()
	case t.Rule != nil:
		return t.Rule.SelectorString()
	default:
		return t.Selector
	}
}

// resolve maps a style target by kind
func resolve(target Target) (ResolvedTarget, bool) {
	switch v := target.(type) {
	case nil:
		return ResolvedTarget{}, false
	case Component:
		return ResolvedTarget{Component: v}, true
	case *Rule:
		if v == nil {
			return ResolvedTarget{}, false
		}
		if v.SelectorsAdd == "" {
			return ResolvedTarget{Rule: v}, true
		}
		return ResolvedTarget{Selector: v.SelectorString()}, true
	case string:
		return ResolvedTarget{Selector: v}, true
	default:
		return ResolvedTarget{}, false
	}
}

// Renderer displays the selection. Attached renderers are disposed with the
// manager.
type Renderer interface {
	TargetsChanged(targets []ResolvedTarget)
	Dispose()
}
