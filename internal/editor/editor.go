package editor

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"selectorhub/internal/domain"
	"selectorhub/internal/eventbus"
	"selectorhub/internal/manager"
	"selectorhub/internal/selectors"
)

// Editor is an in-memory page editor: components, their selection, the
// pseudo-state and the style targets. It satisfies manager.Host.
type Editor struct {
	bus       eventbus.EventBus
	store     *ComponentStore
	selection *Selection
	style     *StyleManager
	state     string
	log       *zap.Logger
}

var _ manager.Host = (*Editor)(nil)

// New creates an empty editor. A nil bus gets a private one.
func New(bus eventbus.EventBus, log *zap.Logger) *Editor {
	if log == nil {
		log = zap.NewNop()
	}
	if bus == nil {
		bus = eventbus.New(log)
	}
	return &Editor{
		bus:       bus,
		store:     NewComponentStore(),
		selection: NewSelection(bus),
		style:     NewStyleManager(bus),
		log:       log,
	}
}

// AddComponent creates a component holding sels. An empty id gets a fresh
// uuid.
func (e *Editor) AddComponent(id, name, tag string, sels ...*domain.Selector) *Component {
	if id == "" {
		id = uuid.NewString()
	}
	c := &Component{ID: id, Name: name, Tag: tag, set: selectors.NewSet(sels...)}
	c.set.OnChange(func() {
		e.Trigger(domain.ComponentClassesEvent{ComponentID: c.ID})
	})
	e.store.Add(c)
	e.log.Debug("Component added", zap.String("id", id), zap.String("name", name))
	return c
}

// RemoveComponent deletes a component, deselecting it first
func (e *Editor) RemoveComponent(id string) bool {
	e.selection.Deselect(id)
	return e.store.Remove(id)
}

// Component returns the component with id, or nil
func (e *Editor) Component(id string) *Component {
	return e.store.Get(id)
}

// FindByName returns the first component named name, or nil
func (e *Editor) FindByName(name string) *Component {
	for _, c := range e.store.All() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Components returns every component in insertion order
func (e *Editor) Components() []*Component {
	return e.store.All()
}

// Selection returns the selection service
func (e *Editor) Selection() *Selection {
	return e.selection
}

// Styles returns the concrete style manager
func (e *Editor) Styles() *StyleManager {
	return e.style
}

// Bus returns the editor bus
func (e *Editor) Bus() eventbus.EventBus {
	return e.bus
}

// SelectedComponents returns the selected components in selection order
func (e *Editor) SelectedComponents() []*Component {
	ids := e.selection.Selected()
	out := make([]*Component, 0, len(ids))
	for _, id := range ids {
		if c := e.store.Get(id); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// StyleTargets returns what style edits should address for the current
// selection. With componentFirst, or when a component has no active
// selectors, the component itself is the target; otherwise the rule of its
// selectors in the current state.
func (e *Editor) StyleTargets(componentFirst bool) []manager.Target {
	var targets []manager.Target
	for _, c := range e.SelectedComponents() {
		valid := c.Selectors().Valid(selectors.ValidOptions{NoDisabled: true})
		if componentFirst || len(valid) == 0 {
			targets = appendUnique(targets, c)
			continue
		}
		targets = appendUnique(targets, e.style.Rule(valid, e.state))
	}
	return targets
}

// StyleManager implements manager.Host
func (e *Editor) StyleManager() manager.StyleManager {
	return e.style
}

// SelectedAll implements manager.Host
func (e *Editor) SelectedAll() []manager.Component {
	selected := e.SelectedComponents()
	out := make([]manager.Component, len(selected))
	for i, c := range selected {
		out[i] = c
	}
	return out
}

// SetState changes the pseudo-state and raises change:state
func (e *Editor) SetState(value string) {
	if value == e.state {
		return
	}
	e.state = value
	e.Trigger(domain.StateChangedEvent{State: value})
}

// State implements manager.Host
func (e *Editor) State() string {
	return e.state
}

// On implements manager.Host
func (e *Editor) On(eventType domain.EventType, handler eventbus.EventHandler) func() {
	return e.bus.Subscribe(eventType, handler)
}

// Trigger implements manager.Host
func (e *Editor) Trigger(event domain.DomainEvent) {
	e.bus.Publish(event)
}
