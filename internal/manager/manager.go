package manager

import (
	"go.uber.org/zap"

	"selectorhub/internal/domain"
	"selectorhub/internal/eventbus"
	"selectorhub/internal/schedule"
	"selectorhub/internal/selectors"
)

// CustomPayload is delivered with every selector:custom notification
type CustomPayload struct {
	Manager  *Manager
	Common   []*domain.Selector
	States   []domain.State
	Selected []ResolvedTarget
	Add      func(domain.Props) *domain.Selector
	Remove   func(*domain.Selector) RemoveReport
}

// RemoveReport describes the outcome of RemoveSelected
type RemoveReport struct {
	Affected  int  // components whose set changed
	Protected bool // the selector is protected and nothing was touched
}

// Option configures a Manager
type Option func(*Manager)

// WithBus sets the bus the manager publishes selector events on
func WithBus(bus eventbus.EventBus) Option {
	return func(m *Manager) { m.bus = bus }
}

// WithScheduler sets the scheduler used for debounced recomputation
func WithScheduler(s schedule.Scheduler) Option {
	return func(m *Manager) { m.sched = s }
}

// WithLogger sets the logger
func WithLogger(log *zap.Logger) Option {
	return func(m *Manager) { m.log = log }
}

// Manager keeps the selector registry and the selection view in sync with
// the host editor
type Manager struct {
	host     Host
	cfg      Config
	bus      eventbus.EventBus
	sched    schedule.Scheduler
	log      *zap.Logger
	registry *selectors.Registry
	custom   *schedule.Debouncer
	renderer Renderer

	view           []*domain.Selector
	componentFirst bool
	unsubscribe    []func()
}

// New wires a manager to its host. The host must be non-nil.
func New(host Host, cfg Config, opts ...Option) *Manager {
	m := &Manager{
		host:           host,
		cfg:            cfg,
		componentFirst: cfg.ComponentFirst,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.log == nil {
		m.log = zap.NewNop()
	}
	if m.bus == nil {
		m.bus = eventbus.New(m.log)
	}
	if m.sched == nil {
		m.sched = schedule.NewLoop()
	}
	if m.cfg.States == nil {
		m.cfg.States = DefaultStates()
	}

	m.registry = selectors.NewRegistry(m.bus, cfg.Escaper, m.log.Named("registry"))
	m.registry.AddAll(cfg.Selectors, selectors.Silent())
	m.custom = schedule.NewDebouncer(m.sched, m.emitCustom)

	m.listen()
	return m
}

func (m *Manager) listen() {
	resetAndNotify := func(eventbus.DomainEvent) {
		m.resetView()
		m.custom.Request()
	}
	notify := func(eventbus.DomainEvent) {
		m.custom.Request()
	}

	m.unsubscribe = append(m.unsubscribe,
		m.host.On(domain.EventStateChanged, func(e eventbus.DomainEvent) {
			ev, ok := e.(domain.StateChangedEvent)
			if !ok {
				return
			}
			m.publish(domain.SelectorStateEvent{State: ev.State})
		}),
		m.host.On(domain.EventComponentToggled, resetAndNotify),
		m.host.On(domain.EventComponentClasses, resetAndNotify),
		m.host.On(domain.EventStyleManagerUpdate, notify),
		m.bus.Subscribe(domain.EventSelectorState, notify),
		m.bus.Subscribe(domain.EventSelectorType, notify),
		m.bus.Subscribe(domain.EventSelectorRemove, func(e eventbus.DomainEvent) {
			ev, ok := e.(domain.SelectorRemovedEvent)
			if !ok {
				return
			}
			m.dropFromView(ev.Selector)
			m.custom.Request()
		}),
	)
}

// Config returns the options the manager was built with
func (m *Manager) Config() Config {
	return m.cfg
}

// Registry returns the selector registry
func (m *Manager) Registry() *selectors.Registry {
	return m.registry
}

// Bus returns the bus selector events are published on
func (m *Manager) Bus() eventbus.EventBus {
	return m.bus
}

// On subscribes to selector events. Use domain.EventSelector for the
// catch-all channel.
func (m *Manager) On(eventType domain.EventType, handler eventbus.EventHandler) func() {
	return m.bus.Subscribe(eventType, handler)
}

// Add resolves or creates a selector
func (m *Manager) Add(p domain.Props, opts ...selectors.Option) *domain.Selector {
	return m.registry.Add(p, opts...)
}

// Get looks a selector up by identifier
func (m *Manager) Get(identifier string, t domain.SelectorType) *domain.Selector {
	return m.registry.Get(identifier, t)
}

// GetAll looks up several selectors
func (m *Manager) GetAll(identifiers []string, t domain.SelectorType) []*domain.Selector {
	return m.registry.GetAll(identifiers, t)
}

// Remove takes a selector out of the registry
func (m *Manager) Remove(sel *domain.Selector, opts ...selectors.Option) *domain.Selector {
	return m.registry.Remove(sel, opts...)
}

// Escape applies the configured name escaper
func (m *Manager) Escape(name string) string {
	return m.registry.Escape(name)
}

// Common returns the registered selectors shared by every selected
// component, in the order of the first one. Components may still hold
// selectors removed from the registry; those are skipped.
func (m *Manager) Common() []*domain.Selector {
	var sets [][]*domain.Selector
	for _, c := range m.host.SelectedAll() {
		if valid, ok := validSelectors(c); ok {
			sets = append(sets, valid)
		}
	}
	return m.registered(selectors.Intersect(sets...))
}

func (m *Manager) registered(items []*domain.Selector) []*domain.Selector {
	out := make([]*domain.Selector, 0, len(items))
	for _, sel := range items {
		if m.registry.Has(sel) {
			out = append(out, sel)
		}
	}
	return out
}

// Selected returns the selection view as of the last selection or class
// change. Selectors removed from the registry since then are left out, silent
// removals included.
func (m *Manager) Selected() []*domain.Selector {
	return m.registered(m.view)
}

// Targets returns the current style targets resolved by kind
func (m *Manager) Targets() []ResolvedTarget {
	return resolveAll(m.host.StyleManager().Targets())
}

// Select points the style manager at targets and hands the resolved set to
// the attached renderer
func (m *Manager) Select(targets []Target, opts SelectOptions) *Manager {
	res := resolveAll(m.host.StyleManager().SetTarget(targets, opts))
	m.log.Debug("Targets selected", zap.Int("requested", len(targets)), zap.Int("resolved", len(res)))
	if m.renderer != nil {
		m.renderer.TargetsChanged(res)
	}
	return m
}

// AddSelected resolves the selector and adds it to every selected component
func (m *Manager) AddSelected(p domain.Props) *domain.Selector {
	sel := m.registry.Add(p)
	if sel == nil {
		return nil
	}
	for _, c := range m.host.SelectedAll() {
		c.Selectors().Add(sel)
	}
	return sel
}

// RemoveSelected drops the selector from every selected component. A
// protected selector is left in place and reported.
func (m *Manager) RemoveSelected(sel *domain.Selector) RemoveReport {
	if sel == nil {
		return RemoveReport{}
	}
	if sel.Protected {
		m.log.Debug("Protected selector kept", zap.String("selector", sel.FullName()))
		return RemoveReport{Protected: true}
	}
	var report RemoveReport
	for _, c := range m.host.SelectedAll() {
		report.Affected += c.Selectors().Remove(sel)
	}
	return report
}

// SetState sets the pseudo-state on the host
func (m *Manager) SetState(value string) *Manager {
	m.host.SetState(value)
	return m
}

// State returns the host's pseudo-state
func (m *Manager) State() string {
	return m.host.State()
}

// States returns the configured pseudo-states
func (m *Manager) States() []domain.State {
	return append([]domain.State(nil), m.cfg.States...)
}

// SetComponentFirst toggles whether styles target components before rules
func (m *Manager) SetComponentFirst(v bool) *Manager {
	if m.componentFirst == v {
		return m
	}
	m.componentFirst = v
	m.publish(domain.SelectorTypeEvent{ComponentFirst: v})
	return m
}

// ComponentFirst reports the component-first flag
func (m *Manager) ComponentFirst() bool {
	return m.componentFirst
}

// AttachRenderer sets the rendering collaborator, replacing any previous one
func (m *Manager) AttachRenderer(r Renderer) {
	m.renderer = r
}

// Refresh requests a selector:custom notification
func (m *Manager) Refresh() {
	m.custom.Request()
}

// Destroy detaches the manager from its host. The manager must not be used
// afterwards.
func (m *Manager) Destroy() {
	for _, off := range m.unsubscribe {
		off()
	}
	m.unsubscribe = nil
	m.custom.Cancel()
	m.registry.Reset()
	m.view = nil
	if m.renderer != nil {
		m.renderer.Dispose()
		m.renderer = nil
	}
	m.host = nil
	m.log.Debug("Selector manager destroyed")
}

func (m *Manager) resetView() {
	m.view = m.Common()
}

func (m *Manager) dropFromView(sel *domain.Selector) {
	out := m.view[:0]
	for _, v := range m.view {
		if v != sel {
			out = append(out, v)
		}
	}
	m.view = out
}

func (m *Manager) emitCustom() {
	if m.host == nil {
		return
	}
	payload := CustomPayload{
		Manager:  m,
		Common:   m.Common(),
		States:   m.States(),
		Selected: m.Targets(),
		Add:      m.AddSelected,
		Remove:   m.RemoveSelected,
	}
	m.log.Debug("Selection recomputed",
		zap.Int("common", len(payload.Common)),
		zap.Int("targets", len(payload.Selected)),
		zap.String("state", m.host.State()))
	m.publish(domain.CustomEvent{Payload: payload})
}

func (m *Manager) publish(e domain.DomainEvent) {
	m.bus.Publish(e)
	m.bus.Publish(domain.Tagged(e))
}

func resolveAll(targets []Target) []ResolvedTarget {
	out := make([]ResolvedTarget, 0, len(targets))
	for _, t := range targets {
		if r, ok := resolve(t); ok {
			out = append(out, r)
		}
	}
	return out
}
