package domain

// EventType represents the type of domain event
type EventType string

// Outgoing selector events
const (
	EventSelector             EventType = "selector" // catch-all, carries a TaggedEvent
	EventSelectorAdd          EventType = "selector:add"
	EventSelectorRemove       EventType = "selector:remove"
	EventSelectorRemoveBefore EventType = "selector:remove:before"
	EventSelectorUpdate       EventType = "selector:update"
	EventSelectorState        EventType = "selector:state"
	EventSelectorType         EventType = "selector:type"
	EventSelectorCustom       EventType = "selector:custom"
)

// Host editor events
const (
	EventStateChanged       EventType = "change:state"
	EventComponentToggled   EventType = "component:toggled"
	EventComponentClasses   EventType = "component:update:classes"
	EventStyleManagerUpdate EventType = "styleManager:update"
	EventDocumentLoaded     EventType = "document:loaded"
	EventDocumentSaved      EventType = "document:saved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectorAddedEvent is emitted when the registry creates a selector
type SelectorAddedEvent struct {
	Selector *Selector
}

func (e SelectorAddedEvent) Type() EventType { return EventSelectorAdd }

// SelectorRemoveBeforeEvent is emitted before a selector leaves the registry
type SelectorRemoveBeforeEvent struct {
	Selector *Selector
}

func (e SelectorRemoveBeforeEvent) Type() EventType { return EventSelectorRemoveBefore }

// SelectorRemovedEvent is emitted after a selector left the registry
type SelectorRemovedEvent struct {
	Selector *Selector
}

func (e SelectorRemovedEvent) Type() EventType { return EventSelectorRemove }

// SelectorUpdatedEvent is emitted when mutable selector fields change
type SelectorUpdatedEvent struct {
	Selector *Selector
	Changes  []string
}

func (e SelectorUpdatedEvent) Type() EventType { return EventSelectorUpdate }

// SelectorStateEvent mirrors a pseudo-state change
type SelectorStateEvent struct {
	State string
}

func (e SelectorStateEvent) Type() EventType { return EventSelectorState }

// SelectorTypeEvent is emitted when the component-first flag changes
type SelectorTypeEvent struct {
	ComponentFirst bool
}

func (e SelectorTypeEvent) Type() EventType { return EventSelectorType }

// CustomEvent carries the aggregate payload for custom selector UIs. The
// payload type lives with the manager.
type CustomEvent struct {
	Payload any
}

func (e CustomEvent) Type() EventType { return EventSelectorCustom }

// TaggedEvent wraps any selector event for catch-all listeners
type TaggedEvent struct {
	Tag   EventType
	Event DomainEvent
}

func (e TaggedEvent) Type() EventType { return EventSelector }

// Tagged wraps an event for the catch-all channel
func Tagged(e DomainEvent) TaggedEvent {
	return TaggedEvent{Tag: e.Type(), Event: e}
}

// StateChangedEvent is raised by the host when its pseudo-state changes
type StateChangedEvent struct {
	State string
}

func (e StateChangedEvent) Type() EventType { return EventStateChanged }

// ComponentToggledEvent is raised by the host when selection changes
type ComponentToggledEvent struct {
	ComponentID string
	Selected    bool
}

func (e ComponentToggledEvent) Type() EventType { return EventComponentToggled }

// ComponentClassesEvent is raised by the host when a component's selector
// set changes
type ComponentClassesEvent struct {
	ComponentID string
}

func (e ComponentClassesEvent) Type() EventType { return EventComponentClasses }

// StyleManagerUpdateEvent is raised by the host when style targets change
type StyleManagerUpdateEvent struct {
	Targets int
}

func (e StyleManagerUpdateEvent) Type() EventType { return EventStyleManagerUpdate }

// DocumentLoadedEvent is emitted when a document is loaded from disk
type DocumentLoadedEvent struct {
	Path       string
	Selectors  int
	Components int
}

func (e DocumentLoadedEvent) Type() EventType { return EventDocumentLoaded }

// DocumentSavedEvent is emitted when a document is written to disk
type DocumentSavedEvent struct {
	Path string
}

func (e DocumentSavedEvent) Type() EventType { return EventDocumentSaved }
