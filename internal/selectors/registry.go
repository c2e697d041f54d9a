package selectors

import (
	"go.uber.org/zap"

	"selectorhub/internal/domain"
	"selectorhub/internal/eventbus"
)

// Options tune a single registry call
type Options struct {
	Silent bool // suppress notifications
}

// Option configures Options
type Option func(*Options)

// Silent suppresses the notifications of a call
func Silent() Option {
	return func(o *Options) { o.Silent = true }
}

func collect(opts []Option) Options {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Registry is the document-wide ordered collection of unique selectors
type Registry struct {
	items  []*domain.Selector
	index  map[domain.Identity]*domain.Selector
	bus    eventbus.EventBus
	escape Escaper
	log    *zap.Logger
}

// NewRegistry creates an empty registry. A nil escaper selects
// DefaultEscaper; a nil bus disables notifications.
func NewRegistry(bus eventbus.EventBus, escape Escaper, log *zap.Logger) *Registry {
	if escape == nil {
		escape = DefaultEscaper
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		index:  make(map[domain.Identity]*domain.Selector),
		bus:    bus,
		escape: escape,
		log:    log,
	}
}

// Escape applies the configured escaper
func (r *Registry) Escape(name string) string {
	return r.escape(name)
}

// Add resolves the record to an existing selector or creates it. A sigil in
// p.Name forces the type. Properties are never merged into an existing
// entity. Returns nil when the record carries neither name nor label and
// matches nothing.
func (r *Registry) Add(p domain.Props, opts ...Option) *domain.Selector {
	o := collect(opts)

	if p.Name != "" {
		ref := ParseRef(p.Name, p.Type)
		p.Name, p.Type = ref.Name, ref.Kind
	}
	if p.Name == "" && p.Label != "" {
		p.Name = r.escape(p.Label)
	}
	if p.Type == 0 {
		p.Type = domain.TypeClass
	}

	if p.Name == "" {
		return r.where(p)
	}

	id := domain.Identity{Name: p.Name, Type: p.Type}
	if existing, ok := r.index[id]; ok {
		return existing
	}

	sel := p.ToSelector()
	r.items = append(r.items, sel)
	r.index[id] = sel
	r.log.Debug("Selector added", zap.String("selector", sel.FullName()))

	if !o.Silent {
		r.emit(domain.SelectorAddedEvent{Selector: sel})
	}
	return sel
}

// AddName resolves or creates a selector from a string identifier
func (r *Registry) AddName(identifier string, opts ...Option) *domain.Selector {
	return r.Add(domain.Props{Name: identifier}, opts...)
}

// AddAll resolves every record in order. The result lines up with records;
// records Add cannot resolve leave a nil in their slot.
func (r *Registry) AddAll(records []domain.Props, opts ...Option) []*domain.Selector {
	out := make([]*domain.Selector, len(records))
	for i, p := range records {
		out[i] = r.Add(p, opts...)
	}
	return out
}

// Get looks a selector up by identifier; nil when absent
func (r *Registry) Get(identifier string, t domain.SelectorType) *domain.Selector {
	ref := ParseRef(identifier, t)
	return r.index[ref.Identity()]
}

// GetAll resolves each identifier, drops misses and duplicates while keeping
// first-seen order
func (r *Registry) GetAll(identifiers []string, t domain.SelectorType) []*domain.Selector {
	out := make([]*domain.Selector, 0, len(identifiers))
	seen := make(map[*domain.Selector]bool, len(identifiers))
	for _, identifier := range identifiers {
		sel := r.Get(identifier, t)
		if sel == nil || seen[sel] {
			continue
		}
		seen[sel] = true
		out = append(out, sel)
	}
	return out
}

// Has reports whether the entity is a registry member
func (r *Registry) Has(sel *domain.Selector) bool {
	if sel == nil {
		return false
	}
	return r.index[sel.Identity()] == sel
}

// Remove takes the entity out of the registry. The protected flag is not
// consulted here. Returns nil when sel is not a member.
func (r *Registry) Remove(sel *domain.Selector, opts ...Option) *domain.Selector {
	if !r.Has(sel) {
		return nil
	}
	o := collect(opts)

	if !o.Silent {
		r.emit(domain.SelectorRemoveBeforeEvent{Selector: sel})
	}

	for i, item := range r.items {
		if item == sel {
			r.items = append(r.items[:i:i], r.items[i+1:]...)
			break
		}
	}
	delete(r.index, sel.Identity())
	r.log.Debug("Selector removed", zap.String("selector", sel.FullName()))

	if !o.Silent {
		r.emit(domain.SelectorRemovedEvent{Selector: sel})
	}
	return sel
}

// RemoveName resolves the identifier and removes it
func (r *Registry) RemoveName(identifier string, opts ...Option) *domain.Selector {
	return r.Remove(r.Get(identifier, 0), opts...)
}

// Update applies the patch to a member and emits the changed fields
func (r *Registry) Update(sel *domain.Selector, patch domain.Patch, opts ...Option) []string {
	if !r.Has(sel) {
		return nil
	}
	changes := sel.Apply(patch)
	if len(changes) > 0 && !collect(opts).Silent {
		r.emit(domain.SelectorUpdatedEvent{Selector: sel, Changes: changes})
	}
	return changes
}

// All returns the selectors in insertion order
func (r *Registry) All() []*domain.Selector {
	return append([]*domain.Selector(nil), r.items...)
}

// Len returns the number of selectors
func (r *Registry) Len() int {
	return len(r.items)
}

// Reset empties the registry without notifications
func (r *Registry) Reset() {
	r.items = nil
	r.index = make(map[domain.Identity]*domain.Selector)
}

// where returns the first selector matching every non-empty field of p
func (r *Registry) where(p domain.Props) *domain.Selector {
	if p.Label == "" && p.Comment == "" && p.Active == nil && !p.Protected && !p.Private {
		return nil
	}
	for _, sel := range r.items {
		if p.Type != 0 && sel.Type != p.Type {
			continue
		}
		if p.Label != "" && sel.Label != p.Label {
			continue
		}
		if p.Comment != "" && sel.Comment != p.Comment {
			continue
		}
		if p.Active != nil && sel.Active != *p.Active {
			continue
		}
		if p.Protected && !sel.Protected {
			continue
		}
		if p.Private && !sel.Private {
			continue
		}
		return sel
	}
	return nil
}

func (r *Registry) emit(e domain.DomainEvent) {
	if r.bus == nil {
		return
	}
	r.bus.Publish(e)
	r.bus.Publish(domain.Tagged(e))
}
