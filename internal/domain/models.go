package domain

// SelectorType distinguishes class selectors from id selectors
type SelectorType int

const (
	TypeClass SelectorType = 1
	TypeID    SelectorType = 2
)

// String returns the lower-case type name
func (t SelectorType) String() string {
	switch t {
	case TypeID:
		return "id"
	case TypeClass:
		return "class"
	default:
		return "unknown"
	}
}

// Sigil returns the CSS prefix for the type
func (t SelectorType) Sigil() string {
	if t == TypeID {
		return "#"
	}
	return "."
}

// ParseSelectorType maps "id"/"class" (or the numeric forms) to a SelectorType.
// Anything else is a class.
func ParseSelectorType(s string) SelectorType {
	switch s {
	case "id", "2", "#":
		return TypeID
	default:
		return TypeClass
	}
}

// MarshalText encodes the type as "class" or "id"
func (t SelectorType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes "class" or "id"
func (t *SelectorType) UnmarshalText(text []byte) error {
	*t = ParseSelectorType(string(text))
	return nil
}

// Identity is the registry key of a selector
type Identity struct {
	Name string
	Type SelectorType
}

// Selector is a named, typed style-target identifier shared by reference
// across every component that uses it.
type Selector struct {
	Name      string
	Type      SelectorType
	Label     string // Display string, Name when empty
	Active    bool   // Whether it contributes to style resolution
	Protected bool   // Blocks removal from the current selection
	Private   bool   // Hidden from the valid view of a set
	Comment   string
}

// NewSelector creates an active selector
func NewSelector(name string, t SelectorType) *Selector {
	if t == 0 {
		t = TypeClass
	}
	return &Selector{
		Name:   name,
		Type:   t,
		Active: true,
	}
}

// Identity returns the (name, type) key
func (s *Selector) Identity() Identity {
	return Identity{Name: s.Name, Type: s.Type}
}

// DisplayLabel returns the label, falling back to the name
func (s *Selector) DisplayLabel() string {
	if s.Label != "" {
		return s.Label
	}
	return s.Name
}

// FullName returns the name with its sigil, e.g. ".btn" or "#header"
func (s *Selector) FullName() string {
	return s.Type.Sigil() + s.Name
}

// Props is the property record accepted by resolve-or-create and stored in
// persisted documents.
type Props struct {
	Name      string       `toml:"name" mapstructure:"name"`
	Label     string       `toml:"label,omitempty" mapstructure:"label"`
	Type      SelectorType `toml:"type,omitempty" mapstructure:"type"`
	Active    *bool        `toml:"active,omitempty" mapstructure:"active"`
	Protected bool         `toml:"protected,omitempty" mapstructure:"protected"`
	Private   bool         `toml:"private,omitempty" mapstructure:"private"`
	Comment   string       `toml:"comment,omitempty" mapstructure:"comment"`
}

// ToSelector builds a new entity from the record. Name and Type must already
// be normalized.
func (p Props) ToSelector() *Selector {
	s := NewSelector(p.Name, p.Type)
	s.Label = p.Label
	if p.Active != nil {
		s.Active = *p.Active
	}
	s.Protected = p.Protected
	s.Private = p.Private
	s.Comment = p.Comment
	return s
}

// PropsOf snapshots a selector into a record
func PropsOf(s *Selector) Props {
	active := s.Active
	return Props{
		Name:      s.Name,
		Label:     s.Label,
		Type:      s.Type,
		Active:    &active,
		Protected: s.Protected,
		Private:   s.Private,
		Comment:   s.Comment,
	}
}

// Patch describes mutable selector fields. Nil fields are left untouched.
type Patch struct {
	Label     *string
	Active    *bool
	Protected *bool
	Private   *bool
	Comment   *string
}

// Apply writes the patch and returns the names of the fields that changed
func (s *Selector) Apply(p Patch) []string {
	var changed []string
	if p.Label != nil && *p.Label != s.Label {
		s.Label = *p.Label
		changed = append(changed, "label")
	}
	if p.Active != nil && *p.Active != s.Active {
		s.Active = *p.Active
		changed = append(changed, "active")
	}
	if p.Protected != nil && *p.Protected != s.Protected {
		s.Protected = *p.Protected
		changed = append(changed, "protected")
	}
	if p.Private != nil && *p.Private != s.Private {
		s.Private = *p.Private
		changed = append(changed, "private")
	}
	if p.Comment != nil && *p.Comment != s.Comment {
		s.Comment = *p.Comment
		changed = append(changed, "comment")
	}
	return changed
}

// State is a named pseudo-class-like qualifier, e.g. hover
type State struct {
	Name  string `toml:"name" mapstructure:"name"`
	Label string `toml:"label,omitempty" mapstructure:"label"`
}

// DisplayLabel returns the label, falling back to the name
func (s State) DisplayLabel() string {
	if s.Label != "" {
		return s.Label
	}
	return s.Name
}
