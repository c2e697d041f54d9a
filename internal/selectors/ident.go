package selectors

import (
	"regexp"
	"strings"

	"github.com/gosimple/slug"

	"selectorhub/internal/domain"
)

// Ref is the parsed form of a selector identifier
type Ref struct {
	Kind domain.SelectorType
	Name string
}

// Identity returns the registry key for the reference
func (r Ref) Identity() domain.Identity {
	return domain.Identity{Name: r.Name, Type: r.Kind}
}

// ParseRef reads the sigil of an identifier. "#x" is an id, ".x" a class;
// a bare name takes fallback, or class when fallback is zero.
func ParseRef(identifier string, fallback domain.SelectorType) Ref {
	switch {
	case strings.HasPrefix(identifier, "#"):
		return Ref{Kind: domain.TypeID, Name: identifier[1:]}
	case strings.HasPrefix(identifier, "."):
		return Ref{Kind: domain.TypeClass, Name: identifier[1:]}
	}
	if fallback == 0 {
		fallback = domain.TypeClass
	}
	return Ref{Kind: fallback, Name: identifier}
}

// Escaper turns an arbitrary label into a name safe for CSS identifiers.
// Implementations must be idempotent.
type Escaper func(string) string

var unsafeRun = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// DefaultEscaper trims the input and replaces every run of characters
// outside [A-Za-z0-9_-] with a single dash.
func DefaultEscaper(name string) string {
	return unsafeRun.ReplaceAllString(strings.TrimSpace(name), "-")
}

// SlugEscaper lower-cases and transliterates the input into a slug
func SlugEscaper(name string) string {
	return slug.Make(name)
}

// EscaperByName maps a configuration value to an Escaper
func EscaperByName(name string) (Escaper, bool) {
	switch name {
	case "", "default":
		return DefaultEscaper, true
	case "slug":
		return SlugEscaper, true
	default:
		return nil, false
	}
}
