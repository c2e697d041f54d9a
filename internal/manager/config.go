package manager

import (
	"selectorhub/internal/domain"
	"selectorhub/internal/selectors"
)

// Config holds the selector manager options
type Config struct {
	Selectors      []domain.Props // initial registry content
	ComponentFirst bool
	StylePrefix    string
	PStylePrefix   string
	States         []domain.State
	Escaper        selectors.Escaper
}

// DefaultStates are the pseudo-states offered out of the box
func DefaultStates() []domain.State {
	return []domain.State{
		{Name: "hover"},
		{Name: "active"},
		{Name: "nth-of-type(2n)", Label: "even/odd"},
	}
}

// DefaultConfig returns the default options
func DefaultConfig() Config {
	return Config{
		StylePrefix:  "clm-",
		PStylePrefix: "gjs-",
		States:       DefaultStates(),
		Escaper:      selectors.DefaultEscaper,
	}
}

// ClassPrefix is the prefix for generated class names, e.g. "gjs-clm-"
func (c Config) ClassPrefix() string {
	return c.PStylePrefix + c.StylePrefix
}
