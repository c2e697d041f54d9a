package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"selectorhub/internal/domain"
	"selectorhub/internal/manager"
	"selectorhub/internal/selectors"
)

// AppName is used for config directories, env prefixes and logger names
const AppName = "selectorhub"

// FileName is the config file looked up in the working directory
const FileName = ".selectorhub.toml"

// Config represents the application configuration
type Config struct {
	SelectorManager SelectorManagerConfig `mapstructure:"selector_manager"`
	Logging         LoggingConfig         `mapstructure:"logging"`
	UI              UIConfig              `mapstructure:"ui"`
}

// SelectorManagerConfig holds the selector manager options
type SelectorManagerConfig struct {
	ComponentFirst bool            `mapstructure:"component_first"`
	StylePrefix    string          `mapstructure:"style_prefix"`
	PStylePrefix   string          `mapstructure:"p_style_prefix"`
	States         []domain.State  `mapstructure:"states"`
	Escape         string          `mapstructure:"escape"` // "default" or "slug"
	Selectors      []SelectorEntry `mapstructure:"selectors"`
}

// SelectorEntry is an initial registry record
type SelectorEntry struct {
	Name      string `mapstructure:"name"`
	Label     string `mapstructure:"label"`
	Type      string `mapstructure:"type"` // "class" or "id"
	Active    *bool  `mapstructure:"active"`
	Protected bool   `mapstructure:"protected"`
	Private   bool   `mapstructure:"private"`
	Comment   string `mapstructure:"comment"`
}

// Props converts the entry to a registry record
func (e SelectorEntry) Props() domain.Props {
	p := domain.Props{
		Name:      e.Name,
		Label:     e.Label,
		Active:    e.Active,
		Protected: e.Protected,
		Private:   e.Private,
		Comment:   e.Comment,
	}
	if e.Type != "" {
		p.Type = domain.ParseSelectorType(e.Type)
	}
	return p
}

// UIConfig represents UI-related configuration
type UIConfig struct {
	ShowPrivate bool `mapstructure:"show_private"`
}

// Default returns the default configuration
func Default() *Config {
	mc := manager.DefaultConfig()
	return &Config{
		SelectorManager: SelectorManagerConfig{
			StylePrefix:  mc.StylePrefix,
			PStylePrefix: mc.PStylePrefix,
			States:       mc.States,
			Escape:       "default",
		},
		Logging: LoggingConfig{
			Console: LoggerConfig{Level: "normal"},
			File:    LoggerConfig{Level: "none", Mode: "append"},
		},
	}
}

// SetDefaults registers default values with v
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("selector_manager.component_first", defaults.SelectorManager.ComponentFirst)
	v.SetDefault("selector_manager.style_prefix", defaults.SelectorManager.StylePrefix)
	v.SetDefault("selector_manager.p_style_prefix", defaults.SelectorManager.PStylePrefix)
	v.SetDefault("selector_manager.escape", defaults.SelectorManager.Escape)

	states := make([]map[string]any, 0, len(defaults.SelectorManager.States))
	for _, s := range defaults.SelectorManager.States {
		states = append(states, map[string]any{"name": s.Name, "label": s.Label})
	}
	v.SetDefault("selector_manager.states", states)

	v.SetDefault("logging.console.level", defaults.Logging.Console.Level)
	v.SetDefault("logging.file.level", defaults.Logging.File.Level)
	v.SetDefault("logging.file.mode", defaults.Logging.File.Mode)
	v.SetDefault("logging.file.destination", defaults.Logging.File.Destination)

	v.SetDefault("ui.show_private", defaults.UI.ShowPrivate)
}

// NewViper creates a viper instance with defaults, env overrides and the
// config search path. An empty path searches the working directory and the
// user config directory.
func NewViper(path string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, ".toml"))
		v.AddConfigPath(".")
		v.AddConfigPath(Dir())
	}

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration into a Config and validates it. A missing
// file in the search path is not an error.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration and returns every problem found
func (c *Config) Validate() error {
	var err error

	sm := c.SelectorManager
	if _, ok := selectors.EscaperByName(sm.Escape); !ok {
		err = multierr.Append(err, fmt.Errorf("selector_manager.escape: unknown escaper %q", sm.Escape))
	}

	seen := make(map[string]bool, len(sm.States))
	for i, s := range sm.States {
		switch {
		case s.Name == "":
			err = multierr.Append(err, fmt.Errorf("selector_manager.states[%d]: name is required", i))
		case seen[s.Name]:
			err = multierr.Append(err, fmt.Errorf("selector_manager.states[%d]: duplicate state %q", i, s.Name))
		}
		seen[s.Name] = true
	}

	for i, e := range sm.Selectors {
		if e.Name == "" && e.Label == "" {
			err = multierr.Append(err, fmt.Errorf("selector_manager.selectors[%d]: name or label is required", i))
		}
		switch e.Type {
		case "", "class", "id":
		default:
			err = multierr.Append(err, fmt.Errorf("selector_manager.selectors[%d]: unknown type %q", i, e.Type))
		}
	}

	err = multierr.Append(err, c.Logging.validate())
	return err
}

// ManagerConfig builds the selector manager options. Validate must have
// succeeded.
func (c *Config) ManagerConfig() manager.Config {
	sm := c.SelectorManager
	escaper, _ := selectors.EscaperByName(sm.Escape)

	records := make([]domain.Props, 0, len(sm.Selectors))
	for _, e := range sm.Selectors {
		records = append(records, e.Props())
	}

	// an explicit empty list means no states; nil falls back to the defaults
	var states []domain.State
	if sm.States != nil {
		states = make([]domain.State, len(sm.States))
		copy(states, sm.States)
	}

	return manager.Config{
		Selectors:      records,
		ComponentFirst: sm.ComponentFirst,
		StylePrefix:    sm.StylePrefix,
		PStylePrefix:   sm.PStylePrefix,
		States:         states,
		Escaper:        escaper,
	}
}

// Dir returns the user config directory for the application
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + AppName
	}
	return filepath.Join(home, ".config", AppName)
}
