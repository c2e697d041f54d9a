package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap/zaptest"

	"selectorhub/internal/domain"
	"selectorhub/internal/eventbus"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load(NewViper(""))
	require.NoError(t, err)

	mc := cfg.ManagerConfig()
	assert.Equal(t, "gjs-clm-", mc.ClassPrefix())
	assert.False(t, mc.ComponentFirst)
	require.Len(t, mc.States, 3)
	assert.Equal(t, "hover", mc.States[0].Name)
	assert.Equal(t, "nth-of-type(2n)", mc.States[2].Name)
	assert.Equal(t, "My-Class-", mc.Escaper("My Class!"))
	assert.Equal(t, "normal", cfg.Logging.Console.Level)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, FileName, `
[selector_manager]
component_first = true
style_prefix = "tag-"
escape = "slug"

[[selector_manager.states]]
name = "focus"
label = "Focused"

[[selector_manager.selectors]]
name = "btn"
protected = true

[[selector_manager.selectors]]
name = "main"
type = "id"
active = false

[ui]
show_private = true
`)

	cfg, err := Load(NewViper(path))
	require.NoError(t, err)

	mc := cfg.ManagerConfig()
	assert.True(t, mc.ComponentFirst)
	assert.Equal(t, "gjs-tag-", mc.ClassPrefix())
	assert.Equal(t, []domain.State{{Name: "focus", Label: "Focused"}}, mc.States)
	assert.Equal(t, "hero-title", mc.Escaper("Hero Title"))
	assert.True(t, cfg.UI.ShowPrivate)

	require.Len(t, mc.Selectors, 2)
	assert.Equal(t, "btn", mc.Selectors[0].Name)
	assert.True(t, mc.Selectors[0].Protected)
	assert.Nil(t, mc.Selectors[0].Active)
	assert.Equal(t, domain.TypeID, mc.Selectors[1].Type)
	require.NotNil(t, mc.Selectors[1].Active)
	assert.False(t, *mc.Selectors[1].Active)
}

func TestManagerConfigKeepsEmptyStates(t *testing.T) {
	cfg := Default()
	cfg.SelectorManager.States = []domain.State{}

	mc := cfg.ManagerConfig()
	require.NotNil(t, mc.States)
	assert.Empty(t, mc.States)

	cfg.SelectorManager.States = nil
	assert.Nil(t, cfg.ManagerConfig().States)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeFile(t, FileName, "[selector_manager]\nescape = \"default\"\n")
	t.Setenv("SELECTORHUB_SELECTOR_MANAGER_ESCAPE", "slug")
	t.Setenv("SELECTORHUB_SELECTOR_MANAGER_COMPONENT_FIRST", "true")

	cfg, err := Load(NewViper(path))
	require.NoError(t, err)
	assert.Equal(t, "slug", cfg.SelectorManager.Escape)
	assert.True(t, cfg.SelectorManager.ComponentFirst)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(NewViper(filepath.Join(t.TempDir(), "nope.toml")))
	assert.Error(t, err)
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.SelectorManager.Escape = "rot13"
	cfg.SelectorManager.States = append(cfg.SelectorManager.States, domain.State{}, domain.State{Name: "hover"})
	cfg.SelectorManager.Selectors = []SelectorEntry{{Type: "tag"}}
	cfg.Logging.File.Level = "debug"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 6)
	assert.NoError(t, Default().Validate())
}

func TestPrepareFileLogger(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "selectorhub.log")
	conf := LoggingConfig{
		Console: LoggerConfig{Level: "none"},
		File:    LoggerConfig{Level: "debug", Destination: dest, Mode: "overwrite"},
	}

	log, closer, err := conf.Prepare()
	require.NoError(t, err)
	log.Debug("Selector added")
	require.NoError(t, log.Sync())
	require.NoError(t, closer())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Selector added")
	assert.Contains(t, string(data), AppName)
}

func TestPrepareUnwritableDestination(t *testing.T) {
	conf := LoggingConfig{File: LoggerConfig{Level: "normal", Destination: filepath.Join(t.TempDir(), "missing", "x.log")}}
	_, _, err := conf.Prepare()
	assert.Error(t, err)
}

func TestDocumentSaveAndLoad(t *testing.T) {
	bus := eventbus.New(zaptest.NewLogger(t))
	var got []domain.EventType
	bus.SubscribeAll(func(e eventbus.DomainEvent) { got = append(got, e.Type()) })
	svc := NewDocumentService(bus)

	off := false
	doc := &Document{
		Version: 1,
		Selectors: []domain.Props{
			{Name: "btn", Type: domain.TypeClass, Label: "Button"},
			{Name: "hero", Type: domain.TypeID, Active: &off, Protected: true},
		},
		Components: []ComponentRecord{
			{ID: "c1", Name: "Header", Tag: "header", Classes: []string{"#hero", ".btn"}},
		},
	}
	path := filepath.Join(t.TempDir(), "docs", DefaultDocument)
	require.NoError(t, svc.Save(doc, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Regexp(t, `type = ['"]id['"]`, string(data))

	loaded, err := svc.Load(path)
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)
	assert.Equal(t, []domain.EventType{domain.EventDocumentSaved, domain.EventDocumentLoaded}, got)
}

func TestDocumentLoadMissing(t *testing.T) {
	doc, err := NewDocumentService(nil).Load(filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Version)
	assert.Empty(t, doc.Components)
}

func TestDocumentLoadMalformed(t *testing.T) {
	path := writeFile(t, "bad.toml", "selectors = [")
	_, err := NewDocumentService(nil).Load(path)
	assert.Error(t, err)
}
