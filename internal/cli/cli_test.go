package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selectorhub/internal/config"
	"selectorhub/internal/domain"
)

// executeCommand runs a cobra command with args and returns captured output
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(append(args, "--log-level", "none"))
	err := root.Execute()
	return buf.String(), err
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return dir
}

func writeDocument(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "page.toml")
	doc := &config.Document{
		Version: 1,
		Selectors: []domain.Props{
			{Name: "btn", Label: "Button"},
			{Name: "locked", Protected: true},
			{Name: "js-hook", Private: true},
		},
		Components: []config.ComponentRecord{
			{ID: "one", Name: "Primary", Tag: "button", Classes: []string{"btn", "primary", "locked", "js-hook"}},
			{ID: "two", Name: "Secondary", Tag: "button", Classes: []string{"locked", "secondary", "btn"}},
		},
	}
	require.NoError(t, config.NewDocumentService(nil).Save(doc, path))
	return path
}

func TestRootCommandTree(t *testing.T) {
	root := NewRootCmd()
	assert.Equal(t, "selectorhub", root.Use)

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, expected := range []string{"tui", "inspect", "common", "version"} {
		assert.Contains(t, names, expected)
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("doc"))
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestVersion(t *testing.T) {
	isolate(t)
	out, err := executeCommand(NewRootCmd(), "version")
	require.NoError(t, err)
	assert.Equal(t, "selectorhub dev\n", out)
}

func TestInspect(t *testing.T) {
	dir := isolate(t)
	path := writeDocument(t, dir)

	out, err := executeCommand(NewRootCmd(), "inspect", "-d", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Class prefix: gjs-clm-\n")
	assert.Contains(t, out, "Selectors (5):")
	assert.Contains(t, out, `  .btn "Button"`)
	assert.Contains(t, out, "  .locked [protected]")
	assert.NotContains(t, out, ".js-hook [private]")
	assert.Contains(t, out, "Components (2):")
	assert.Contains(t, out, "  Primary <button> .btn.primary.locked.js-hook")

	out, err = executeCommand(NewRootCmd(), "inspect", "-d", path, "--private")
	require.NoError(t, err)
	assert.Contains(t, out, "  .js-hook [private]")
}

func TestInspectUsesConfiguredPrefix(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(`
[selector_manager]
style_prefix = "tag-"
p_style_prefix = "app-"
`), 0644))

	out, err := executeCommand(NewRootCmd(), "inspect", "-d", filepath.Join(dir, "none.toml"))
	require.NoError(t, err)
	assert.Contains(t, out, "Class prefix: app-tag-\n")
}

func TestInspectMissingDocument(t *testing.T) {
	dir := isolate(t)
	out, err := executeCommand(NewRootCmd(), "inspect", "-d", filepath.Join(dir, "none.toml"))
	require.NoError(t, err)
	assert.Contains(t, out, "Selectors (0):")
}

func TestCommon(t *testing.T) {
	dir := isolate(t)
	path := writeDocument(t, dir)

	out, err := executeCommand(NewRootCmd(), "common", "-d", path, "--select", "Primary,two")
	require.NoError(t, err)
	assert.Equal(t, ".btn\n.locked\ntargets: .btn.primary.locked, .locked.secondary.btn\n", out)

	out, err = executeCommand(NewRootCmd(), "common", "-d", path, "-s", "Primary", "--state", "hover")
	require.NoError(t, err)
	assert.Contains(t, out, "targets: .btn.primary.locked:hover\n")

	out, err = executeCommand(NewRootCmd(), "common", "-d", path, "-s", "Primary", "--components-first")
	require.NoError(t, err)
	assert.Contains(t, out, "targets: Primary\n")
}

func TestCommonUnknownComponent(t *testing.T) {
	dir := isolate(t)
	path := writeDocument(t, dir)

	_, err := executeCommand(NewRootCmd(), "common", "-d", path, "-s", "Nope")
	assert.ErrorContains(t, err, `unknown component "Nope"`)
}

func TestInvalidConfig(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(`
[selector_manager]
escape = "shout"
`), 0644))

	_, err := executeCommand(NewRootCmd(), "version")
	assert.Error(t, err)
}
