//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// DocumentName is the document selectorhub opens from its working directory
const DocumentName = "selectorhub.doc.toml"

const sampleDocument = `version = 1

[[selectors]]
name = "btn"
label = "Button"

[[selectors]]
name = "locked"
protected = true

[[components]]
id = "one"
name = "Primary"
tag = "button"
classes = [".btn", ".primary", ".locked"]

[[components]]
id = "two"
name = "Secondary"
tag = "button"
classes = [".locked", ".secondary", ".btn"]
`

// CreateTestWorkspace creates a temporary working directory for the app
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteFile writes a file relative to the workspace
func (tf *TUITestFramework) WriteFile(name, contents string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	return path, nil
}

// WriteSampleDocument writes the two-button document used by most tests
func (tf *TUITestFramework) WriteSampleDocument() (string, error) {
	return tf.WriteFile(DocumentName, sampleDocument)
}
