package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"selectorhub/internal/domain"
	"selectorhub/internal/eventbus"
)

// DefaultDocument is the document file used when none is given
const DefaultDocument = "selectorhub.doc.toml"

// Document is the persisted page: selector records and the components
// referencing them
type Document struct {
	Version    int               `toml:"version"`
	Selectors  []domain.Props    `toml:"selectors"`
	Components []ComponentRecord `toml:"components"`
}

// ComponentRecord is a persisted component. Classes hold selector
// identifiers with sigils, e.g. ".btn" or "#hero".
type ComponentRecord struct {
	ID      string   `toml:"id,omitempty"`
	Name    string   `toml:"name"`
	Tag     string   `toml:"tag,omitempty"`
	Classes []string `toml:"classes,omitempty"`
}

// DocumentService loads and saves documents
type DocumentService interface {
	Load(path string) (*Document, error)
	Save(doc *Document, path string) error
}

type documentService struct {
	bus eventbus.EventBus
}

// NewDocumentService creates a document service. A nil bus disables
// notifications.
func NewDocumentService(bus eventbus.EventBus) DocumentService {
	return &documentService{bus: bus}
}

// Load reads a document. A missing file yields an empty document.
func (ds *documentService) Load(path string) (*Document, error) {
	doc := &Document{Version: 1}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read document: %w", err)
	default:
		if err := toml.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("failed to parse document %s: %w", path, err)
		}
	}

	if ds.bus != nil {
		ds.bus.Publish(domain.DocumentLoadedEvent{
			Path:       path,
			Selectors:  len(doc.Selectors),
			Components: len(doc.Components),
		})
	}
	return doc, nil
}

// Save writes a document, creating its directory when needed
func (ds *documentService) Save(doc *Document, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create document directory: %w", err)
		}
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	if ds.bus != nil {
		ds.bus.Publish(domain.DocumentSavedEvent{Path: path})
	}
	return nil
}
