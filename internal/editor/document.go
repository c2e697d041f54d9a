package editor

import (
	"fmt"

	"go.uber.org/multierr"

	"selectorhub/internal/config"
	"selectorhub/internal/domain"
	"selectorhub/internal/selectors"
)

// Load populates the editor and the registry from a document. Selector
// records are added silently; component classes missing from the records
// are created. Invalid components are skipped and reported.
func (e *Editor) Load(doc *config.Document, reg *selectors.Registry) error {
	reg.AddAll(doc.Selectors, selectors.Silent())

	var err error
	seen := make(map[string]bool, len(doc.Components))
	for i, rec := range doc.Components {
		if rec.Name == "" && rec.Tag == "" {
			err = multierr.Append(err, fmt.Errorf("components[%d]: name or tag is required", i))
			continue
		}
		if rec.ID != "" && (seen[rec.ID] || e.store.Get(rec.ID) != nil) {
			err = multierr.Append(err, fmt.Errorf("components[%d]: duplicate id %q", i, rec.ID))
			continue
		}
		seen[rec.ID] = true

		sels := make([]*domain.Selector, 0, len(rec.Classes))
		for _, class := range rec.Classes {
			if sel := reg.AddName(class, selectors.Silent()); sel != nil {
				sels = append(sels, sel)
			}
		}
		e.AddComponent(rec.ID, rec.Name, rec.Tag, sels...)
	}
	return err
}

// Snapshot captures the registry and the components as a document
func (e *Editor) Snapshot(reg *selectors.Registry) *config.Document {
	doc := &config.Document{Version: 1}
	for _, sel := range reg.All() {
		doc.Selectors = append(doc.Selectors, domain.PropsOf(sel))
	}
	for _, c := range e.Components() {
		doc.Components = append(doc.Components, config.ComponentRecord{
			ID:      c.ID,
			Name:    c.Name,
			Tag:     c.Tag,
			Classes: c.Selectors().Names(),
		})
	}
	return doc
}
