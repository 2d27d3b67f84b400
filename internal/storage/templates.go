package storage

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rotinasync/rotina/internal/models"
)

// TemplateStore keeps the whole template collection as one JSON document.
type TemplateStore struct {
	kv KV
}

func NewTemplateStore(kv KV) *TemplateStore {
	return &TemplateStore{kv: kv}
}

// Load returns every saved template. An absent or unreadable payload is
// treated as an empty collection rather than an error, so a fresh (or
// corrupted) database behaves like "no templates yet".
func (ts *TemplateStore) Load() ([]models.Template, error) {
	raw, ok, err := ts.kv.Get(KeyTemplates)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Template{}, nil
	}

	var templates []models.Template
	if err := json.Unmarshal([]byte(raw), &templates); err != nil {
		return []models.Template{}, nil
	}
	return templates, nil
}

// SaveAll replaces the entire collection in a single write.
func (ts *TemplateStore) SaveAll(templates []models.Template) error {
	data, err := json.Marshal(templates)
	if err != nil {
		return fmt.Errorf("failed to encode templates: %w", err)
	}
	return ts.kv.Set(KeyTemplates, string(data))
}

// Add validates and appends one template.
func (ts *TemplateStore) Add(t models.Template) error {
	if err := t.Validate(); err != nil {
		return err
	}

	templates, err := ts.Load()
	if err != nil {
		return err
	}
	templates = append(templates, t)
	return ts.SaveAll(templates)
}

// Find resolves a template by ID or (case insensitive) name.
func (ts *TemplateStore) Find(idOrName string) (*models.Template, error) {
	templates, err := ts.Load()
	if err != nil {
		return nil, err
	}
	for i := range templates {
		if templates[i].ID == idOrName || strings.EqualFold(templates[i].Name, idOrName) {
			return &templates[i], nil
		}
	}
	return nil, fmt.Errorf("no template named %q", idOrName)
}
