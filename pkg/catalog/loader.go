package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS walks the provided filesystem and parses JSON/YAML catalog files.
// Templates are registered in document order; duplicate type names are an
// error. When fsys is nil or no catalog files are present, the returned store
// is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{templates: make(map[string]Template)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if !isCatalogFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for idx, tpl := range doc.Templates {
			normalized, err := normalizeTemplate(tpl, path, idx)
			if err != nil {
				return err
			}
			if _, exists := store.templates[normalized.Type]; exists {
				return fmt.Errorf("catalog: duplicate template %q (file %s)", normalized.Type, path)
			}
			store.templates[normalized.Type] = normalized
			store.order = append(store.order, normalized.Type)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// Load returns the built-in catalog shipped with this module. The data is
// embedded so callers never depend on the working directory.
func Load() (*Store, error) {
	return LoadFS(DataFS())
}

// MustLoad panics when the embedded catalog fails to parse. Useful for
// init-time wiring; the embedded data is covered by tests so a failure here is
// a build defect, not a runtime condition.
func MustLoad() *Store {
	store, err := Load()
	if err != nil {
		panic(err)
	}
	return store
}

type documentFile struct {
	Templates []Template `json:"templates" yaml:"templates"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("catalog: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return documentFile{}, fmt.Errorf("catalog: parse %s: invalid JSON or YAML", source)
}

func normalizeTemplate(tpl Template, source string, index int) (Template, error) {
	tpl.Type = strings.TrimSpace(tpl.Type)
	if tpl.Type == "" {
		return Template{}, fmt.Errorf("catalog: file %s entry %d has an empty type", source, index)
	}
	if strings.TrimSpace(tpl.Label) == "" {
		return Template{}, fmt.Errorf("catalog: template %q has no label (file %s)", tpl.Type, source)
	}
	if !validCategory(tpl.Category) {
		return Template{}, fmt.Errorf("catalog: template %q has unknown category %q (file %s)", tpl.Type, tpl.Category, source)
	}
	for _, field := range append(append([]Field(nil), tpl.RequiredFields...), tpl.OptionalFields...) {
		if strings.TrimSpace(field.Name) == "" {
			return Template{}, fmt.Errorf("catalog: template %q declares a field with no name (file %s)", tpl.Type, source)
		}
		if !validKind(field.Kind) {
			return Template{}, fmt.Errorf("catalog: template %q field %q has unknown kind %q (file %s)", tpl.Type, field.Name, field.Kind, source)
		}
	}

	tpl.HelpText = sanitizeHelpText(tpl.HelpText)
	tpl.HelpTextJA = sanitizeHelpText(tpl.HelpTextJA)
	return tpl, nil
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
