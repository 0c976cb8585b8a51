package catalog

// Store keeps the parsed catalog templates. It is safe for concurrent readers
// when treated as immutable after construction, which is how every consumer in
// this module uses it.
type Store struct {
	templates map[string]Template
	order     []string
}

// Lookup returns the template registered for the supplied type name.
func (s *Store) Lookup(typeName string) (Template, bool) {
	if s == nil {
		return Template{}, false
	}
	tpl, ok := s.templates[typeName]
	return tpl, ok
}

// Types returns every registered type name in catalog document order.
func (s *Store) Types() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.order...)
}

// DefaultOn returns the type names flagged for automatic selection, in
// catalog document order.
func (s *Store) DefaultOn() []string {
	if s == nil {
		return nil
	}
	var out []string
	for _, name := range s.order {
		if s.templates[name].DefaultOn {
			out = append(out, name)
		}
	}
	return out
}

// CategoryGroup pairs a category with its templates in document order.
type CategoryGroup struct {
	Category  Category
	Templates []Template
}

// ByCategory groups templates using the fixed category display order. Empty
// categories are omitted.
func (s *Store) ByCategory() []CategoryGroup {
	if s == nil {
		return nil
	}
	var groups []CategoryGroup
	for _, category := range CategoryOrder() {
		var templates []Template
		for _, name := range s.order {
			if tpl := s.templates[name]; tpl.Category == category {
				templates = append(templates, tpl)
			}
		}
		if len(templates) > 0 {
			groups = append(groups, CategoryGroup{Category: category, Templates: templates})
		}
	}
	return groups
}

// Len reports the number of registered templates.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.templates)
}

// Empty reports whether the store holds any templates.
func (s *Store) Empty() bool {
	return s.Len() == 0
}
