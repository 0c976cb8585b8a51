package widget

import (
	"encoding/json"
	"strings"

	"github.com/herald-cms/go-herald/pkg/catalog"
)

// Instance is one live widget bound to a single compound value. It owns its
// state exclusively; no two instances share anything, and all operations are
// synchronous, so no locking is needed (the host UI event loop is the only
// caller).
type Instance struct {
	catalog    *catalog.Store
	locale     string
	translator Translator
	chrome     ChromeClasses
	cssVars    map[string]string
	idPrefix   string

	state     State
	errored   map[string]bool
	destroyed bool
}

// New constructs a widget instance against the supplied catalog. Without a
// WithState/WithSerialized option the instance is seeded with the catalog's
// default-on types, each carrying its placeholder property bag.
func New(store *catalog.Store, options ...Option) *Instance {
	cfg := &config{
		locale:   catalog.DefaultLocale,
		idPrefix: "schema",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	state := cfg.state
	if !cfg.hasState {
		state = DefaultState(store)
	}

	return &Instance{
		catalog:    store,
		locale:     cfg.locale,
		translator: cfg.translator,
		chrome:     cfg.chrome.withDefaults(),
		cssVars:    cfg.cssVars,
		idPrefix:   cfg.idPrefix,
		state:      state.normalized(),
		errored:    map[string]bool{},
	}
}

// Locale returns the active display locale.
func (w *Instance) Locale() string {
	return w.locale
}

// GetState returns a deep, independent copy of the working state.
func (w *Instance) GetState() State {
	return w.state.Clone()
}

// SetState replaces the working state wholesale. The value is deep-copied and
// all error indicators are cleared; callers re-render afterwards.
func (w *Instance) SetState(state State) {
	if w.destroyed {
		return
	}
	w.state = state.Clone()
	w.errored = map[string]bool{}
}

// Serialized returns the wire-format string for the current state.
func (w *Instance) Serialized() string {
	return w.state.Serialize()
}

// Toggle switches a type's selection on or off and returns the re-rendered
// property region, the partial update that leaves the selection region (and
// any in-progress edits in unrelated editors) untouched.
//
// Toggle-on appends the type once and seeds its property bag from the catalog
// placeholder only when no bag exists yet; a duplicate toggle-on is a no-op.
// Toggle-off removes the type from the selection but deliberately keeps its
// property bag so re-selecting restores prior edits.
func (w *Instance) Toggle(typeName string, on bool) string {
	if w.destroyed {
		return ""
	}
	typeName = strings.TrimSpace(typeName)
	if typeName == "" {
		return w.renderPropertyRegion()
	}

	if on {
		if !w.state.Selected(typeName) {
			w.state.Types = append(w.state.Types, typeName)
		}
		if _, exists := w.state.Properties[typeName]; !exists {
			if tpl, ok := w.catalog.Lookup(typeName); ok {
				w.state.Properties[typeName] = clonePropertyBag(tpl.Placeholder)
			} else {
				w.state.Properties[typeName] = map[string]any{}
			}
		}
	} else {
		kept := w.state.Types[:0]
		for _, name := range w.state.Types {
			if name != typeName {
				kept = append(kept, name)
			}
		}
		w.state.Types = kept
	}

	return w.renderPropertyRegion()
}

// EditProperties applies an edit from a type's JSON text surface. Valid JSON
// replaces the property bag and clears the error flag; invalid JSON keeps the
// last-known-good bag and flags the surface errored. The returned bool
// reports whether the surface should be considered valid.
//
// A missing type binding (empty name) is a harmless no-op: no state change,
// no error flag.
func (w *Instance) EditProperties(typeName, raw string) bool {
	if w.destroyed {
		return true
	}
	typeName = strings.TrimSpace(typeName)
	if typeName == "" {
		return true
	}

	bag := map[string]any{}
	trimmed := strings.TrimSpace(raw)
	if trimmed != "" {
		if err := json.Unmarshal([]byte(trimmed), &bag); err != nil {
			w.errored[typeName] = true
			return false
		}
	}

	w.state.Properties[typeName] = bag
	delete(w.errored, typeName)
	return true
}

// Errored reports whether a type's editing surface currently shows the
// invalid-JSON indicator.
func (w *Instance) Errored(typeName string) bool {
	return w.errored[typeName]
}

// Destroy discards the working state and leaves the instance inert: renders
// come back empty and mutations are ignored. The container markup a host
// produced from this instance should be dropped alongside.
func (w *Instance) Destroy() {
	w.destroyed = true
	w.state = NewState()
	w.errored = map[string]bool{}
}

// Destroyed reports whether Destroy has been called.
func (w *Instance) Destroyed() bool {
	return w.destroyed
}

// effectiveBag returns the JSON object shown in a type's editing surface: the
// stored property bag, or the catalog placeholder when no bag is stored yet or
// the stored bag is empty.
func (w *Instance) effectiveBag(typeName string) map[string]any {
	if bag, ok := w.state.Properties[typeName]; ok && len(bag) > 0 {
		return bag
	}
	if tpl, ok := w.catalog.Lookup(typeName); ok && len(tpl.Placeholder) > 0 {
		return tpl.Placeholder
	}
	if bag, ok := w.state.Properties[typeName]; ok {
		return bag
	}
	return map[string]any{}
}
