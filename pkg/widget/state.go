package widget

import (
	"encoding/json"
	"strings"

	"github.com/herald-cms/go-herald/pkg/catalog"
)

// State is the single compound value the widget edits: the ordered set of
// selected schema types plus each type's custom property bag. Property bags
// may outlive a deselection so a later re-selection restores prior edits.
type State struct {
	Types      []string                  `json:"types"`
	Properties map[string]map[string]any `json:"properties"`
}

// NewState returns an empty state with initialized collections.
func NewState() State {
	return State{Types: []string{}, Properties: map[string]map[string]any{}}
}

// DefaultState seeds a state with every default-on catalog type, each assigned
// its placeholder as the initial property bag.
func DefaultState(store *catalog.Store) State {
	state := NewState()
	for _, name := range store.DefaultOn() {
		tpl, ok := store.Lookup(name)
		if !ok {
			continue
		}
		state.Types = append(state.Types, name)
		state.Properties[name] = clonePropertyBag(tpl.Placeholder)
	}
	return state
}

// ParseState decodes a serialized state string. Malformed input falls back to
// an empty state; the admin surface must stay usable with corrupted stored
// data, so this never reports an error to the caller.
func ParseState(raw string) State {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return NewState()
	}
	var state State
	if err := json.Unmarshal([]byte(trimmed), &state); err != nil {
		return NewState()
	}
	return state.normalized()
}

// Serialize encodes the state into the wire format written to the hidden form
// input: a JSON object with exactly the "types" and "properties" keys.
func (s State) Serialize() string {
	normalized := s.normalized()
	data, err := json.Marshal(normalized)
	if err != nil {
		// Property bags are JSON-compatible by construction; a marshal failure
		// means a caller smuggled in an unsupported value. Fall back to the
		// empty value rather than corrupting the form field.
		return `{"types":[],"properties":{}}`
	}
	return string(data)
}

// Clone returns a deep, independent copy. Mutating the result never affects
// the original and vice versa.
func (s State) Clone() State {
	clone := State{
		Types:      append([]string{}, s.Types...),
		Properties: make(map[string]map[string]any, len(s.Properties)),
	}
	for name, bag := range s.Properties {
		clone.Properties[name] = clonePropertyBag(bag)
	}
	return clone.normalized()
}

// Selected reports whether the type is currently in the selection.
func (s State) Selected(typeName string) bool {
	for _, name := range s.Types {
		if name == typeName {
			return true
		}
	}
	return false
}

// normalized ensures collections are non-nil and the type list carries no
// duplicates, preserving first occurrence order.
func (s State) normalized() State {
	out := State{
		Types:      make([]string, 0, len(s.Types)),
		Properties: s.Properties,
	}
	if out.Properties == nil {
		out.Properties = map[string]map[string]any{}
	}
	seen := make(map[string]struct{}, len(s.Types))
	for _, name := range s.Types {
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out.Types = append(out.Types, name)
	}
	return out
}

// clonePropertyBag deep-copies a JSON-compatible property object via a JSON
// round-trip so nested maps and slices never alias.
func clonePropertyBag(bag map[string]any) map[string]any {
	if len(bag) == 0 {
		return map[string]any{}
	}
	data, err := json.Marshal(bag)
	if err != nil {
		return map[string]any{}
	}
	out := map[string]any{}
	if err := json.Unmarshal(data, &out); err != nil {
		return map[string]any{}
	}
	return out
}
