package validate

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/herald-cms/go-herald/pkg/catalog"
	"github.com/herald-cms/go-herald/pkg/widget"
)

// Issue is one advisory finding against a property bag. Issues never block
// saving; hosts decide how prominently to surface them.
type Issue struct {
	// Type is the Schema.org type whose bag produced the issue.
	Type string
	// Property names the offending property when the finding is attributable
	// to one; empty for bag-level findings such as a missing required field.
	Property string
	Message  string
}

func (i Issue) String() string {
	if i.Property != "" {
		return fmt.Sprintf("%s.%s: %s", i.Type, i.Property, i.Message)
	}
	return fmt.Sprintf("%s: %s", i.Type, i.Message)
}

// Result aggregates the issues found in one validation pass.
type Result struct {
	Issues []Issue
}

// Valid reports whether the pass found nothing to flag.
func (r Result) Valid() bool {
	return len(r.Issues) == 0
}

// Validator holds one JSON schema per catalog template, derived from the
// template's required and optional field descriptors. Unknown extra
// properties are always allowed; editors routinely add Schema.org properties
// the catalog does not describe.
type Validator struct {
	store   *catalog.Store
	schemas map[string]*openapi3.Schema
}

// New derives the per-type schemas from the catalog. The validator is
// immutable afterwards and safe for concurrent use.
func New(store *catalog.Store) *Validator {
	v := &Validator{
		store:   store,
		schemas: make(map[string]*openapi3.Schema, store.Len()),
	}
	for _, name := range store.Types() {
		tpl, ok := store.Lookup(name)
		if !ok {
			continue
		}
		v.schemas[name] = buildSchema(tpl)
	}
	return v
}

// ValidateBag checks a single type's property bag. A nil bag is treated as
// empty, so types with required fields report them missing.
func (v *Validator) ValidateBag(typeName string, bag map[string]any) Result {
	schema, ok := v.schemas[typeName]
	if !ok {
		return Result{Issues: []Issue{{
			Type:    typeName,
			Message: "unknown schema type",
		}}}
	}

	value, err := normalizeJSON(bag)
	if err != nil {
		return Result{Issues: []Issue{{
			Type:    typeName,
			Message: fmt.Sprintf("property bag is not valid JSON: %v", err),
		}}}
	}

	err = schema.VisitJSON(value, openapi3.MultiErrors())
	return Result{Issues: issuesFromErr(typeName, err)}
}

// ValidateState checks every selected type's bag and aggregates the findings.
// Retained bags of deselected types are ignored; they produce no output.
func (v *Validator) ValidateState(state widget.State) Result {
	var result Result
	for _, typeName := range state.Types {
		partial := v.ValidateBag(typeName, state.Properties[typeName])
		result.Issues = append(result.Issues, partial.Issues...)
	}
	return result
}

func buildSchema(tpl catalog.Template) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	schema.Properties = openapi3.Schemas{}
	for _, field := range tpl.RequiredFields {
		schema.Properties[field.Name] = openapi3.NewSchemaRef("", fieldSchema(field))
		schema.Required = append(schema.Required, field.Name)
	}
	for _, field := range tpl.OptionalFields {
		schema.Properties[field.Name] = openapi3.NewSchemaRef("", fieldSchema(field))
	}
	return schema
}

func fieldSchema(field catalog.Field) *openapi3.Schema {
	var schema *openapi3.Schema
	switch field.Kind {
	case catalog.KindNumber:
		schema = openapi3.NewFloat64Schema()
	case catalog.KindArray:
		schema = openapi3.NewArraySchema()
	case catalog.KindObject:
		schema = openapi3.NewObjectSchema()
	case catalog.KindDatetime:
		schema = openapi3.NewDateTimeSchema()
	default:
		schema = openapi3.NewStringSchema()
	}
	schema.Description = field.Description
	return schema
}

// normalizeJSON round-trips the bag through encoding/json so structured
// states built in Go (ints, custom slices) validate the same as bags parsed
// from editor input.
func normalizeJSON(bag map[string]any) (map[string]any, error) {
	if bag == nil {
		return map[string]any{}, nil
	}
	data, err := json.Marshal(bag)
	if err != nil {
		return nil, err
	}
	normalized := map[string]any{}
	if err := json.Unmarshal(data, &normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}

func issuesFromErr(typeName string, err error) []Issue {
	if err == nil {
		return nil
	}

	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		var issues []Issue
		for _, nested := range multi {
			issues = append(issues, issuesFromErr(typeName, nested)...)
		}
		return issues
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		property := ""
		if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
			property = pointer[0]
		}
		return []Issue{{Type: typeName, Property: property, Message: schemaErr.Reason}}
	}

	return []Issue{{Type: typeName, Message: err.Error()}}
}
