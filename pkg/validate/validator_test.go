package validate

import (
	"strings"
	"testing"

	"github.com/herald-cms/go-herald/pkg/catalog"
	"github.com/herald-cms/go-herald/pkg/widget"
)

func testValidator(t *testing.T) *Validator {
	t.Helper()
	store, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return New(store)
}

func TestValidateBagAcceptsConformingInput(t *testing.T) {
	t.Parallel()

	v := testValidator(t)
	result := v.ValidateBag("Product", map[string]any{
		"offers": map[string]any{
			"@type":         "Offer",
			"price":         "1980",
			"priceCurrency": "JPY",
		},
		"sku": "HB-001",
	})
	if !result.Valid() {
		t.Fatalf("conforming bag rejected: %v", result.Issues)
	}
}

func TestValidateBagFlagsMissingRequiredField(t *testing.T) {
	t.Parallel()

	v := testValidator(t)
	result := v.ValidateBag("Product", map[string]any{"sku": "HB-001"})
	if result.Valid() {
		t.Fatal("missing required field not flagged")
	}

	found := false
	for _, issue := range result.Issues {
		if issue.Type == "Product" && strings.Contains(issue.Message, "offers") {
			found = true
		}
	}
	if !found {
		t.Fatalf("no issue names the missing field: %v", result.Issues)
	}
}

func TestValidateBagFlagsKindMismatch(t *testing.T) {
	t.Parallel()

	v := testValidator(t)
	result := v.ValidateBag("Product", map[string]any{
		"offers": map[string]any{"price": "1980"},
		"sku":    5,
	})
	if result.Valid() {
		t.Fatal("kind mismatch not flagged")
	}

	found := false
	for _, issue := range result.Issues {
		if issue.Property == "sku" {
			found = true
		}
	}
	if !found {
		t.Fatalf("no issue attributed to the mismatched property: %v", result.Issues)
	}
}

func TestValidateBagAllowsUndescribedProperties(t *testing.T) {
	t.Parallel()

	v := testValidator(t)
	result := v.ValidateBag("Person", map[string]any{
		"jobTitle": "Editor",
		"honorificPrefix": "Dr.",
	})
	if !result.Valid() {
		t.Fatalf("undescribed property rejected: %v", result.Issues)
	}
}

func TestValidateBagUnknownType(t *testing.T) {
	t.Parallel()

	v := testValidator(t)
	result := v.ValidateBag("Spaceship", nil)
	if result.Valid() {
		t.Fatal("unknown type not flagged")
	}
	if got := result.Issues[0].Message; got != "unknown schema type" {
		t.Fatalf("message = %q", got)
	}
}

func TestValidateStateAggregatesSelectedTypesOnly(t *testing.T) {
	t.Parallel()

	v := testValidator(t)
	state := widget.State{
		Types: []string{"Product", "Person"},
		Properties: map[string]map[string]any{
			// Product's required offers field is missing.
			"Product": {"sku": "HB-001"},
			"Person":  {"jobTitle": "Editor"},
			// Retained bag of a deselected type; must not produce issues even
			// though it would fail Event's required fields.
			"Event": {},
		},
	}

	result := v.ValidateState(state)
	if result.Valid() {
		t.Fatal("expected issues from the Product bag")
	}
	for _, issue := range result.Issues {
		if issue.Type == "Event" {
			t.Fatalf("deselected type validated: %v", issue)
		}
		if issue.Type == "Person" {
			t.Fatalf("clean bag produced an issue: %v", issue)
		}
	}
}

func TestValidateStateNilBagReportsRequired(t *testing.T) {
	t.Parallel()

	v := testValidator(t)
	state := widget.State{Types: []string{"FAQPage"}, Properties: map[string]map[string]any{}}

	result := v.ValidateState(state)
	if result.Valid() {
		t.Fatal("nil bag with required fields passed validation")
	}
	if got := result.Issues[0].String(); !strings.Contains(got, "FAQPage") {
		t.Fatalf("issue string missing type name: %q", got)
	}
}
