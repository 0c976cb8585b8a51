package catalog

import "strings"

// Locale identifiers supported by the shipped catalog. The widget ships with a
// default English locale plus a Japanese alternate; every localized accessor
// falls back to the default when the alternate string is empty.
const (
	LocaleEN = "en"
	LocaleJA = "ja"

	DefaultLocale = LocaleEN
)

// Category tags group templates in the selection UI. The set is closed; the
// loader rejects anything else.
type Category string

const (
	CategorySite     Category = "site"
	CategoryContent  Category = "content"
	CategoryCommerce Category = "commerce"
	CategoryEvents   Category = "events"
	CategoryOther    Category = "other"
)

// CategoryOrder is the fixed display order used by the selection region.
func CategoryOrder() []Category {
	return []Category{CategorySite, CategoryContent, CategoryCommerce, CategoryEvents, CategoryOther}
}

// CategoryLabel returns the locale-appropriate heading for a category group.
func CategoryLabel(category Category, locale string) string {
	labels, ok := categoryLabels[category]
	if !ok {
		return string(category)
	}
	if locale == LocaleJA && labels[1] != "" {
		return labels[1]
	}
	return labels[0]
}

var categoryLabels = map[Category][2]string{
	CategorySite:     {"Site-wide", "サイト全体"},
	CategoryContent:  {"Content", "コンテンツ"},
	CategoryCommerce: {"Commerce", "コマース"},
	CategoryEvents:   {"Events & Listings", "イベント・募集"},
	CategoryOther:    {"Other", "その他"},
}

// FieldKind is the closed enum of hint kinds attached to custom field
// descriptors. Purely informational; the widget renders them as hints and the
// validate package maps them onto JSON schema types.
type FieldKind string

const (
	KindString   FieldKind = "string"
	KindNumber   FieldKind = "number"
	KindArray    FieldKind = "array"
	KindObject   FieldKind = "object"
	KindDatetime FieldKind = "datetime"
)

func validKind(kind FieldKind) bool {
	switch kind {
	case KindString, KindNumber, KindArray, KindObject, KindDatetime:
		return true
	default:
		return false
	}
}

func validCategory(category Category) bool {
	switch category {
	case CategorySite, CategoryContent, CategoryCommerce, CategoryEvents, CategoryOther:
		return true
	default:
		return false
	}
}

// AutoField describes an output property the server populates from page or
// site data. The widget never evaluates Source; it only shows the mapping.
type AutoField struct {
	Property    string `json:"property" yaml:"property"`
	Source      string `json:"source" yaml:"source"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Field describes a custom property an editor may supply by hand.
type Field struct {
	Name        string    `json:"name" yaml:"name"`
	Kind        FieldKind `json:"kind" yaml:"kind"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
}

// Template is one immutable catalog entry describing a Schema.org type the
// widget can offer for selection.
type Template struct {
	Type       string   `json:"type" yaml:"type"`
	Label      string   `json:"label" yaml:"label"`
	LabelJA    string   `json:"labelJa,omitempty" yaml:"labelJa,omitempty"`
	Category   Category `json:"category" yaml:"category"`
	DefaultOn  bool     `json:"defaultOn,omitempty" yaml:"defaultOn,omitempty"`
	HelpText   string   `json:"helpText,omitempty" yaml:"helpText,omitempty"`
	HelpTextJA string   `json:"helpTextJa,omitempty" yaml:"helpTextJa,omitempty"`

	AutoFields     []AutoField `json:"autoFields,omitempty" yaml:"autoFields,omitempty"`
	RequiredFields []Field     `json:"requiredFields,omitempty" yaml:"requiredFields,omitempty"`
	OptionalFields []Field     `json:"optionalFields,omitempty" yaml:"optionalFields,omitempty"`

	Placeholder map[string]any `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Example     map[string]any `json:"example,omitempty" yaml:"example,omitempty"`
	ExampleJA   map[string]any `json:"exampleJa,omitempty" yaml:"exampleJa,omitempty"`

	DocURL string `json:"docUrl,omitempty" yaml:"docUrl,omitempty"`
}

// LabelFor returns the display name for the requested locale, falling back to
// the default locale when the alternate is missing.
func (t Template) LabelFor(locale string) string {
	if locale == LocaleJA && strings.TrimSpace(t.LabelJA) != "" {
		return t.LabelJA
	}
	return t.Label
}

// HelpFor returns the locale-appropriate help text.
func (t Template) HelpFor(locale string) string {
	if locale == LocaleJA && strings.TrimSpace(t.HelpTextJA) != "" {
		return t.HelpTextJA
	}
	return t.HelpText
}

// ExampleFor returns the locale-preferred example object. An empty map means
// the template has no example to show.
func (t Template) ExampleFor(locale string) map[string]any {
	if locale == LocaleJA && len(t.ExampleJA) > 0 {
		return t.ExampleJA
	}
	return t.Example
}
