package widget

import (
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/herald-cms/go-herald/pkg/catalog"
)

// ChromeClass is a typed identifier for the semantic chrome CSS classes the
// render engine emits.
type ChromeClass string

const (
	ClassWidget     ChromeClass = "schema-widget"
	ClassTypes      ChromeClass = "schema-widget-types"
	ClassGroup      ChromeClass = "schema-widget-group"
	ClassProperties ChromeClass = "schema-widget-properties"
	ClassEditor     ChromeClass = "schema-widget-editor"
	ClassError      ChromeClass = "schema-widget-error"
	ClassEmpty      ChromeClass = "schema-widget-empty"
)

// ChromeClasses overrides the default chrome class names per region. Empty
// entries keep the defaults.
type ChromeClasses struct {
	Widget     string
	Types      string
	Group      string
	Properties string
	Editor     string
	Error      string
	Empty      string
}

func (c ChromeClasses) withDefaults() ChromeClasses {
	pick := func(value string, fallback ChromeClass) string {
		if strings.TrimSpace(value) != "" {
			return value
		}
		return string(fallback)
	}
	return ChromeClasses{
		Widget:     pick(c.Widget, ClassWidget),
		Types:      pick(c.Types, ClassTypes),
		Group:      pick(c.Group, ClassGroup),
		Properties: pick(c.Properties, ClassProperties),
		Editor:     pick(c.Editor, ClassEditor),
		Error:      pick(c.Error, ClassError),
		Empty:      pick(c.Empty, ClassEmpty),
	}
}

// Option configures a widget instance at construction time.
type Option func(*config)

type config struct {
	locale     string
	translator Translator
	chrome     ChromeClasses
	cssVars    map[string]string
	idPrefix   string

	state    State
	hasState bool
}

// WithIDPrefix namespaces the ids of rendered controls so multiple widget
// instances can coexist on one page. Hosts typically pass the bound field id.
func WithIDPrefix(prefix string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(prefix); trimmed != "" {
			cfg.idPrefix = trimmed
		}
	}
}

// WithLocale selects the display locale. Unsupported values fall back to the
// catalog default.
func WithLocale(locale string) Option {
	return func(cfg *config) {
		switch locale {
		case catalog.LocaleEN, catalog.LocaleJA:
			cfg.locale = locale
		}
	}
}

// WithTranslator injects a message translator that overrides the built-in
// bundle.
func WithTranslator(t Translator) Option {
	return func(cfg *config) {
		if t != nil {
			cfg.translator = t
		}
	}
}

// WithChromeClasses overrides the chrome class names used in rendered markup.
func WithChromeClasses(chrome ChromeClasses) Option {
	return func(cfg *config) {
		cfg.chrome = chrome
	}
}

// WithState supplies the initial working state as structured data. The value
// is deep-copied, so later caller-side mutation cannot corrupt the instance.
// An explicitly supplied empty state is respected: no default-on seeding
// happens.
func WithState(state State) Option {
	return func(cfg *config) {
		cfg.state = state.Clone()
		cfg.hasState = true
	}
}

// WithSerialized supplies the initial working state as a serialized string.
// Malformed input falls back to an empty state per ParseState.
func WithSerialized(raw string) Option {
	return func(cfg *config) {
		cfg.state = ParseState(raw)
		cfg.hasState = true
	}
}

// WithTheme derives CSS custom properties from a go-theme selection. Variant
// tokens override the manifest tokens, matching how themes layer elsewhere in
// the admin chrome.
func WithTheme(selection *theme.Selection) Option {
	return func(cfg *config) {
		if selection == nil || selection.Manifest == nil {
			return
		}
		tokens := map[string]string{}
		for name, value := range selection.Manifest.Tokens {
			tokens[name] = value
		}
		if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
			for name, value := range variant.Tokens {
				tokens[name] = value
			}
		}
		if len(tokens) == 0 {
			return
		}
		if cfg.cssVars == nil {
			cfg.cssVars = make(map[string]string, len(tokens))
		}
		for name, value := range tokens {
			cfg.cssVars["--"+name] = value
		}
	}
}
