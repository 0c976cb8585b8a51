package widget

import (
	"encoding/json"
	"html"
	"sort"
	"strings"

	"github.com/herald-cms/go-herald/pkg/catalog"
)

// Data attributes consumed by the client runtime and the host adapter. They
// are part of the markup contract: toggles and editing surfaces carry their
// type binding, regions carry stable hooks for partial replacement.
const (
	AttrWidget     = "data-schema-widget-rendered"
	AttrTypes      = "data-schema-types"
	AttrProperties = "data-schema-properties"
	AttrToggle     = "data-schema-toggle"
	AttrEditor     = "data-schema-editor"
	AttrEditorFor  = "data-schema-editor-block"
)

// Render produces the full widget markup: the category-grouped selection
// region followed by the property-editing region. All interpolated text is
// escaped; property JSON and catalog strings are never interpretable as
// markup.
func (w *Instance) Render() string {
	if w.destroyed {
		return ""
	}

	var b strings.Builder
	b.Grow(4096)

	b.WriteString(`<div class="`)
	b.WriteString(html.EscapeString(w.chrome.Widget))
	b.WriteString(`" `)
	b.WriteString(AttrWidget)
	b.WriteString(`="true"`)
	if style := w.cssVarStyle(); style != "" {
		b.WriteString(` style="`)
		b.WriteString(html.EscapeString(style))
		b.WriteString(`"`)
	}
	b.WriteString(">\n")

	w.writeSelectionRegion(&b)

	b.WriteString(`<div class="`)
	b.WriteString(html.EscapeString(w.chrome.Properties))
	b.WriteString(`" `)
	b.WriteString(AttrProperties)
	b.WriteString(">\n")
	b.WriteString(w.renderPropertyRegion())
	b.WriteString("</div>\n")

	b.WriteString("</div>\n")
	return b.String()
}

// RenderPropertyRegion re-renders only the property-editing region. Hosts
// swap this into the region container after a toggle so unrelated editors and
// the selection controls keep their DOM state.
func (w *Instance) RenderPropertyRegion() string {
	if w.destroyed {
		return ""
	}
	return w.renderPropertyRegion()
}

func (w *Instance) writeSelectionRegion(b *strings.Builder) {
	b.WriteString(`<div class="`)
	b.WriteString(html.EscapeString(w.chrome.Types))
	b.WriteString(`" `)
	b.WriteString(AttrTypes)
	b.WriteString(">\n")

	for _, group := range w.catalog.ByCategory() {
		b.WriteString(`    <fieldset class="`)
		b.WriteString(html.EscapeString(w.chrome.Group))
		b.WriteString(`" data-category="`)
		b.WriteString(html.EscapeString(string(group.Category)))
		b.WriteString("\">\n")

		b.WriteString("        <legend>")
		b.WriteString(html.EscapeString(catalog.CategoryLabel(group.Category, w.locale)))
		b.WriteString("</legend>\n")

		for _, tpl := range group.Templates {
			b.WriteString(`        <label><input type="checkbox" id="`)
			b.WriteString(html.EscapeString(w.controlID("toggle", tpl.Type)))
			b.WriteString(`" `)
			b.WriteString(AttrToggle)
			b.WriteString(`="`)
			b.WriteString(html.EscapeString(tpl.Type))
			b.WriteString(`"`)
			if w.state.Selected(tpl.Type) {
				b.WriteString(" checked")
			}
			b.WriteString("> ")
			b.WriteString(html.EscapeString(tpl.LabelFor(w.locale)))
			if tpl.DefaultOn {
				b.WriteString(` <span class="schema-widget-badge">`)
				b.WriteString(html.EscapeString(w.message(msgDefaultBadge)))
				b.WriteString("</span>")
			}
			b.WriteString("</label>\n")
		}

		b.WriteString("    </fieldset>\n")
	}

	b.WriteString("</div>\n")
}

func (w *Instance) renderPropertyRegion() string {
	var b strings.Builder
	b.Grow(2048)

	if len(w.state.Types) == 0 {
		b.WriteString(`    <p class="`)
		b.WriteString(html.EscapeString(w.chrome.Empty))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(w.message(msgSelectPrompt)))
		b.WriteString("</p>\n")
		return b.String()
	}

	for _, typeName := range w.state.Types {
		tpl, ok := w.catalog.Lookup(typeName)
		if !ok {
			// State may reference types the catalog no longer ships. Render
			// nothing for them; the rest of the region is unaffected.
			continue
		}
		w.writeEditorBlock(&b, tpl)
	}
	return b.String()
}

func (w *Instance) writeEditorBlock(b *strings.Builder, tpl catalog.Template) {
	b.WriteString(`    <section class="`)
	b.WriteString(html.EscapeString(w.chrome.Editor))
	b.WriteString(`" `)
	b.WriteString(AttrEditorFor)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(tpl.Type))
	b.WriteString("\">\n")

	b.WriteString("        <h3>")
	b.WriteString(html.EscapeString(tpl.LabelFor(w.locale)))
	b.WriteString("</h3>\n")

	if help := tpl.HelpFor(w.locale); help != "" {
		b.WriteString(`        <p class="schema-widget-help">`)
		b.WriteString(html.EscapeString(help))
		b.WriteString("</p>\n")
	}

	if tpl.DocURL != "" {
		b.WriteString(`        <a class="schema-widget-doc" href="`)
		b.WriteString(html.EscapeString(tpl.DocURL))
		b.WriteString(`" target="_blank" rel="noopener">`)
		b.WriteString(html.EscapeString(w.message(msgDocsLink)))
		b.WriteString("</a>\n")
	}

	w.writeAutoFieldSummary(b, tpl)
	w.writeFieldHints(b, msgRequiredHeading, tpl.RequiredFields)
	w.writeFieldHints(b, msgOptionalHeading, tpl.OptionalFields)
	w.writeEditorSurface(b, tpl)
	w.writeExample(b, tpl)

	b.WriteString("    </section>\n")
}

func (w *Instance) writeAutoFieldSummary(b *strings.Builder, tpl catalog.Template) {
	b.WriteString("        <h4>")
	b.WriteString(html.EscapeString(w.message(msgAutoHeading)))
	b.WriteString("</h4>\n")

	if len(tpl.AutoFields) == 0 {
		b.WriteString(`        <p class="schema-widget-none">`)
		b.WriteString(html.EscapeString(w.message(msgAutoNone)))
		b.WriteString("</p>\n")
		return
	}

	b.WriteString("        <ul class=\"schema-widget-auto\">\n")
	for _, field := range tpl.AutoFields {
		b.WriteString("            <li><code>")
		b.WriteString(html.EscapeString(field.Property))
		b.WriteString("</code> &larr; <code>")
		b.WriteString(html.EscapeString(field.Source))
		b.WriteString("</code>")
		if desc := strings.TrimSpace(field.Description); desc != "" {
			b.WriteString(" &mdash; ")
			b.WriteString(html.EscapeString(desc))
		}
		b.WriteString("</li>\n")
	}
	b.WriteString("        </ul>\n")
}

func (w *Instance) writeFieldHints(b *strings.Builder, headingKey string, fields []catalog.Field) {
	if len(fields) == 0 {
		return
	}
	b.WriteString("        <h4>")
	b.WriteString(html.EscapeString(w.message(headingKey)))
	b.WriteString("</h4>\n")
	b.WriteString("        <ul class=\"schema-widget-fields\">\n")
	for _, field := range fields {
		b.WriteString("            <li><code>")
		b.WriteString(html.EscapeString(field.Name))
		b.WriteString("</code> <em>(")
		b.WriteString(html.EscapeString(string(field.Kind)))
		b.WriteString(")</em>")
		if desc := strings.TrimSpace(field.Description); desc != "" {
			b.WriteString(" &mdash; ")
			b.WriteString(html.EscapeString(desc))
		}
		b.WriteString("</li>\n")
	}
	b.WriteString("        </ul>\n")
}

// controlID builds a page-unique id for a rendered control. The prefix comes
// from WithIDPrefix, so two widgets bound to different fields never collide.
func (w *Instance) controlID(role, typeName string) string {
	return w.idPrefix + "-" + role + "-" + strings.ToLower(typeName)
}

func (w *Instance) writeEditorSurface(b *strings.Builder, tpl catalog.Template) {
	editorID := w.controlID("editor", tpl.Type)

	b.WriteString(`        <label for="`)
	b.WriteString(html.EscapeString(editorID))
	b.WriteString(`">`)
	b.WriteString(html.EscapeString(w.message(msgPropertiesLabel)))
	b.WriteString("</label>\n")

	b.WriteString(`        <textarea id="`)
	b.WriteString(html.EscapeString(editorID))
	b.WriteString(`" `)
	b.WriteString(AttrEditor)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(tpl.Type))
	b.WriteString(`" rows="6"`)
	if w.errored[tpl.Type] {
		b.WriteString(` class="`)
		b.WriteString(html.EscapeString(w.chrome.Error))
		b.WriteString(`" aria-invalid="true"`)
	}
	b.WriteString(">")
	b.WriteString(html.EscapeString(prettyJSON(w.effectiveBag(tpl.Type))))
	b.WriteString("</textarea>\n")

	if w.errored[tpl.Type] {
		b.WriteString(`        <span class="schema-widget-error-text">`)
		b.WriteString(html.EscapeString(w.message(msgInvalidJSON)))
		b.WriteString("</span>\n")
	}
}

func (w *Instance) writeExample(b *strings.Builder, tpl catalog.Template) {
	example := tpl.ExampleFor(w.locale)
	if len(example) == 0 {
		return
	}
	b.WriteString("        <details class=\"schema-widget-example\">\n")
	b.WriteString("            <summary>")
	b.WriteString(html.EscapeString(w.message(msgExampleHeading)))
	b.WriteString("</summary>\n")
	b.WriteString("            <pre>")
	b.WriteString(html.EscapeString(prettyJSON(example)))
	b.WriteString("</pre>\n")
	b.WriteString("        </details>\n")
}

func (w *Instance) cssVarStyle() string {
	if len(w.cssVars) == 0 {
		return ""
	}
	names := make([]string, 0, len(w.cssVars))
	for name := range w.cssVars {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(w.cssVars[name])
		b.WriteString("; ")
	}
	return strings.TrimSpace(b.String())
}

// prettyJSON renders a property bag with stable two-space indentation.
// encoding/json sorts map keys, so output is deterministic.
func prettyJSON(bag map[string]any) string {
	if len(bag) == 0 {
		return "{}"
	}
	data, err := json.MarshalIndent(bag, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
