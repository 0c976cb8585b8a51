package widget

import (
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/herald-cms/go-herald/pkg/catalog"
)

func TestRenderSelectionRegionGroupsByCategory(t *testing.T) {
	t.Parallel()

	w := New(testCatalog(t))
	html := w.Render()

	siteIdx := strings.Index(html, `data-category="site"`)
	contentIdx := strings.Index(html, `data-category="content"`)
	if siteIdx < 0 || contentIdx < 0 {
		t.Fatalf("category groups missing from markup:\n%s", html)
	}
	if siteIdx > contentIdx {
		t.Fatal("site-wide group rendered after content group")
	}

	// Default-on types render checked and badged; others do not.
	if !strings.Contains(html, AttrToggle+`="WebSite" checked`) {
		t.Fatal("default-on toggle not checked")
	}
	if strings.Contains(html, AttrToggle+`="Article" checked`) {
		t.Fatal("unselected toggle rendered checked")
	}
	if !strings.Contains(html, "schema-widget-badge") {
		t.Fatal("default badge missing")
	}
}

func TestRenderEmptySelectionShowsPrompt(t *testing.T) {
	t.Parallel()

	w := New(testCatalog(t), WithState(NewState()))
	region := w.RenderPropertyRegion()

	if !strings.Contains(region, "Select a schema type") {
		t.Fatalf("placeholder prompt missing:\n%s", region)
	}
	if strings.Contains(region, AttrEditor+"=") {
		t.Fatal("editor rendered despite empty selection")
	}
}

func TestRenderEditorBlocksFollowSelectionOrder(t *testing.T) {
	t.Parallel()

	w := New(testCatalog(t), WithState(NewState()))
	w.Toggle("Product", true)
	w.Toggle("Article", true)

	region := w.RenderPropertyRegion()
	productIdx := strings.Index(region, AttrEditorFor+`="Product"`)
	articleIdx := strings.Index(region, AttrEditorFor+`="Article"`)
	if productIdx < 0 || articleIdx < 0 {
		t.Fatalf("editor blocks missing:\n%s", region)
	}
	if productIdx > articleIdx {
		t.Fatal("editors not in selection order")
	}
}

func TestRenderPrefillsPlaceholderWhenNoBagStored(t *testing.T) {
	t.Parallel()

	w := New(testCatalog(t), WithSerialized(`{"types":["Article"],"properties":{}}`))
	region := w.RenderPropertyRegion()

	if got := strings.Count(region, "<section"); got != 1 {
		t.Fatalf("expected exactly one editor block, got %d", got)
	}
	// The Article placeholder seeds the editing surface.
	if !strings.Contains(region, "articleSection") {
		t.Fatalf("placeholder not pre-filled:\n%s", region)
	}
}

func TestRenderUnknownTypeProducesNoEditor(t *testing.T) {
	t.Parallel()

	w := New(testCatalog(t), WithSerialized(`{"types":["Spaceship","Article"],"properties":{}}`))
	region := w.RenderPropertyRegion()

	if strings.Contains(region, "Spaceship") {
		t.Fatalf("unknown type leaked into markup:\n%s", region)
	}
	if !strings.Contains(region, AttrEditorFor+`="Article"`) {
		t.Fatal("known type suppressed alongside unknown one")
	}
}

func TestRenderEscapesPropertyValues(t *testing.T) {
	t.Parallel()

	w := New(testCatalog(t), WithState(State{
		Types: []string{"Article"},
		Properties: map[string]map[string]any{
			"Article": {"articleSection": `</textarea><script>alert(1)</script>`},
		},
	}))
	region := w.RenderPropertyRegion()

	if strings.Contains(region, "<script>") {
		t.Fatalf("unescaped script tag in markup:\n%s", region)
	}
	if !strings.Contains(region, "&lt;script&gt;") {
		t.Fatal("property value not visible in escaped form")
	}
}

func TestRenderErrorIndicator(t *testing.T) {
	t.Parallel()

	w := New(testCatalog(t), WithSerialized(`{"types":["Article"],"properties":{}}`))
	w.EditProperties("Article", "{ nope")

	region := w.RenderPropertyRegion()
	if !strings.Contains(region, `aria-invalid="true"`) {
		t.Fatal("errored surface missing aria-invalid")
	}
	if !strings.Contains(region, "schema-widget-error") {
		t.Fatal("errored surface missing error chrome class")
	}

	w.EditProperties("Article", `{"articleSection":"Tech"}`)
	region = w.RenderPropertyRegion()
	if strings.Contains(region, `aria-invalid="true"`) {
		t.Fatal("error indicator survived a valid edit")
	}
}

func TestRenderLocalizedLabels(t *testing.T) {
	t.Parallel()

	w := New(testCatalog(t), WithLocale(catalog.LocaleJA))
	html := w.Render()

	if !strings.Contains(html, "ウェブサイト") {
		t.Fatalf("Japanese label missing:\n%s", html)
	}
	if !strings.Contains(html, "サイト全体") {
		t.Fatal("Japanese category heading missing")
	}
}

func TestRenderAutoFieldSummaryAndNoneIndicator(t *testing.T) {
	t.Parallel()

	w := New(testCatalog(t), WithSerialized(`{"types":["Article","Person"],"properties":{}}`))
	region := w.RenderPropertyRegion()

	if !strings.Contains(region, "page.title") {
		t.Fatal("auto field source missing from summary")
	}
	// Person has no auto fields; its block carries the localized none text.
	if !strings.Contains(region, "No properties are auto-populated") {
		t.Fatal("auto-fields none indicator missing")
	}
}

func TestRenderAppliesThemeTokens(t *testing.T) {
	t.Parallel()

	selection := &theme.Selection{
		Theme:   "acme",
		Variant: "dark",
		Manifest: &theme.Manifest{
			Name:   "acme",
			Tokens: map[string]string{"brand": "#123456"},
			Variants: map[string]theme.Variant{
				"dark": {Tokens: map[string]string{"brand": "#654321"}},
			},
		},
	}

	w := New(testCatalog(t), WithTheme(selection))
	html := w.Render()
	if !strings.Contains(html, "--brand: #654321") {
		t.Fatalf("variant token not applied as CSS var:\n%s", html)
	}
}

type upcaseTranslator struct{}

func (upcaseTranslator) Translate(_, key string) (string, error) {
	if key == "widget.selectPrompt" {
		return "PICK ONE", nil
	}
	return "", nil
}

func TestRenderUsesInjectedTranslator(t *testing.T) {
	t.Parallel()

	w := New(testCatalog(t), WithState(NewState()), WithTranslator(upcaseTranslator{}))
	if !strings.Contains(w.RenderPropertyRegion(), "PICK ONE") {
		t.Fatal("injected translator ignored")
	}
}
