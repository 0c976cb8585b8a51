package catalog

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	t.Parallel()

	store, err := Load()
	if err != nil {
		t.Fatalf("load embedded catalog: %v", err)
	}
	if store.Empty() {
		t.Fatal("embedded catalog is empty")
	}

	wantDefaults := []string{"WebSite", "Organization", "BreadcrumbList"}
	if diff := cmp.Diff(wantDefaults, store.DefaultOn()); diff != "" {
		t.Fatalf("default-on types mismatch (-want +got):\n%s", diff)
	}

	for _, name := range []string{"Article", "Product", "Event", "FAQPage"} {
		tpl, ok := store.Lookup(name)
		if !ok {
			t.Fatalf("expected template %q in embedded catalog", name)
		}
		if tpl.DefaultOn {
			t.Fatalf("page-selectable template %q must not be default-on", name)
		}
	}
}

func TestLookupUnknownType(t *testing.T) {
	t.Parallel()

	store := MustLoad()
	if _, ok := store.Lookup("Spaceship"); ok {
		t.Fatal("unknown type resolved to a template")
	}
	if _, ok := (*Store)(nil).Lookup("Article"); ok {
		t.Fatal("nil store resolved a template")
	}
}

func TestByCategoryOrder(t *testing.T) {
	t.Parallel()

	groups := MustLoad().ByCategory()
	if len(groups) == 0 {
		t.Fatal("no category groups")
	}
	if groups[0].Category != CategorySite {
		t.Fatalf("first group = %q, want %q", groups[0].Category, CategorySite)
	}

	order := CategoryOrder()
	position := map[Category]int{}
	for idx, category := range order {
		position[category] = idx
	}
	last := -1
	for _, group := range groups {
		if len(group.Templates) == 0 {
			t.Fatalf("category %q rendered empty", group.Category)
		}
		pos, ok := position[group.Category]
		if !ok {
			t.Fatalf("unexpected category %q", group.Category)
		}
		if pos <= last {
			t.Fatalf("category %q out of order", group.Category)
		}
		last = pos
	}
}

func TestLocalizedAccessors(t *testing.T) {
	t.Parallel()

	tpl := Template{
		Type:     "Article",
		Label:    "Article",
		LabelJA:  "記事",
		HelpText: "General article markup.",
		Example:  map[string]any{"articleSection": "Tech"},
	}

	if got := tpl.LabelFor(LocaleJA); got != "記事" {
		t.Fatalf("LabelFor(ja) = %q", got)
	}
	if got := tpl.LabelFor(LocaleEN); got != "Article" {
		t.Fatalf("LabelFor(en) = %q", got)
	}
	// Missing alternates fall back to the default locale.
	if got := tpl.HelpFor(LocaleJA); got != "General article markup." {
		t.Fatalf("HelpFor(ja) fallback = %q", got)
	}
	if got := tpl.ExampleFor(LocaleJA); got["articleSection"] != "Tech" {
		t.Fatalf("ExampleFor(ja) fallback = %v", got)
	}
}

func TestLoadFSRejectsBadDocuments(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "duplicate type",
			content: "templates:\n  - {type: Article, label: A, category: content}\n  - {type: Article, label: B, category: content}\n",
			wantErr: "duplicate template",
		},
		{
			name:    "unknown category",
			content: "templates:\n  - {type: Article, label: A, category: galaxy}\n",
			wantErr: "unknown category",
		},
		{
			name:    "unknown field kind",
			content: "templates:\n  - type: Article\n    label: A\n    category: content\n    requiredFields:\n      - {name: offers, kind: money}\n",
			wantErr: "unknown kind",
		},
		{
			name:    "empty type",
			content: "templates:\n  - {type: \"\", label: A, category: content}\n",
			wantErr: "empty type",
		},
		{
			name:    "empty file",
			content: "   ",
			wantErr: "is empty",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			fsys := fstest.MapFS{"catalog.yaml": &fstest.MapFile{Data: []byte(tc.content)}}
			if _, err := LoadFS(fsys); err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("LoadFS error = %v, want substring %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadFSAcceptsJSONDocuments(t *testing.T) {
	t.Parallel()

	doc := `{"templates":[{"type":"Article","label":"Article","category":"content","defaultOn":false}]}`
	fsys := fstest.MapFS{"catalog.json": &fstest.MapFile{Data: []byte(doc)}}

	store, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	if _, ok := store.Lookup("Article"); !ok {
		t.Fatal("JSON document did not register Article")
	}
}

func TestLoadFSSanitizesHelpText(t *testing.T) {
	t.Parallel()

	doc := "templates:\n  - type: Article\n    label: A\n    category: content\n    helpText: \"Use <strong>bold</strong><script>alert(1)</script> text\"\n"
	fsys := fstest.MapFS{"catalog.yaml": &fstest.MapFile{Data: []byte(doc)}}

	store, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	tpl, _ := store.Lookup("Article")
	if strings.Contains(tpl.HelpText, "<") {
		t.Fatalf("markup survived sanitization: %q", tpl.HelpText)
	}
	if !strings.Contains(tpl.HelpText, "bold") || !strings.Contains(tpl.HelpText, "text") {
		t.Fatalf("text content lost: %q", tpl.HelpText)
	}
}
