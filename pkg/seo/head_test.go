package seo

import (
	"strings"
	"testing"
	"time"

	"github.com/herald-cms/go-herald/pkg/catalog"
	"github.com/herald-cms/go-herald/pkg/jsonld"
	"github.com/herald-cms/go-herald/pkg/widget"
)

func testService(t *testing.T) *Service {
	t.Helper()
	store, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	svc, err := New(store, Config{
		Site:               jsonld.Site{Name: "Herald Times", RootURL: "https://example.com/"},
		Settings:           jsonld.Settings{OrganizationName: "Herald Publishing"},
		TitleSuffix:        " | Herald Times",
		TwitterSite:        "@herald",
		Locale:             "ja_JP",
		FaviconURL:         "/static/favicon.ico",
		GoogleVerification: "herald-verify-token",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return svc
}

func testPageMeta() PageMeta {
	return PageMeta{
		Page: jsonld.Page{
			Title:            "Launch announcement",
			URL:              "https://example.com/news/launch/",
			FirstPublishedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
			ImageURL:         "https://example.com/og.png",
		},
		Description: "The launch, in detail.",
	}
}

func TestTitleResolution(t *testing.T) {
	t.Parallel()

	svc := testService(t)
	cases := []struct {
		name string
		page PageMeta
		want string
	}{
		{
			name: "page title with suffix",
			page: PageMeta{Page: jsonld.Page{Title: "Launch"}},
			want: "Launch | Herald Times",
		},
		{
			name: "seo title overrides",
			page: PageMeta{Page: jsonld.Page{Title: "Launch"}, SEOTitle: "Big Launch"},
			want: "Big Launch | Herald Times",
		},
		{
			name: "markup stripped",
			page: PageMeta{SEOTitle: "<b>Launch</b>"},
			want: "Launch | Herald Times",
		},
		{
			name: "empty falls back to site name",
			page: PageMeta{},
			want: "Herald Times",
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := svc.Title(tc.page); got != tc.want {
				t.Fatalf("Title() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRenderHead(t *testing.T) {
	t.Parallel()

	svc := testService(t)
	state := widget.State{Types: []string{"Article"}, Properties: map[string]map[string]any{}}

	head, err := svc.RenderHead(testPageMeta(), state)
	if err != nil {
		t.Fatalf("RenderHead: %v", err)
	}

	for _, want := range []string{
		"<title>Launch announcement | Herald Times</title>",
		`<meta name="description" content="The launch, in detail.">`,
		`<link rel="canonical" href="https://example.com/news/launch/">`,
		`<meta property="og:type" content="article">`,
		`<meta property="og:image" content="https://example.com/og.png">`,
		`<meta property="og:locale" content="ja_JP">`,
		`<meta name="twitter:card" content="summary_large_image">`,
		`<meta name="twitter:site" content="@herald">`,
		`<link rel="icon" href="/static/favicon.ico">`,
		`<meta name="google-site-verification" content="herald-verify-token">`,
		`<script type="application/ld+json">`,
	} {
		if !strings.Contains(head, want) {
			t.Errorf("head missing %q:\n%s", want, head)
		}
	}
	if strings.Contains(head, `name="robots"`) {
		t.Error("robots meta emitted for an indexable page")
	}
}

func TestRenderHeadNoIndex(t *testing.T) {
	t.Parallel()

	svc := testService(t)
	page := testPageMeta()
	page.NoIndex = true

	head, err := svc.RenderHead(page, widget.State{})
	if err != nil {
		t.Fatalf("RenderHead: %v", err)
	}
	if !strings.Contains(head, `<meta name="robots" content="noindex, nofollow">`) {
		t.Fatalf("noindex page missing robots meta:\n%s", head)
	}
	if strings.Contains(head, "application/ld+json") {
		t.Fatal("empty selection still emitted a JSON-LD script")
	}
}

func TestRenderHeadEscapesMetaContent(t *testing.T) {
	t.Parallel()

	svc := testService(t)
	page := testPageMeta()
	page.Description = `He said "hello" & left`

	head, err := svc.RenderHead(page, widget.State{})
	if err != nil {
		t.Fatalf("RenderHead: %v", err)
	}
	if !strings.Contains(head, "&amp;") || !strings.Contains(head, "&quot;") {
		t.Fatalf("meta content not escaped:\n%s", head)
	}
}
