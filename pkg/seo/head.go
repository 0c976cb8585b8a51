package seo

import (
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/herald-cms/go-herald/pkg/catalog"
	"github.com/herald-cms/go-herald/pkg/jsonld"
	"github.com/herald-cms/go-herald/pkg/render/template"
	"github.com/herald-cms/go-herald/pkg/render/template/gotemplate"
	"github.com/herald-cms/go-herald/pkg/widget"
)

// headTemplate is the embedded template name rendered by RenderHead.
const headTemplate = "seo_head"

// Config carries the site-level settings head rendering needs beyond what the
// JSON-LD builder resolves.
type Config struct {
	Site     jsonld.Site
	Settings jsonld.Settings

	// TitleSuffix is appended to every page title, e.g. " | Herald Times".
	TitleSuffix string
	// TwitterSite is the site's @handle for Twitter cards.
	TwitterSite string
	// Locale is the og:locale value, e.g. "ja_JP".
	Locale string
	// FaviconURL emits a favicon link when set.
	FaviconURL string
	// GoogleVerification emits a google-site-verification meta tag when set.
	GoogleVerification string
}

// PageMeta is the per-page input to head rendering. The embedded jsonld.Page
// feeds auto-field resolution; the rest feeds the meta tags.
type PageMeta struct {
	jsonld.Page

	// SEOTitle overrides the page title in the rendered head when set.
	SEOTitle    string
	Description string
	NoIndex     bool
}

// Option configures the service.
type Option func(*Service)

// WithRenderer replaces the default pongo2-backed engine, letting hosts reuse
// their own template renderer for the head surface.
func WithRenderer(renderer template.TemplateRenderer) Option {
	return func(s *Service) {
		if renderer != nil {
			s.renderer = renderer
		}
	}
}

// Service renders document heads for pages carrying a widget value.
type Service struct {
	cfg      Config
	builder  *jsonld.Builder
	renderer template.TemplateRenderer
}

// New constructs the head service. Without WithRenderer it builds a
// pongo2-backed engine over the embedded templates.
func New(store *catalog.Store, cfg Config, options ...Option) (*Service, error) {
	s := &Service{
		cfg:     cfg,
		builder: jsonld.NewBuilder(store, cfg.Site, cfg.Settings),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	if s.renderer == nil {
		templates, err := TemplatesFS()
		if err != nil {
			return nil, fmt.Errorf("seo: embedded templates: %w", err)
		}
		engine, err := gotemplate.New(gotemplate.WithFS(templates))
		if err != nil {
			return nil, fmt.Errorf("seo: build renderer: %w", err)
		}
		s.renderer = engine
	}
	return s, nil
}

// Title resolves the rendered page title: the SEO override when present,
// otherwise the page title, with the configured suffix appended.
func (s *Service) Title(page PageMeta) string {
	title := strings.TrimSpace(page.SEOTitle)
	if title == "" {
		title = strings.TrimSpace(page.Title)
	}
	title = plainText(title)
	if title == "" {
		return strings.TrimSpace(s.cfg.Site.Name)
	}
	return title + s.cfg.TitleSuffix
}

// RenderHead renders the full head fragment for a page: meta tags plus the
// JSON-LD script tag for the page's selected types.
func (s *Service) RenderHead(page PageMeta, state widget.State) (string, error) {
	script, err := s.builder.ScriptTag(page.Page, state)
	if err != nil {
		return "", err
	}

	robots := ""
	if page.NoIndex {
		robots = "noindex, nofollow"
	}
	ogType := "website"
	for _, typeName := range state.Types {
		switch typeName {
		case "Article", "NewsArticle", "BlogPosting":
			ogType = "article"
		}
	}

	data := map[string]any{
		"title":        s.Title(page),
		"description":  plainText(page.Description),
		"canonical":    page.URL,
		"robots":       robots,
		"og_type":      ogType,
		"image":        page.ImageURL,
		"site_name":    s.cfg.Site.Name,
		"locale":       s.cfg.Locale,
		"twitter_card": twitterCard(page),
		"twitter_site": s.cfg.TwitterSite,
		"favicon":      s.cfg.FaviconURL,
		"verification": s.cfg.GoogleVerification,
		"jsonld":       script,
	}
	rendered, err := s.renderer.RenderTemplate(headTemplate, data)
	if err != nil {
		return "", fmt.Errorf("seo: render head: %w", err)
	}
	return rendered, nil
}

func twitterCard(page PageMeta) string {
	if page.ImageURL != "" {
		return "summary_large_image"
	}
	return "summary"
}

var (
	textPolicy     *bluemonday.Policy
	textPolicyOnce sync.Once
)

// plainText strips any markup editors pasted into title or description
// settings. Quoting is left to the template engine's autoescape.
func plainText(value string) string {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(value)))
}
