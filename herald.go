// Package herald is the root of the Herald SEO toolkit: a schema selector
// form control (pkg/widget) with its static type catalog (pkg/catalog), the
// host binding and page bootstrap (pkg/host), JSON-LD assembly and head
// rendering for the published site (pkg/jsonld, pkg/seo), and an interactive
// terminal editor (pkg/tui). This package exposes the embedded browser assets
// so applications can serve them without a frontend build step.
package herald

import (
	"embed"
	"io/fs"

	"github.com/herald-cms/go-herald/pkg/seo"
)

//go:embed assets/*.js assets/*.css
var embeddedAssets embed.FS

// AssetsFS exposes the client runtime bundle and stylesheet.
//
// Typical mount:
//
//	mux.Handle("/static/herald/",
//	  http.StripPrefix("/static/herald/",
//	    http.FileServerFS(herald.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}

// WidgetScript returns the client runtime source for inlining into admin
// pages that cannot serve static files.
func WidgetScript() (string, error) {
	data, err := fs.ReadFile(AssetsFS(), "schema-widget.iife.js")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WidgetStylesheet returns the widget chrome styles for inlining.
func WidgetStylesheet() (string, error) {
	data, err := fs.ReadFile(AssetsFS(), "schema-widget.css")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// HeadTemplates exposes the built-in head templates so callers can reuse or
// override them without importing the seo package directly.
func HeadTemplates() (fs.FS, error) {
	return seo.TemplatesFS()
}
