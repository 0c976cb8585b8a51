package seo

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// TemplatesFS exposes the embedded head templates rooted at the template
// names themselves, ready for a renderer's fs loader.
func TemplatesFS() (fs.FS, error) {
	return fs.Sub(templatesFS, "templates")
}
