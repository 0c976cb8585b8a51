// Package template declares the rendering seam used by the SEO head builder
// and any chrome that goes through file templates. The gotemplate subpackage
// supplies the default pongo2-backed implementation.
package template
