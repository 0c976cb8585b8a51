// Package seo renders the document-head surface the widget's value ultimately
// feeds: title and meta tags, Open Graph and Twitter cards, the canonical
// link, and the JSON-LD graph assembled by pkg/jsonld. It also serves the
// well-known plain-text endpoints (robots.txt, ads.txt, security.txt) from
// configured settings.
package seo
