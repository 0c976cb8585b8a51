// Package jsonld assembles the JSON-LD output for a page from the widget's
// compound value: for every selected type it resolves the catalog's
// auto-populated properties from page, site and settings data, deep-merges the
// editor's custom property bag over them, and emits the result as a script
// tag ready for the document head.
package jsonld
