// Package catalog holds the static table of supported Schema.org types and
// their metadata: display labels per locale, grouping categories, the auto
// populated field descriptors, required/optional custom field hints, seed
// placeholders, reference examples, and documentation links. The widget treats
// the catalog purely as a read-only data source; it is loaded once from
// embedded YAML documents and never mutated at runtime. Downstream projects
// can load additional documents through LoadFS to extend the shipped set.
package catalog
