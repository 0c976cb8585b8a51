// Package widget implements the schema selector form control: the compound
// value it edits (a set of selected Schema.org types plus a JSON property bag
// per type), the deterministic projection of that state into HTML, and the
// interaction handlers that turn toggles and JSON edits into state mutations
// with localized partial re-renders. Instances are single-owner and fully
// synchronous; the host adapter in pkg/host binds them to form fields and the
// embedded client runtime mirrors the same behavior in the browser.
package widget
