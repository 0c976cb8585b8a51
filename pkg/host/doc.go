// Package host binds widget instances to their surrounding page: it
// instantiates the markup contract (hidden input plus container) from a host
// template, keeps the hidden input's value in sync with the widget state so a
// plain form submit carries the serialized compound value, registers the
// widget constructor with a host-provided registry, and bulk-initializes every
// flagged mount point in a rendered document.
package host
