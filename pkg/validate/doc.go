// Package validate checks property bags against the catalog's field
// descriptors. The widget itself only enforces JSON well-formedness; this
// package gives hosts an advisory structural check (required fields present,
// values of the hinted kind) they can surface at publish time.
package validate
