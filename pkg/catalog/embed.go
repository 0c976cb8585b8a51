package catalog

import (
	"embed"
	"io/fs"
)

//go:embed data/*.yaml
var embeddedData embed.FS

// DataFS exposes the embedded catalog documents so callers can inspect or
// extend the shipped data without a filesystem dependency.
func DataFS() fs.FS {
	sub, err := fs.Sub(embeddedData, "data")
	if err != nil {
		// Should never happen, but fall back to the raw FS so the catalog
		// remains loadable.
		return embeddedData
	}
	return sub
}
