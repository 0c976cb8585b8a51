package catalog

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	helpPolicyOnce sync.Once
	helpPolicy     *bluemonday.Policy
)

// sanitizeHelpText reduces catalog help strings to plain text. Catalog data
// ships with the module, but downstream projects can extend the catalog with
// their own documents, so the strings are treated as untrusted; renderers
// additionally escape them on output.
func sanitizeHelpText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(helpSanitizer().Sanitize(trimmed))
}

func helpSanitizer() *bluemonday.Policy {
	helpPolicyOnce.Do(func() {
		helpPolicy = bluemonday.StrictPolicy()
	})
	return helpPolicy
}
