package jsonld

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/herald-cms/go-herald/pkg/catalog"
	"github.com/herald-cms/go-herald/pkg/widget"
)

// Context is the vocabulary URL stamped on every emitted object.
const Context = "https://schema.org"

// Builder resolves auto fields against fixed site facts. One builder serves
// any number of pages; it holds no per-page state.
type Builder struct {
	store    *catalog.Store
	site     Site
	settings Settings
}

// NewBuilder constructs a builder over the given catalog and site facts.
func NewBuilder(store *catalog.Store, site Site, settings Settings) *Builder {
	return &Builder{store: store, site: site, settings: settings}
}

// Build assembles one JSON-LD object per selected type, in selection order.
// Types the catalog does not know are skipped. Organization is emitted only
// when an organization name is configured, and BreadcrumbList only when the
// trail holds at least two items.
func (b *Builder) Build(page Page, state widget.State) []map[string]any {
	objects := make([]map[string]any, 0, len(state.Types))
	for _, typeName := range state.Types {
		tpl, ok := b.store.Lookup(typeName)
		if !ok {
			continue
		}
		if typeName == "Organization" && b.settings.OrganizationName == "" {
			continue
		}

		obj := map[string]any{
			"@context": Context,
			"@type":    typeName,
		}
		for _, field := range tpl.AutoFields {
			if value, ok := b.resolve(field.Property, field.Source, page); ok {
				obj[field.Property] = value
			}
		}
		obj = deepMerge(obj, state.Properties[typeName])

		// A breadcrumb trail needs at least a parent and the current page;
		// a lone item carries no hierarchy information.
		if typeName == "BreadcrumbList" && listLen(obj["itemListElement"]) < 2 {
			continue
		}
		objects = append(objects, obj)
	}
	return objects
}

// ScriptTag marshals the page's JSON-LD graph into a single script tag. An
// empty selection yields an empty string. encoding/json escapes angle
// brackets, so the payload can never terminate the surrounding script
// element.
func (b *Builder) ScriptTag(page Page, state widget.State) (string, error) {
	objects := b.Build(page, state)
	if len(objects) == 0 {
		return "", nil
	}

	var payload any = objects
	if len(objects) == 1 {
		payload = objects[0]
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("jsonld: marshal graph: %w", err)
	}
	return `<script type="application/ld+json">` + string(data) + `</script>`, nil
}

// resolve maps an auto-field source onto a concrete value. The second return
// is false when the underlying fact is unset; the property is then omitted
// instead of emitted empty.
func (b *Builder) resolve(property, source string, page Page) (any, bool) {
	switch source {
	case "site.site_name":
		return nonEmpty(b.site.Name)
	case "site.root_url":
		return nonEmpty(b.site.RootURL)
	case "settings.organization_name":
		if b.settings.OrganizationName == "" {
			return nil, false
		}
		if entityValued(property) {
			return b.organization(), true
		}
		return b.settings.OrganizationName, true
	case "settings.organization_logo":
		if b.settings.OrganizationLogo == "" {
			return nil, false
		}
		return map[string]any{"@type": "ImageObject", "url": b.settings.OrganizationLogo}, true
	case "settings.social_profiles":
		if len(b.settings.SocialProfiles) == 0 {
			return nil, false
		}
		profiles := make([]any, len(b.settings.SocialProfiles))
		for i, url := range b.settings.SocialProfiles {
			profiles[i] = url
		}
		return profiles, true
	case "page.title":
		return nonEmpty(page.Title)
	case "page.owner":
		if page.OwnerName == "" {
			return nil, false
		}
		return map[string]any{"@type": "Person", "name": page.OwnerName}, true
	case "page.first_published_at":
		return timestamp(page.FirstPublishedAt)
	case "page.last_published_at":
		return timestamp(page.LastPublishedAt)
	case "page.og_image":
		return nonEmpty(page.ImageURL)
	case "page.ancestors":
		items := breadcrumbItems(page)
		if len(items) == 0 {
			return nil, false
		}
		return items, true
	default:
		return nil, false
	}
}

// entityValued lists the properties whose value is the publishing
// organization as a nested entity rather than a plain name.
func entityValued(property string) bool {
	switch property {
	case "publisher", "organizer", "provider", "hiringOrganization":
		return true
	default:
		return false
	}
}

func (b *Builder) organization() map[string]any {
	org := map[string]any{
		"@type": "Organization",
		"name":  b.settings.OrganizationName,
	}
	if b.settings.OrganizationLogo != "" {
		org["logo"] = map[string]any{"@type": "ImageObject", "url": b.settings.OrganizationLogo}
	}
	return org
}

// breadcrumbItems builds the ListItem trail: every ancestor links to its
// page, the current page closes the list without a URL.
func breadcrumbItems(page Page) []any {
	var items []any
	position := 0
	for _, crumb := range page.Ancestors {
		if crumb.Title == "" {
			continue
		}
		position++
		item := map[string]any{
			"@type":    "ListItem",
			"position": position,
			"name":     crumb.Title,
		}
		if crumb.URL != "" {
			item["item"] = crumb.URL
		}
		items = append(items, item)
	}
	if page.Title != "" {
		position++
		items = append(items, map[string]any{
			"@type":    "ListItem",
			"position": position,
			"name":     page.Title,
		})
	}
	return items
}

func nonEmpty(value string) (any, bool) {
	if value == "" {
		return nil, false
	}
	return value, true
}

func timestamp(t time.Time) (any, bool) {
	if t.IsZero() {
		return nil, false
	}
	return t.Format(time.RFC3339), true
}

func listLen(value any) int {
	list, ok := value.([]any)
	if !ok {
		return 0
	}
	return len(list)
}

// deepMerge lays the custom property bag over the auto-resolved object.
// Nested objects merge key by key; any other collision is won by the custom
// value, so editors can always override what the server filled in.
func deepMerge(auto map[string]any, custom map[string]any) map[string]any {
	for key, value := range custom {
		existing, exists := auto[key]
		if exists {
			existingMap, okA := existing.(map[string]any)
			valueMap, okB := value.(map[string]any)
			if okA && okB {
				auto[key] = deepMerge(existingMap, valueMap)
				continue
			}
		}
		auto[key] = value
	}
	return auto
}
