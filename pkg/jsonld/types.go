package jsonld

import "time"

// Site carries the site-level facts auto fields resolve from.
type Site struct {
	Name    string
	RootURL string
}

// Settings carries the SEO settings auto fields resolve from. A zero value is
// valid: organization-derived properties are simply omitted.
type Settings struct {
	OrganizationName string
	// OrganizationLogo is an absolute image URL, at least 112x112 per the
	// Google publisher logo guidelines.
	OrganizationLogo string
	SocialProfiles   []string
}

// Breadcrumb is one ancestor entry in a page's hierarchy trail.
type Breadcrumb struct {
	Title string
	URL   string
}

// Page carries the per-page facts auto fields resolve from. Zero-valued
// fields cause the corresponding properties to be omitted rather than emitted
// empty.
type Page struct {
	Title            string
	URL              string
	OwnerName        string
	FirstPublishedAt time.Time
	LastPublishedAt  time.Time
	// ImageURL is the page's share image, already rendered to an absolute URL.
	ImageURL string
	// Ancestors is the hierarchy trail from the site root down to the page's
	// parent. The page itself is appended as the final breadcrumb without a
	// URL, per the Google breadcrumb guidelines.
	Ancestors []Breadcrumb
}
