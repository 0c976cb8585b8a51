package seo

import (
	"fmt"
	"net/http"
	"strings"
)

// WellKnownConfig is the source content for the plain-text endpoints. Empty
// Ads and Security sections disable their endpoints with a 404 instead of
// serving an empty file.
type WellKnownConfig struct {
	// SiteRootURL feeds the sitemap line of the default robots.txt.
	SiteRootURL string

	// Robots replaces the default robots.txt body entirely when set.
	Robots string

	// Ads is the verbatim ads.txt body.
	Ads string

	// SecurityContact and SecurityExpires fill the two required fields of
	// RFC 9116 security.txt. Both must be set for the endpoint to serve.
	SecurityContact string
	SecurityExpires string
}

// WellKnown serves robots.txt, ads.txt and .well-known/security.txt.
type WellKnown struct {
	cfg WellKnownConfig
}

// NewWellKnown constructs the component.
func NewWellKnown(cfg WellKnownConfig) *WellKnown {
	return &WellKnown{cfg: cfg}
}

// RegisterRoutes mounts the endpoints on the supplied mux.
func (w *WellKnown) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /robots.txt", w.handleRobots)
	mux.HandleFunc("GET /ads.txt", w.handleAds)
	mux.HandleFunc("GET /.well-known/security.txt", w.handleSecurity)
}

func (w *WellKnown) handleRobots(rw http.ResponseWriter, _ *http.Request) {
	body := w.cfg.Robots
	if strings.TrimSpace(body) == "" {
		var b strings.Builder
		b.WriteString("User-agent: *\nAllow: /\n")
		if root := strings.TrimSuffix(w.cfg.SiteRootURL, "/"); root != "" {
			fmt.Fprintf(&b, "Sitemap: %s/sitemap.xml\n", root)
		}
		body = b.String()
	}
	writeText(rw, body)
}

func (w *WellKnown) handleAds(rw http.ResponseWriter, r *http.Request) {
	if strings.TrimSpace(w.cfg.Ads) == "" {
		http.NotFound(rw, r)
		return
	}
	writeText(rw, w.cfg.Ads)
}

func (w *WellKnown) handleSecurity(rw http.ResponseWriter, r *http.Request) {
	if w.cfg.SecurityContact == "" || w.cfg.SecurityExpires == "" {
		http.NotFound(rw, r)
		return
	}
	body := fmt.Sprintf("Contact: %s\nExpires: %s\n", w.cfg.SecurityContact, w.cfg.SecurityExpires)
	writeText(rw, body)
}

func writeText(rw http.ResponseWriter, body string) {
	rw.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	_, _ = rw.Write([]byte(body))
}
