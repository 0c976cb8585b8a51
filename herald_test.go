package herald

import (
	"io/fs"
	"strings"
	"testing"
)

func TestAssetsFSContainsClientRuntime(t *testing.T) {
	data, err := fs.ReadFile(AssetsFS(), "schema-widget.iife.js")
	if err != nil {
		t.Fatalf("expected client runtime to be readable: %v", err)
	}
	script := string(data)
	if !strings.Contains(script, "HeraldSchemaWidget") {
		t.Fatal("expected runtime to expose its global namespace")
	}
	if !strings.Contains(script, "herald.widgets.SchemaWidget") {
		t.Fatal("expected runtime to register under the widget registry name")
	}
}

func TestAssetsFSContainsStylesheet(t *testing.T) {
	data, err := fs.ReadFile(AssetsFS(), "schema-widget.css")
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	if !strings.Contains(string(data), ".schema-widget-error") {
		t.Fatal("expected stylesheet to style the error indicator")
	}
}

func TestHeadTemplates(t *testing.T) {
	templates, err := HeadTemplates()
	if err != nil {
		t.Fatalf("HeadTemplates: %v", err)
	}
	if _, err := fs.ReadFile(templates, "seo_head.tmpl"); err != nil {
		t.Fatalf("expected head template to be readable: %v", err)
	}
}
