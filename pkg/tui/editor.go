package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/herald-cms/go-herald/pkg/catalog"
	"github.com/herald-cms/go-herald/pkg/widget"
)

// Option configures the editor session.
type Option func(*Editor)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(e *Editor) {
		if driver != nil {
			e.driver = driver
		}
	}
}

// WithLocale selects the locale used for catalog labels and help text.
func WithLocale(locale string) Option {
	return func(e *Editor) {
		if locale != "" {
			e.locale = locale
		}
	}
}

// Editor runs an interactive session over a widget instance: one multi-select
// for the type selection, one JSON text surface per selected type, and a final
// confirmation before the serialized value is returned.
type Editor struct {
	driver PromptDriver
	locale string
}

// New constructs an editor with defaults (survey driver, default locale).
func New(options ...Option) *Editor {
	e := &Editor{
		driver: newSurveyDriver(),
		locale: catalog.DefaultLocale,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// Run drives one editing session and returns the serialized compound value.
// Toggle and edit semantics are the widget's own: deselecting keeps property
// bags, invalid JSON re-prompts without losing the last-known-good value.
// Declining the final confirmation returns ErrAborted.
func (e *Editor) Run(ctx context.Context, store *catalog.Store, w *widget.Instance) (string, error) {
	if err := e.promptSelection(ctx, store, w); err != nil {
		return "", err
	}
	if err := e.promptProperties(ctx, store, w); err != nil {
		return "", err
	}

	save, err := e.driver.Confirm(ctx, ConfirmConfig{
		Message: "Save schema configuration?",
		Default: true,
	})
	if err != nil {
		return "", err
	}
	if !save {
		return "", ErrAborted
	}
	return w.Serialized(), nil
}

func (e *Editor) promptSelection(ctx context.Context, store *catalog.Store, w *widget.Instance) error {
	var templates []catalog.Template
	var options []string
	for _, group := range store.ByCategory() {
		heading := catalog.CategoryLabel(group.Category, e.locale)
		for _, tpl := range group.Templates {
			templates = append(templates, tpl)
			options = append(options, fmt.Sprintf("%s — %s (%s)", tpl.Type, tpl.LabelFor(e.locale), heading))
		}
	}

	state := w.GetState()
	var defaults []int
	for i, tpl := range templates {
		if state.Selected(tpl.Type) {
			defaults = append(defaults, i)
		}
	}

	indices, err := e.driver.MultiSelect(ctx, SelectConfig{
		Message:  "Select schema types",
		Options:  options,
		Defaults: defaults,
		PageSize: 15,
	})
	if err != nil {
		return err
	}

	chosen := make(map[string]bool, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(templates) {
			chosen[templates[idx].Type] = true
		}
	}
	for _, tpl := range templates {
		if chosen[tpl.Type] == state.Selected(tpl.Type) {
			continue
		}
		w.Toggle(tpl.Type, chosen[tpl.Type])
	}
	return nil
}

func (e *Editor) promptProperties(ctx context.Context, store *catalog.Store, w *widget.Instance) error {
	for _, typeName := range w.GetState().Types {
		tpl, ok := store.Lookup(typeName)
		if !ok {
			continue
		}
		if err := e.promptBag(ctx, tpl, w); err != nil {
			return err
		}
	}
	return nil
}

func (e *Editor) promptBag(ctx context.Context, tpl catalog.Template, w *widget.Instance) error {
	current := prettyBag(w.GetState().Properties[tpl.Type])
	help := tpl.HelpFor(e.locale)
	if hint := fieldHint(tpl); hint != "" {
		if help != "" {
			help += "\n"
		}
		help += hint
	}

	for {
		raw, err := e.driver.TextArea(ctx, TextAreaConfig{
			Message: fmt.Sprintf("Properties for %s (JSON)", tpl.Type),
			Default: current,
			Help:    help,
		})
		if err != nil {
			return err
		}
		if w.EditProperties(tpl.Type, raw) {
			return nil
		}
		if err := e.driver.Info(ctx, fmt.Sprintf("Invalid JSON for %s; previous value kept", tpl.Type)); err != nil {
			return err
		}
		current = raw
	}
}

func fieldHint(tpl catalog.Template) string {
	var parts []string
	if names := fieldNames(tpl.RequiredFields); names != "" {
		parts = append(parts, "Required: "+names)
	}
	if names := fieldNames(tpl.OptionalFields); names != "" {
		parts = append(parts, "Optional: "+names)
	}
	return strings.Join(parts, "\n")
}

func fieldNames(fields []catalog.Field) string {
	names := make([]string, 0, len(fields))
	for _, field := range fields {
		names = append(names, field.Name)
	}
	return strings.Join(names, ", ")
}

func prettyBag(bag map[string]any) string {
	if len(bag) == 0 {
		return "{}"
	}
	data, err := json.MarshalIndent(bag, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
