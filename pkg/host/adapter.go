package host

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/herald-cms/go-herald/pkg/catalog"
	"github.com/herald-cms/go-herald/pkg/widget"
)

// Tokens the host template carries. The adapter substitutes them with the
// bound field's name and id before instantiating the markup contract.
const (
	TokenName = "__NAME__"
	TokenID   = "__ID__"

	// ContainerSuffix links the widget container to its hidden input: the
	// container's id is the input's id plus this suffix.
	ContainerSuffix = "-container"
)

// ErrMarkupContract is wrapped by construction errors when the instantiated
// template is missing the hidden input or the container the adapter needs.
var ErrMarkupContract = errors.New("widget markup contract not satisfied")

// Config describes one widget binding: the host markup template, the form
// field it serves, and the catalog plus options for the inner widget.
type Config struct {
	// Template is the host markup carrying TokenName/TokenID placeholders. It
	// must produce a hidden input with id TokenID and a container element with
	// id TokenID + ContainerSuffix.
	Template string

	// Name and ID identify the form field the widget edits.
	Name string
	ID   string

	Catalog *catalog.Store

	// Serialized optionally seeds the widget from a wire-format string. When
	// empty, the hidden input's pre-rendered value attribute is used instead;
	// when that is empty too, the widget seeds its catalog defaults.
	Serialized string

	// Options are passed through to the inner widget after the adapter's own
	// bindings (id prefix, initial state).
	Options []widget.Option
}

// BoundWidget is a widget wired to a concrete form field. All reads and
// mutations go through it so the hidden input and the container markup never
// drift from the widget state.
type BoundWidget struct {
	name string
	id   string

	// fragment is a synthetic parent holding the instantiated template nodes.
	fragment  *html.Node
	input     *html.Node
	container *html.Node

	inner *widget.Instance
}

// NewBoundWidget instantiates the host template for one field and binds a
// widget instance to it. The returned error wraps ErrMarkupContract when the
// template does not produce the required hidden input and container.
func NewBoundWidget(cfg Config) (*BoundWidget, error) {
	if cfg.Catalog == nil {
		return nil, errors.New("host: catalog is required")
	}
	if strings.TrimSpace(cfg.ID) == "" {
		return nil, errors.New("host: field id is required")
	}

	markup := strings.NewReplacer(TokenName, cfg.Name, TokenID, cfg.ID).Replace(cfg.Template)

	fragment := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), fragment)
	if err != nil {
		return nil, fmt.Errorf("host: parse template: %w", err)
	}
	for _, node := range nodes {
		fragment.AppendChild(node)
	}

	input := findElement(fragment, func(n *html.Node) bool {
		return n.DataAtom == atom.Input && attrValue(n, "id") == cfg.ID
	})
	if input == nil {
		return nil, fmt.Errorf("host: hidden input %q missing: %w", cfg.ID, ErrMarkupContract)
	}
	containerID := cfg.ID + ContainerSuffix
	container := findElementByID(fragment, containerID)
	if container == nil {
		return nil, fmt.Errorf("host: container %q missing: %w", containerID, ErrMarkupContract)
	}

	serialized := cfg.Serialized
	if serialized == "" {
		serialized = attrValue(input, "value")
	}

	options := []widget.Option{widget.WithIDPrefix(cfg.ID)}
	if serialized != "" {
		options = append(options, widget.WithSerialized(serialized))
	}
	options = append(options, cfg.Options...)

	bound := &BoundWidget{
		name:      cfg.Name,
		id:        cfg.ID,
		fragment:  fragment,
		input:     input,
		container: container,
		inner:     widget.New(cfg.Catalog, options...),
	}
	if err := bound.renderContainer(); err != nil {
		return nil, err
	}
	bound.syncInput()
	return bound, nil
}

// Name returns the bound form field name.
func (b *BoundWidget) Name() string { return b.name }

// InputID returns the hidden input's id, usable for label association.
func (b *BoundWidget) InputID() string { return b.id }

// Widget exposes the inner widget instance for read-only inspection.
func (b *BoundWidget) Widget() *widget.Instance { return b.inner }

// Value returns the serialized compound value currently carried by the hidden
// input.
func (b *BoundWidget) Value() string {
	return attrValue(b.input, "value")
}

// GetState returns a deep copy of the widget state.
func (b *BoundWidget) GetState() widget.State {
	return b.inner.GetState()
}

// SetState replaces the widget state and refreshes both the container markup
// and the hidden input.
func (b *BoundWidget) SetState(state widget.State) error {
	b.inner.SetState(state)
	b.syncInput()
	return b.renderContainer()
}

// Toggle flips a type's selection, re-renders the property region in place and
// resyncs the hidden input.
func (b *BoundWidget) Toggle(typeName string, on bool) error {
	region := b.inner.Toggle(typeName, on)
	b.syncInput()
	return b.replacePropertyRegion(region)
}

// EditProperties applies a JSON edit from a type's editing surface. The hidden
// input only picks up valid edits; invalid input leaves the submitted value at
// the last-known-good state while the re-rendered region shows the error
// indicator.
func (b *BoundWidget) EditProperties(typeName, raw string) (bool, error) {
	ok := b.inner.EditProperties(typeName, raw)
	if ok {
		b.syncInput()
	}
	return ok, b.replacePropertyRegion(b.inner.RenderPropertyRegion())
}

// PrepareSubmit flushes the current state into the hidden input. Hosts call it
// from their form submit hook as a final safety net.
func (b *BoundWidget) PrepareSubmit() {
	b.syncInput()
}

// Focus returns the id of the first interactive control inside the widget, or
// an empty string when none exists. It never fails on an empty catalog.
func (b *BoundWidget) Focus() string {
	control := findElement(b.container, func(n *html.Node) bool {
		return hasAttr(n, widget.AttrToggle) || hasAttr(n, widget.AttrEditor)
	})
	if control == nil {
		return ""
	}
	return attrValue(control, "id")
}

// Markup renders the instantiated template with the current widget content
// and hidden-input value.
func (b *BoundWidget) Markup() (string, error) {
	return renderChildren(b.fragment)
}

// Destroy tears the binding down: the widget goes inert and the container is
// emptied. The hidden input keeps its last synced value.
func (b *BoundWidget) Destroy() error {
	b.inner.Destroy()
	return replaceChildren(b.container, "")
}

func (b *BoundWidget) syncInput() {
	setAttr(b.input, "value", b.inner.Serialized())
}

func (b *BoundWidget) renderContainer() error {
	if err := replaceChildren(b.container, b.inner.Render()); err != nil {
		return fmt.Errorf("host: render container: %w", err)
	}
	return nil
}

func (b *BoundWidget) replacePropertyRegion(markup string) error {
	region := findElement(b.container, func(n *html.Node) bool {
		return hasAttr(n, widget.AttrProperties)
	})
	if region == nil {
		// Destroyed widgets render nothing; there is no region to update.
		return nil
	}
	if err := replaceChildren(region, markup); err != nil {
		return fmt.Errorf("host: render property region: %w", err)
	}
	return nil
}
