package host

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/herald-cms/go-herald/pkg/catalog"
	"github.com/herald-cms/go-herald/pkg/widget"
)

// Mount-point attributes understood by the bulk initializer.
const (
	// AttrMount flags an element as a widget mount point.
	AttrMount = "data-schema-widget"
	// AttrInit marks a mount point as already initialized; flagged elements
	// are skipped so repeated initialization passes stay idempotent.
	AttrInit = "data-schema-widget-init"
	// AttrValue optionally carries the serialized initial state inline on the
	// mount point.
	AttrValue = "data-schema-widget-value"
)

// PageWidget is one widget initialized by InitializeDocument.
type PageWidget struct {
	// ContainerID is the mount point's element id.
	ContainerID string
	Widget      *widget.Instance
}

// InitializeDocument scans a rendered document for widget mount points and
// initializes every one that is not marked initialized yet. Each mount point
// seeds from its inline AttrValue, falling back to the value of the hidden
// input its id pairs with (container id minus ContainerSuffix); without
// either, the widget seeds its catalog defaults. Initialized mount points are
// marked with AttrInit and filled with the rendered widget markup, and paired
// hidden inputs are resynced.
//
// The rewritten document is returned alongside the initialized widgets.
// Running the function again over its own output initializes nothing.
func InitializeDocument(doc string, store *catalog.Store, options ...widget.Option) ([]PageWidget, string, error) {
	if store == nil {
		return nil, "", fmt.Errorf("host: catalog is required")
	}

	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return nil, "", fmt.Errorf("host: parse document: %w", err)
	}

	var mounts []*html.Node
	collectMounts(root, &mounts)

	initialized := make([]PageWidget, 0, len(mounts))
	for _, mount := range mounts {
		containerID := attrValue(mount, "id")
		inputID := strings.TrimSuffix(containerID, ContainerSuffix)

		var input *html.Node
		if inputID != "" && inputID != containerID {
			input = findElement(root, func(n *html.Node) bool {
				return n.DataAtom == atom.Input && attrValue(n, "id") == inputID
			})
		}

		serialized := attrValue(mount, AttrValue)
		if serialized == "" && input != nil {
			serialized = attrValue(input, "value")
		}

		opts := make([]widget.Option, 0, len(options)+2)
		if inputID != "" {
			opts = append(opts, widget.WithIDPrefix(inputID))
		}
		if serialized != "" {
			opts = append(opts, widget.WithSerialized(serialized))
		}
		opts = append(opts, options...)

		instance := widget.New(store, opts...)
		if err := replaceChildren(mount, instance.Render()); err != nil {
			return nil, "", fmt.Errorf("host: initialize %q: %w", containerID, err)
		}
		setAttr(mount, AttrInit, "true")
		if input != nil {
			setAttr(input, "value", instance.Serialized())
		}

		initialized = append(initialized, PageWidget{ContainerID: containerID, Widget: instance})
	}

	var b strings.Builder
	if err := html.Render(&b, root); err != nil {
		return nil, "", fmt.Errorf("host: render document: %w", err)
	}
	return initialized, b.String(), nil
}

func collectMounts(node *html.Node, out *[]*html.Node) {
	if node.Type == html.ElementNode && hasAttr(node, AttrMount) && !hasAttr(node, AttrInit) {
		*out = append(*out, node)
		// Mount points do not nest; their subtree is widget content.
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectMounts(child, out)
	}
}
