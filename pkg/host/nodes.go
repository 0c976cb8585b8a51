package host

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func findElementByID(root *html.Node, id string) *html.Node {
	return findElement(root, func(n *html.Node) bool {
		return attrValue(n, "id") == id
	})
}

func findElement(root *html.Node, match func(*html.Node) bool) *html.Node {
	if root == nil {
		return nil
	}
	if root.Type == html.ElementNode && match(root) {
		return root
	}
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		if found := findElement(child, match); found != nil {
			return found
		}
	}
	return nil
}

func attrValue(n *html.Node, name string) string {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return attr.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, name string) bool {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return true
		}
	}
	return false
}

func setAttr(n *html.Node, name, value string) {
	for i := range n.Attr {
		if n.Attr[i].Key == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

// replaceChildren parses markup in the context of the given element and swaps
// it in as the element's only content.
func replaceChildren(parent *html.Node, markup string) error {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     parent.Data,
		DataAtom: atom.Lookup([]byte(parent.Data)),
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return err
	}
	for child := parent.FirstChild; child != nil; {
		next := child.NextSibling
		parent.RemoveChild(child)
		child = next
	}
	for _, node := range nodes {
		parent.AppendChild(node)
	}
	return nil
}

func renderChildren(parent *html.Node) (string, error) {
	var b strings.Builder
	for child := parent.FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&b, child); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}
