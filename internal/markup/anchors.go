// Package markup extracts anchor elements from HTML fragments.
package markup

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Anchor is a single <a> element found in a fragment. Inner holds the
// serialized inner HTML of the element.
type Anchor struct {
	Href    string
	HasHref bool
	Inner   string
}

var bufferPool = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

// container is the off-document <div> a fragment is parsed into. It must be
// released once the caller is done with it.
type container struct {
	root *html.Node
	buf  *bytes.Buffer
}

func acquire() *container {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return &container{
		root: &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div},
		buf:  buf,
	}
}

func (c *container) release() {
	if c == nil {
		return
	}
	if c.root != nil {
		for child := c.root.FirstChild; child != nil; {
			next := child.NextSibling
			c.root.RemoveChild(child)
			child = next
		}
	}
	if c.buf != nil {
		c.buf.Reset()
		bufferPool.Put(c.buf)
		c.buf = nil
	}
}

// ExtractAnchors parses fragment and returns every anchor element in document
// order. Surrounding text and markup are ignored.
func ExtractAnchors(fragment string) ([]Anchor, error) {
	c := acquire()
	defer c.release()

	nodes, err := html.ParseFragment(strings.NewReader(fragment), c.root)
	if err != nil {
		return nil, fmt.Errorf("markup: parse fragment: %w", err)
	}
	for _, node := range nodes {
		c.root.AppendChild(node)
	}

	var anchors []Anchor
	var walk func(*html.Node) error
	walk = func(n *html.Node) error {
		if n.Type == html.ElementNode && n.DataAtom == atom.A {
			anchor, err := c.anchor(n)
			if err != nil {
				return err
			}
			anchors = append(anchors, anchor)
			return nil
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(c.root); err != nil {
		return nil, err
	}
	return anchors, nil
}

func (c *container) anchor(n *html.Node) (Anchor, error) {
	var anchor Anchor
	for _, attr := range n.Attr {
		if attr.Namespace == "" && strings.EqualFold(attr.Key, "href") {
			anchor.Href = attr.Val
			anchor.HasHref = true
			break
		}
	}

	c.buf.Reset()
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(c.buf, child); err != nil {
			return Anchor{}, fmt.Errorf("markup: render anchor content: %w", err)
		}
	}
	anchor.Inner = c.buf.String()
	c.buf.Reset()
	return anchor, nil
}
