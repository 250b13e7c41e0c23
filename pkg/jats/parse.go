package jats

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/agentflare-ai/go-xmldom"
)

// Default parse limits. Pathological inputs (entity bombs, absurd nesting)
// are rejected before or during traversal rather than exhausting memory.
// Depth and size defaults follow the limits used by XML validation tooling.
const (
	DefaultMaxInputBytes = 32 << 20
	DefaultMaxDepth      = 256
)

// Limits bounds parsing of untrusted documents. The zero value selects the
// defaults above.
type Limits struct {
	MaxInputBytes int
	MaxDepth      int
}

func (l Limits) withDefaults() Limits {
	if l.MaxInputBytes <= 0 {
		l.MaxInputBytes = DefaultMaxInputBytes
	}
	if l.MaxDepth <= 0 {
		l.MaxDepth = DefaultMaxDepth
	}
	return l
}

// SyntaxError reports that the input is not well-formed XML. Any other error
// returned by Parse is a structural or resource-limit failure.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string { return e.Err.Error() }
func (e *SyntaxError) Unwrap() error { return e.Err }

// Parse extracts the table and figure structure from raw XML content using
// the default limits.
func Parse(content []byte) (*Document, error) {
	return ParseWithLimits(content, Limits{})
}

// ParseWithLimits is Parse with explicit resource limits.
func ParseWithLimits(content []byte, lim Limits) (*Document, error) {
	lim = lim.withDefaults()
	if len(content) > lim.MaxInputBytes {
		return nil, fmt.Errorf("input of %d bytes exceeds limit of %d", len(content), lim.MaxInputBytes)
	}

	xdoc, err := xmldom.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, &SyntaxError{Err: err}
	}
	if xdoc == nil {
		return nil, &SyntaxError{Err: fmt.Errorf("empty document")}
	}
	root := xdoc.DocumentElement()
	if root == nil {
		return nil, &SyntaxError{Err: fmt.Errorf("no root element")}
	}

	doc := &Document{}

	// Two independent passes, both in document order. Elements are matched
	// by local name; JATS elements conventionally carry no namespace.
	wraps, err := descendants(root, "table-wrap", lim.MaxDepth)
	if err != nil {
		return nil, err
	}
	for _, wrap := range wraps {
		t := Table{ID: attrOr(wrap, "id", UnknownID)}
		inner, err := firstDescendant(wrap, "table", lim.MaxDepth)
		if err != nil {
			return nil, err
		}
		if inner != nil {
			t.HasTable = true
			graphics, err := descendants(inner, "graphic", lim.MaxDepth)
			if err != nil {
				return nil, err
			}
			for _, g := range graphics {
				if id := imageID(g); id != "" {
					t.Images = append(t.Images, id)
				}
			}
		}
		doc.Tables = append(doc.Tables, t)
	}

	figs, err := descendants(root, "fig", lim.MaxDepth)
	if err != nil {
		return nil, err
	}
	for _, fig := range figs {
		f := Figure{ID: attrOr(fig, "id", UnknownID)}
		graphic, err := firstDescendant(fig, "graphic", lim.MaxDepth)
		if err != nil {
			return nil, err
		}
		if graphic != nil {
			f.Image = imageID(graphic)
		}
		doc.Figures = append(doc.Figures, f)
	}

	return doc, nil
}

// imageID reads the graphic's xlink:href and reduces it to a bare image
// identifier: path stripped, extension stripped. Returns "" when the
// attribute is absent or empty.
func imageID(graphic xmldom.Element) string {
	href := string(graphic.GetAttributeNS(XLinkNamespace, "href"))
	if href == "" {
		return ""
	}
	name := path.Base(href)
	return strings.TrimSuffix(name, path.Ext(name))
}

func attrOr(el xmldom.Element, name, fallback string) string {
	if v := string(el.GetAttribute(xmldom.DOMString(name))); v != "" {
		return v
	}
	return fallback
}

// descendants returns every descendant of el (el itself excluded) whose
// local name matches, in document order.
func descendants(el xmldom.Element, local string, maxDepth int) ([]xmldom.Element, error) {
	var out []xmldom.Element
	_, err := walk(el, local, 0, maxDepth, func(match xmldom.Element) bool {
		out = append(out, match)
		return true
	})
	return out, err
}

// firstDescendant returns the first matching descendant or nil.
func firstDescendant(el xmldom.Element, local string, maxDepth int) (xmldom.Element, error) {
	var found xmldom.Element
	_, err := walk(el, local, 0, maxDepth, func(match xmldom.Element) bool {
		found = match
		return false
	})
	return found, err
}

// walk visits el's descendants in document order, calling visit for each
// element whose local name matches. visit returning false stops the walk;
// the stop propagates through every level of the recursion.
func walk(el xmldom.Element, local string, depth, maxDepth int, visit func(xmldom.Element) bool) (bool, error) {
	if depth > maxDepth {
		return false, fmt.Errorf("element nesting exceeds %d levels", maxDepth)
	}
	children := el.Children()
	for i := uint(0); i < children.Length(); i++ {
		child := children.Item(i)
		if child == nil {
			continue
		}
		if string(child.LocalName()) == local {
			if !visit(child) {
				return false, nil
			}
		}
		cont, err := walk(child, local, depth+1, maxDepth, visit)
		if err != nil || !cont {
			return cont, err
		}
	}
	return true, nil
}
