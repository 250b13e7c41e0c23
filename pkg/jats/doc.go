// Package jats extracts the table and figure structure of a JATS article.
//
// Only the elements the consistency checks need are modeled: table wrappers,
// figures, and the image references inside them. Nothing else in the article
// is retained.
package jats

// UnknownID is recorded when an element carries no id attribute.
const UnknownID = "unknown"

// XLinkNamespace is the namespace URI of the xlink:href attribute that
// graphic elements use to reference their image file.
const XLinkNamespace = "http://www.w3.org/1999/xlink"

// Document is the extracted table/figure view of one article.
// Slices are in document order.
type Document struct {
	Tables  []Table
	Figures []Figure
}

// Table is one table-wrap element.
type Table struct {
	ID string // UnknownID when the id attribute is absent

	// HasTable is false when the wrapper contains no nested table element.
	// Such wrappers are counted but contribute no images and no issues.
	HasTable bool

	// Images holds the path- and extension-stripped filename of every
	// graphic referenced inside the nested table, in document order.
	Images []string
}

// Figure is one fig element. A figure yields at most one image: only the
// first nested graphic is consulted.
type Figure struct {
	ID    string
	Image string // "" when no graphic with an xlink:href is present
}
