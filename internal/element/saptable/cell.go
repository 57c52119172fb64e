package saptable

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/uskr/wdclient/internal/element"
)

// CellKind classifies a cell's wire `subct` attribute (spec.md §4.6).
type CellKind string

const (
	CellStandard     CellKind = "STC"
	CellHeader       CellKind = "HC"
	CellHierarchical CellKind = "HIC"
	CellMatrix       CellKind = "MC"
	CellSelection    CellKind = "SC"
)

// Cell is one table cell. Its content is the ElementDefinition spec.md
// §4.6 describes: another kind (TextView, Caption, InputField, …)
// nested inside the cell node itself.
type Cell struct {
	ID      string
	Kind    CellKind
	Content element.Element
}

func newCell(node *goquery.Selection) (Cell, error) {
	id, _ := node.Attr("id")
	kind := CellKind(node.AttrOr("subct", string(CellStandard)))

	content := contentElement(node)
	return Cell{ID: id, Kind: kind, Content: content}, nil
}

// contentElement resolves the cell's nested content control. A cell
// with no recognizable content child (e.g. an empty spacer cell)
// yields a nil Content; callers must check for that before dispatching
// on its kind.
func contentElement(node *goquery.Selection) element.Element {
	child := node.Children().First()
	if child.Length() == 0 {
		return nil
	}
	ct, ok := child.Attr("ct")
	if !ok {
		return nil
	}
	id, _ := child.Attr("id")
	kind, _ := element.KindForCT(ct)
	return element.New(kind, ct, id, child)
}
