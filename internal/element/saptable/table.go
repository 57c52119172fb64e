// Package saptable implements SapTable, the one element kind complex
// enough to warrant its own package (spec.md §4.6): row/cell discovery,
// rowspan/colspan expansion, and the row-to-struct conversion helpers
// application code uses to turn a table into typed data.
package saptable

import (
	"strconv"

	"github.com/uskr/wdclient/internal/element"
	"github.com/uskr/wdclient/internal/wdevent"
	"github.com/uskr/wdclient/internal/werror"
)

// Table is the SapTable element.
type Table struct {
	element.Base
}

// Data is SapTable's typed lsdata shape. RowCount is the server's
// declared total row count, used by paged-table scrolling (spec.md §4.6
// "Paged tables") to know when every page has been collected.
type Data struct {
	RowCount        int
	VisibleRowCount int
	Title           string
}

// TableData decodes this Table's lsdata.
func (t *Table) TableData() (Data, error) {
	f, err := t.Base.LSData()
	if err != nil {
		return Data{}, err
	}
	return Data{
		RowCount:        f.Int("0"),
		VisibleRowCount: f.Int("1"),
		Title:           f.String("2"),
	}, nil
}

// Body discovers this table's row container via
// [id="<tableId>-contentTBody"] and parses its rows. The selection is
// scoped to the Table's own Node's owning document root so it finds the
// tbody regardless of where in the tree it was attached, matching the
// same document-wide `[id="..."]` lookup internal/parser uses
// elsewhere.
func (t *Table) Body() ([]Row, error) {
	doc := t.Node.Parents().Last()
	if doc.Length() == 0 {
		doc = t.Node
	}
	tbody := doc.Find(`[id="` + t.ID + `-contentTBody"]`)
	if tbody.Length() == 0 {
		return nil, werror.InvalidID(t.ID + "-contentTBody")
	}
	return ParseRows(tbody.First())
}

// RowSelect fires the SapTable's rowSelect event.
func (t *Table) RowSelect(rowID string, access AccessType) (wdevent.Event, error) {
	return t.Base.FireEvent("rowSelect", []wdevent.Param{
		{Name: "Id", Value: t.ID},
		{Name: "Row", Value: rowID},
		{Name: "AccessType", Value: string(access)},
	})
}

// CellSelect fires the SapTable's cellSelect event.
func (t *Table) CellSelect(rowID, colID string, access AccessType) (wdevent.Event, error) {
	return t.Base.FireEvent("cellSelect", []wdevent.Param{
		{Name: "Id", Value: t.ID},
		{Name: "Row", Value: rowID},
		{Name: "Col", Value: colID},
		{Name: "AccessType", Value: string(access)},
	})
}

// VerticalScroll fires the SapTable's verticalScroll event, used both
// for interactive scrolling and for the paged-table accumulation loop
// (spec.md §4.6 "Paged tables").
func (t *Table) VerticalScroll(firstVisibleItemIndex int) (wdevent.Event, error) {
	return t.Base.FireEvent("verticalScroll", []wdevent.Param{
		{Name: "Id", Value: t.ID},
		{Name: "FirstVisibleItemIndex", Value: strconv.Itoa(firstVisibleItemIndex)},
	})
}

// AccessType is the SapTable selection-gesture enum (spec.md §4.6).
type AccessType string

const (
	AccessInvalid     AccessType = "INVALID"
	AccessStandard    AccessType = "STANDARD"
	AccessRange       AccessType = "RANGE"
	AccessToggle      AccessType = "TOGGLE"
	AccessSelectAll   AccessType = "SELECT_ALL"
	AccessDeselectAll AccessType = "DESELECT_ALL"
)
