package saptable

import (
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"github.com/uskr/wdclient/internal/werror"
)

// RowType classifies a row by its wire `rt` attribute (spec.md §4.6).
type RowType int

const (
	RowStandard RowType = iota + 1
	RowHeader
	RowFilter
	RowTopFixed
	RowBottomFixed
	RowPivot
)

// Row is one parsed table row.
type Row struct {
	ID    string
	Type  RowType
	Cells []Cell
}

// pendingSpan tracks a cell still occupying a column via rowspan, so a
// later row's rendering at that column must be treated as already
// filled rather than reading the next physical cell there.
type pendingSpan struct {
	cell     Cell
	rowsLeft int
}

// ParseRows reads every <tr>-equivalent child of tbody into Rows,
// honoring the rowspan/colspan span-register algorithm from spec.md
// §4.6 and stopping at the `rr=0` empty-row marker. A second Header row
// is an error; a body with no Header row is accepted.
func ParseRows(tbody *goquery.Selection) ([]Row, error) {
	var rows []Row
	headerCount := 0
	spans := map[int]*pendingSpan{}

	var parseErr error
	tbody.Children().EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		if rr, ok := tr.Attr("rr"); ok && rr == "0" {
			return false // empty-row marker: stop iteration
		}

		rt := rowType(tr)
		if rt == RowHeader {
			headerCount++
			if headerCount > 1 {
				parseErr = werror.InvalidContent(idAttr(tr), "more than one Header row in SapTable")
				return false
			}
		}

		row, err := parseRow(tr, spans)
		if err != nil {
			parseErr = err
			return false
		}
		row.Type = rt
		rows = append(rows, row)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return rows, nil
}

func rowType(tr *goquery.Selection) RowType {
	raw, ok := tr.Attr("rt")
	if !ok {
		return RowStandard
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < int(RowStandard) || n > int(RowPivot) {
		return RowStandard
	}
	return RowType(n)
}

func idAttr(s *goquery.Selection) string {
	id, _ := s.Attr("id")
	return id
}

// parseRow expands the span register at each column before placing the
// row's own physical cells, then records any new rowspans those cells
// introduce for subsequent rows.
func parseRow(tr *goquery.Selection, spans map[int]*pendingSpan) (Row, error) {
	row := Row{ID: idAttr(tr)}

	physical := tr.Children()
	col := 0

	drainSpansAt := func() {
		for {
			sp, ok := spans[col]
			if !ok || sp.rowsLeft <= 0 {
				return
			}
			row.Cells = append(row.Cells, sp.cell)
			sp.rowsLeft--
			if sp.rowsLeft == 0 {
				delete(spans, col)
			}
			col++
		}
	}

	for physIdx := 0; physIdx < physical.Length(); physIdx++ {
		// Columns still occupied by a prior row's rowspan must be
		// expanded before this row's own next physical cell is placed
		// (spec.md §4.6).
		drainSpansAt()

		node := physical.Eq(physIdx)
		cell, err := newCell(node)
		if err != nil {
			return Row{}, err
		}

		rowspan := attrInt(node, "rowspan", 1)
		colspan := attrInt(node, "colspan", 1)
		if colspan < 1 {
			colspan = 1
		}
		if rowspan < 1 {
			rowspan = 1
		}

		for i := 0; i < colspan; i++ {
			row.Cells = append(row.Cells, cell)
			if rowspan > 1 {
				spans[col] = &pendingSpan{cell: cell, rowsLeft: rowspan - 1}
			}
			col++
		}
	}
	// Trailing columns this row has no physical cell for, because a
	// prior row's rowspan still covers them.
	drainSpansAt()

	return row, nil
}

func attrInt(s *goquery.Selection, name string, def int) int {
	raw, ok := s.Attr(name)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
