package saptable

import (
	"github.com/uskr/wdclient/internal/element"
	"github.com/uskr/wdclient/internal/werror"
)

// KeyValue is one (cell id, text) pair, mirroring the
// element.ComboBoxItem/TabStripItem wire idiom used elsewhere in this
// module (spec.md §9).
type KeyValue struct {
	Key   string
	Value string
}

// CellText extracts a cell's visible text, dispatching on its content
// element's kind (spec.md §4.6): TextView/Caption/Label yield their
// text, CheckBox yields "true"/"false", anything else is
// InvalidContent. A cell with no content child (a spacer) yields "".
func CellText(c Cell) (string, error) {
	switch v := c.Content.(type) {
	case nil:
		return "", nil
	case *element.TextView:
		d, err := v.Data()
		return d.Text, err
	case *element.Caption:
		d, err := v.Data()
		return d.Text, err
	case *element.Label:
		d, err := v.Data()
		return d.Text, err
	case *element.FormattedTextView:
		d, err := v.Data()
		return d.Text, err
	case *element.CheckBox:
		d, err := v.Data()
		if err != nil {
			return "", err
		}
		if d.Checked {
			return "true", nil
		}
		return "false", nil
	default:
		return "", werror.InvalidContent(c.ID, "content kind has no text representation")
	}
}

// ToStrings converts every cell in row to its text, failing the whole
// row if any cell's content kind cannot be converted.
func ToStrings(row Row) ([]string, error) {
	out := make([]string, len(row.Cells))
	for i, c := range row.Cells {
		s, err := CellText(c)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// ToOptionalStrings is ToStrings but empty (contentless) cells yield a
// nil entry instead of an empty string, matching the source's
// Vec<string|null> target.
func ToOptionalStrings(row Row) ([]*string, error) {
	out := make([]*string, len(row.Cells))
	for i, c := range row.Cells {
		if c.Content == nil {
			continue
		}
		s, err := CellText(c)
		if err != nil {
			return nil, err
		}
		out[i] = &s
	}
	return out, nil
}

// ToPairs converts row into (cell id, text) pairs.
func ToPairs(row Row) ([]KeyValue, error) {
	out := make([]KeyValue, len(row.Cells))
	for i, c := range row.Cells {
		s, err := CellText(c)
		if err != nil {
			return nil, err
		}
		out[i] = KeyValue{Key: c.ID, Value: s}
	}
	return out, nil
}

// ToMap converts row into a map keyed by the corresponding column's
// text in headerRow. Columns beyond the shorter of the two rows are
// ignored.
func ToMap(headerRow, row Row) (map[string]string, error) {
	n := len(row.Cells)
	if len(headerRow.Cells) < n {
		n = len(headerRow.Cells)
	}
	out := make(map[string]string, n)
	for i := 0; i < n; i++ {
		key, err := CellText(headerRow.Cells[i])
		if err != nil {
			return nil, err
		}
		val, err := CellText(row.Cells[i])
		if err != nil {
			return nil, err
		}
		out[key] = val
	}
	return out, nil
}

// FromSapTable generalizes ToStrings/ToOptionalStrings/ToPairs/ToMap:
// application code with a conversion target not covered by the four
// built-ins above supplies its own per-row decode function instead of
// hand-rolling row/cell iteration, mirroring the source's FromSapTable
// trait as a plain higher-order function rather than a trait object
// (spec.md §9).
func FromSapTable[T any](row Row, convert func(Row) (T, error)) (T, error) {
	return convert(row)
}
