package command

import (
	"context"

	"github.com/uskr/wdclient/internal/client"
	"github.com/uskr/wdclient/internal/element"
	"github.com/uskr/wdclient/internal/element/saptable"
	"github.com/uskr/wdclient/internal/parser"
	"github.com/uskr/wdclient/internal/werror"
)

// comboBoxSelectByValue1 finds the ComboBox item whose displayed value
// equals Value, then emits Select with its key. It is "Compound" in
// spec.md §4.6's sense: the read (decode lsdata) and the write (emit
// Select) must not have another process_event call interleaved between
// them, since the item list a later read would see could differ after
// a submit. Composing it as a single Dispatch call, rather than two
// separate Command values a caller runs back to back, is what
// guarantees that.
type comboBoxSelectByValue1 struct {
	ID    string
	Value string
}

// ComboBoxSelectByValue1 builds the compound command that selects a
// ComboBox item by its displayed value rather than its wire key.
func ComboBoxSelectByValue1(id, value string) Command {
	return comboBoxSelectByValue1{ID: id, Value: value}
}

func (c comboBoxSelectByValue1) Dispatch(ctx context.Context, cl *client.Client) (any, error) {
	el, err := parser.FromDef(cl.Body(), parser.Define(element.KindComboBox, c.ID))
	if err != nil {
		return nil, err
	}
	cb, ok := el.(*element.ComboBox)
	if !ok {
		return nil, werror.InvalidElement(c.ID, "ComboBox", "")
	}
	data, err := cb.Data()
	if err != nil {
		return nil, err
	}
	key := ""
	found := false
	for _, item := range data.Items {
		if item.Value == c.Value {
			key = item.Key
			found = true
			break
		}
	}
	if !found {
		return nil, werror.InvalidContent(c.ID, "no ComboBox item with value "+c.Value)
	}
	ev, err := cb.Select(key)
	if err != nil {
		return nil, err
	}
	return cl.ProcessEvent(ctx, false, ev)
}

// sapTablePagedBody implements spec.md §4.6 "Paged tables": it reads
// the table's declared row_count, then alternates VerticalScroll
// submits with re-reads of Body() until every row has been collected,
// trimming any excess from the final page.
type sapTablePagedBody struct{ ID string }

// SapTablePagedBody builds the compound command that accumulates every
// row of a paged SapTable, issuing as many VerticalScroll round trips
// as needed. Result type: []saptable.Row.
func SapTablePagedBody(id string) Command { return sapTablePagedBody{ID: id} }

func (c sapTablePagedBody) Dispatch(ctx context.Context, cl *client.Client) (any, error) {
	el, err := parser.FromDef(cl.Body(), parser.Define(element.KindSapTable, c.ID))
	if err != nil {
		return nil, err
	}
	t, ok := el.(*saptable.Table)
	if !ok {
		return nil, werror.InvalidElement(c.ID, "SapTable", "")
	}

	data, err := t.TableData()
	if err != nil {
		return nil, err
	}

	rows, err := t.Body()
	if err != nil {
		return nil, err
	}

	for len(rows) < data.RowCount {
		ev, err := t.VerticalScroll(len(rows))
		if err != nil {
			return nil, err
		}
		if _, err := cl.ProcessEvent(ctx, false, ev); err != nil {
			return nil, err
		}

		el, err := parser.FromDef(cl.Body(), parser.Define(element.KindSapTable, c.ID))
		if err != nil {
			return nil, err
		}
		t, ok = el.(*saptable.Table)
		if !ok {
			return nil, werror.InvalidElement(c.ID, "SapTable", "")
		}
		page, err := t.Body()
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break // server has nothing more to give; avoid an infinite loop
		}
		rows = append(rows, page...)
	}

	if len(rows) > data.RowCount {
		rows = rows[:data.RowCount]
	}
	return rows, nil
}
