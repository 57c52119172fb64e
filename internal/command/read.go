package command

import (
	"context"

	"github.com/uskr/wdclient/internal/client"
	"github.com/uskr/wdclient/internal/element"
	"github.com/uskr/wdclient/internal/element/saptable"
	"github.com/uskr/wdclient/internal/parser"
	"github.com/uskr/wdclient/internal/werror"
)

// comboBoxLSData reads a ComboBox's decoded lsdata. Result type:
// element.ComboBoxData.
type comboBoxLSData struct{ ID string }

// ComboBoxLSData builds the read command that decodes a ComboBox's lsdata.
func ComboBoxLSData(id string) Command { return comboBoxLSData{ID: id} }

func (c comboBoxLSData) Dispatch(_ context.Context, cl *client.Client) (any, error) {
	el, err := parser.FromDef(cl.Body(), parser.Define(element.KindComboBox, c.ID))
	if err != nil {
		return nil, err
	}
	cb, ok := el.(*element.ComboBox)
	if !ok {
		return nil, werror.InvalidElement(c.ID, "ComboBox", "")
	}
	return cb.Data()
}

// inputFieldValue reads an InputField's current value. Result type: string.
type inputFieldValue struct{ ID string }

// InputFieldValue builds the read command that returns an InputField's value.
func InputFieldValue(id string) Command { return inputFieldValue{ID: id} }

func (c inputFieldValue) Dispatch(_ context.Context, cl *client.Client) (any, error) {
	el, err := parser.FromDef(cl.Body(), parser.Define(element.KindInputField, c.ID))
	if err != nil {
		return nil, err
	}
	in, ok := el.(*element.InputField)
	if !ok {
		return nil, werror.InvalidElement(c.ID, "InputField", "")
	}
	data, err := in.Data()
	if err != nil {
		return nil, err
	}
	return data.Value, nil
}

// sapTableBody reads a SapTable's full row set. Result type: []saptable.Row.
type sapTableBody struct{ ID string }

// SapTableBody builds the read command that parses a SapTable's current rows.
func SapTableBody(id string) Command { return sapTableBody{ID: id} }

func (c sapTableBody) Dispatch(_ context.Context, cl *client.Client) (any, error) {
	el, err := parser.FromDef(cl.Body(), parser.Define(element.KindSapTable, c.ID))
	if err != nil {
		return nil, err
	}
	t, ok := el.(*saptable.Table)
	if !ok {
		return nil, werror.InvalidElement(c.ID, "SapTable", "")
	}
	return t.Body()
}

// tabStripData reads a TabStrip's declared tab list and current
// selection. Result type: element.TabStripData.
type tabStripData struct{ ID string }

// TabStripData builds the read command that decodes a TabStrip's lsdata.
func TabStripData(id string) Command { return tabStripData{ID: id} }

func (c tabStripData) Dispatch(_ context.Context, cl *client.Client) (any, error) {
	el, err := parser.FromDef(cl.Body(), parser.Define(element.KindTabStrip, c.ID))
	if err != nil {
		return nil, err
	}
	ts, ok := el.(*element.TabStrip)
	if !ok {
		return nil, werror.InvalidElement(c.ID, "TabStrip", "")
	}
	return ts.Data()
}
