package command

import (
	"context"

	"github.com/uskr/wdclient/internal/client"
	"github.com/uskr/wdclient/internal/element"
	"github.com/uskr/wdclient/internal/element/saptable"
	"github.com/uskr/wdclient/internal/parser"
	"github.com/uskr/wdclient/internal/werror"
)

// buttonPress fires a Button's Press event.
type buttonPress struct{ ID string }

// ButtonPress builds the write command that presses a button.
func ButtonPress(id string) Command { return buttonPress{ID: id} }

func (c buttonPress) Dispatch(ctx context.Context, cl *client.Client) (any, error) {
	el, err := parser.FromDef(cl.Body(), parser.Define(element.KindButton, c.ID))
	if err != nil {
		return nil, err
	}
	b, ok := el.(*element.Button)
	if !ok {
		return nil, werror.InvalidElement(c.ID, "Button", "")
	}
	ev, err := b.Press()
	if err != nil {
		return nil, err
	}
	return cl.ProcessEvent(ctx, false, ev)
}

// linkPress fires a Link's Press event.
type linkPress struct{ ID string }

// LinkPress builds the write command that activates a link.
func LinkPress(id string) Command { return linkPress{ID: id} }

func (c linkPress) Dispatch(ctx context.Context, cl *client.Client) (any, error) {
	el, err := parser.FromDef(cl.Body(), parser.Define(element.KindLink, c.ID))
	if err != nil {
		return nil, err
	}
	l, ok := el.(*element.Link)
	if !ok {
		return nil, werror.InvalidElement(c.ID, "Link", "")
	}
	ev, err := l.Press()
	if err != nil {
		return nil, err
	}
	return cl.ProcessEvent(ctx, false, ev)
}

// comboBoxSelect fires a ComboBox's Select event for a known key.
type comboBoxSelect struct {
	ID  string
	Key string
}

// ComboBoxSelect builds the write command that selects a ComboBox item by key.
func ComboBoxSelect(id, key string) Command { return comboBoxSelect{ID: id, Key: key} }

func (c comboBoxSelect) Dispatch(ctx context.Context, cl *client.Client) (any, error) {
	el, err := parser.FromDef(cl.Body(), parser.Define(element.KindComboBox, c.ID))
	if err != nil {
		return nil, err
	}
	cb, ok := el.(*element.ComboBox)
	if !ok {
		return nil, werror.InvalidElement(c.ID, "ComboBox", "")
	}
	ev, err := cb.Select(c.Key)
	if err != nil {
		return nil, err
	}
	return cl.ProcessEvent(ctx, false, ev)
}

// checkBoxSelect fires a CheckBox's Select event.
type checkBoxSelect struct {
	ID      string
	Checked bool
}

// CheckBoxSelect builds the write command that sets a CheckBox's state.
func CheckBoxSelect(id string, checked bool) Command {
	return checkBoxSelect{ID: id, Checked: checked}
}

func (c checkBoxSelect) Dispatch(ctx context.Context, cl *client.Client) (any, error) {
	el, err := parser.FromDef(cl.Body(), parser.Define(element.KindCheckBox, c.ID))
	if err != nil {
		return nil, err
	}
	cb, ok := el.(*element.CheckBox)
	if !ok {
		return nil, werror.InvalidElement(c.ID, "CheckBox", "")
	}
	ev, err := cb.Select(c.Checked)
	if err != nil {
		return nil, err
	}
	return cl.ProcessEvent(ctx, false, ev)
}

// inputFieldEnter fires an InputField's Enter event with a new value.
type inputFieldEnter struct {
	ID    string
	Value string
}

// InputFieldEnter builds the write command that commits a new InputField value.
func InputFieldEnter(id, value string) Command { return inputFieldEnter{ID: id, Value: value} }

func (c inputFieldEnter) Dispatch(ctx context.Context, cl *client.Client) (any, error) {
	el, err := parser.FromDef(cl.Body(), parser.Define(element.KindInputField, c.ID))
	if err != nil {
		return nil, err
	}
	in, ok := el.(*element.InputField)
	if !ok {
		return nil, werror.InvalidElement(c.ID, "InputField", "")
	}
	ev, err := in.Enter(c.Value)
	if err != nil {
		return nil, err
	}
	return cl.ProcessEvent(ctx, false, ev)
}

// tabStripTabSelect fires a TabStrip's tabSelect event.
type tabStripTabSelect struct {
	ID    string
	TabID string
}

// TabStripTabSelect builds the write command that selects a tab.
func TabStripTabSelect(id, tabID string) Command {
	return tabStripTabSelect{ID: id, TabID: tabID}
}

func (c tabStripTabSelect) Dispatch(ctx context.Context, cl *client.Client) (any, error) {
	el, err := parser.FromDef(cl.Body(), parser.Define(element.KindTabStrip, c.ID))
	if err != nil {
		return nil, err
	}
	ts, ok := el.(*element.TabStrip)
	if !ok {
		return nil, werror.InvalidElement(c.ID, "TabStrip", "")
	}
	ev, err := ts.TabSelect(c.TabID)
	if err != nil {
		return nil, err
	}
	return cl.ProcessEvent(ctx, false, ev)
}

// clientInspectorNotify fires a ClientInspector's Notify event.
type clientInspectorNotify struct {
	ID      string
	Payload string
}

// ClientInspectorNotify builds the write command the bootstrap
// handshake uses for both its WD01 and WD02 steps.
func ClientInspectorNotify(id, payload string) Command {
	return clientInspectorNotify{ID: id, Payload: payload}
}

func (c clientInspectorNotify) Dispatch(ctx context.Context, cl *client.Client) (any, error) {
	el, err := parser.FromDef(cl.Body(), parser.Define(element.KindClientInspector, c.ID))
	if err != nil {
		return nil, err
	}
	ci, ok := el.(*element.ClientInspector)
	if !ok {
		return nil, werror.InvalidElement(c.ID, "ClientInspector", "")
	}
	ev, err := ci.Notify(c.Payload)
	if err != nil {
		return nil, err
	}
	return cl.ProcessEvent(ctx, false, ev)
}

// loadingPlaceholderLoad fires the bootstrap LoadingPlaceholder's Load event.
type loadingPlaceholderLoad struct{ ID string }

// LoadingPlaceholderLoad builds the write command for the handshake's
// third step.
func LoadingPlaceholderLoad(id string) Command { return loadingPlaceholderLoad{ID: id} }

func (c loadingPlaceholderLoad) Dispatch(ctx context.Context, cl *client.Client) (any, error) {
	el, err := parser.FromDef(cl.Body(), parser.Define(element.KindLoadingPlaceholder, c.ID))
	if err != nil {
		return nil, err
	}
	lp, ok := el.(*element.LoadingPlaceholder)
	if !ok {
		return nil, werror.InvalidElement(c.ID, "LoadingPlaceholder", "")
	}
	ev, err := lp.Load()
	if err != nil {
		return nil, err
	}
	return cl.ProcessEvent(ctx, false, ev)
}

// customClientInfo fires the synthetic Custom element's ClientInfos
// event. Unlike every other write command it bypasses parser.FromDef
// entirely, since Custom never exists in the DOM (spec.md §9).
type customClientInfo struct {
	ID     string
	Params element.ClientInfosParams
}

// CustomClientInfo builds the handshake's fourth step.
func CustomClientInfo(id string, params element.ClientInfosParams) Command {
	return customClientInfo{ID: id, Params: params}
}

func (c customClientInfo) Dispatch(ctx context.Context, cl *client.Client) (any, error) {
	ev := element.NewCustom(c.ID).ClientInfos(c.Params)
	return cl.ProcessEvent(ctx, false, ev)
}

// sapTableRowSelect fires a SapTable's rowSelect event.
type sapTableRowSelect struct {
	ID     string
	RowID  string
	Access saptable.AccessType
}

// SapTableRowSelect builds the write command that selects a table row.
func SapTableRowSelect(id, rowID string, access saptable.AccessType) Command {
	return sapTableRowSelect{ID: id, RowID: rowID, Access: access}
}

func (c sapTableRowSelect) Dispatch(ctx context.Context, cl *client.Client) (any, error) {
	el, err := parser.FromDef(cl.Body(), parser.Define(element.KindSapTable, c.ID))
	if err != nil {
		return nil, err
	}
	t, ok := el.(*saptable.Table)
	if !ok {
		return nil, werror.InvalidElement(c.ID, "SapTable", "")
	}
	ev, err := t.RowSelect(c.RowID, c.Access)
	if err != nil {
		return nil, err
	}
	return cl.ProcessEvent(ctx, false, ev)
}

// sapTableVerticalScroll fires a SapTable's verticalScroll event,
// either for interactive scrolling or as the paging primitive
// compound.go's SapTablePagedBody loop drives (spec.md §4.6 "Paged tables").
type sapTableVerticalScroll struct {
	ID                    string
	FirstVisibleItemIndex int
}

// SapTableVerticalScroll builds the write command that scrolls a table.
func SapTableVerticalScroll(id string, firstVisibleItemIndex int) Command {
	return sapTableVerticalScroll{ID: id, FirstVisibleItemIndex: firstVisibleItemIndex}
}

func (c sapTableVerticalScroll) Dispatch(ctx context.Context, cl *client.Client) (any, error) {
	el, err := parser.FromDef(cl.Body(), parser.Define(element.KindSapTable, c.ID))
	if err != nil {
		return nil, err
	}
	t, ok := el.(*saptable.Table)
	if !ok {
		return nil, werror.InvalidElement(c.ID, "SapTable", "")
	}
	ev, err := t.VerticalScroll(c.FirstVisibleItemIndex)
	if err != nil {
		return nil, err
	}
	return cl.ProcessEvent(ctx, false, ev)
}
