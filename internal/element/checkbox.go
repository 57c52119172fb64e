package element

import "github.com/uskr/wdclient/internal/wdevent"

// CheckBox is the tri-state-capable boolean toggle widget (spec.md
// §4.6).
type CheckBox struct {
	Base
}

// CheckBoxData is CheckBox's typed lsdata shape.
type CheckBoxData struct {
	Checked bool
	Enabled bool
}

// Data decodes this CheckBox's lsdata.
func (c *CheckBox) Data() (CheckBoxData, error) {
	f, err := c.LSData()
	if err != nil {
		return CheckBoxData{}, err
	}
	return CheckBoxData{
		Checked: f.Bool("1"),
		Enabled: !f.Has("3") || f.Bool("3"),
	}, nil
}

// Select fires the CheckBox's Select event, toggling to the given
// checked state.
func (c *CheckBox) Select(checked bool) (wdevent.Event, error) {
	v := "false"
	if checked {
		v = "true"
	}
	return c.FireEvent("Select", []wdevent.Param{c.idParam(), {Name: "checked", Value: v}})
}

// RadioButton is a single option within a mutually exclusive group
// (spec.md §4.6). Unlike CheckBox it has a GroupName, and its Select
// carries no checked-state parameter: it only activates this option.
type RadioButton struct {
	Base
}

// RadioButtonData is RadioButton's typed lsdata shape.
type RadioButtonData struct {
	Selected  bool
	GroupName string
	Enabled   bool
}

// Data decodes this RadioButton's lsdata.
func (r *RadioButton) Data() (RadioButtonData, error) {
	f, err := r.LSData()
	if err != nil {
		return RadioButtonData{}, err
	}
	return RadioButtonData{
		Selected:  f.Bool("1"),
		GroupName: f.String("2"),
		Enabled:   !f.Has("3") || f.Bool("3"),
	}, nil
}

// Select fires the RadioButton's Select event, activating this option.
func (r *RadioButton) Select() (wdevent.Event, error) {
	return r.FireEvent("Select", []wdevent.Param{r.idParam()})
}
