package element

import "github.com/uskr/wdclient/internal/wdevent"

// InputField is the free-text entry widget (spec.md §4.6).
type InputField struct {
	Base
}

// InputFieldData is InputField's typed lsdata shape.
type InputFieldData struct {
	Value     string
	Enabled   bool
	MaxLength int
	Required  bool
}

// Data decodes this InputField's lsdata.
func (i *InputField) Data() (InputFieldData, error) {
	f, err := i.LSData()
	if err != nil {
		return InputFieldData{}, err
	}
	return InputFieldData{
		Value:     f.String("0"),
		Enabled:   !f.Has("3") || f.Bool("3"),
		MaxLength: f.Int("5"),
		Required:  f.Bool("9"),
	}, nil
}

// Enter fires the InputField's Enter event with the new value,
// mirroring the browser's onchange commit rather than a keystroke.
func (i *InputField) Enter(value string) (wdevent.Event, error) {
	return i.FireEvent("Enter", []wdevent.Param{i.idParam(), {Name: "Value", Value: value}})
}
