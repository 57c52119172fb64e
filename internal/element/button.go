package element

import "github.com/uskr/wdclient/internal/wdevent"

// Button is the plain push-button widget (spec.md §4.6). Its only
// interaction is Press.
type Button struct {
	Base
}

// ButtonData is Button's typed lsdata shape. Field "0" is the caption
// text, "3" the enabled flag, "8" the design/emphasis hint.
type ButtonData struct {
	Text    string
	Enabled bool
	Design  string
}

// Data decodes this Button's lsdata.
func (b *Button) Data() (ButtonData, error) {
	f, err := b.LSData()
	if err != nil {
		return ButtonData{}, err
	}
	return ButtonData{
		Text:    f.String("0"),
		Enabled: !f.Has("3") || f.Bool("3"),
		Design:  f.String("8"),
	}, nil
}

// Press fires the Button's Press event.
func (b *Button) Press() (wdevent.Event, error) {
	return b.FireEvent("Press", []wdevent.Param{b.idParam()})
}
