package element

import "github.com/uskr/wdclient/internal/wdevent"

// Link is an inline hyperlink-styled action element (spec.md §9
// supplemented kinds): visually a link, behaviorally a Press-only
// button, grounded on original_source/'s separate Link control rather
// than collapsing it into Button.
type Link struct {
	Base
}

// LinkData is Link's typed lsdata shape.
type LinkData struct {
	Text      string
	Enabled   bool
	Reference string
}

// Data decodes this Link's lsdata.
func (l *Link) Data() (LinkData, error) {
	f, err := l.LSData()
	if err != nil {
		return LinkData{}, err
	}
	return LinkData{
		Text:      f.String("0"),
		Enabled:   !f.Has("3") || f.Bool("3"),
		Reference: f.String("6"),
	}, nil
}

// Press fires the Link's Press event.
func (l *Link) Press() (wdevent.Event, error) {
	return l.FireEvent("Press", []wdevent.Param{l.idParam()})
}
