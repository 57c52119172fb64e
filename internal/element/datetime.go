package element

import "github.com/uskr/wdclient/internal/wdevent"

// Calendar is the month-grid date-picker widget (spec.md §4.6).
type Calendar struct {
	Base
}

// CalendarData is Calendar's typed lsdata shape. Dates round-trip as
// the framework's own "YYYYMMDD" wire strings rather than being parsed
// into time.Time here: the core stays a thin protocol client and
// leaves calendar semantics (locale, business-day rules) to
// application code, consistent with spec.md §2's "no business logic"
// scope.
type CalendarData struct {
	SelectedDate string
	MinDate      string
	MaxDate      string
}

// Data decodes this Calendar's lsdata.
func (c *Calendar) Data() (CalendarData, error) {
	f, err := c.LSData()
	if err != nil {
		return CalendarData{}, err
	}
	return CalendarData{SelectedDate: f.String("0"), MinDate: f.String("1"), MaxDate: f.String("2")}, nil
}

// Select fires the Calendar's Select event for the given "YYYYMMDD" date.
func (c *Calendar) Select(date string) (wdevent.Event, error) {
	return c.FireEvent("Select", []wdevent.Param{c.idParam(), {Name: "Date", Value: date}})
}

// DateNavigator is Calendar's compact sibling: a single date field with
// prev/next paging rather than a full month grid.
type DateNavigator struct {
	Base
}

// DateNavigatorData is DateNavigator's typed lsdata shape.
type DateNavigatorData struct {
	SelectedDate string
}

// Data decodes this DateNavigator's lsdata.
func (d *DateNavigator) Data() (DateNavigatorData, error) {
	f, err := d.LSData()
	if err != nil {
		return DateNavigatorData{}, err
	}
	return DateNavigatorData{SelectedDate: f.String("0")}, nil
}

// Enter fires the DateNavigator's Enter event with a new date value.
func (d *DateNavigator) Enter(date string) (wdevent.Event, error) {
	return d.FireEvent("Enter", []wdevent.Param{d.idParam(), {Name: "Date", Value: date}})
}
