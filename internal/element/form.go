package element

import "github.com/uskr/wdclient/internal/wdevent"

// Form is the bootstrap form itself (spec.md §4.4): process_event
// appends a Form "Request" event automatically after every submittable
// event, so application code never constructs one directly — this
// struct exists for completeness of the registry and for any
// application code that wants to read the form's own lsdata.
type Form struct {
	Base
}

// Request fires the Form's Request event directly. internal/client's
// formRequestEvent builds this same event without going through the
// parser, since it must be appended even when no Form node was
// resolved for the current interaction.
func (f *Form) Request(async, domChanged, isDirty bool) (wdevent.Event, error) {
	params := []wdevent.Param{
		f.idParam(),
		{Name: "Async", Value: boolStr(async)},
		{Name: "FocusInfo", Value: ""},
		{Name: "Hash", Value: ""},
		{Name: "DomChanged", Value: boolStr(domChanged)},
		{Name: "IsDirty", Value: boolStr(isDirty)},
	}
	return f.FireEvent("Request", params)
}
