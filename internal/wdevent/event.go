// Package wdevent implements the Event value type and UcfParameters
// record from spec.md §3: an immutable UI event destined for the
// SAPEVENTQUEUE wire field, plus its serialization.
package wdevent

import (
	"strings"

	"github.com/uskr/wdclient/internal/escape"
)

// Action is the UCF routing verb: whether an event enqueues locally or
// goes over the wire immediately, and if so, synchronously or not.
type Action string

const (
	ActionSubmit      Action = "Submit"
	ActionSubmitAsync Action = "SubmitAsync"
	ActionEnqueue     Action = "Enqueue"
	ActionNone        Action = "None"
)

// Response is the UCF response-shape hint: full HTML region replacement
// or a per-control delta.
type Response string

const (
	ResponseFull  Response = "Full"
	ResponseDelta Response = "Delta"
	ResponseNone  Response = "None"
)

// UcfParameters is the framework-defined per-event control bag (spec.md
// §3). Only Action and Response are semantically important for routing.
// Serialize writes a fixed field list (ClientAction, Action, Transport,
// Response, Navigation, DomChanged, IsDirty) plus Extra; Async,
// FocusInfo, Hash and TransportField are not serialized.
type UcfParameters struct {
	Action         Action
	Response       Response
	Navigation     string
	Transport      string
	DomChanged     bool
	IsDirty        bool
	Async          bool
	FocusInfo      string
	Hash           string
	ClientAction   string
	TransportField string
	Extra          map[string]string // additional fields, serialized after the fixed ones in name order; lsjson.DecodeLSEvents does not fill it
}

// DefaultUCF matches spec.md §3: "Default action is SubmitAsync, default
// response is Delta."
func DefaultUCF() UcfParameters {
	return UcfParameters{Action: ActionSubmitAsync, Response: ResponseDelta}
}

// Param is one (name, value) pair in an Event's ordered parameter map.
// A slice, not a map, because wire order matters (spec.md §3) and the
// first entry is always "Id".
type Param struct {
	Name  string
	Value string
}

// Event is the immutable record from spec.md §3.
type Event struct {
	Control          string
	EventName        string
	Parameters       []Param
	UCFParameters    UcfParameters
	CustomParameters map[string]string
}

// IsSubmittable reports whether this event's UCF action dispatches over
// the wire immediately (as opposed to sitting in the queue).
func (e Event) IsSubmittable() bool {
	return e.UCFParameters.Action == ActionSubmit || e.UCFParameters.Action == ActionSubmitAsync
}

// IsEnqueuable reports whether this event only buffers locally unless the
// caller forces a send (spec.md §4.4 process_event step 1).
func (e Event) IsEnqueuable() bool {
	return e.UCFParameters.Action == ActionEnqueue
}

// ParamValue returns the value of the named parameter, or "" if absent.
func (e Event) ParamValue(name string) string {
	for _, p := range e.Parameters {
		if p.Name == name {
			return p.Value
		}
	}
	return ""
}

// New builds an Event from an element's declared (ucf, custom) pair and
// the caller's ordered user parameters. The first parameter is always Id
// per spec.md §4.3, so callers pass it as the first Param.
func New(control, event string, params []Param, ucf UcfParameters, custom map[string]string) Event {
	return Event{
		Control:          control,
		EventName:        event,
		Parameters:       params,
		UCFParameters:    ucf,
		CustomParameters: custom,
	}
}

// Serialize renders one event into its queue segment: the fixed field
// order and separators from spec.md §3, with escape.Encode applied to
// every value.
//
//	control~event~ p1:v1,p2:v2 ~ucf-encoded~custom-encoded~;
func (e Event) Serialize() string {
	var b strings.Builder
	b.WriteString(escape.Encode(e.Control))
	b.WriteByte('~')
	b.WriteString(escape.Encode(e.EventName))
	b.WriteByte('~')
	writeParamSegment(&b, e.Parameters)
	b.WriteByte('~')
	writeUCFSegment(&b, e.UCFParameters)
	b.WriteByte('~')
	writeCustomSegment(&b, e.CustomParameters)
	b.WriteByte('~')
	b.WriteByte(';')
	return b.String()
}

func writeParamSegment(b *strings.Builder, params []Param) {
	for i, p := range params {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escape.Encode(p.Name))
		b.WriteByte(':')
		b.WriteString(escape.Encode(p.Value))
	}
}

func writeCustomSegment(b *strings.Builder, custom map[string]string) {
	names := make([]string, 0, len(custom))
	for k := range custom {
		names = append(names, k)
	}
	// Deterministic order: custom params have no framework-mandated
	// ordering, so sort by name for stable wire output and testability.
	sortStrings(names)
	for i, name := range names {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escape.Encode(name))
		b.WriteByte(':')
		b.WriteString(escape.Encode(custom[name]))
	}
}

func writeUCFSegment(b *strings.Builder, ucf UcfParameters) {
	fields := ucfFieldList(ucf)
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escape.Encode(f.name))
		b.WriteByte(':')
		b.WriteString(escape.Encode(f.value))
	}
}

type namedField struct{ name, value string }

func ucfFieldList(ucf UcfParameters) []namedField {
	fields := []namedField{
		{"ClientAction", ucf.ClientAction},
		{"ActionUrl", ""},
		{"Action", string(ucf.Action)},
		{"TransportMode", ucf.Transport},
		{"AsyncSubmit", boolString(ucf.Action == ActionSubmitAsync)},
		{"ResponseData", string(ucf.Response)},
		{"Navigation", ucf.Navigation},
		{"DomChanged", boolString(ucf.DomChanged)},
		{"IsDirty", boolString(ucf.IsDirty)},
	}
	extraNames := make([]string, 0, len(ucf.Extra))
	for k := range ucf.Extra {
		extraNames = append(extraNames, k)
	}
	sortStrings(extraNames)
	for _, k := range extraNames {
		fields = append(fields, namedField{k, ucf.Extra[k]})
	}
	return fields
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func sortStrings(ss []string) {
	// Small, allocation-free insertion sort: these lists are a handful of
	// elements (custom params, UCF extras), never worth pulling in sort
	// for a measurable difference.
	for i := 1; i < len(ss); i++ {
		for j := i; j > 0 && ss[j-1] > ss[j]; j-- {
			ss[j-1], ss[j] = ss[j], ss[j-1]
		}
	}
}
