package element

import (
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/uskr/wdclient/internal/lsjson"
	"github.com/uskr/wdclient/internal/wdevent"
	"github.com/uskr/wdclient/internal/werror"
)

// Base is embedded by every typed element. It holds the DOM node the
// parser resolved and lazily decodes that node's lsdata/lsevents
// attributes exactly once, caching the result for the element's
// lifetime (spec.md §5: elements are not retained across a
// process_event call, so the cache never needs invalidation).
type Base struct {
	ID   string
	Kind Kind
	Node *goquery.Selection

	dataOnce sync.Once
	data     lsjson.RawFields
	dataErr  error

	eventsOnce sync.Once
	events     map[string]lsjson.EventSpec
	eventsErr  error
}

// NewBase wraps a resolved DOM node for kind k at id.
func NewBase(id string, k Kind, node *goquery.Selection) Base {
	return Base{ID: id, Kind: k, Node: node}
}

// LSData returns this element's decoded lsdata fields. A decode failure
// is cached and returned on every call; per spec.md §7 this is never
// fatal to callers that only read optional fields (they get zero
// values), but is surfaced so callers can distinguish "absent" from
// "unreadable" when that matters.
func (b *Base) LSData() (lsjson.RawFields, error) {
	b.dataOnce.Do(func() {
		raw, _ := b.Node.Attr("lsdata")
		b.data, b.dataErr = lsjson.DecodeLSData(raw)
		if b.dataErr != nil {
			b.data = lsjson.RawFields{}
		}
	})
	return b.data, b.dataErr
}

// LSEvents returns this element's declared event table.
func (b *Base) LSEvents() (map[string]lsjson.EventSpec, error) {
	b.eventsOnce.Do(func() {
		raw, _ := b.Node.Attr("lsevents")
		b.events, b.eventsErr = lsjson.DecodeLSEvents(raw)
		if b.eventsErr != nil {
			b.events = map[string]lsjson.EventSpec{}
		}
	})
	return b.events, b.eventsErr
}

// FireEvent looks up name in this element's lsevents table and builds
// the wdevent.Event that fires it with the given ordered user params.
// Event name resolution failures are always hard errors (spec.md §7),
// unlike missing lsdata fields.
func (b *Base) FireEvent(name string, params []wdevent.Param) (wdevent.Event, error) {
	events, _ := b.LSEvents()
	spec, ok := events[name]
	if !ok {
		return wdevent.Event{}, werror.NoSuchEvent(b.ID, name)
	}
	return wdevent.New(WireName(b.Kind), name, params, spec.UCF, spec.Custom), nil
}

// idParam is the near-universal first parameter every element event
// carries: its own DOM id.
func (b *Base) idParam() wdevent.Param {
	return wdevent.Param{Name: "Id", Value: b.ID}
}

// ElementID returns this element's DOM id, satisfying the Element interface.
func (b *Base) ElementID() string { return b.ID }

// ElementKind returns this element's Kind, satisfying the Element interface.
func (b *Base) ElementKind() Kind { return b.Kind }

// Element is satisfied by every typed kind in this package (each
// embeds Base). internal/parser resolves a DOM node to one of these,
// and internal/command type-asserts down to the concrete kind it
// expects.
type Element interface {
	ElementID() string
	ElementKind() Kind
}
