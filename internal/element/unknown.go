package element

// Unknown wraps any DOM node whose `ct` attribute is not in the
// registry (spec.md §4.6 "Unknown elements", supplemented from
// original_source/'s catch-all variant). It still decodes lsdata/
// lsevents generically and can fire any declared event by name, just
// without a typed field/parameter shape.
type Unknown struct {
	Base
	CT string // the unrecognized wire `ct` value, preserved for diagnostics
}
