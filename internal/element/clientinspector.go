package element

import "github.com/uskr/wdclient/internal/wdevent"

// ClientInspector is the invisible bootstrap probe element the
// framework mounts on every page to collect client capability
// information before the real content loads (spec.md §4.4 bootstrap
// handshake, component M). internal/app's Build fires two Notify calls
// against it (ids "WD01" then "WD02") as steps 1 and 2 of the fixed
// four-step handshake.
type ClientInspector struct {
	Base
}

// Notify fires the ClientInspector's Notify event with the handshake
// payload appropriate to this probe id ("WD01" or "WD02"). payload is
// the literal client-info string the step requires; it is the caller's
// (internal/app's) responsibility to supply the correct default or
// configuration override for each of the two steps.
func (c *ClientInspector) Notify(payload string) (wdevent.Event, error) {
	return c.FireEvent("Notify", []wdevent.Param{c.idParam(), {Name: "ClientInfo", Value: payload}})
}

// LoadingPlaceholder is the framework's spinner/skeleton element shown
// while the real window loads; step 3 of the bootstrap handshake fires
// its Load event against the well-known id "_loadingPlaceholder_".
type LoadingPlaceholder struct {
	Base
}

// Load fires the LoadingPlaceholder's Load event.
func (l *LoadingPlaceholder) Load() (wdevent.Event, error) {
	return l.FireEvent("Load", []wdevent.Param{l.idParam()})
}
