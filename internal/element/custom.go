package element

import (
	"strconv"

	"github.com/uskr/wdclient/internal/wdevent"
)

// Custom is the synthetic element spec.md §9 calls out: the bootstrap
// handshake's fourth step fires ClientInfos against a fictitious
// control named "Custom" that never exists in the DOM. Every other
// kind in this package resolves through internal/parser against a real
// node; Custom is built directly by the application builder instead,
// bypassing the "must exist in Body" check the parser otherwise
// enforces for every other kind.
type Custom struct {
	ID string
}

// NewCustom constructs a Custom reference for id without touching the
// Body at all.
func NewCustom(id string) *Custom {
	return &Custom{ID: id}
}

// ClientInfosParams is the fixed payload shape spec.md §4.7 step (d)
// names for the bootstrap ClientInfos call.
type ClientInfosParams struct {
	WindowOpenerExists bool
	ClientURL          string
	ClientWidth        int
	ClientHeight       int
	DocumentDomain     string
	IsTopWindow        bool
	ParentAccessible   bool
}

// clientInfosUCF is the UCF routing of the ClientInfos step (the other
// three handshake steps take theirs from their elements' lsevents):
// spec.md §4.7/§8 S6 describes the four steps as "exactly four
// submits", i.e. synchronous dispatch with a full-region response,
// since the handshake replaces the whole window before any delta
// update would have anything to target.
var clientInfosUCF = wdevent.UcfParameters{Action: wdevent.ActionSubmit, Response: wdevent.ResponseFull}

// ClientInfos builds the bootstrap ClientInfos event directly, with no
// lsevents lookup since none exists for a synthetic control.
func (c *Custom) ClientInfos(p ClientInfosParams) wdevent.Event {
	params := []wdevent.Param{
		{Name: "Id", Value: c.ID},
		{Name: "windowOpenerExists", Value: boolStr(p.WindowOpenerExists)},
		{Name: "clientUrl", Value: p.ClientURL},
		{Name: "clientWidth", Value: strconv.Itoa(p.ClientWidth)},
		{Name: "clientHeight", Value: strconv.Itoa(p.ClientHeight)},
		{Name: "documentDomain", Value: p.DocumentDomain},
		{Name: "isTopWindow", Value: boolStr(p.IsTopWindow)},
		{Name: "parentAccessible", Value: boolStr(p.ParentAccessible)},
	}
	return wdevent.New("Custom", "ClientInfos", params, clientInfosUCF, nil)
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
