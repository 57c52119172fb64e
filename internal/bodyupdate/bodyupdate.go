// Package bodyupdate parses the XML update response described in
// spec.md §4.5 into a typed Update, and the body package applies it
// against a live document. Parsing and application are kept in separate
// packages (F is "parser+applier" but the mutation needs Body's
// internals) — this package owns only the wire format.
package bodyupdate

import (
	"encoding/xml"

	"github.com/uskr/wdclient/internal/werror"
)

// Kind discriminates the two update shapes spec.md §3 names.
type Kind int

const (
	KindFull Kind = iota
	KindDelta
)

// ControlPatch is one (controlID, replacement outer HTML) pair inside a
// delta-update.
type ControlPatch struct {
	ControlID string
	HTML      string
}

// Update is the parsed <updates> payload: exactly one of Full or Delta
// fields is meaningful, selected by Kind.
type Update struct {
	Kind Kind

	WindowID string

	// Full fields.
	ContentID string
	InnerHTML string

	// Delta fields.
	Controls []ControlPatch

	// Opaque fields the source XML may carry but which spec.md §4.5 says
	// are "intentionally not applied" — captured verbatim for forward
	// compatibility with a future script engine, never interpreted here
	// (spec.md §9 Design Notes).
	InitializeIDs    []byte
	ScriptCalls      []byte
	ModelUpdates     []byte
	AnimationUpdates []byte
}

// --- wire structs -----------------------------------------------------

type updatesXML struct {
	XMLName          xml.Name        `xml:"updates"`
	FullUpdate       *fullUpdateXML  `xml:"full-update"`
	DeltaUpdate      *deltaUpdateXML `xml:"delta-update"`
	InitializeIDs    *rawElement     `xml:"initialize-ids"`
	ScriptCalls      *rawElement     `xml:"script-calls"`
	ModelUpdates     *rawElement     `xml:"model-updates"`
	AnimationUpdates *rawElement     `xml:"animation-updates"`
}

type rawElement struct {
	Inner []byte `xml:",innerxml"`
}

type fullUpdateXML struct {
	WindowID      string           `xml:"windowid,attr"`
	ContentUpdate *contentUpdateXML `xml:"content-update"`
}

type contentUpdateXML struct {
	ID   string `xml:"id,attr"`
	HTML string `xml:",chardata"`
}

type deltaUpdateXML struct {
	WindowID string    `xml:"windowid,attr"`
	Children []rawChild `xml:",any"`
}

type rawChild struct {
	XMLName xml.Name
	ID      string `xml:"id,attr"`
	HTML    string `xml:",chardata"`
}

// Warner receives a message for each skipped unknown child tag inside a
// delta-update (spec.md §4.5: "Unknown child tags ... log a warning and
// are skipped"). Parse takes one so the caller controls how that surfaces
// without this package depending on internal/logx directly.
type Warner func(msg string)

// Parse decodes raw XML bytes into an Update per spec.md §4.5.
func Parse(rawXML []byte, warn Warner) (Update, error) {
	if warn == nil {
		warn = func(string) {}
	}

	var doc updatesXML
	if err := xml.Unmarshal(rawXML, &doc); err != nil {
		return Update{}, werror.BodyUpdate("malformed update XML", err)
	}

	var (
		update Update
		err    error
	)
	switch {
	case doc.FullUpdate != nil && doc.DeltaUpdate != nil:
		return Update{}, werror.BodyUpdate("update XML has both full-update and delta-update children", nil)
	case doc.FullUpdate != nil:
		update, err = parseFull(doc.FullUpdate)
	case doc.DeltaUpdate != nil:
		update, err = parseDelta(doc.DeltaUpdate, warn)
	default:
		return Update{}, werror.BodyUpdate("update XML root has no recognized child (expected full-update or delta-update)", nil)
	}
	if err != nil {
		return Update{}, err
	}
	update.InitializeIDs = innerOf(doc.InitializeIDs)
	update.ScriptCalls = innerOf(doc.ScriptCalls)
	update.ModelUpdates = innerOf(doc.ModelUpdates)
	update.AnimationUpdates = innerOf(doc.AnimationUpdates)
	return update, nil
}

func innerOf(e *rawElement) []byte {
	if e == nil {
		return nil
	}
	return e.Inner
}

func parseFull(f *fullUpdateXML) (Update, error) {
	if f.WindowID == "" {
		return Update{}, werror.BodyUpdate("full-update missing windowid attribute", nil)
	}
	if f.ContentUpdate == nil {
		return Update{}, werror.BodyUpdate("full-update missing content-update child", nil)
	}
	if f.ContentUpdate.ID == "" {
		return Update{}, werror.BodyUpdate("content-update missing id attribute", nil)
	}
	return Update{
		Kind:      KindFull,
		WindowID:  f.WindowID,
		ContentID: f.ContentUpdate.ID,
		InnerHTML: f.ContentUpdate.HTML,
	}, nil
}

func parseDelta(d *deltaUpdateXML, warn Warner) (Update, error) {
	if d.WindowID == "" {
		return Update{}, werror.BodyUpdate("delta-update missing windowid attribute", nil)
	}
	var controls []ControlPatch
	for _, child := range d.Children {
		if child.XMLName.Local != "control-update" {
			warn("skipping unknown delta-update child tag: " + child.XMLName.Local)
			continue
		}
		if child.ID == "" {
			return Update{}, werror.BodyUpdate("control-update missing id attribute", nil)
		}
		controls = append(controls, ControlPatch{ControlID: child.ID, HTML: child.HTML})
	}
	return Update{Kind: KindDelta, WindowID: d.WindowID, Controls: controls}, nil
}
