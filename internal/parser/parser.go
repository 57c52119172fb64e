// Package parser implements elementFromDef (spec.md §4.6 component J):
// resolving an element definition (kind + id) against a Body's current
// DOM into a typed element.Element.
package parser

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/uskr/wdclient/internal/body"
	"github.com/uskr/wdclient/internal/element"
	"github.com/uskr/wdclient/internal/element/saptable"
	"github.com/uskr/wdclient/internal/werror"
)

// Def is a compile-time element definition: the kind an application
// expects at id, matching spec.md §6's define_element(kind, id).
type Def struct {
	Kind element.Kind
	ID   string
}

// Define builds a Def. Exists mainly so application code reads as
// parser.Define(element.KindButton, "id") rather than a bare struct
// literal, matching the "define_element" interface name from spec.md §6.
func Define(kind element.Kind, id string) Def {
	return Def{Kind: kind, ID: id}
}

// FromDef resolves def against b's current DOM: a node with the given
// id must exist (InvalidID), and a `ct` attribute registered to a kind
// other than def.Kind is rejected (InvalidElement). A missing or
// unregistered `ct` is not an error: it yields element.Unknown (or a
// Table when def.Kind is SapTable). SapTable is dispatched to the
// saptable package rather than element.New, since it is complex enough
// to live in its own subpackage.
func FromDef(b *body.Body, def Def) (element.Element, error) {
	var el element.Element
	var err error
	b.WithDoc(func(doc *goquery.Document) {
		sel := doc.Find(`[id="` + def.ID + `"]`)
		if sel.Length() == 0 {
			err = werror.InvalidID(def.ID)
			return
		}
		el, err = build(sel.First(), def.ID, def.Kind)
	})
	return el, err
}

// FromParentScopedDef resolves a dynamic sub-element discovered at
// runtime beneath a known parent id, e.g. a table cell, using the
// parent-scoped selector spec.md §4.6 names:
// `[id="<parent>"] [id="<child>"]`.
func FromParentScopedDef(b *body.Body, parentID string, def Def) (element.Element, error) {
	var el element.Element
	var err error
	b.WithDoc(func(doc *goquery.Document) {
		sel := doc.Find(`[id="` + parentID + `"] [id="` + def.ID + `"]`)
		if sel.Length() == 0 {
			err = werror.InvalidID(def.ID)
			return
		}
		el, err = build(sel.First(), def.ID, def.Kind)
	})
	return el, err
}

func build(node *goquery.Selection, id string, want element.Kind) (element.Element, error) {
	ct, _ := node.Attr("ct")
	gotKind, known := element.KindForCT(ct)

	if want == element.KindSapTable {
		if known && gotKind != element.KindSapTable {
			return nil, werror.InvalidElement(id, string(want), ct)
		}
		return &saptable.Table{Base: element.NewBase(id, element.KindSapTable, node)}, nil
	}

	if want != element.KindUnknown && known && gotKind != want {
		return nil, werror.InvalidElement(id, string(want), ct)
	}

	k := want
	if !known {
		k = element.KindUnknown
	}
	return element.New(k, ct, id, node), nil
}
