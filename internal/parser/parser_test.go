package parser

import (
	"strings"
	"testing"

	"github.com/uskr/wdclient/internal/body"
	"github.com/uskr/wdclient/internal/element"
)

const landingHTML = `<html><body>
<form id="f1" action="/sap/bc/wd/dispatcher">
  <script>sap.client.SsrClient.form(document.forms[0]);</script>
  <input id="sap-charset" value="utf-8">
  <input id="sap-wd-secure-id" value="abc">
  <input id="fesrAppName" value="APP">
  <input id="fesrUseBeacon" value="true">
</form>
<div id="B1" ct="B" lsdata="{0:'Submit'}"></div>
<div id="CB1" ct="CB" lsdata="{0:'A,Apple'}"></div>
</body></html>`

func newBody(t *testing.T) *body.Body {
	t.Helper()
	b, err := body.New(landingHTML)
	if err != nil {
		t.Fatalf("body.New: %v", err)
	}
	return b
}

func TestFromDefResolvesMatchingKind(t *testing.T) {
	b := newBody(t)
	el, err := FromDef(b, Define(element.KindButton, "B1"))
	if err != nil {
		t.Fatalf("FromDef error: %v", err)
	}
	btn, ok := el.(*element.Button)
	if !ok {
		t.Fatalf("expected *element.Button, got %T", el)
	}
	data, err := btn.Data()
	if err != nil {
		t.Fatalf("Data() error: %v", err)
	}
	if data.Text != "Submit" {
		t.Fatalf("Text = %q", data.Text)
	}
}

func TestFromDefMissingIDIsInvalidID(t *testing.T) {
	b := newBody(t)
	if _, err := FromDef(b, Define(element.KindButton, "nope")); err == nil {
		t.Fatal("expected InvalidID error")
	}
}

func TestFromDefWrongKindIsInvalidElement(t *testing.T) {
	b := newBody(t)
	if _, err := FromDef(b, Define(element.KindComboBox, "B1")); err == nil {
		t.Fatal("expected InvalidElement error for ct mismatch")
	}
}

func TestFromParentScopedDefScopesLookup(t *testing.T) {
	html := `<html><body>
<form id="f1" action="/x">
  <script>sap.client.SsrClient.form(document.forms[0]);</script>
  <input id="sap-charset" value="utf-8">
  <input id="sap-wd-secure-id" value="abc">
  <input id="fesrAppName" value="APP">
  <input id="fesrUseBeacon" value="true">
</form>
<div id="parent1"><div id="child1" ct="B" lsdata="{0:'Nested'}"></div></div>
<div id="child1" ct="CB"></div>
</body></html>`
	b, err := body.New(html)
	if err != nil {
		t.Fatalf("body.New: %v", err)
	}

	el, err := FromParentScopedDef(b, "parent1", Define(element.KindButton, "child1"))
	if err != nil {
		t.Fatalf("FromParentScopedDef error: %v", err)
	}
	btn, ok := el.(*element.Button)
	if !ok {
		t.Fatalf("expected *element.Button, got %T", el)
	}
	data, _ := btn.Data()
	if data.Text != "Nested" {
		t.Fatalf("expected the parent-scoped child, got Text=%q", data.Text)
	}
}

func TestFromDefUnknownCTFallsBackToUnknown(t *testing.T) {
	html := strings.Replace(landingHTML, `<div id="CB1" ct="CB" lsdata="{0:'A,Apple'}"></div>`, `<div id="Z1" ct="ZZZ"></div>`, 1)
	b, err := body.New(html)
	if err != nil {
		t.Fatalf("body.New: %v", err)
	}
	el, err := FromDef(b, Define(element.KindUnknown, "Z1"))
	if err != nil {
		t.Fatalf("FromDef error: %v", err)
	}
	if _, ok := el.(*element.Unknown); !ok {
		t.Fatalf("expected *element.Unknown, got %T", el)
	}
}
