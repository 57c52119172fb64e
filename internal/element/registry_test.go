package element

import "testing"

func TestNewFallsBackToUnknownForUnregisteredKind(t *testing.T) {
	html := `<div id="X1" ct="ZZZ"></div>`
	node := mustSelection(t, html, `#X1`)

	el := New(KindUnknown, "ZZZ", "X1", node)
	u, ok := el.(*Unknown)
	if !ok {
		t.Fatalf("expected *Unknown, got %T", el)
	}
	if u.CT != "ZZZ" || u.ElementID() != "X1" {
		t.Fatalf("unexpected Unknown: %+v", u)
	}
}

func TestNewDispatchesKnownKinds(t *testing.T) {
	html := `<div id="B1" ct="B"></div>`
	node := mustSelection(t, html, `#B1`)

	el := New(KindButton, "B", "B1", node)
	if _, ok := el.(*Button); !ok {
		t.Fatalf("expected *Button, got %T", el)
	}
	if el.ElementKind() != KindButton {
		t.Fatalf("ElementKind() = %v", el.ElementKind())
	}
}

func TestCustomClientInfosBuildsEventWithoutDOMNode(t *testing.T) {
	ev := NewCustom("WD01").ClientInfos(ClientInfosParams{
		WindowOpenerExists: true,
		ClientURL:          "https://example.edu/app",
		ClientWidth:        1920,
		ClientHeight:       1000,
		DocumentDomain:     "example.edu",
		IsTopWindow:        true,
		ParentAccessible:   true,
	})
	if ev.Control != "Custom" || ev.EventName != "ClientInfos" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.ParamValue("clientWidth") != "1920" {
		t.Fatalf("clientWidth = %q", ev.ParamValue("clientWidth"))
	}
	if !ev.IsSubmittable() {
		t.Fatal("expected ClientInfos to be submittable")
	}
}
