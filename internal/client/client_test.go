package client

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/uskr/wdclient/internal/body"
	"github.com/uskr/wdclient/internal/transport"
	"github.com/uskr/wdclient/internal/wdevent"
)

const landingHTML = `<html><body>
<form id="sap.client.SsrClient.form_id" action="/sap/bc/wd/dispatcher">
  <script>sap.client.SsrClient.form(document.forms[0]);</script>
  <input id="sap-charset" value="utf-8">
  <input id="sap-wd-secure-id" value="abc">
  <input id="fesrAppName" value="APP">
  <input id="fesrUseBeacon" value="true">
</form>
</body></html>`

func newClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	jar, _ := cookiejar.New(nil)
	tr := transport.New(&http.Client{Jar: jar}, transport.Options{})
	b, err := body.New(landingHTML)
	if err != nil {
		t.Fatalf("body.New: %v", err)
	}
	return New(tr, srv.URL, "APP", b, nil), srv
}

func pressEvent(id string) wdevent.Event {
	return wdevent.New("Button", "Press", []wdevent.Param{{Name: "Id", Value: id}}, wdevent.DefaultUCF(), nil)
}

func enqueueEvent(id string) wdevent.Event {
	ucf := wdevent.UcfParameters{Action: wdevent.ActionEnqueue, Response: wdevent.ResponseNone}
	return wdevent.New("ComboBox", "Select", []wdevent.Param{{Name: "Id", Value: id}}, ucf, nil)
}

func TestEnqueueThenSubmitProducesOnePOSTWithAllThreeEventsInOrder(t *testing.T) {
	var gotQueue string
	var postCount int
	cl, srv := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		postCount++
		r.ParseForm()
		gotQueue = r.Form.Get("SAPEVENTQUEUE")
		io.WriteString(w, `<updates><delta-update windowid="W"></delta-update></updates>`)
	})
	defer srv.Close()

	ctx := context.Background()
	e1 := enqueueEvent("CB1")
	e2 := enqueueEvent("CB2")
	e3 := pressEvent("B1")

	if res, err := cl.ProcessEvent(ctx, false, e1); err != nil || res != Queued {
		t.Fatalf("first enqueue: result=%v err=%v", res, err)
	}
	if res, err := cl.ProcessEvent(ctx, false, e2); err != nil || res != Queued {
		t.Fatalf("second enqueue: result=%v err=%v", res, err)
	}
	res, err := cl.ProcessEvent(ctx, false, e3)
	if err != nil || res != Applied {
		t.Fatalf("submit: result=%v err=%v", res, err)
	}

	if postCount != 1 {
		t.Fatalf("expected exactly 1 POST, got %d", postCount)
	}

	formEvent := cl.formRequestEvent()
	want := e1.Serialize() + "|" + e2.Serialize() + "|" + e3.Serialize() + "|" + formEvent.Serialize()
	if gotQueue != want {
		t.Fatalf("SAPEVENTQUEUE = %q, want %q", gotQueue, want)
	}
}

func TestProcessEventAppliesBodyUpdate(t *testing.T) {
	cl, srv := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<updates><delta-update windowid="W"></delta-update></updates>`)
	})
	defer srv.Close()

	_, err := cl.ProcessEvent(context.Background(), false, pressEvent("B1"))
	if err != nil {
		t.Fatalf("ProcessEvent error: %v", err)
	}
}

func TestProcessEventTransportErrorPropagates(t *testing.T) {
	cl, srv := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer srv.Close()

	_, err := cl.ProcessEvent(context.Background(), false, pressEvent("B1"))
	if err == nil {
		t.Fatal("expected transport error to propagate")
	}
	if !strings.Contains(err.Error(), "500") && !strings.Contains(err.Error(), "non-2xx") {
		t.Errorf("unexpected error: %v", err)
	}
}
