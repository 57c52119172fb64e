package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const landingHTML = `<html><body>
<form id="f1" action="/sap/bc/wd/dispatcher">
  <script>sap.client.SsrClient.form(document.forms[0]);</script>
  <input id="sap-charset" value="utf-8">
  <input id="sap-wd-secure-id" value="abc">
  <input id="fesrAppName" value="TestApp">
  <input id="fesrUseBeacon" value="true">
</form>
<div id="WD01" ct="CI" lsevents="{Notify:{ucf:{Action:'Submit',ResponseData:'Full'},custom:{}}}"></div>
<div id="WD02" ct="CI" lsevents="{Notify:{ucf:{Action:'Submit',ResponseData:'Full'},custom:{}}}"></div>
<div id="_loadingPlaceholder_" ct="LDP" lsevents="{Load:{ucf:{Action:'Submit',ResponseData:'Full'},custom:{}}}"></div>
</body></html>`

func TestBuildRunsFourStepHandshakeInOrder(t *testing.T) {
	var xhrCount int
	var queues []string
	mux := http.NewServeMux()
	mux.HandleFunc("/TestApp", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, landingHTML)
	})
	mux.HandleFunc("/sap/bc/wd/dispatcher", func(w http.ResponseWriter, r *http.Request) {
		xhrCount++
		r.ParseForm()
		queues = append(queues, r.Form.Get("SAPEVENTQUEUE"))
		io.WriteString(w, `<updates><delta-update windowid="W"></delta-update></updates>`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cl, err := Build(context.Background(), srv.URL, "TestApp", Options{})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if xhrCount != 4 {
		t.Fatalf("expected 4 handshake submits, got %d", xhrCount)
	}
	wantPrefixes := []string{
		"ClientInspector~Notify~Id:WD01,",
		"ClientInspector~Notify~Id:WD02,",
		"LoadingPlaceholder~Load~Id:_loadingPlaceholder_~",
		"Custom~ClientInfos~Id:WD01,",
	}
	for i, prefix := range wantPrefixes {
		if !strings.HasPrefix(queues[i], prefix) {
			t.Fatalf("submit %d SAPEVENTQUEUE = %q, want prefix %q", i, queues[i], prefix)
		}
	}
	if cl.AppName() != "TestApp" {
		t.Fatalf("AppName() = %q", cl.AppName())
	}
}

type fakeApp struct{ BaseShell }

func TestBaseShellFromClientRejectsNameMismatch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/TestApp", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, landingHTML)
	})
	mux.HandleFunc("/sap/bc/wd/dispatcher", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<updates><delta-update windowid="W"></delta-update></updates>`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cl, err := Build(context.Background(), srv.URL, "TestApp", Options{})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	shell := fakeApp{BaseShell{Name: "OtherApp"}}
	if err := shell.FromClient(cl); err == nil {
		t.Fatal("expected app name mismatch to be rejected")
	}

	matching := fakeApp{BaseShell{Name: "TestApp"}}
	if err := matching.FromClient(cl); err != nil {
		t.Fatalf("expected matching app name to validate, got: %v", err)
	}
}

func TestBuildPropagatesHandshakeFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/TestApp", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, landingHTML)
	})
	mux.HandleFunc("/sap/bc/wd/dispatcher", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	if _, err := Build(context.Background(), srv.URL, "TestApp", Options{}); err == nil {
		t.Fatal("expected handshake failure to propagate")
	}
}
