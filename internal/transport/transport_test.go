package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/uskr/wdclient/internal/body"
)

const landingHTML = `<html><body>
<form action="/sap/bc/wd/dispatcher">
  <script>sap.client.SsrClient.form(document.forms[0]);</script>
  <input id="sap-charset" value="utf-8">
  <input id="sap-wd-secure-id" value="abc">
  <input id="fesrAppName" value="APP">
  <input id="fesrUseBeacon" value="true">
</form>
</body></html>`

func newJarClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar.New: %v", err)
	}
	return &http.Client{Jar: jar}
}

func TestNavigateRequestsStableIDsAndParsesBody(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		io.WriteString(w, landingHTML)
	}))
	defer srv.Close()

	tr := New(newJarClient(t), Options{})
	b, err := tr.Navigate(context.Background(), srv.URL, "MyApp")
	if err != nil {
		t.Fatalf("Navigate() error: %v", err)
	}
	if gotQuery != "sap-wd-stableids=X" {
		t.Errorf("query = %q, want sap-wd-stableids=X", gotQuery)
	}
	if b.SsrClient().AppName != "APP" {
		t.Errorf("parsed SsrClient AppName = %q", b.SsrClient().AppName)
	}
}

func TestNavigateNon2xxIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	tr := New(newJarClient(t), Options{})
	_, err := tr.Navigate(context.Background(), srv.URL, "MyApp")
	if err == nil {
		t.Fatal("expected error for non-2xx navigate response")
	}
}

func TestXHRSendsRequiredFormFieldsAndHeaders(t *testing.T) {
	var gotHeaders http.Header
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		io.WriteString(w, `<updates><delta-update windowid="W"></delta-update></updates>`)
	}))
	defer srv.Close()

	ssr := body.SsrClient{
		Action:     "/sap/bc/wd/dispatcher",
		Charset:    "utf-8",
		WdSecureID: "abc",
		AppName:    "APP",
		UseBeacon:  true,
	}

	tr := New(newJarClient(t), Options{})
	result, err := tr.XHR(context.Background(), srv.URL, ssr, "Button~Press~Id:B1~~~;")
	if err != nil {
		t.Fatalf("XHR() error: %v", err)
	}
	if result.StatusCode != 200 {
		t.Errorf("StatusCode = %d", result.StatusCode)
	}
	if gotHeaders.Get("X-Requested-With") != "XMLHttpRequest" {
		t.Errorf("X-Requested-With = %q", gotHeaders.Get("X-Requested-With"))
	}
	if gotHeaders.Get("X-XHR-Logon") != "Accept" {
		t.Errorf("X-XHR-Logon = %q", gotHeaders.Get("X-XHR-Logon"))
	}
	for _, field := range []string{"sap-charset=utf-8", "sap-wd-secure-id=abc", "fesrAppName=APP", "fesrUseBeacon=true"} {
		if !strings.Contains(gotBody, field) {
			t.Errorf("form body %q missing %q", gotBody, field)
		}
	}
}

func TestXHREncodesFormFieldsInWireOrder(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		io.WriteString(w, `<updates><delta-update windowid="W"></delta-update></updates>`)
	}))
	defer srv.Close()

	ssr := body.SsrClient{Action: "/d", Charset: "utf-8", WdSecureID: "abc", AppName: "APP", UseBeacon: true}
	tr := New(newJarClient(t), Options{})
	if _, err := tr.XHR(context.Background(), srv.URL, ssr, "Q"); err != nil {
		t.Fatalf("XHR() error: %v", err)
	}

	want := "sap-charset=utf-8&sap-wd-secure-id=abc&fesrAppName=APP&fesrUseBeacon=true&SAPEVENTQUEUE=Q"
	if gotBody != want {
		t.Fatalf("form body = %q, want %q", gotBody, want)
	}
}

func TestXHRNon2xxIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	tr := New(newJarClient(t), Options{})
	_, err := tr.XHR(context.Background(), srv.URL, body.SsrClient{Action: "/x"}, "")
	if err == nil {
		t.Fatal("expected error for non-2xx xhr response")
	}
}
