// Package transport implements the two HTTP operations of spec.md §4.4
// and §6: navigate (GET the landing page) and xhr (POST the event queue,
// receive the XML update). Both use a cookie-jar-backed *http.Client so
// multiple transports can share one authenticated session (spec.md §5).
package transport

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/uskr/wdclient/internal/body"
	"github.com/uskr/wdclient/internal/logx"
	"github.com/uskr/wdclient/internal/werror"
	"go.uber.org/zap"
)

// DefaultUserAgent is the UA string used when Options.UserAgent is empty.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"

// Options configures a Transport's outbound request headers.
type Options struct {
	UserAgent string
	Logger    logx.Logger
}

// Transport is the cookie-carrying HTTP session (spec.md §2 component G).
type Transport struct {
	httpClient *http.Client
	userAgent  string
	log        logx.Logger
}

// New builds a Transport around httpClient, which must already carry the
// cookie jar the caller wants (possibly shared across multiple
// Transports/clients under one authenticated identity, spec.md §5).
func New(httpClient *http.Client, opts Options) *Transport {
	ua := opts.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	log := opts.Logger
	if log == nil {
		log = logx.Noop
	}
	return &Transport{httpClient: httpClient, userAgent: ua, log: log}
}

// Navigate performs GET <base>/<appName>?sap-wd-stableids=X with the
// browser-like header set spec.md §6 requires, and returns a fresh Body
// parsed from the response text.
func (t *Transport) Navigate(ctx context.Context, base, appName string) (*body.Body, error) {
	u, err := url.Parse(strings.TrimRight(base, "/") + "/" + appName)
	if err != nil {
		return nil, werror.Transport("malformed base URL", err)
	}
	q := u.Query()
	q.Set("sap-wd-stableids", "X")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, werror.Transport("failed to build navigate request", err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "ko,en;q=0.9,en-US;q=0.8")
	req.Header.Set("User-Agent", t.userAgent)

	reqID := uuid.NewString()
	t.log.Info("navigate", zap.String("request_id", reqID), zap.String("url", u.String()))

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, werror.Transport("navigate request failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, werror.Transport("failed to read navigate response body", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		t.log.Error("navigate non-2xx", zap.String("request_id", reqID), zap.Int("status", resp.StatusCode))
		return nil, werror.Transport("navigate returned non-2xx status "+strconv.Itoa(resp.StatusCode), nil)
	}

	return body.New(string(raw))
}

// XHRResult is the raw response of an xhr round-trip: the bytes are
// handed to bodyupdate.Parse by the caller (internal/client), keeping
// this package ignorant of the update wire format.
type XHRResult struct {
	StatusCode int
	Body       []byte
}

// XHR performs POST <origin><ssrClient.action> with the exact headers
// and form fields spec.md §4.4/§6 specify. The caller supplies the
// already-serialized SAPEVENTQUEUE value (from queue.SerializeAndClear).
func (t *Transport) XHR(ctx context.Context, originBase string, ssr body.SsrClient, serializedQueue string) (XHRResult, error) {
	origin, err := originOf(originBase)
	if err != nil {
		return XHRResult{}, werror.Transport("malformed base URL", err)
	}

	// Built field-by-field rather than via url.Values.Encode(), which
	// alphabetizes keys: spec.md §6 fixes the wire order
	// (sap-charset, sap-wd-secure-id, fesrAppName, fesrUseBeacon,
	// SAPEVENTQUEUE) and nothing about form-urlencoded bodies requires
	// giving that up just because url.Values is the usual shortcut.
	formBody := encodeOrderedForm(
		field{"sap-charset", ssr.Charset},
		field{"sap-wd-secure-id", ssr.WdSecureID},
		field{"fesrAppName", ssr.AppName},
		field{"fesrUseBeacon", boolParam(ssr.UseBeacon)},
		field{"SAPEVENTQUEUE", serializedQueue},
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, origin+ssr.Action, strings.NewReader(formBody))
	if err != nil {
		return XHRResult{}, werror.Transport("failed to build xhr request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set("X-XHR-Logon", "Accept")
	req.Header.Set("Sec-Fetch-Dest", "empty")
	req.Header.Set("Sec-Fetch-Mode", "cors")
	req.Header.Set("Sec-Fetch-Site", "same-origin")
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Accept-Encoding", "gzip, deflate, br")
	req.Header.Set("User-Agent", t.userAgent)

	reqID := uuid.NewString()
	t.log.Info("xhr", zap.String("request_id", reqID), zap.String("action", ssr.Action))

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return XHRResult{}, werror.Transport("xhr request failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return XHRResult{}, werror.Transport("failed to read xhr response body", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		t.log.Error("xhr non-2xx", zap.String("request_id", reqID), zap.Int("status", resp.StatusCode))
		return XHRResult{}, werror.Transport("xhr returned non-2xx status "+strconv.Itoa(resp.StatusCode), nil)
	}

	return XHRResult{StatusCode: resp.StatusCode, Body: raw}, nil
}

// field is one ordered form-urlencoded (name, value) pair.
type field struct{ name, value string }

// encodeOrderedForm renders fields in the exact order given, unlike
// url.Values.Encode which sorts keys.
func encodeOrderedForm(fields ...field) string {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(f.name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(f.value))
	}
	return b.String()
}

func boolParam(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func originOf(base string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	return u.Scheme + "://" + u.Host, nil
}
