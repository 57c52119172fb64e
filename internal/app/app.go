// Package app implements the application shell and bootstrap handshake
// from spec.md §4.7 (components L, M): every concrete application
// declares its APP_NAME and validates the client it's built from, and
// Build runs the fixed four-step handshake before handing one back.
package app

import (
	"context"
	"net/http"
	"net/http/cookiejar"

	"github.com/uskr/wdclient/internal/client"
	"github.com/uskr/wdclient/internal/command"
	"github.com/uskr/wdclient/internal/element"
	"github.com/uskr/wdclient/internal/logx"
	"github.com/uskr/wdclient/internal/transport"
	"github.com/uskr/wdclient/internal/werror"
)

// Shell is the contract every concrete application implements: its
// fixed name and a validator that checks a built client actually
// belongs to it.
type Shell interface {
	AppName() string
	FromClient(cl *client.Client) error
}

// BaseShell implements Shell's FromClient check generically; concrete
// application types embed it and only need to supply their own
// AppName().
type BaseShell struct {
	Name string
}

// AppName returns the shell's declared application name.
func (s BaseShell) AppName() string { return s.Name }

// FromClient validates that cl was navigated to this shell's own app.
func (s BaseShell) FromClient(cl *client.Client) error {
	if cl.AppName() != s.Name {
		return werror.Application("client app name "+cl.AppName()+" does not match "+s.Name, nil)
	}
	return nil
}

// HandshakePayloads overrides the two ClientInspector Notify payloads
// and the ClientInfos parameters the bootstrap handshake sends.
// DefaultHandshakePayloads supplies the shape the framework expects
// when the caller doesn't need anything unusual.
type HandshakePayloads struct {
	WD01        string
	WD02        string
	ClientInfos element.ClientInfosParams
}

// DefaultHandshakePayloads matches original_source/'s canned client
// environment strings (spec.md §4.7: "long semicolon-separated strings
// of client-environment facts ... ships with defaults").
func DefaultHandshakePayloads(clientURL string) HandshakePayloads {
	return HandshakePayloads{
		WD01: "ClientType=WebDynproNative;Browser=Chrome;Platform=Win32;ColorDepth=24;",
		WD02: "ScreenWidth=1920;ScreenHeight=1080;TimeZoneOffset=-540;Language=ko;",
		ClientInfos: element.ClientInfosParams{
			WindowOpenerExists: true,
			ClientURL:          clientURL,
			ClientWidth:        1920,
			ClientHeight:       1000,
			DocumentDomain:     "ssu.ac.kr",
			IsTopWindow:        true,
			ParentAccessible:   true,
		},
	}
}

// Options configures Build.
type Options struct {
	// Jar is reused across multiple Builds under one authenticated
	// identity (spec.md §5 "the HTTP cookie jar may be shared across
	// clients"). If nil, a fresh empty jar is created.
	Jar *cookiejar.Jar
	// UserAgent overrides transport.Options.UserAgent.
	UserAgent string
	Log       logx.Logger
	Payloads  *HandshakePayloads // nil uses DefaultHandshakePayloads(base)
}

// Build performs spec.md §4.7's four steps: construct an HTTP client,
// navigate to base/appName, run the bootstrap handshake, and return the
// resulting client.Client. Every step is a separate submit, matching
// testable property S6.
func Build(ctx context.Context, base, appName string, opts Options) (*client.Client, error) {
	jar := opts.Jar
	if jar == nil {
		var err error
		jar, err = cookiejar.New(nil)
		if err != nil {
			return nil, werror.Transport("failed to construct cookie jar", err)
		}
	}

	tr := transport.New(&http.Client{Jar: jar}, transport.Options{UserAgent: opts.UserAgent})

	cl, err := client.Navigate(ctx, tr, base, appName, opts.Log)
	if err != nil {
		return nil, err
	}

	payloads := opts.Payloads
	if payloads == nil {
		d := DefaultHandshakePayloads(base + "/" + appName)
		payloads = &d
	}

	if _, err := command.ClientInspectorNotify("WD01", payloads.WD01).Dispatch(ctx, cl); err != nil {
		return nil, err
	}
	if _, err := command.ClientInspectorNotify("WD02", payloads.WD02).Dispatch(ctx, cl); err != nil {
		return nil, err
	}
	if _, err := command.LoadingPlaceholderLoad("_loadingPlaceholder_").Dispatch(ctx, cl); err != nil {
		return nil, err
	}
	if _, err := command.CustomClientInfo("WD01", payloads.ClientInfos).Dispatch(ctx, cl); err != nil {
		return nil, err
	}

	return cl, nil
}
