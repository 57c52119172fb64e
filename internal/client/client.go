// Package client implements the WebDynproClient orchestration described
// in spec.md §4.4 component H: it owns a Body, a queue, and a transport,
// and exposes the single process_event entry point every write path in
// the rest of the core goes through.
package client

import (
	"context"

	"github.com/uskr/wdclient/internal/body"
	"github.com/uskr/wdclient/internal/bodyupdate"
	"github.com/uskr/wdclient/internal/logx"
	"github.com/uskr/wdclient/internal/queue"
	"github.com/uskr/wdclient/internal/transport"
	"github.com/uskr/wdclient/internal/wdevent"
	"github.com/uskr/wdclient/internal/werror"
	"go.uber.org/zap"
)

// Result is the observable outcome of ProcessEvent.
type Result int

const (
	// Queued means the event was buffered locally; no request was sent.
	Queued Result = iota
	// Applied means the queue was serialized, sent, and the resulting
	// BodyUpdate was applied to the client's Body.
	Applied
)

func (r Result) String() string {
	if r == Queued {
		return "Queued"
	}
	return "Applied"
}

// Client is the WebDynproClient from spec.md §4.4. It is single-threaded
// cooperative (spec.md §5): callers must serialize their own calls into
// ProcessEvent, never invoke it concurrently on the same Client.
type Client struct {
	transport *transport.Transport
	base      string
	appName   string
	body      *body.Body
	queue     *queue.Queue
	log       logx.Logger
}

// New wires a Client around an already-navigated Body.
func New(tr *transport.Transport, base, appName string, b *body.Body, log logx.Logger) *Client {
	if log == nil {
		log = logx.Noop
	}
	return &Client{
		transport: tr,
		base:      base,
		appName:   appName,
		body:      b,
		queue:     queue.New(),
		log:       log,
	}
}

// Body returns the client's current document view. Element reads must go
// through this and must not be retained across the next ProcessEvent
// call (spec.md §5).
func (c *Client) Body() *body.Body { return c.body }

// AppName returns the application name this client was built for.
func (c *Client) AppName() string { return c.appName }

// ProcessEvent implements spec.md §4.4's central contract:
//
//  1. If event.isEnqueuable and not forceSend: append to queue, return Queued.
//  2. Else: append event; if event.isSubmittable, append an auto-generated
//     Form Request event; POST the queue; parse the response as a
//     BodyUpdate; apply it to the Body; return Applied.
//
// Errors at any step propagate; the queue has already been drained by
// the time an XHR error can occur, since SerializeAndClear empties it
// before the POST (spec.md §4.4 step 3, §5 Cancellation).
func (c *Client) ProcessEvent(ctx context.Context, forceSend bool, e wdevent.Event) (Result, error) {
	if e.IsEnqueuable() && !forceSend {
		c.queue.Add(e)
		return Queued, nil
	}

	c.queue.Add(e)
	if e.IsSubmittable() {
		c.queue.Add(c.formRequestEvent())
	}

	serialized := c.queue.SerializeAndClear()

	c.log.Debug("process_event dispatching", zap.String("control", e.Control), zap.String("event", e.EventName))

	result, err := c.transport.XHR(ctx, c.base, c.body.SsrClient(), serialized)
	if err != nil {
		return 0, err
	}

	update, err := bodyupdate.Parse(result.Body, func(msg string) {
		c.log.Warn("body update parse warning", zap.String("msg", msg))
	})
	if err != nil {
		return 0, err
	}

	if err := c.body.Apply(update); err != nil {
		return 0, err
	}

	return Applied, nil
}

// formRequestEvent builds the auto-appended Form "Request" event with the
// exact parameter set spec.md §4.4 mandates.
func (c *Client) formRequestEvent() wdevent.Event {
	ssr := c.body.SsrClient()
	params := []wdevent.Param{
		{Name: "Id", Value: ssr.FormID},
		{Name: "Async", Value: "false"},
		{Name: "FocusInfo", Value: ""},
		{Name: "Hash", Value: ""},
		{Name: "DomChanged", Value: "false"},
		{Name: "IsDirty", Value: "false"},
	}
	ucf := wdevent.UcfParameters{Action: wdevent.ActionSubmit, Response: wdevent.ResponseDelta}
	return wdevent.New("Form", "Request", params, ucf, nil)
}

// Navigate builds a fresh Client by performing the initial GET and
// wrapping the resulting Body. It is the entry point application
// builders (internal/app) call before running the bootstrap handshake.
func Navigate(ctx context.Context, tr *transport.Transport, base, appName string, log logx.Logger) (*Client, error) {
	b, err := tr.Navigate(ctx, base, appName)
	if err != nil {
		return nil, err
	}
	if b.SsrClient().AppName != "" && b.SsrClient().AppName != appName {
		// Not fatal: some deployments rewrite the app name in the SsrClient
		// record (e.g. a redirect to a canonical alias). Surfaced via log
		// rather than werror.Application since this is core, not an
		// application-layer assertion (spec.md §7).
		if log != nil {
			log.Warn("navigated app name differs from SsrClient appName",
				zap.String("requested", appName), zap.String("ssr_client", b.SsrClient().AppName))
		}
	}
	return New(tr, base, appName, b, log), nil
}

// ErrUnusable is returned by callers (not the core) to mark a client that
// must be discarded after a cancelled ProcessEvent, per spec.md §5's
// cancellation contract: the queue is already drained, so the client is
// in an inconsistent state and must not be reused.
var ErrUnusable = werror.Transport("client is unusable after a cancelled process_event call", nil)
