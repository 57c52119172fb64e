// Package command implements the command layer from spec.md §4.6
// component K: read commands (pure, Body-only) and write commands
// (construct Events and call client.ProcessEvent), both expressed as
// values satisfying a single Command interface so callers can queue,
// log, or retry them uniformly.
package command

import (
	"context"

	"github.com/uskr/wdclient/internal/client"
)

// Command is `{dispatch(client) -> Result}` from spec.md §4.6. Dispatch
// returns the command's own result type boxed as any; callers that
// know which command they built type-assert it back (every exported
// constructor in this package documents its concrete result type).
type Command interface {
	Dispatch(ctx context.Context, cl *client.Client) (any, error)
}
