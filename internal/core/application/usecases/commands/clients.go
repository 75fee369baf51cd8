// Package commands contains the courier-initiated operations that change
// route state. Handlers validate each transition against the locally known
// route before the request leaves the device, so obviously illegal calls
// never reach the network. The server stays authoritative: a transition it
// refuses surfaces as a TransitionRejectedError from the client port.
package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
)

// RouteReader is the single-route lookup handlers use to pre-validate a
// transition against the current local state.
type RouteReader interface {
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)
}
