package commands

import (
	"context"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// ReleaseRouteCommandHandler handles returning a reserved route to the pool.
type ReleaseRouteCommandHandler struct {
	routes RouteReader
	client ports.RouteTransitionClient
	probe  ports.ConnectivityProbe
}

// NewReleaseRouteCommandHandler creates a handler for route releases.
func NewReleaseRouteCommandHandler(
	routes RouteReader,
	client ports.RouteTransitionClient,
	probe ports.ConnectivityProbe,
) ReleaseRouteCommandHandler {
	return ReleaseRouteCommandHandler{
		routes: routes,
		client: client,
		probe:  probe,
	}
}

// Handle processes the release. Only pending routes can be released; the
// courier assignment is cleared server-side.
func (h *ReleaseRouteCommandHandler) Handle(ctx context.Context, cmd ReleaseRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.probe.Online(ctx) {
		return errs.NewNetworkUnavailableError("release route")
	}

	aggregate, err := h.routes.Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	if err = aggregate.Release(); err != nil {
		return err
	}

	return h.client.Release(ctx, cmd.RouteID())
}
