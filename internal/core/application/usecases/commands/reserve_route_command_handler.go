package commands

import (
	"context"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// ReserveRouteCommandHandler handles route reservation. The transition is
// first replayed against the locally known route, then submitted to the
// logistics server.
type ReserveRouteCommandHandler struct {
	routes RouteReader
	client ports.RouteTransitionClient
	probe  ports.ConnectivityProbe
}

// NewReserveRouteCommandHandler creates a handler for route reservations.
func NewReserveRouteCommandHandler(
	routes RouteReader,
	client ports.RouteTransitionClient,
	probe ports.ConnectivityProbe,
) ReserveRouteCommandHandler {
	return ReserveRouteCommandHandler{
		routes: routes,
		client: client,
		probe:  probe,
	}
}

// Handle processes the reservation. Fails fast with a NetworkUnavailableError
// when no connectivity is detected, and rejects the request locally when the
// route is not available for reservation.
func (h *ReserveRouteCommandHandler) Handle(ctx context.Context, cmd ReserveRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.probe.Online(ctx) {
		return errs.NewNetworkUnavailableError("reserve route")
	}

	aggregate, err := h.routes.Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	if err = aggregate.Reserve(cmd.CourierID()); err != nil {
		return err
	}

	return h.client.Reserve(ctx, cmd.RouteID(), cmd.CourierID())
}
