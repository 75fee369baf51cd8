package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// StartRouteCommandHandler handles the pending to in_progress transition.
type StartRouteCommandHandler struct {
	routes RouteReader
	client ports.RouteTransitionClient
}

// NewStartRouteCommandHandler creates a handler for starting deliveries.
func NewStartRouteCommandHandler(
	routes RouteReader,
	client ports.RouteTransitionClient,
) StartRouteCommandHandler {
	return StartRouteCommandHandler{
		routes: routes,
		client: client,
	}
}

// Handle processes the start request. The route must be pending; scanning a
// label for a route in any other state is rejected before the call is made.
func (h *StartRouteCommandHandler) Handle(ctx context.Context, cmd StartRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.routes.Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	if err = aggregate.Start(); err != nil {
		return err
	}

	return h.client.Start(ctx, cmd.RouteID())
}
