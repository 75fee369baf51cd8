package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// CancelDeliveryCommandHandler handles cancellation of pending or in-progress
// deliveries.
type CancelDeliveryCommandHandler struct {
	routes RouteReader
	client ports.RouteTransitionClient
}

// NewCancelDeliveryCommandHandler creates a handler for delivery cancellation.
func NewCancelDeliveryCommandHandler(
	routes RouteReader,
	client ports.RouteTransitionClient,
) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{
		routes: routes,
		client: client,
	}
}

// Handle processes the cancellation request. Routes already in a terminal
// state are rejected locally.
func (h *CancelDeliveryCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.routes.Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	return h.client.Cancel(ctx, cmd.RouteID())
}
