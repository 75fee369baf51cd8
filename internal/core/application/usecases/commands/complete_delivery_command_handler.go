package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// CompleteDeliveryCommandHandler handles delivery completion. An
// InvalidConfirmationCodeError from the client means the courier mistyped the
// code; the route stays in progress and the courier may retry.
type CompleteDeliveryCommandHandler struct {
	routes RouteReader
	client ports.RouteTransitionClient
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(
	routes RouteReader,
	client ports.RouteTransitionClient,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		routes: routes,
		client: client,
	}
}

// Handle processes the completion request. The route must be in progress.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.routes.Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	if err = aggregate.Complete(); err != nil {
		return err
	}

	return h.client.Complete(ctx, cmd.RouteID(), cmd.ConfirmationCode())
}
