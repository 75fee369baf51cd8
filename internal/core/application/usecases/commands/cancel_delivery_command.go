package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrCancelDeliveryCommandIsNotConstructed = errors.New(
	"CancelDeliveryCommand must be created via NewCancelDeliveryCommand constructor",
)

// CancelDeliveryCommand represents a request to abandon a delivery, either by
// the courier or by the confirmation countdown expiring. Cancelling is
// terminal; the courier assignment is kept for the record.
type CancelDeliveryCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelDeliveryCommand creates a command to cancel a delivery.
func NewCancelDeliveryCommand(routeID kernel.UUID) (CancelDeliveryCommand, error) {
	cancelCommand := CancelDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cancelCommand.setRouteID(routeID); err != nil {
		return CancelDeliveryCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCancelDeliveryCommandIsNotConstructed)
}

// RouteID returns the identifier of the route to cancel.
func (c CancelDeliveryCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c *CancelDeliveryCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}
