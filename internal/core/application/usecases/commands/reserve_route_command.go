package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrReserveRouteCommandIsNotConstructed = errors.New(
		"ReserveRouteCommand must be created via NewReserveRouteCommand constructor",
	)
	ErrCourierIDIsRequired = errs.NewValueIsRequiredError("courierID")
)

// ReserveRouteCommand represents a courier's request to take an available
// route. Reserving moves the route to pending and assigns it to the courier.
//
// Example:
//
//	cmd, err := NewReserveRouteCommand(routeID, session.CurrentUserID())
//	if err != nil {
//	    return fmt.Errorf("invalid reservation: %w", err)
//	}
//
//	handler := NewReserveRouteCommandHandler(routes, client, probe)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to reserve route: %w", err)
//	}
type ReserveRouteCommand struct { //nolint:recvcheck //using for validation
	routeID   kernel.UUID
	courierID string

	guard guard.ConstructorGuard
}

// NewReserveRouteCommand creates a command to reserve a route for a courier.
// Validates that the route ID is constructed and the courier ID is not empty.
func NewReserveRouteCommand(routeID kernel.UUID, courierID string) (ReserveRouteCommand, error) {
	reserveCommand := ReserveRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reserveCommand.setRouteID(routeID),
		reserveCommand.setCourierID(courierID),
	); err != nil {
		return ReserveRouteCommand{}, err
	}

	return reserveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReserveRouteCommand) Validate() error {
	return c.guard.Validate(ErrReserveRouteCommandIsNotConstructed)
}

// RouteID returns the identifier of the route to reserve.
func (c ReserveRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// CourierID returns the user ID of the reserving courier.
func (c ReserveRouteCommand) CourierID() string {
	return c.courierID
}

func (c *ReserveRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}

func (c *ReserveRouteCommand) setCourierID(courierID string) error {
	if courierID == "" {
		return ErrCourierIDIsRequired
	}

	c.courierID = courierID
	return nil
}
