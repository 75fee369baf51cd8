package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrReleaseRouteCommandIsNotConstructed = errors.New(
	"ReleaseRouteCommand must be created via NewReleaseRouteCommand constructor",
)

// ReleaseRouteCommand represents a courier's request to return a reserved
// route to the available pool before starting the delivery.
type ReleaseRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReleaseRouteCommand creates a command to release a reserved route.
func NewReleaseRouteCommand(routeID kernel.UUID) (ReleaseRouteCommand, error) {
	releaseCommand := ReleaseRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := releaseCommand.setRouteID(routeID); err != nil {
		return ReleaseRouteCommand{}, err
	}

	return releaseCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseRouteCommand) Validate() error {
	return c.guard.Validate(ErrReleaseRouteCommandIsNotConstructed)
}

// RouteID returns the identifier of the route to release.
func (c ReleaseRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c *ReleaseRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}
