package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrStartRouteCommandIsNotConstructed = errors.New(
		"StartRouteCommand must be created via NewStartRouteCommand constructor",
	)
	ErrScanPayloadIsRequired = errs.NewValueIsRequiredError("scanPayload")
)

// StartRouteCommand represents a courier's request to begin delivering a
// reserved route. Starting is normally triggered by scanning the QR label on
// the parcel, which encodes the route identifier.
type StartRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartRouteCommand creates a command to start a reserved route.
func NewStartRouteCommand(routeID kernel.UUID) (StartRouteCommand, error) {
	startCommand := StartRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := startCommand.setRouteID(routeID); err != nil {
		return StartRouteCommand{}, err
	}

	return startCommand, nil
}

// NewStartRouteCommandFromScan creates a start command from a raw QR scan
// payload. The payload must decode to a route identifier; surrounding
// whitespace from the scanner is tolerated.
func NewStartRouteCommandFromScan(payload string) (StartRouteCommand, error) {
	trimmed := strings.TrimSpace(payload)
	if trimmed == "" {
		return StartRouteCommand{}, ErrScanPayloadIsRequired
	}

	routeID, err := kernel.UUIDFromString(trimmed)
	if err != nil {
		return StartRouteCommand{}, errs.NewValueIsInvalidErrorWithCause("scanPayload", err)
	}

	return NewStartRouteCommand(routeID)
}

// Validate ensures the command was created through a constructor.
func (c StartRouteCommand) Validate() error {
	return c.guard.Validate(ErrStartRouteCommandIsNotConstructed)
}

// RouteID returns the identifier of the route to start.
func (c StartRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c *StartRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}
