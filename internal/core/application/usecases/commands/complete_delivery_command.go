package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
		"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
	)
	ErrConfirmationCodeIsRequired = errs.NewValueIsRequiredError("confirmationCode")
)

// CompleteDeliveryCommand represents a courier's request to finish a delivery
// by submitting the recipient's confirmation code. The server compares the
// code against its record; a mismatch keeps the route in progress.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	routeID          kernel.UUID
	confirmationCode string

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete a delivery.
// The confirmation code must not be empty; its correctness is only known to
// the server.
func NewCompleteDeliveryCommand(routeID kernel.UUID, confirmationCode string) (CompleteDeliveryCommand, error) {
	completeCommand := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		completeCommand.setRouteID(routeID),
		completeCommand.setConfirmationCode(confirmationCode),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// RouteID returns the identifier of the route to complete.
func (c CompleteDeliveryCommand) RouteID() kernel.UUID {
	return c.routeID
}

// ConfirmationCode returns the code entered by the courier.
func (c CompleteDeliveryCommand) ConfirmationCode() string {
	return c.confirmationCode
}

func (c *CompleteDeliveryCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}

func (c *CompleteDeliveryCommand) setConfirmationCode(code string) error {
	if code == "" {
		return ErrConfirmationCodeIsRequired
	}

	c.confirmationCode = code
	return nil
}
