package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewCompleteDeliveryCommand(id, "4815")

	routes := new(MockRouteReader)
	routes.On("Get", ctx, id).Return(routeInStatus(t, id, route.InProgress, "courier-1"), nil).Once()

	client := new(MockTransitionClient)
	client.On("Complete", ctx, id, "4815").Return(nil).Once()

	h := commands.NewCompleteDeliveryCommandHandler(routes, client)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	routes.AssertExpectations(t)
	client.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_NotStarted(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewCompleteDeliveryCommand(id, "4815")

	routes := new(MockRouteReader)
	routes.On("Get", ctx, id).Return(routeInStatus(t, id, route.Pending, "courier-1"), nil).Once()

	client := new(MockTransitionClient)
	h := commands.NewCompleteDeliveryCommandHandler(routes, client)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	client.AssertNotCalled(t, "Complete")
}

func TestCompleteDeliveryCommandHandler_Handle_WrongCode(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewCompleteDeliveryCommand(id, "0000")

	routes := new(MockRouteReader)
	routes.On("Get", ctx, id).Return(routeInStatus(t, id, route.InProgress, "courier-1"), nil).Once()

	client := new(MockTransitionClient)
	client.On("Complete", ctx, id, "0000").
		Return(errs.NewInvalidConfirmationCodeError(id.String())).Once()

	h := commands.NewCompleteDeliveryCommandHandler(routes, client)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidConfirmationCode)
	assert.NotErrorIs(t, err, errs.ErrTransitionRejected)
}
