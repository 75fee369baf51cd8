package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelDeliveryCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCancelDeliveryCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.RouteID())
}

func TestNewCancelDeliveryCommand_InvalidRouteID(t *testing.T) {
	_, err := commands.NewCancelDeliveryCommand(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
