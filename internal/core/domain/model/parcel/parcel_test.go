package parcel_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParcel(t *testing.T) {
	validID := kernel.NewUUID()
	validRouteID := kernel.NewUUID()
	size := parcel.Dimensions{WidthCm: 30, LengthCm: 40, HeightCm: 20}
	slot := parcel.WarehouseSlot{Deposit: "2", Shelf: "B4", Sector: "Norte"}

	t.Run("should create valid parcel", func(t *testing.T) {
		p, err := parcel.NewParcel(validID, validRouteID, "Monitor 24\"", "Fragil", 3.5, size, slot)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(validID))
		assert.True(t, p.RouteID().IsEqual(validRouteID))
		assert.Equal(t, "Monitor 24\"", p.Name())
		assert.InDelta(t, 3.5, p.WeightKg(), 0.0001)
		assert.Equal(t, size, p.Size())
		assert.Equal(t, slot, p.Slot())
	})

	t.Run("should fail with invalid IDs", func(t *testing.T) {
		var invalidID kernel.UUID

		p, err := parcel.NewParcel(invalidID, validRouteID, "Monitor", "", 1, size, slot)
		require.Error(t, err)
		assert.Nil(t, p)

		p, err = parcel.NewParcel(validID, invalidID, "Monitor", "", 1, size, slot)
		require.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		p, err := parcel.NewParcel(validID, validRouteID, "", "", 1, size, slot)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, parcel.ErrNameIsRequired)
	})

	t.Run("should fail with negative weight", func(t *testing.T) {
		p, err := parcel.NewParcel(validID, validRouteID, "Monitor", "", -0.5, size, slot)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "weightKg")
	})

	t.Run("zero weight is allowed", func(t *testing.T) {
		p, err := parcel.NewParcel(validID, validRouteID, "Sobre", "", 0, parcel.Dimensions{}, parcel.WarehouseSlot{})

		require.NoError(t, err)
		require.NoError(t, p.Validate())
	})
}

func TestParcel_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var p parcel.Parcel

		require.ErrorIs(t, p.Validate(), parcel.ErrParcelIsNotConstructed)
	})

	t.Run("nil parcel is invalid", func(t *testing.T) {
		var p *parcel.Parcel

		require.ErrorIs(t, p.Validate(), parcel.ErrParcelIsNotConstructed)
	})
}

func TestDimensions_String(t *testing.T) {
	size := parcel.Dimensions{WidthCm: 30, LengthCm: 40, HeightCm: 20}

	assert.Equal(t, "30x40x20 cm", size.String())
}
