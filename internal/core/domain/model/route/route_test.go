package route_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDestination(t *testing.T) route.Destination {
	t.Helper()
	point, err := kernel.NewGeoPoint(-34.6037, -58.3816)
	require.NoError(t, err)
	destination, err := route.NewDestination(point, "Av. Corrientes 1234 - Piso 3 - Dep B")
	require.NoError(t, err)
	return destination
}

func validSchedule(t *testing.T) route.Schedule {
	t.Helper()
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	schedule, err := route.NewSchedule(start, start.Add(2*time.Hour))
	require.NoError(t, err)
	return schedule
}

func TestNewRoute(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create available unassigned route", func(t *testing.T) {
		r, err := route.NewRoute(validID, "Juan Perez", validDestination(t), validSchedule(t))

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, r.ID().IsEqual(validID))
		assert.Equal(t, "Juan Perez", r.Client())
		assert.Equal(t, route.Available, r.Status())
		assert.Empty(t, r.CourierID())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		r, err := route.NewRoute(invalidID, "Juan Perez", validDestination(t), validSchedule(t))

		require.Error(t, err)
		assert.Nil(t, r)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty client", func(t *testing.T) {
		r, err := route.NewRoute(validID, "", validDestination(t), validSchedule(t))

		require.Error(t, err)
		assert.Nil(t, r)
		assert.Contains(t, err.Error(), "client")
	})

	t.Run("should fail with zero-value destination", func(t *testing.T) {
		var destination route.Destination

		r, err := route.NewRoute(validID, "Juan Perez", destination, validSchedule(t))

		require.Error(t, err)
		assert.Nil(t, r)
		assert.Contains(t, err.Error(), "destination must be created")
	})
}

func TestRestoreRoute(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("restores persisted state", func(t *testing.T) {
		r, err := route.RestoreRoute(id, route.InProgress, "courier-uid-1",
			"Juan Perez", validDestination(t), validSchedule(t))

		require.NoError(t, err)
		assert.Equal(t, route.InProgress, r.Status())
		assert.Equal(t, "courier-uid-1", r.CourierID())
	})

	t.Run("rejects assigned available route", func(t *testing.T) {
		_, err := route.RestoreRoute(id, route.Available, "courier-uid-1",
			"Juan Perez", validDestination(t), validSchedule(t))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid status to have a courier")
	})

	t.Run("rejects unassigned pending route", func(t *testing.T) {
		_, err := route.RestoreRoute(id, route.Pending, "",
			"Juan Perez", validDestination(t), validSchedule(t))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid status to have no courier")
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := route.RestoreRoute(id, route.Status("en camino"), "courier-uid-1",
			"Juan Perez", validDestination(t), validSchedule(t))

		require.Error(t, err)
	})
}

func TestRoute_Lifecycle(t *testing.T) {
	newRoute := func(t *testing.T) *route.Route {
		t.Helper()
		r, err := route.NewRoute(kernel.NewUUID(), "Juan Perez", validDestination(t), validSchedule(t))
		require.NoError(t, err)
		return r
	}

	t.Run("full happy path", func(t *testing.T) {
		r := newRoute(t)

		require.NoError(t, r.Reserve("courier-uid-1"))
		assert.Equal(t, route.Pending, r.Status())
		assert.Equal(t, "courier-uid-1", r.CourierID())

		require.NoError(t, r.Start())
		assert.Equal(t, route.InProgress, r.Status())

		require.NoError(t, r.Complete())
		assert.Equal(t, route.Completed, r.Status())
		assert.Equal(t, "courier-uid-1", r.CourierID())
	})

	t.Run("reserve requires a courier", func(t *testing.T) {
		r := newRoute(t)

		err := r.Reserve("")

		require.Error(t, err)
		assert.Equal(t, route.Available, r.Status())
	})

	t.Run("release clears the courier assignment", func(t *testing.T) {
		r := newRoute(t)
		require.NoError(t, r.Reserve("courier-uid-1"))

		require.NoError(t, r.Release())

		assert.Equal(t, route.Available, r.Status())
		assert.Empty(t, r.CourierID())
	})

	t.Run("reserve release reserve ends pending with courier assigned", func(t *testing.T) {
		r := newRoute(t)

		require.NoError(t, r.Reserve("courier-uid-1"))
		require.NoError(t, r.Release())
		require.NoError(t, r.Reserve("courier-uid-1"))

		assert.Equal(t, route.Pending, r.Status())
		assert.Equal(t, "courier-uid-1", r.CourierID())
	})

	t.Run("cancel from in_progress keeps the courier on record", func(t *testing.T) {
		r := newRoute(t)
		require.NoError(t, r.Reserve("courier-uid-1"))
		require.NoError(t, r.Start())

		require.NoError(t, r.Cancel())

		assert.Equal(t, route.Cancelled, r.Status())
		assert.Equal(t, "courier-uid-1", r.CourierID())
	})

	t.Run("no transition leaves a terminal state", func(t *testing.T) {
		r := newRoute(t)
		require.NoError(t, r.Reserve("courier-uid-1"))
		require.NoError(t, r.Start())
		require.NoError(t, r.Complete())

		require.Error(t, r.Cancel())
		require.Error(t, r.Start())
		require.Error(t, r.Reserve("courier-uid-2"))
		assert.Equal(t, route.Completed, r.Status())
	})

	t.Run("complete cannot skip in_progress", func(t *testing.T) {
		r := newRoute(t)
		require.NoError(t, r.Reserve("courier-uid-1"))

		require.Error(t, r.Complete())
		assert.Equal(t, route.Pending, r.Status())
	})
}

func TestRoute_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var r route.Route

		require.ErrorIs(t, r.Validate(), route.ErrRouteIsNotConstructed)
	})

	t.Run("nil route is invalid", func(t *testing.T) {
		var r *route.Route

		require.ErrorIs(t, r.Validate(), route.ErrRouteIsNotConstructed)
	})
}

func TestNewSchedule(t *testing.T) {
	t.Run("rejects end before start", func(t *testing.T) {
		start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

		_, err := route.NewSchedule(start, start.Add(-time.Hour))

		require.ErrorIs(t, err, route.ErrScheduleEndsBeforeStart)
	})

	t.Run("accepts zero bounds", func(t *testing.T) {
		schedule, err := route.NewSchedule(time.Time{}, time.Time{})

		require.NoError(t, err)
		require.NoError(t, schedule.Validate())
		assert.True(t, schedule.PlannedStart().IsZero())
	})
}
