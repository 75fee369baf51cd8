package commands_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRouteReader struct{ mock.Mock }

func (m *MockRouteReader) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

type MockTransitionClient struct{ mock.Mock }

func (m *MockTransitionClient) Reserve(ctx context.Context, routeID kernel.UUID, courierID string) error {
	args := m.Called(ctx, routeID, courierID)
	return args.Error(0)
}

func (m *MockTransitionClient) Release(ctx context.Context, routeID kernel.UUID) error {
	args := m.Called(ctx, routeID)
	return args.Error(0)
}

func (m *MockTransitionClient) Start(ctx context.Context, routeID kernel.UUID) error {
	args := m.Called(ctx, routeID)
	return args.Error(0)
}

func (m *MockTransitionClient) Complete(ctx context.Context, routeID kernel.UUID, confirmationCode string) error {
	args := m.Called(ctx, routeID, confirmationCode)
	return args.Error(0)
}

func (m *MockTransitionClient) Cancel(ctx context.Context, routeID kernel.UUID) error {
	args := m.Called(ctx, routeID)
	return args.Error(0)
}

type MockConnectivityProbe struct{ mock.Mock }

func (m *MockConnectivityProbe) Online(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func onlineProbe(t *testing.T) *MockConnectivityProbe {
	t.Helper()
	probe := new(MockConnectivityProbe)
	probe.On("Online", mock.Anything).Return(true)
	return probe
}

func routeInStatus(t *testing.T, id kernel.UUID, status route.Status, courierID string) *route.Route {
	t.Helper()

	point, err := kernel.NewGeoPoint(-34.6037, -58.3816)
	require.NoError(t, err)
	destination, err := route.NewDestination(point, "Av. Corrientes 1234")
	require.NoError(t, err)
	schedule, err := route.NewSchedule(time.Now(), time.Now().Add(2*time.Hour))
	require.NoError(t, err)

	restored, err := route.RestoreRoute(id, status, courierID, "M. Gonzalez", destination, schedule)
	require.NoError(t, err)
	return restored
}
