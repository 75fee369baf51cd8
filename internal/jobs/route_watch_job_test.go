package jobs

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRouteRepository struct {
	routes []*route.Route
	err    error
	filter ports.CourierFilter
	status route.Status
}

func (s *stubRouteRepository) Get(_ context.Context, _ kernel.UUID) (*route.Route, error) {
	return nil, errors.New("not used")
}

func (s *stubRouteRepository) GetAllByStatus(
	_ context.Context,
	status route.Status,
	filter ports.CourierFilter,
) ([]*route.Route, error) {
	s.status = status
	s.filter = filter
	return s.routes, s.err
}

type stubNotificationLog struct {
	seen map[string]bool
}

func (s *stubNotificationLog) MarkNotified(_ context.Context, routeID kernel.UUID) (bool, error) {
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	key := routeID.String()
	if s.seen[key] {
		return false, nil
	}
	s.seen[key] = true
	return true, nil
}

func availableRoute(t *testing.T) *route.Route {
	t.Helper()
	point, err := kernel.NewGeoPoint(-34.6037, -58.3816)
	require.NoError(t, err)
	destination, err := route.NewDestination(point, "Av. Corrientes 1234")
	require.NoError(t, err)
	schedule, err := route.NewSchedule(time.Now(), time.Now().Add(2*time.Hour))
	require.NoError(t, err)
	r, err := route.RestoreRoute(kernel.NewUUID(), route.Available, "", "M. Gonzalez", destination, schedule)
	require.NoError(t, err)
	return r
}

func TestRouteWatchJobTick_PollsUnassignedAvailableRoutes(t *testing.T) {
	repo := &stubRouteRepository{routes: []*route.Route{availableRoute(t), availableRoute(t)}}
	log := &stubNotificationLog{}
	job := NewRouteWatchJob(repo, log, slog.New(slog.DiscardHandler))

	job.tick()

	assert.Equal(t, route.Available, repo.status)
	assert.True(t, repo.filter.UnassignedOnly)
	assert.Len(t, log.seen, 2)
}

func TestRouteWatchJobTick_AnnouncesEachRouteOnce(t *testing.T) {
	repo := &stubRouteRepository{routes: []*route.Route{availableRoute(t)}}
	log := &stubNotificationLog{}
	job := NewRouteWatchJob(repo, log, slog.New(slog.DiscardHandler))

	job.tick()
	job.tick()

	assert.Len(t, log.seen, 1)
}

func TestRouteWatchJobTick_PollFailure_MarksNothing(t *testing.T) {
	repo := &stubRouteRepository{err: errors.New("connection refused")}
	log := &stubNotificationLog{}
	job := NewRouteWatchJob(repo, log, slog.New(slog.DiscardHandler))

	job.tick()

	assert.Empty(t, log.seen)
}
