// Package ports defines the contracts between the application core and
// infrastructure: the read-only route/parcel repositories, the transition
// client for the logistics REST API, the courier session, connectivity
// probing, and the notification log. These interfaces enable dependency
// inversion and testing with fakes.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
)

// CourierFilter restricts a status listing by assignment.
type CourierFilter struct {
	// UnassignedOnly keeps only routes with no courier.
	UnassignedOnly bool

	// CourierID, when non-empty, keeps only routes assigned to that courier.
	CourierID string
}

// RouteRepository is the read-only view over the route collection. All reads
// go to the backing store; there is no caching and no write path. Route
// state changes happen exclusively through the RouteTransitionClient.
type RouteRepository interface {
	// Get retrieves a route by identifier. Returns an ObjectNotFoundError
	// when the route does not exist.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// GetAllByStatus retrieves routes in the given status, optionally
	// restricted by the courier filter.
	GetAllByStatus(ctx context.Context, status route.Status, filter CourierFilter) ([]*route.Route, error)
}
