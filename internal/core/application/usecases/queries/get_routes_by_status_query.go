package queries

import (
	"errors"

	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/guard"
)

var ErrGetRoutesByStatusQueryIsNotConstructed = errors.New(
	"GetRoutesByStatusQuery must be created via NewGetRoutesByStatusQuery constructor",
)

// GetRoutesByStatusQuery retrieves routes in one lifecycle status. Feeds the
// available-routes screen and the route watch job; with UnassignedOnly set it
// returns only routes open for reservation.
type GetRoutesByStatusQuery struct { //nolint:recvcheck //using for validation
	status         route.Status
	unassignedOnly bool

	guard guard.ConstructorGuard
}

// NewGetRoutesByStatusQuery creates a query for routes in the given status.
func NewGetRoutesByStatusQuery(status route.Status, unassignedOnly bool) (GetRoutesByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetRoutesByStatusQuery{}, err
	}

	return GetRoutesByStatusQuery{
		status:         status,
		unassignedOnly: unassignedOnly,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRoutesByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetRoutesByStatusQueryIsNotConstructed)
}

// Status returns the lifecycle status to filter by.
func (q GetRoutesByStatusQuery) Status() route.Status {
	return q.status
}

// UnassignedOnly reports whether only unassigned routes are wanted.
func (q GetRoutesByStatusQuery) UnassignedOnly() bool {
	return q.unassignedOnly
}
