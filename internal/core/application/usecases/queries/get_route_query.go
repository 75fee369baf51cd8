package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetRouteQueryIsNotConstructed = errors.New(
	"GetRouteQuery must be created via NewGetRouteQuery constructor",
)

// GetRouteQuery retrieves one route by identifier. Backs the route detail
// screen and the confirmation workflow's initial load.
type GetRouteQuery struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRouteQuery creates a query for a single route.
func NewGetRouteQuery(routeID kernel.UUID) (GetRouteQuery, error) {
	getQuery := GetRouteQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := getQuery.setRouteID(routeID); err != nil {
		return GetRouteQuery{}, err
	}

	return getQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRouteQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteQueryIsNotConstructed)
}

// RouteID returns the identifier of the requested route.
func (q GetRouteQuery) RouteID() kernel.UUID {
	return q.routeID
}

func (q *GetRouteQuery) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	q.routeID = routeID
	return nil
}
