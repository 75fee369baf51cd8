package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetRouteParcelQueryIsNotConstructed = errors.New(
	"GetRouteParcelQuery must be created via NewGetRouteParcelQuery constructor",
)

// GetRouteParcelQuery retrieves the parcel attached to a route, including its
// warehouse pickup slot. Not every route carries a parcel record.
type GetRouteParcelQuery struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRouteParcelQuery creates a query for a route's parcel.
func NewGetRouteParcelQuery(routeID kernel.UUID) (GetRouteParcelQuery, error) {
	parcelQuery := GetRouteParcelQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := parcelQuery.setRouteID(routeID); err != nil {
		return GetRouteParcelQuery{}, err
	}

	return parcelQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRouteParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteParcelQueryIsNotConstructed)
}

// RouteID returns the identifier of the route whose parcel is requested.
func (q GetRouteParcelQuery) RouteID() kernel.UUID {
	return q.routeID
}

func (q *GetRouteParcelQuery) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	q.routeID = routeID
	return nil
}
