package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
)

// ParcelRepository is the read-only view over the parcel collection. Parcels
// are only ever looked up through their owning route.
type ParcelRepository interface {
	// GetByRoute retrieves the parcel linked to a route. A route without a
	// parcel yields (nil, nil); that is not an error.
	GetByRoute(ctx context.Context, routeID kernel.UUID) (*parcel.Parcel, error)
}
