// Package queries contains the read-side operations of the CQRS split. Query
// handlers read the route store directly through raw SQL and return flat
// response models; they never touch the transition client.
package queries

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
)

// RouteResponse is the flat read model shared by the route queries.
type RouteResponse struct {
	ID           kernel.UUID
	Status       route.Status
	CourierID    string
	Client       string
	Destination  kernel.GeoPoint
	Details      string
	PlannedStart time.Time
	PlannedEnd   time.Time
}

// ParcelResponse is the read model for a route's parcel, including the
// warehouse slot the courier picks it up from.
type ParcelResponse struct {
	ID       kernel.UUID
	RouteID  kernel.UUID
	Name     string
	Details  string
	WeightKg float64
	WidthCm  int
	LengthCm int
	HeightCm int
	Deposit  string
	Shelf    string
	Sector   string
}
