package queries

import (
	"context"

	"logistics/internal/core/ports"
)

// GetRouteParcelQueryHandler retrieves the parcel linked to a route.
type GetRouteParcelQueryHandler struct {
	parcels ports.ParcelRepository
}

// NewGetRouteParcelQueryHandler creates a handler for parcel queries.
func NewGetRouteParcelQueryHandler(parcels ports.ParcelRepository) GetRouteParcelQueryHandler {
	return GetRouteParcelQueryHandler{parcels: parcels}
}

// Handle executes the query. A route without a parcel record yields
// (nil, nil); callers render the detail screen without a parcel section.
func (h GetRouteParcelQueryHandler) Handle(
	ctx context.Context,
	query GetRouteParcelQuery,
) (*ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	found, err := h.parcels.GetByRoute(ctx, query.RouteID())
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, nil
	}

	size := found.Size()
	slot := found.Slot()

	return &ParcelResponse{
		ID:       found.ID(),
		RouteID:  found.RouteID(),
		Name:     found.Name(),
		Details:  found.Details(),
		WeightKg: found.WeightKg(),
		WidthCm:  size.WidthCm,
		LengthCm: size.LengthCm,
		HeightCm: size.HeightCm,
		Deposit:  slot.Deposit,
		Shelf:    slot.Shelf,
		Sector:   slot.Sector,
	}, nil
}
