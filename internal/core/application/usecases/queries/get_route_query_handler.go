package queries

import (
	"context"

	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetRouteQueryHandler retrieves a single route by identifier.
type GetRouteQueryHandler struct {
	db *gorm.DB
}

// NewGetRouteQueryHandler creates a handler for single-route queries.
func NewGetRouteQueryHandler(db *gorm.DB) GetRouteQueryHandler {
	return GetRouteQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no route
// matches the identifier.
func (h GetRouteQueryHandler) Handle(ctx context.Context, query GetRouteQuery) (RouteResponse, error) {
	if err := query.Validate(); err != nil {
		return RouteResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			courier_id,
			client,
			latitude,
			longitude,
			details,
			planned_start,
			planned_end
		FROM routes
		WHERE id = ?
	`, query.RouteID().String()).Rows()
	if err != nil {
		return RouteResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return RouteResponse{}, err
		}
		return RouteResponse{}, errs.NewObjectNotFoundError("routeID", query.RouteID())
	}

	routeResp, err := scanRouteResponse(rows)
	if err != nil {
		return RouteResponse{}, err
	}

	return routeResp, rows.Err()
}
