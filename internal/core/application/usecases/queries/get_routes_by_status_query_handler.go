package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRoutesByStatusQueryHandler retrieves routes filtered by status from the
// database.
type GetRoutesByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetRoutesByStatusQueryHandler creates a handler for status-filtered
// route queries.
func NewGetRoutesByStatusQueryHandler(db *gorm.DB) GetRoutesByStatusQueryHandler {
	return GetRoutesByStatusQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by ID for consistent output.
func (h GetRoutesByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetRoutesByStatusQuery,
) ([]RouteResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
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
		WHERE status = ?
	`
	if query.UnassignedOnly() {
		sql += ` AND courier_id = ''`
	}
	sql += ` ORDER BY id`

	routes := make([]RouteResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, query.Status()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		routeResp, scanErr := scanRouteResponse(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		routes = append(routes, routeResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return routes, nil
}
