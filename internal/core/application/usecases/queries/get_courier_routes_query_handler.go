package queries

import (
	"context"
	"database/sql"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCourierRoutesQueryHandler retrieves the session courier's routes from
// the database. Requires an active session; without one the handler fails
// with an AuthenticationRequiredError instead of returning someone else's
// routes.
type GetCourierRoutesQueryHandler struct {
	db      *gorm.DB
	session ports.SessionProvider
}

// NewGetCourierRoutesQueryHandler creates a handler for the courier's route list.
func NewGetCourierRoutesQueryHandler(db *gorm.DB, session ports.SessionProvider) GetCourierRoutesQueryHandler {
	return GetCourierRoutesQueryHandler{db: db, session: session}
}

// Handle executes the query. Routes are ordered by status priority with
// pending first and cancelled last, ties broken by ID for a stable listing.
func (h GetCourierRoutesQueryHandler) Handle(
	ctx context.Context,
	query GetCourierRoutesQuery,
) ([]RouteResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	courierID := h.session.CurrentUserID()
	if courierID == "" {
		return nil, errs.NewAuthenticationRequiredError("get courier routes")
	}

	routes := make([]RouteResponse, 0)

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
		WHERE courier_id = ?
		ORDER BY
			CASE status
				WHEN ? THEN 0
				WHEN ? THEN 1
				WHEN ? THEN 2
				WHEN ? THEN 3
				ELSE 4
			END,
			id
	`, courierID, route.Pending, route.InProgress, route.Completed, route.Cancelled).Rows()
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

// scanRouteResponse maps one row of the shared route column list into a
// RouteResponse. All route queries select the same columns in this order.
func scanRouteResponse(rows *sql.Rows) (RouteResponse, error) {
	var (
		id                       uuid.UUID
		status                   string
		courierID, client        string
		latitude, longitude      float64
		details                  string
		plannedStart, plannedEnd time.Time
	)

	if err := rows.Scan(
		&id,
		&status,
		&courierID,
		&client,
		&latitude,
		&longitude,
		&details,
		&plannedStart,
		&plannedEnd,
	); err != nil {
		return RouteResponse{}, err
	}

	routeID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return RouteResponse{}, err
	}

	routeStatus, err := route.StatusFromString(status)
	if err != nil {
		return RouteResponse{}, err
	}

	point, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return RouteResponse{}, err
	}

	return RouteResponse{
		ID:           routeID,
		Status:       routeStatus,
		CourierID:    courierID,
		Client:       client,
		Destination:  point,
		Details:      details,
		PlannedStart: plannedStart,
		PlannedEnd:   plannedEnd,
	}, nil
}
