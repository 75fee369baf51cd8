package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrGetCourierRoutesQueryIsNotConstructed = errors.New(
	"GetCourierRoutesQuery must be created via NewGetCourierRoutesQuery constructor",
)

// GetCourierRoutesQuery retrieves the authenticated courier's own routes,
// ordered by the fixed status priority so active work appears first.
//
// Example:
//
//	query := NewGetCourierRoutesQuery()
//	handler := NewGetCourierRoutesQueryHandler(db, session)
//
//	routes, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load my routes: %w", err)
//	}
type GetCourierRoutesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCourierRoutesQuery creates a query for the courier's route list.
// The courier identity comes from the active session, not from the query.
func NewGetCourierRoutesQuery() GetCourierRoutesQuery {
	return GetCourierRoutesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCourierRoutesQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierRoutesQueryIsNotConstructed)
}
