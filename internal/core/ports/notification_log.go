package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// NotificationLog records which newly available routes have already been
// announced, so the route watch job notifies each route once. Entries expire
// on their own; re-announcing a route long after its first appearance is
// acceptable.
type NotificationLog interface {
	// MarkNotified records the route as announced. Returns true when this
	// call was the first to record it.
	MarkNotified(ctx context.Context, routeID kernel.UUID) (bool, error)
}
