package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// RouteTransitionClient performs the five permitted server-side route state
// transitions. Each call is an authenticated HTTP request bounded by a fixed
// timeout.
//
// Failure semantics (see internal/pkg/errs):
//   - TimeoutError: the call exceeded its bound; remote state is uncertain
//     and must not be assumed changed.
//   - TransitionRejectedError: the server refused; remote state unchanged.
//   - InvalidConfirmationCodeError: Complete only; the code did not match.
//
// Calls are not idempotent at this layer and are never retried
// automatically; a repeated call after a timeout may double-apply.
type RouteTransitionClient interface {
	// Reserve transitions available -> pending, assigning the courier.
	Reserve(ctx context.Context, routeID kernel.UUID, courierID string) error

	// Release transitions pending -> available, clearing the assignment.
	Release(ctx context.Context, routeID kernel.UUID) error

	// Start transitions pending -> in_progress.
	Start(ctx context.Context, routeID kernel.UUID) error

	// Complete transitions in_progress -> completed. The server validates
	// the confirmation code.
	Complete(ctx context.Context, routeID kernel.UUID, confirmationCode string) error

	// Cancel transitions pending or in_progress -> cancelled.
	Cancel(ctx context.Context, routeID kernel.UUID) error
}
