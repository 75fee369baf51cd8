package route

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrRouteIsNotConstructed is returned when a Route instance was not
	// created through NewRoute or RestoreRoute.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute or RestoreRoute constructor")

	// ErrCourierIsRequired indicates a reserve attempt without a courier identity.
	ErrCourierIsRequired = errs.NewValueIsRequiredError("courierID")

	// ErrClientIsRequired indicates a route without a recipient name.
	ErrClientIsRequired = errs.NewValueIsRequiredError("client")
)

// Route represents one delivery assignment. It is the aggregate root managing
// the route lifecycle from available through reservation and delivery to a
// terminal state.
//
// Invariants:
//   - Valid unique identifier and constructed destination
//   - Status transitions follow the strict graph in Status
//   - courierID is set exactly while status is not available
//   - Created only through NewRoute or RestoreRoute
type Route struct {
	id          kernel.UUID
	courierID   string
	client      string
	destination Destination
	schedule    Schedule
	status      Status

	isConstructed bool
}

// NewRoute creates a new available, unassigned Route.
//
// Parameters:
//   - id: unique route identifier
//   - client: recipient display name (required)
//   - destination: validated delivery destination
//   - schedule: planned window, informational
func NewRoute(id kernel.UUID, client string, destination Destination, schedule Schedule) (*Route, error) {
	r := &Route{
		status:        Available,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setClient(client),
		r.setDestination(destination),
		r.setSchedule(schedule),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRoute reconstructs a Route from persistence, enforcing the
// status/courier consistency invariant. courierID must be empty exactly when
// the status is available.
func RestoreRoute(
	id kernel.UUID,
	status Status,
	courierID string,
	client string,
	destination Destination,
	schedule Schedule,
) (*Route, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveCourier(courierID != ""); err != nil {
		return nil, err
	}

	r, err := NewRoute(id, client, destination, schedule)
	if err != nil {
		return nil, err
	}

	r.status = status
	r.courierID = courierID
	return r, nil
}

// Validate ensures the Route was created through a constructor.
func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}
	return nil
}

// IsEqual compares two routes by identifier.
func (r *Route) IsEqual(other *Route) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the route identifier.
func (r *Route) ID() kernel.UUID {
	return r.id
}

// CourierID returns the assigned courier's user ID, empty when unassigned.
func (r *Route) CourierID() string {
	return r.courierID
}

// Client returns the recipient display name.
func (r *Route) Client() string {
	return r.client
}

// Destination returns the delivery destination.
func (r *Route) Destination() Destination {
	return r.destination
}

// Schedule returns the planned delivery window.
func (r *Route) Schedule() Schedule {
	return r.schedule
}

// Status returns the current lifecycle status.
func (r *Route) Status() Status {
	return r.status
}

// Reserve assigns the route to a courier, transitioning available -> pending.
func (r *Route) Reserve(courierID string) error {
	if courierID == "" {
		return ErrCourierIsRequired
	}

	newStatus, err := r.status.Reserve()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.courierID = courierID
	return nil
}

// Release returns the route to the available pool, transitioning
// pending -> available and clearing the courier assignment.
func (r *Route) Release() error {
	newStatus, err := r.status.Release()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.courierID = ""
	return nil
}

// Start marks the delivery as underway, transitioning pending -> in_progress.
func (r *Route) Start() error {
	newStatus, err := r.status.Start()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Complete marks the delivery as confirmed, transitioning
// in_progress -> completed. Final state.
func (r *Route) Complete() error {
	newStatus, err := r.status.Complete()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Cancel abandons the delivery, transitioning pending or in_progress ->
// cancelled. Final state; the courier assignment is kept for the record.
func (r *Route) Cancel() error {
	newStatus, err := r.status.Cancel()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setClient(client string) error {
	if client == "" {
		return ErrClientIsRequired
	}
	r.client = client
	return nil
}

func (r *Route) setDestination(destination Destination) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	r.destination = destination
	return nil
}

func (r *Route) setSchedule(schedule Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	r.schedule = schedule
	return nil
}
