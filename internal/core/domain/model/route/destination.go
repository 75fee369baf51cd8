package route

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrDestinationIsNotConstructed is returned when validating a Destination
// that was not created via NewDestination.
var ErrDestinationIsNotConstructed = errs.NewValueIsRequiredError(
	"destination must be created via NewDestination constructor")

// Destination is where a route delivers: a geographic point plus free-text
// address detail (street, floor, apartment).
type Destination struct {
	point   kernel.GeoPoint
	details string
	guard   guard.ConstructorGuard
}

// NewDestination creates a Destination. The point must be a constructed
// GeoPoint; details may be empty.
func NewDestination(point kernel.GeoPoint, details string) (Destination, error) {
	if err := point.Validate(); err != nil {
		return Destination{}, err
	}

	return Destination{
		point:   point,
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Destination was created through its constructor.
func (d Destination) Validate() error {
	return d.guard.Validate(ErrDestinationIsNotConstructed)
}

// Point returns the destination coordinates.
func (d Destination) Point() kernel.GeoPoint {
	return d.point
}

// Details returns the free-text address detail.
func (d Destination) Details() string {
	return d.details
}

// ErrScheduleIsNotConstructed is returned when validating a Schedule that was
// not created via NewSchedule.
var ErrScheduleIsNotConstructed = errs.NewValueIsRequiredError(
	"schedule must be created via NewSchedule constructor")

// ErrScheduleEndsBeforeStart indicates a planned window that ends before it begins.
var ErrScheduleEndsBeforeStart = errs.NewValueIsInvalidError("schedule end precedes start")

// Schedule holds the planned start and end of a route. It is informational;
// the lifecycle workflow never enforces it. Either bound may be the zero time
// when unplanned.
type Schedule struct {
	plannedStart time.Time
	plannedEnd   time.Time
	guard        guard.ConstructorGuard
}

// NewSchedule creates a Schedule. When both bounds are set, the end must not
// precede the start.
func NewSchedule(plannedStart, plannedEnd time.Time) (Schedule, error) {
	if !plannedStart.IsZero() && !plannedEnd.IsZero() && plannedEnd.Before(plannedStart) {
		return Schedule{}, ErrScheduleEndsBeforeStart
	}

	return Schedule{
		plannedStart: plannedStart,
		plannedEnd:   plannedEnd,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Schedule was created through its constructor.
func (s Schedule) Validate() error {
	return s.guard.Validate(ErrScheduleIsNotConstructed)
}

// PlannedStart returns the planned start time, zero when unplanned.
func (s Schedule) PlannedStart() time.Time {
	return s.plannedStart
}

// PlannedEnd returns the planned end time, zero when unplanned.
func (s Schedule) PlannedEnd() time.Time {
	return s.plannedEnd
}
