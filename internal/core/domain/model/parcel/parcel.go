// Package parcel contains the Parcel entity: the physical item tied to a
// route. Parcels are read-only from this client's perspective; they are
// loaded to display what is being delivered and where it sits in the
// warehouse, never mutated.
package parcel

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel was not created via NewParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

	// ErrNameIsRequired indicates a parcel without a display name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Dimensions is the parcel size in centimeters (width x length x height).
type Dimensions struct {
	WidthCm  int
	LengthCm int
	HeightCm int
}

// String renders the dimensions as "WxLxH cm".
func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%dx%d cm", d.WidthCm, d.LengthCm, d.HeightCm)
}

// WarehouseSlot locates a parcel inside the warehouse.
type WarehouseSlot struct {
	Deposit string
	Shelf   string
	Sector  string
}

// Parcel describes the physical item belonging to a route (at most one per
// route in this model).
type Parcel struct {
	id       kernel.UUID
	routeID  kernel.UUID
	name     string
	details  string
	weightKg float64
	size     Dimensions
	slot     WarehouseSlot

	guard guard.ConstructorGuard
}

// NewParcel creates a Parcel linked to a route. Name is required; weight must
// not be negative. Details, dimensions, and the warehouse slot are
// informational and may be empty.
func NewParcel(
	id kernel.UUID,
	routeID kernel.UUID,
	name string,
	details string,
	weightKg float64,
	size Dimensions,
	slot WarehouseSlot,
) (*Parcel, error) {
	if err := errors.Join(id.Validate(), routeID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}
	if weightKg < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("weightKg",
			fmt.Errorf("%g is negative", weightKg))
	}

	return &Parcel{
		id:       id,
		routeID:  routeID,
		name:     name,
		details:  details,
		weightKg: weightKg,
		size:     size,
		slot:     slot,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Parcel was created through its constructor.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// ID returns the parcel identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// RouteID returns the identifier of the owning route.
func (p *Parcel) RouteID() kernel.UUID {
	return p.routeID
}

// Name returns the parcel display name.
func (p *Parcel) Name() string {
	return p.name
}

// Details returns the free-text description.
func (p *Parcel) Details() string {
	return p.details
}

// WeightKg returns the parcel weight in kilograms.
func (p *Parcel) WeightKg() float64 {
	return p.weightKg
}

// Size returns the parcel dimensions.
func (p *Parcel) Size() Dimensions {
	return p.size
}

// Slot returns the warehouse slot where the parcel is stored.
func (p *Parcel) Slot() WarehouseSlot {
	return p.slot
}
