// Package routerepo provides the read-only GORM repository for route
// aggregates, mapping between the routes table and the domain model.
package routerepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO represents the database structure of a route. Routes are written
// by the logistics backend; this client only ever reads them, so the DTO
// carries no dirty-tracking state.
type RouteDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Status       string         `gorm:"type:varchar(20);index"`
	CourierID    string         `gorm:"type:varchar(128);index"`
	Client       string         `gorm:"type:varchar(255)"`
	Destination  DestinationDTO `gorm:"embedded"`
	PlannedStart time.Time
	PlannedEnd   time.Time
}

// TableName overrides GORM's default naming convention to use "routes".
func (RouteDTO) TableName() string {
	return "routes"
}

// DestinationDTO represents the embedded delivery destination columns.
type DestinationDTO struct {
	Latitude  float64
	Longitude float64
	Details   string `gorm:"type:varchar(255)"`
}

// toDomain converts a database DTO to a route domain aggregate.
// Reconstructs the aggregate through RestoreRoute so the status and courier
// consistency invariants are enforced on every read.
func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := route.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	point, err := kernel.NewGeoPoint(dto.Destination.Latitude, dto.Destination.Longitude)
	if err != nil {
		return nil, err
	}

	destination, err := route.NewDestination(point, dto.Destination.Details)
	if err != nil {
		return nil, err
	}

	schedule, err := route.NewSchedule(dto.PlannedStart, dto.PlannedEnd)
	if err != nil {
		return nil, err
	}

	return route.RestoreRoute(id, status, dto.CourierID, dto.Client, destination, schedule)
}
