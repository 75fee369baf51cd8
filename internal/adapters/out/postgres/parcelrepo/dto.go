// Package parcelrepo provides the read-only GORM repository for parcels.
package parcelrepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure of a parcel.
type ParcelDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	RouteID  uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Name     string    `gorm:"type:varchar(255)"`
	Details  string    `gorm:"type:varchar(255)"`
	WeightKg float64
	WidthCm  int
	LengthCm int
	HeightCm int
	Deposit  string `gorm:"type:varchar(64)"`
	Shelf    string `gorm:"type:varchar(64)"`
	Sector   string `gorm:"type:varchar(64)"`
}

// TableName overrides GORM's default naming convention to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	routeID, err := kernel.UUIDFromBytes(dto.RouteID[:])
	if err != nil {
		return nil, err
	}

	return parcel.NewParcel(
		id,
		routeID,
		dto.Name,
		dto.Details,
		dto.WeightKg,
		parcel.Dimensions{WidthCm: dto.WidthCm, LengthCm: dto.LengthCm, HeightCm: dto.HeightCm},
		parcel.WarehouseSlot{Deposit: dto.Deposit, Shelf: dto.Shelf, Sector: dto.Sector},
	)
}
