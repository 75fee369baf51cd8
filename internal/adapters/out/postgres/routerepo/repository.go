package routerepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRouteRepository implements ports.RouteRepository using GORM.
type GormRouteRepository struct {
	db *gorm.DB
}

// NewGormRouteRepository creates a new GORM route repository.
func NewGormRouteRepository(db *gorm.DB) *GormRouteRepository {
	return &GormRouteRepository{db: db}
}

var _ ports.RouteRepository = (*GormRouteRepository)(nil)

// Get retrieves a route by ID.
func (r *GormRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByStatus retrieves routes in the given status, optionally restricted
// by the courier filter.
func (r *GormRouteRepository) GetAllByStatus(
	ctx context.Context,
	status route.Status,
	filter ports.CourierFilter,
) ([]*route.Route, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Where("status = ?", status.String())
	if filter.UnassignedOnly {
		query = query.Where("courier_id = ''")
	}
	if filter.CourierID != "" {
		query = query.Where("courier_id = ?", filter.CourierID)
	}

	var dtos []RouteDTO
	if err := query.Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []RouteDTO) ([]*route.Route, error) {
	routes := make([]*route.Route, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		routes = append(routes, aggregate)
	}
	return routes, nil
}
