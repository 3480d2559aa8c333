package ports

import (
	"context"

	"github.com/nevodrive/nevo_testdrive_service/internal/core/domain"
)

// VehicleFilter narrows directory lookups. Empty fields are not filtered on;
// matching is case-insensitive.
type VehicleFilter struct {
	Type     string
	Location string
}

type VehicleRepository interface {
	CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	GetVehicleByID(ctx context.Context, id string) (*domain.Vehicle, error)
	FindVehicles(ctx context.Context, filter VehicleFilter) ([]*domain.Vehicle, error)
	ListLocations(ctx context.Context) ([]string, error)
	ListTypes(ctx context.Context, location string) ([]string, error)
}

type VehicleService interface {
	GetVehicleByID(ctx context.Context, id string) (*domain.Vehicle, error)
	ListByTypeAndLocation(ctx context.Context, vehicleType, location string) ([]*domain.Vehicle, error)
	ListLocations(ctx context.Context) ([]string, error)
	ListTypes(ctx context.Context, location string) ([]string, error)
}
