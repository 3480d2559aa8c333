package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nevodrive/nevo_testdrive_service/internal/core/domain"
	"github.com/nevodrive/nevo_testdrive_service/internal/core/ports"
)

// The vehicle directory is read-mostly seed data, so lookups are cached.
const directoryCacheTTL = 15 * time.Minute

type VehicleService struct {
	vehicleRepo ports.VehicleRepository
	logger      ports.LoggerPort
	cache       ports.CachePort
}

func NewVehicleService(
	vehicleRepo ports.VehicleRepository,
	logger ports.LoggerPort,
	cache ports.CachePort,
) *VehicleService {
	return &VehicleService{
		vehicleRepo: vehicleRepo,
		logger:      logger,
		cache:       cache,
	}
}

func (s *VehicleService) GetVehicleByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	cacheKey := fmt.Sprintf("vehicle:%s", id)
	cachedData, err := s.cache.Get(cacheKey)
	if err == nil {
		var cachedVehicle domain.Vehicle
		if err := json.Unmarshal(cachedData, &cachedVehicle); err == nil {
			return &cachedVehicle, nil
		}
	}

	vehicle, err := s.vehicleRepo.GetVehicleByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get vehicle", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": id,
		})
		return nil, err
	}

	vehicleData, err := json.Marshal(vehicle)
	if err != nil {
		s.logger.Warn("Failed to marshal vehicle for cache", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": id,
		})
	} else {
		if err := s.cache.Set(cacheKey, vehicleData, directoryCacheTTL); err != nil {
			s.logger.Warn("Failed to cache vehicle", map[string]interface{}{
				"error":      err.Error(),
				"vehicle_id": id,
			})
		}
	}

	return vehicle, nil
}

func (s *VehicleService) ListByTypeAndLocation(ctx context.Context, vehicleType, location string) ([]*domain.Vehicle, error) {
	filter := ports.VehicleFilter{
		Type:     strings.ToLower(vehicleType),
		Location: strings.ToLower(location),
	}

	vehicles, err := s.vehicleRepo.FindVehicles(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list vehicles", map[string]interface{}{
			"error":    err.Error(),
			"type":     vehicleType,
			"location": location,
		})
		return nil, err
	}

	s.logger.Info("Retrieved vehicles", map[string]interface{}{
		"type":           vehicleType,
		"location":       location,
		"vehicles_count": len(vehicles),
	})

	return vehicles, nil
}

func (s *VehicleService) ListLocations(ctx context.Context) ([]string, error) {
	cacheKey := "vehicle:locations"
	cachedData, err := s.cache.Get(cacheKey)
	if err == nil {
		var locations []string
		if err := json.Unmarshal(cachedData, &locations); err == nil {
			return locations, nil
		}
	}

	locations, err := s.vehicleRepo.ListLocations(ctx)
	if err != nil {
		s.logger.Error("Failed to list locations", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	if data, err := json.Marshal(locations); err == nil {
		if err := s.cache.Set(cacheKey, data, directoryCacheTTL); err != nil {
			s.logger.Warn("Failed to cache locations", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return locations, nil
}

func (s *VehicleService) ListTypes(ctx context.Context, location string) ([]string, error) {
	cacheKey := fmt.Sprintf("vehicle:types:%s", strings.ToLower(location))
	cachedData, err := s.cache.Get(cacheKey)
	if err == nil {
		var types []string
		if err := json.Unmarshal(cachedData, &types); err == nil {
			return types, nil
		}
	}

	types, err := s.vehicleRepo.ListTypes(ctx, strings.ToLower(location))
	if err != nil {
		s.logger.Error("Failed to list vehicle types", map[string]interface{}{
			"error":    err.Error(),
			"location": location,
		})
		return nil, err
	}

	if data, err := json.Marshal(types); err == nil {
		if err := s.cache.Set(cacheKey, data, directoryCacheTTL); err != nil {
			s.logger.Warn("Failed to cache vehicle types", map[string]interface{}{
				"error":    err.Error(),
				"location": location,
			})
		}
	}

	return types, nil
}
