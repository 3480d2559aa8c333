package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nevodrive/nevo_testdrive_service/internal/core/domain"
	"github.com/nevodrive/nevo_testdrive_service/internal/core/ports"
	"github.com/nevodrive/nevo_testdrive_service/internal/core/services"
)

type VehicleHandler struct {
	vehicleService     *services.VehicleService
	reservationService *services.ReservationService
	logger             ports.LoggerPort
	metrics            ports.MetricsPort
}

type ListVehiclesRequest struct {
	Type     string `form:"type"`
	Location string `form:"location"`
}

type TimeSlotsRequest struct {
	Date         string `form:"date" binding:"required"`
	DurationMins int    `form:"durationMins" binding:"omitempty,min=1,max=480"`
}

type LocationsResponse struct {
	Locations []string `json:"locations"`
}

type TypesResponse struct {
	Types []string `json:"types"`
}

type TimeSlotsResponse struct {
	Slots []string `json:"slots"`
}

func NewVehicleHandler(
	vehicleService *services.VehicleService,
	reservationService *services.ReservationService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *VehicleHandler {
	return &VehicleHandler{
		vehicleService:     vehicleService,
		reservationService: reservationService,
		logger:             logger,
		metrics:            metrics,
	}
}

// @Summary List vehicles
// @Description List vehicles, optionally filtered by type and location
// @Tags vehicles
// @Produce json
// @Param type query string false "Vehicle type"
// @Param location query string false "Location"
// @Success 200 {array} domain.Vehicle "Vehicles"
// @Failure 500 {object} errorResponse "Store failure"
// @Router /vehicles [get]
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req ListVehiclesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	vehicles, err := h.vehicleService.ListByTypeAndLocation(c.Request.Context(), req.Type, req.Location)
	if err != nil {
		h.logger.Error("Failed to list vehicles", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to list vehicles")
		return
	}
	if vehicles == nil {
		vehicles = []*domain.Vehicle{}
	}

	c.JSON(http.StatusOK, vehicles)
}

// @Summary List locations
// @Description List every location that has at least one vehicle
// @Tags vehicles
// @Produce json
// @Success 200 {object} LocationsResponse "Locations"
// @Failure 500 {object} errorResponse "Store failure"
// @Router /vehicles/locations [get]
func (h *VehicleHandler) ListLocations(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	locations, err := h.vehicleService.ListLocations(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list locations", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to list locations")
		return
	}
	if locations == nil {
		locations = []string{}
	}

	c.JSON(http.StatusOK, LocationsResponse{Locations: locations})
}

// @Summary List vehicle types
// @Description List vehicle types, optionally narrowed to one location
// @Tags vehicles
// @Produce json
// @Param location query string false "Location"
// @Success 200 {object} TypesResponse "Vehicle types"
// @Failure 500 {object} errorResponse "Store failure"
// @Router /vehicles/types [get]
func (h *VehicleHandler) ListTypes(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	types, err := h.vehicleService.ListTypes(c.Request.Context(), c.Query("location"))
	if err != nil {
		h.logger.Error("Failed to list vehicle types", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to list vehicle types")
		return
	}
	if types == nil {
		types = []string{}
	}

	c.JSON(http.StatusOK, TypesResponse{Types: types})
}

// @Summary List free time slots
// @Description List bookable start times for a vehicle on a date
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param durationMins query int false "Slot duration in minutes, default 30"
// @Success 200 {object} TimeSlotsResponse "Free slots"
// @Failure 400 {object} errorResponse "Invalid parameters"
// @Failure 404 {object} errorResponse "Vehicle not found"
// @Router /vehicles/{id}/timeslots [get]
func (h *VehicleHandler) ListTimeSlots(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	vehicleID := c.Param("id")

	var req TimeSlotsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}
	if req.DurationMins == 0 {
		req.DurationMins = 30
	}

	slots, err := h.reservationService.AvailableTimeSlots(c.Request.Context(), vehicleID, req.Date, req.DurationMins)
	if err != nil {
		h.logger.Warn("Failed to list time slots", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicleID,
		})
		if errors.Is(err, domain.ErrVehicleNotFound) {
			newErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, TimeSlotsResponse{Slots: slots})
}
